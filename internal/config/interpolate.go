package config

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Interpolate replaces $NAME and ${NAME} with the value of the environment
// variable. Unset variables are left verbatim.
func Interpolate(value string, lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		if v, ok := lookup(name); ok {
			return v
		}
		return match
	})
}

// interpolateNode rewrites every scalar value in the tree. Keys are left alone.
func interpolateNode(node *yaml.Node, lookup func(string) (string, bool)) {
	switch node.Kind {
	case yaml.ScalarNode:
		if expanded := Interpolate(node.Value, lookup); expanded != node.Value {
			node.Value = expanded
			// let the encoder resolve the tag of the new value
			node.Tag = ""
		}
	case yaml.MappingNode:
		for i := 1; i < len(node.Content); i += 2 {
			interpolateNode(node.Content[i], lookup)
		}
	default:
		for _, child := range node.Content {
			interpolateNode(child, lookup)
		}
	}
}
