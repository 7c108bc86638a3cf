package config

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
)

// TargetSpec is a destination repository. ID is derived from the URL alone and
// names the target's remote in the mirror.
type TargetSpec struct {
	URL string
	ID  string
}

// NewTargetSpec creates a TargetSpec for url
func NewTargetSpec(url string) TargetSpec {
	return TargetSpec{URL: url, ID: TargetID(url)}
}

// TargetID returns the lowercase hex SHA-1 of url
func TargetID(url string) string {
	// nolint:gosec // Used as a stable name, not for security
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// SplitRule pairs path prefixes with the targets that receive their history.
// Both lists are non-empty.
type SplitRule struct {
	Prefixes []string
	Targets  []TargetSpec
}

// Config is the fully resolved configuration of a run
type Config struct {
	// Path is the configuration file that was loaded, if any
	Path string
	// CacheDir is the absolute path of the mirror workspace
	CacheDir string
	// ProjectDir is the absolute root of the source repository
	ProjectDir string
	Origins    []OriginPattern
	Splits     []SplitRule
	Workers    int
	SplitTool  string
}

// Targets returns every distinct target across all split rules, sorted by ID
func (c *Config) Targets() []TargetSpec {
	seen := make(map[string]bool)
	var targets []TargetSpec
	for _, rule := range c.Splits {
		for _, target := range rule.Targets {
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			targets = append(targets, target)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })
	return targets
}
