package config

import (
	"fmt"
	"regexp"
)

// DefaultOriginPattern matches every branch
const DefaultOriginPattern = ".*"

// OriginPattern selects the source branches that participate in splitting.
// Matching is against the whole short branch name.
type OriginPattern struct {
	expr string
	re   *regexp.Regexp
}

// NewOriginPattern compiles expr. An empty expression means DefaultOriginPattern.
func NewOriginPattern(expr string) (OriginPattern, error) {
	if expr == "" {
		expr = DefaultOriginPattern
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return OriginPattern{}, fmt.Errorf("invalid origin pattern %q: %w", expr, err)
	}
	return OriginPattern{expr: expr, re: re}, nil
}

// MustOriginPattern is like NewOriginPattern but panics on an invalid expression
func MustOriginPattern(expr string) OriginPattern {
	p, err := NewOriginPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression as configured
func (p OriginPattern) String() string {
	return p.expr
}

// Match reports whether branch matches the pattern in full
func (p OriginPattern) Match(branch string) bool {
	if p.re == nil {
		return true
	}
	return p.re.MatchString(branch)
}
