// Package splitter invokes the external subtree split tool.
package splitter

import (
	"context"
	"fmt"
	"strings"

	"gitsplit.dev/gitsplit/internal/git"
)

// Splitter computes the commit holding the history of prefixes on ref.
// The same history, ref and prefixes always yield the same commit.
type Splitter interface {
	Split(ctx context.Context, ref string, prefixes []string) (string, error)
}

// SplitshLite runs a splitsh-lite compatible tool against a repository
type SplitshLite struct {
	tool     string
	repoPath string
	exec     git.Executor
}

// NewSplitshLite creates a Splitter running tool on the repository at repoPath
func NewSplitshLite(tool, repoPath string, exec git.Executor) *SplitshLite {
	return &SplitshLite{tool: tool, repoPath: repoPath, exec: exec}
}

// Args returns the command line arguments for splitting prefixes on ref
func (s *SplitshLite) Args(ref string, prefixes []string) []string {
	args := []string{"--path=" + s.repoPath, "--origin=" + ref}
	for _, prefix := range prefixes {
		args = append(args, "--prefix="+prefix)
	}
	return args
}

// Split implements Splitter
func (s *SplitshLite) Split(ctx context.Context, ref string, prefixes []string) (string, error) {
	if len(prefixes) == 0 {
		return "", fmt.Errorf("no prefix to split on %s", ref)
	}

	output, err := s.exec.Run(ctx, s.repoPath, s.tool, s.Args(ref, prefixes)...)
	if err != nil {
		return "", fmt.Errorf("failed to split %s on %s: %w", strings.Join(prefixes, ", "), ref, err)
	}

	commit := lastLine(output)
	if commit == "" {
		return "", fmt.Errorf("%s returned no commit for %s", s.tool, ref)
	}
	return commit, nil
}

// lastLine returns the last non-empty line, as some versions print progress first
func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
