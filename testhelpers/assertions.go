// Package testhelpers provides testing utilities for gitsplit,
// including a scene system, Git repository helpers, a recording executor,
// and custom assertions.
package testhelpers

import (
	"sort"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Branches returns the local branches of the repository at dir keyed by name.
func Branches(t *testing.T, dir string) map[string]string {
	t.Helper()

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err, "Failed to open %s", dir)

	iter, err := repo.Branches()
	require.NoError(t, err, "Failed to list branches")

	branches := map[string]string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches[ref.Name().Short()] = ref.Hash().String()
		return nil
	})
	require.NoError(t, err)
	return branches
}

// ExpectBranches asserts that the repository at dir has exactly the expected branches.
func ExpectBranches(t *testing.T, dir string, expected map[string]string) {
	t.Helper()
	require.Equal(t, expected, Branches(t, dir), "Branches do not match")
}

// Remotes returns the remotes configured in the repository at dir keyed by name,
// with their first URL as value.
func Remotes(t *testing.T, dir string) map[string]string {
	t.Helper()

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err, "Failed to open %s", dir)

	remotes, err := repo.Remotes()
	require.NoError(t, err, "Failed to list remotes")

	result := map[string]string{}
	for _, remote := range remotes {
		cfg := remote.Config()
		url := ""
		if len(cfg.URLs) > 0 {
			url = cfg.URLs[0]
		}
		result[cfg.Name] = url
	}
	return result
}

// ExpectRemoteNames asserts that the repository at dir has exactly the expected remotes.
func ExpectRemoteNames(t *testing.T, dir string, expected []string) {
	t.Helper()

	actual := make([]string, 0)
	for name := range Remotes(t, dir) {
		actual = append(actual, name)
	}
	sort.Strings(actual)

	sorted := append([]string(nil), expected...)
	sort.Strings(sorted)

	require.Equal(t, strings.Join(sorted, ", "), strings.Join(actual, ", "), "Remotes do not match")
}
