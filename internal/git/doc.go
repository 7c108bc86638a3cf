// Package git provides low-level git operations on the mirror workspace.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Mirror lifecycle (init, existence checks)
//   - Remote management (list, add, set-url, remove, fetch)
//   - Reference snapshots (show-ref)
//   - Pushing commits to remote branches
//
// This package should be the only place where git commands are executed.
package git
