// Package engine splits the source repository and distributes the result.
//
// It is the core of gitsplit, responsible for:
//   - Maintaining the mirror workspace and its remotes
//   - Resolving which source branches to split
//   - Invoking the subtree split per branch and split rule
//   - Pushing split commits to every target, skipping up-to-date branches
//
// Every phase runs sequentially except pushes, which run on a bounded pool.
package engine
