package engine

import (
	"gitsplit.dev/gitsplit/internal/config"
	gserrors "gitsplit.dev/gitsplit/internal/errors"
	"gitsplit.dev/gitsplit/internal/git"
)

// Resolve builds the worklist: for every origin pattern, every source branch it
// matches is paired with every split rule. Entries are not deduplicated.
// A pattern that matches no branch is an error.
func Resolve(snapshot git.Snapshot, origins []config.OriginPattern, rules []config.SplitRule) ([]WorkItem, error) {
	branches := snapshot.BranchNames(SourceRemote)

	var work []WorkItem
	for _, pattern := range origins {
		matched := false
		for _, branch := range branches {
			if !pattern.Match(branch) {
				continue
			}
			matched = true
			for _, rule := range rules {
				work = append(work, WorkItem{Branch: branch, Rule: rule})
			}
		}
		if !matched {
			return nil, gserrors.NewPatternError(pattern.String(), branches)
		}
	}
	return work, nil
}
