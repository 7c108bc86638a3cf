package engine

import (
	"gitsplit.dev/gitsplit/internal/config"
)

// SourceRemote is the name of the mirror's remote for the source repository
const SourceRemote = "origin"

// WorkItem is a source branch to split with one rule
type WorkItem struct {
	Branch string
	Rule   config.SplitRule
}

// SplitResult is the commit computed for a WorkItem
type SplitResult struct {
	Branch string
	Rule   config.SplitRule
	Commit string
}

// PushTask pushes Commit to Branch on Target. Previous is the target's commit
// for the branch when the run started, empty when the branch was unknown.
type PushTask struct {
	Target   config.TargetSpec
	Branch   string
	Commit   string
	Previous string
}

// UpToDate reports whether the target already holds the commit
func (t PushTask) UpToDate() bool {
	return t.Previous != "" && t.Previous == t.Commit
}

// Outcome is what happened to a PushTask
type Outcome int

const (
	// OutcomeNotAttempted indicates the push was abandoned after another push failed
	OutcomeNotAttempted Outcome = iota
	// OutcomeSkipped indicates the target already held the commit
	OutcomeSkipped
	// OutcomePushed indicates the commit was pushed
	OutcomePushed
	// OutcomePlanned indicates a dry run left the push out
	OutcomePlanned
	// OutcomeFailed indicates the push command failed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomePushed:
		return "pushed"
	case OutcomePlanned:
		return "planned"
	case OutcomeFailed:
		return "failed"
	default:
		return "not attempted"
	}
}

// PushResult pairs a task with its outcome
type PushResult struct {
	Task    PushTask
	Outcome Outcome
}

// Report lists the outcome of every push task of a run, in task order
type Report struct {
	Results []PushResult
}

// Count returns the number of tasks with the given outcome
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}
	return n
}

// Pushed returns the number of pushes performed
func (r *Report) Pushed() int {
	return r.Count(OutcomePushed)
}

// Skipped returns the number of up-to-date targets
func (r *Report) Skipped() int {
	return r.Count(OutcomeSkipped)
}
