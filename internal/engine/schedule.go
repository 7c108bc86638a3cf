package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gitsplit.dev/gitsplit/internal/git"
	"gitsplit.dev/gitsplit/internal/output"
)

// Plan expands split results into one push task per target. The previous
// state of each target branch comes from the snapshot.
func Plan(results []SplitResult, snapshot git.Snapshot) []PushTask {
	var tasks []PushTask
	for _, result := range results {
		for _, target := range result.Rule.Targets {
			previous, _ := snapshot.Lookup(target.ID, result.Branch)
			tasks = append(tasks, PushTask{
				Target:   target,
				Branch:   result.Branch,
				Commit:   result.Commit,
				Previous: previous,
			})
		}
	}
	return tasks
}

// Push runs the tasks on a pool of at most Workers concurrent pushes.
// Up-to-date tasks are skipped without any command. The first failing push
// cancels the pushes that have not started and its error is returned along
// with the partial report.
func (e *Engine) Push(ctx context.Context, tasks []PushTask) (*Report, error) {
	report := &Report{Results: make([]PushResult, len(tasks))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, task := range tasks {
		report.Results[i].Task = task

		if task.UpToDate() {
			report.Results[i].Outcome = OutcomeSkipped
			e.splog.Info("%s %s on %s is up to date (%s)", output.Skipped("skipped"), task.Branch, task.Target.URL, output.ShortSHA(task.Commit))
			continue
		}
		if e.dryRun {
			report.Results[i].Outcome = OutcomePlanned
			e.splog.Info("%s %s to %s on %s", output.Planned("would push"), output.ShortSHA(task.Commit), task.Branch, task.Target.URL)
			continue
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := e.mirror.PushCommit(gctx, task.Target.ID, task.Commit, task.Branch); err != nil {
				report.Results[i].Outcome = OutcomeFailed
				e.splog.Error("failed to push %s to %s", task.Branch, task.Target.URL)
				return err
			}
			report.Results[i].Outcome = OutcomePushed
			e.splog.Info("%s %s to %s on %s", output.Pushed("pushed"), output.ShortSHA(task.Commit), task.Branch, task.Target.URL)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}
