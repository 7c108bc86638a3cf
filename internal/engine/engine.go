package engine

import (
	"context"
	"fmt"

	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/git"
	"gitsplit.dev/gitsplit/internal/output"
	"gitsplit.dev/gitsplit/internal/splitter"
)

// Options holds the collaborators of an Engine. Zero values select the real
// implementations.
type Options struct {
	Executor git.Executor
	Splitter splitter.Splitter
	Splog    *output.Splog
	// DryRun splits but does not push
	DryRun bool
}

// Engine runs the split-and-distribute pipeline for one configuration
type Engine struct {
	cfg      *config.Config
	mirror   *git.Mirror
	splitter splitter.Splitter
	splog    *output.Splog
	workers  int
	dryRun   bool
}

// New creates an Engine for cfg
func New(cfg *config.Config, opts Options) *Engine {
	exec := opts.Executor
	if exec == nil {
		exec = git.NewCommandRunner()
	}
	split := opts.Splitter
	if split == nil {
		split = splitter.NewSplitshLite(cfg.SplitTool, cfg.CacheDir, exec)
	}
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	return &Engine{
		cfg:      cfg,
		mirror:   git.NewMirror(cfg.CacheDir, exec),
		splitter: split,
		splog:    splog,
		workers:  workers,
		dryRun:   opts.DryRun,
	}
}

// Run updates the mirror, splits every matching branch and pushes the results.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	if err := e.EnsureWorkspace(ctx); err != nil {
		return nil, err
	}

	// single read after all fetches; every push decision uses it
	snapshot, err := e.mirror.ShowRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read references: %w", err)
	}

	work, err := Resolve(snapshot, e.cfg.Origins, e.cfg.Splits)
	if err != nil {
		return nil, err
	}
	e.splog.Debug("Resolved %d split(s)", len(work))

	results, err := e.Split(ctx, work)
	if err != nil {
		return nil, err
	}

	return e.Push(ctx, Plan(results, snapshot))
}

// Split computes the split commit of every work item, in order
func (e *Engine) Split(ctx context.Context, work []WorkItem) ([]SplitResult, error) {
	results := make([]SplitResult, 0, len(work))
	for _, item := range work {
		ref := git.RemoteNamespace(SourceRemote) + item.Branch
		commit, err := e.splitter.Split(ctx, ref, item.Rule.Prefixes)
		if err != nil {
			return nil, err
		}
		e.splog.Debug("Split %v of %s into %s", item.Rule.Prefixes, item.Branch, commit)
		results = append(results, SplitResult{Branch: item.Branch, Rule: item.Rule, Commit: commit})
	}
	return results, nil
}
