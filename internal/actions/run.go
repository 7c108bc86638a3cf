package actions

import (
	"context"
	"time"

	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/engine"
	"gitsplit.dev/gitsplit/internal/git"
	"gitsplit.dev/gitsplit/internal/output"
)

// RunOptions contains options for the run action
type RunOptions struct {
	ConfigPath string
	DryRun     bool
	// Executor overrides the command executor, mainly for tests
	Executor git.Executor
}

// RunAction loads the configuration and runs the split-and-distribute engine once
func RunAction(ctx context.Context, splog *output.Splog, opts RunOptions) (*engine.Report, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	splog.Debug("Loaded %s: project %s, mirror %s", cfg.Path, cfg.ProjectDir, cfg.CacheDir)

	start := time.Now()
	eng := engine.New(cfg, engine.Options{
		Executor: opts.Executor,
		Splog:    splog,
		DryRun:   opts.DryRun,
	})
	report, err := eng.Run(ctx)
	if err != nil {
		return report, err
	}

	if opts.DryRun {
		splog.Info("Dry run: %d push(es) planned, %d up to date (%s)",
			report.Count(engine.OutcomePlanned), report.Skipped(), time.Since(start).Round(time.Millisecond))
	} else {
		splog.Info("Done: %d pushed, %d up to date (%s)",
			report.Pushed(), report.Skipped(), time.Since(start).Round(time.Millisecond))
	}
	return report, nil
}
