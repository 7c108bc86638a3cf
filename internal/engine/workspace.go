package engine

import (
	"context"
	"fmt"
	"sort"
)

// EnsureWorkspace creates the mirror if needed, reconciles its remotes with the
// configuration and fetches every remote. It is safe to run again after a
// failure.
func (e *Engine) EnsureWorkspace(ctx context.Context) error {
	exists, err := e.mirror.Exists()
	if err != nil {
		return err
	}
	if !exists {
		e.splog.Debug("Initializing mirror in %s", e.mirror.Dir())
		if err := e.mirror.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize mirror: %w", err)
		}
	}

	if err := e.reconcileRemotes(ctx); err != nil {
		return err
	}

	// targets first, the source last; both complete before references are read
	for _, target := range e.cfg.Targets() {
		e.splog.Debug("Fetching %s (%s)", target.URL, target.ID)
		if err := e.mirror.Fetch(ctx, target.ID); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", target.URL, err)
		}
	}
	e.splog.Debug("Fetching source %s", e.cfg.ProjectDir)
	if err := e.mirror.Fetch(ctx, SourceRemote); err != nil {
		return fmt.Errorf("failed to fetch source: %w", err)
	}
	return nil
}

// requiredRemotes returns remote name -> URL for the current configuration
func (e *Engine) requiredRemotes() map[string]string {
	required := map[string]string{SourceRemote: e.cfg.ProjectDir}
	for _, target := range e.cfg.Targets() {
		required[target.ID] = target.URL
	}
	return required
}

func (e *Engine) reconcileRemotes(ctx context.Context) error {
	current, err := e.mirror.ListRemotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list remotes: %w", err)
	}
	present := make(map[string]bool, len(current))
	for _, name := range current {
		present[name] = true
	}

	required := e.requiredRemotes()
	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		url := required[name]
		if present[name] {
			if err := e.mirror.SetRemoteURL(ctx, name, url); err != nil {
				return fmt.Errorf("failed to update remote %s: %w", name, err)
			}
			continue
		}
		e.splog.Debug("Adding remote %s for %s", name, url)
		if err := e.mirror.AddRemote(ctx, name, url); err != nil {
			return fmt.Errorf("failed to add remote %s: %w", name, err)
		}
	}

	for _, name := range current {
		if _, ok := required[name]; ok {
			continue
		}
		e.splog.Debug("Removing remote %s", name)
		if err := e.mirror.RemoveRemote(ctx, name); err != nil {
			return fmt.Errorf("failed to remove remote %s: %w", name, err)
		}
	}
	return nil
}
