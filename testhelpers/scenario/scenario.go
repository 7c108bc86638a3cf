// Package scenario provides a high-level test scenario that combines a Scene,
// a configuration and an Engine to provide a terse API for integration tests.
package scenario

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/engine"
	"gitsplit.dev/gitsplit/internal/output"
	"gitsplit.dev/gitsplit/testhelpers"
)

// Scenario runs the real engine against repositories of a Scene, with the
// fake split tool standing in for splitsh-lite.
type Scenario struct {
	T         *testing.T
	Scene     *testhelpers.Scene
	SplitTool string
	Origins   []string
	Splits    []config.SplitFile
	Log       bytes.Buffer
}

// NewScenario creates a new Scenario with an optional scene setup function.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()
	return &Scenario{
		T:         t,
		Scene:     testhelpers.NewScene(t, setup),
		SplitTool: testhelpers.FakeSplitTool(t),
	}
}

// WithOrigins sets the origin patterns.
func (s *Scenario) WithOrigins(origins ...string) *Scenario {
	s.Origins = origins
	return s
}

// WithSplit adds a split rule.
func (s *Scenario) WithSplit(prefixes []string, targets ...string) *Scenario {
	s.Splits = append(s.Splits, config.SplitFile{Prefix: prefixes, Target: targets})
	return s
}

// ResetSplits removes every split rule.
func (s *Scenario) ResetSplits() *Scenario {
	s.Splits = nil
	return s
}

// Config resolves the scenario's configuration.
func (s *Scenario) Config() *config.Config {
	s.T.Helper()
	cfg, err := config.Resolve(&config.File{
		CacheDir:   s.Scene.CacheDir,
		ProjectDir: s.Scene.Source.Dir,
		Origins:    s.Origins,
		Splits:     s.Splits,
		SplitTool:  s.SplitTool,
	}, s.Scene.Dir)
	require.NoError(s.T, err)
	return cfg
}

// Run runs the engine once.
func (s *Scenario) Run() (*engine.Report, error) {
	s.T.Helper()
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &s.Log})
	require.NoError(s.T, err)
	return engine.New(s.Config(), engine.Options{Splog: splog}).Run(context.Background())
}

// MustRun runs the engine once and fails the test on error.
func (s *Scenario) MustRun() *engine.Report {
	s.T.Helper()
	report, err := s.Run()
	require.NoError(s.T, err, "run failed, log:\n%s", s.Log.String())
	return report
}
