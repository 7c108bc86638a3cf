package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Mirror is the local bare repository used as cache and staging area.
// All of its commands run through the same Executor.
type Mirror struct {
	dir  string
	exec Executor
}

// NewMirror creates a Mirror rooted at dir
func NewMirror(dir string, exec Executor) *Mirror {
	return &Mirror{dir: dir, exec: exec}
}

// Dir returns the mirror's storage directory
func (m *Mirror) Dir() string {
	return m.dir
}

// Exists reports whether the mirror directory already holds a repository
func (m *Mirror) Exists() (bool, error) {
	if _, err := os.Stat(m.dir); os.IsNotExist(err) {
		return false, nil
	}
	return IsRepository(m.dir)
}

// Init creates an empty bare repository in the mirror directory
func (m *Mirror) Init(ctx context.Context) error {
	if err := os.MkdirAll(m.dir, 0750); err != nil {
		return fmt.Errorf("failed to create mirror directory: %w", err)
	}
	_, err := m.exec.Run(ctx, filepath.Dir(m.dir), "git", "init", "--bare", m.dir)
	return err
}

// run executes a git command inside the mirror
func (m *Mirror) run(ctx context.Context, args ...string) (string, error) {
	return m.exec.Run(ctx, m.dir, "git", args...)
}
