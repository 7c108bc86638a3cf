package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene represents a test scene: a source repository, a directory for the
// mirror, and any number of bare target repositories, all under t.TempDir().
type Scene struct {
	T        *testing.T
	Dir      string
	Source   *GitRepo
	CacheDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// RequireGit skips the test when git is not on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available")
	}
}

// NewScene creates a new test scene with a source repository.
// Cleanup is handled by t.TempDir().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)

	dir := t.TempDir()
	source, err := NewGitRepo(filepath.Join(dir, "source"))
	if err != nil {
		t.Fatalf("Failed to create source repo: %v", err)
	}

	scene := &Scene{
		T:        t,
		Dir:      dir,
		Source:   source,
		CacheDir: filepath.Join(dir, "cache"),
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// NewTarget creates an empty bare repository to push to and returns it.
func (s *Scene) NewTarget(name string) *GitRepo {
	s.T.Helper()
	target, err := NewBareRepo(filepath.Join(s.Dir, "targets", name+".git"))
	if err != nil {
		s.T.Fatalf("Failed to create target %s: %v", name, err)
	}
	return target
}

// BasicSceneSetup commits one file under lib/ and one outside it on main.
func BasicSceneSetup(scene *Scene) error {
	if err := scene.Source.CommitFile("lib/lib.txt", "lib", "add lib"); err != nil {
		return err
	}
	return scene.Source.CommitFile("app/app.txt", "app", "add app")
}
