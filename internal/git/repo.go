package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// FindRepoRoot returns the root directory of the git repository containing dir.
// A bare repository is its own root.
func FindRepoRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	// bare repositories are only found without walking up
	repo, err := gogit.PlainOpen(absDir)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		repo, err = gogit.PlainOpenWithOptions(absDir, &gogit.PlainOpenOptions{
			DetectDotGit: true,
		})
	}
	if err != nil {
		return "", fmt.Errorf("%s is not a git repository: %w", absDir, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return absDir, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// IsRepository reports whether dir holds a git repository, bare or not.
func IsRepository(dir string) (bool, error) {
	_, err := gogit.PlainOpen(dir)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gogit.ErrRepositoryNotExists):
		return false, nil
	default:
		return false, fmt.Errorf("failed to open %s: %w", dir, err)
	}
}
