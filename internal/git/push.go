package git

import (
	"context"
	"fmt"
)

// PushCommit force-pushes commit to the branch on remote.
// The remote branch is overwritten regardless of its current state.
func (m *Mirror) PushCommit(ctx context.Context, remote, commit, branch string) error {
	refspec := fmt.Sprintf("%s:refs/heads/%s", commit, branch)
	if _, err := m.run(ctx, "push", "--force", remote, refspec); err != nil {
		return fmt.Errorf("failed to push %s to %s on %s: %w", commit, branch, remote, err)
	}
	return nil
}
