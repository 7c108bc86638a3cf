package git

import (
	"context"
	"strings"
)

// RemotePrefix is the namespace of a remote's tracking references
const RemotePrefix = "refs/remotes/"

// RemoteNamespace returns the exact reference namespace of a remote's tracking
// branches, including the trailing slash.
func RemoteNamespace(remote string) string {
	return RemotePrefix + remote + "/"
}

// ListRemotes returns the names of the remotes configured in the mirror
func (m *Mirror) ListRemotes(ctx context.Context) ([]string, error) {
	output, err := m.run(ctx, "remote")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	var remotes []string
	for _, line := range strings.Split(output, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			remotes = append(remotes, name)
		}
	}
	return remotes, nil
}

// AddRemote adds a remote with the default fetch refspec
func (m *Mirror) AddRemote(ctx context.Context, name, url string) error {
	_, err := m.run(ctx, "remote", "add", name, url)
	return err
}

// SetRemoteURL updates the URL of an existing remote
func (m *Mirror) SetRemoteURL(ctx context.Context, name, url string) error {
	_, err := m.run(ctx, "remote", "set-url", name, url)
	return err
}

// RemoveRemote removes a remote and its tracking references
func (m *Mirror) RemoveRemote(ctx context.Context, name string) error {
	_, err := m.run(ctx, "remote", "remove", name)
	return err
}

// Fetch fetches a remote, pruning tracking branches deleted upstream
func (m *Mirror) Fetch(ctx context.Context, remote string) error {
	_, err := m.run(ctx, "fetch", "--prune", remote)
	return err
}
