package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Snapshot maps full reference names to commit ids.
// It is read once and never refreshed.
type Snapshot map[string]string

// ShowRefs lists every reference in the mirror with its commit id
func (m *Mirror) ShowRefs(ctx context.Context) (Snapshot, error) {
	output, err := m.run(ctx, "show-ref")
	if err != nil {
		// show-ref exits 1 without output when the repository has no refs
		if ExitCode(err) == 1 {
			return Snapshot{}, nil
		}
		return nil, err
	}
	return ParseShowRef(output)
}

// ParseShowRef parses "<sha> <ref>" lines as printed by git show-ref
func ParseShowRef(output string) (Snapshot, error) {
	snapshot := Snapshot{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sha, ref, ok := strings.Cut(line, " ")
		if !ok || sha == "" || ref == "" {
			return nil, fmt.Errorf("unexpected show-ref line: %q", line)
		}
		snapshot[strings.TrimSpace(ref)] = sha
	}
	return snapshot, nil
}

// Branches returns the tracking branches of remote keyed by short name.
// Only references under exactly refs/remotes/<remote>/ are included, and the
// symbolic HEAD entry is skipped.
func (s Snapshot) Branches(remote string) map[string]string {
	namespace := RemoteNamespace(remote)
	branches := make(map[string]string)
	for ref, sha := range s {
		short, ok := strings.CutPrefix(ref, namespace)
		if !ok || short == "" || short == "HEAD" {
			continue
		}
		branches[short] = sha
	}
	return branches
}

// BranchNames returns the sorted short names of remote's tracking branches
func (s Snapshot) BranchNames(remote string) []string {
	branches := s.Branches(remote)
	names := make([]string, 0, len(branches))
	for name := range branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the commit of branch as last fetched from remote
func (s Snapshot) Lookup(remote, branch string) (string, bool) {
	sha, ok := s[RemoteNamespace(remote)+branch]
	return sha, ok
}
