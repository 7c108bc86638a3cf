package testhelpers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeSplitTool answers like splitsh-lite but does not filter: it prints the
// commit of the origin reference itself, which is deterministic and pushable.
const fakeSplitTool = `#!/bin/sh
path=""
origin=""
for arg in "$@"; do
  case "$arg" in
    --path=*) path="${arg#--path=}" ;;
    --origin=*) origin="${arg#--origin=}" ;;
  esac
done
echo "$*" >> "$0.log"
exec git --git-dir="$path" rev-parse "$origin"
`

// FakeSplitTool writes the fake split tool into a temporary directory and
// returns its path. Every invocation is appended to <path>.log.
func FakeSplitTool(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake split tool requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "splitsh-lite")
	// nolint:gosec // Tool must be executable
	if err := os.WriteFile(path, []byte(fakeSplitTool), 0700); err != nil {
		t.Fatalf("Failed to write fake split tool: %v", err)
	}
	return path
}
