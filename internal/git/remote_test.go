package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitsplit.dev/gitsplit/internal/git"
	"gitsplit.dev/gitsplit/testhelpers"
)

func newMirror(t *testing.T) *git.Mirror {
	t.Helper()
	testhelpers.RequireGit(t)

	mirror := git.NewMirror(filepath.Join(t.TempDir(), "mirror"), git.NewCommandRunner())
	exists, err := mirror.Exists()
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mirror.Init(context.Background()))
	return mirror
}

func TestMirrorRemotes(t *testing.T) {
	ctx := context.Background()

	t.Run("init creates a bare repository", func(t *testing.T) {
		mirror := newMirror(t)

		exists, err := mirror.Exists()
		require.NoError(t, err)
		require.True(t, exists)

		remotes, err := mirror.ListRemotes(ctx)
		require.NoError(t, err)
		require.Empty(t, remotes)
	})

	t.Run("add, update and remove remotes", func(t *testing.T) {
		mirror := newMirror(t)

		require.NoError(t, mirror.AddRemote(ctx, "origin", "/src/a"))
		require.NoError(t, mirror.AddRemote(ctx, "other", "/src/b"))

		remotes, err := mirror.ListRemotes(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"origin", "other"}, remotes)

		require.NoError(t, mirror.SetRemoteURL(ctx, "origin", "/src/c"))
		require.Equal(t, "/src/c", testhelpers.Remotes(t, mirror.Dir())["origin"])

		require.NoError(t, mirror.RemoveRemote(ctx, "other"))
		testhelpers.ExpectRemoteNames(t, mirror.Dir(), []string{"origin"})
	})

	t.Run("adding a duplicate remote fails", func(t *testing.T) {
		mirror := newMirror(t)

		require.NoError(t, mirror.AddRemote(ctx, "origin", "/src/a"))
		require.Error(t, mirror.AddRemote(ctx, "origin", "/src/a"))
	})

	t.Run("fetch and push through remotes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		target := scene.NewTarget("target")
		mirror := newMirror(t)

		require.NoError(t, mirror.AddRemote(ctx, "origin", scene.Source.Dir))
		require.NoError(t, mirror.AddRemote(ctx, "target", target.Dir))
		require.NoError(t, mirror.Fetch(ctx, "origin"))

		head := testhelpers.Must(scene.Source.GetRevision("main"))
		refs, err := mirror.ShowRefs(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"main": head}, refs.Branches("origin"))

		require.NoError(t, mirror.PushCommit(ctx, "target", head, "published"))
		testhelpers.ExpectBranches(t, target.Dir, map[string]string{"published": head})

		require.NoError(t, mirror.Fetch(ctx, "target"))
		refs, err = mirror.ShowRefs(ctx)
		require.NoError(t, err)
		sha, ok := refs.Lookup("target", "published")
		require.True(t, ok)
		require.Equal(t, head, sha)
	})

	t.Run("fetch prunes deleted branches", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Source.CreateBranch("gone"))
		mirror := newMirror(t)

		require.NoError(t, mirror.AddRemote(ctx, "origin", scene.Source.Dir))
		require.NoError(t, mirror.Fetch(ctx, "origin"))
		refs, err := mirror.ShowRefs(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"gone", "main"}, refs.BranchNames("origin"))

		require.NoError(t, scene.Source.DeleteBranch("gone"))
		require.NoError(t, mirror.Fetch(ctx, "origin"))
		refs, err = mirror.ShowRefs(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"main"}, refs.BranchNames("origin"))
	})
}

func TestShowRefsOnEmptyMirror(t *testing.T) {
	mirror := newMirror(t)

	refs, err := mirror.ShowRefs(context.Background())
	require.NoError(t, err)
	require.Empty(t, refs)
}
