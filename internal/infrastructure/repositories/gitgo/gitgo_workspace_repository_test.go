//go:build integration

package gitgo_test

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/infrastructure/repositories/gitgo"
)

func initRepo(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

var testAuthor = &entities.CommitAuthor{Name: "Release Bot", Email: "release@example.com"}

func TestGitGoWorkspaceRepositoryResolveProject(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the nearest enclosing repository", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "proj1"))
		initRepo(t, filepath.Join(root, "frameworks", "base"))
		writeFile(t, root, "proj1/src/deep/a.c", "int a;")
		writeFile(t, root, "frameworks/base/core/B.java", "class B {}")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when / then
		project, found := workspace.ResolveProject(root, "proj1/src/deep/a.c")
		require.True(t, found)
		assert.Equal(t, "proj1", project)

		project, found = workspace.ResolveProject(root, "frameworks/base/core/B.java")
		require.True(t, found)
		assert.Equal(t, "frameworks/base", project)
	})

	t.Run("should prefer a nested repository over its parent", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "outer"))
		initRepo(t, filepath.Join(root, "outer", "inner"))
		writeFile(t, root, "outer/inner/x.c", "int x;")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		project, found := workspace.ResolveProject(root, "outer/inner/x.c")

		// then
		require.True(t, found)
		assert.Equal(t, "outer/inner", project)
	})

	t.Run("should resolve the workspace root repository to the empty project", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, root)
		writeFile(t, root, "Makefile", "all:")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		project, found := workspace.ResolveProject(root, "Makefile")

		// then
		require.True(t, found)
		assert.Empty(t, project)
	})

	t.Run("should not resolve files outside any repository", func(t *testing.T) {
		// given
		root := t.TempDir() // the root itself is not a repository
		initRepo(t, filepath.Join(root, "proj1"))
		writeFile(t, root, "orphan.txt", "nobody owns me")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		_, found := workspace.ResolveProject(root, "orphan.txt")

		// then
		assert.False(t, found)
	})

	t.Run("should not escape the workspace root", func(t *testing.T) {
		// given
		parent := t.TempDir()
		initRepo(t, parent) // a repository above the workspace root must not count
		root := filepath.Join(parent, "workspace")
		require.NoError(t, os.MkdirAll(root, 0o755))
		writeFile(t, root, "file.txt", "content")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		_, found := workspace.ResolveProject(root, "file.txt")

		// then
		assert.False(t, found)
	})

	t.Run("should answer consistently from the cache", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "proj1"))
		writeFile(t, root, "proj1/a.c", "int a;")
		writeFile(t, root, "proj1/b.c", "int b;")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		first, foundFirst := workspace.ResolveProject(root, "proj1/a.c")
		second, foundSecond := workspace.ResolveProject(root, "proj1/b.c")

		// then
		assert.True(t, foundFirst)
		assert.True(t, foundSecond)
		assert.Equal(t, first, second)
	})
}

func TestGitGoWorkspaceRepositoryStageAndCommit(t *testing.T) {
	t.Parallel()

	t.Run("should stage and commit exactly the given files", func(t *testing.T) {
		// given
		root := t.TempDir()
		projDir := filepath.Join(root, "proj1")
		initRepo(t, projDir)
		writeFile(t, root, "proj1/src/a.c", "int a;")
		writeFile(t, root, "proj1/src/b.c", "int b;")
		writeFile(t, root, "proj1/untouched.c", "int u;")
		workspace := gitgo.NewGitGoWorkspaceRepository()
		files := []string{"src/a.c", "src/b.c"}

		// when
		pending, err := workspace.Pending(root, "proj1", files)
		require.NoError(t, err)
		require.ElementsMatch(t, files, pending)

		require.NoError(t, workspace.Stage(root, "proj1", files))
		commitID, commitErr := workspace.Commit(root, "proj1", "[P28] CR100: test fix\n\nbody\n", testAuthor)

		// then
		require.NoError(t, commitErr)
		require.NotEmpty(t, commitID)

		repo, openErr := git.PlainOpen(projDir)
		require.NoError(t, openErr)
		head, headErr := repo.Head()
		require.NoError(t, headErr)
		assert.Equal(t, commitID, head.Hash().String())

		commit, objErr := repo.CommitObject(head.Hash())
		require.NoError(t, objErr)
		assert.Contains(t, commit.Message, "[P28] CR100: test fix")
		assert.Equal(t, "Release Bot", commit.Author.Name)

		// the untouched file must not have been swept into the commit
		pending, err = workspace.Pending(root, "proj1", []string{"src/a.c", "src/b.c", "untouched.c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"untouched.c"}, pending)
	})

	t.Run("should report no pending files after the commit", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "proj1"))
		writeFile(t, root, "proj1/a.c", "int a;")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		require.NoError(t, workspace.Stage(root, "proj1", []string{"a.c"}))
		_, err := workspace.Commit(root, "proj1", "first", testAuthor)
		require.NoError(t, err)

		// when
		pending, pendingErr := workspace.Pending(root, "proj1", []string{"a.c"})

		// then
		require.NoError(t, pendingErr)
		assert.Empty(t, pending)
	})

	t.Run("should stage a deletion", func(t *testing.T) {
		// given
		root := t.TempDir()
		projDir := filepath.Join(root, "proj1")
		initRepo(t, projDir)
		writeFile(t, root, "proj1/a.c", "int a;")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		require.NoError(t, workspace.Stage(root, "proj1", []string{"a.c"}))
		_, err := workspace.Commit(root, "proj1", "first", testAuthor)
		require.NoError(t, err)
		require.NoError(t, os.Remove(filepath.Join(projDir, "a.c")))

		// when
		pending, pendingErr := workspace.Pending(root, "proj1", []string{"a.c"})
		require.NoError(t, pendingErr)
		require.Equal(t, []string{"a.c"}, pending)

		stageErr := workspace.Stage(root, "proj1", []string{"a.c"})
		require.NoError(t, stageErr)
		commitID, commitErr := workspace.Commit(root, "proj1", "remove a.c", testAuthor)

		// then
		require.NoError(t, commitErr)
		assert.NotEmpty(t, commitID)
	})

	t.Run("should fail to stage a file that never existed", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "proj1"))
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		err := workspace.Stage(root, "proj1", []string{"ghost.c"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost.c")
	})

	t.Run("should fail to commit when nothing is staged", func(t *testing.T) {
		// given
		root := t.TempDir()
		initRepo(t, filepath.Join(root, "proj1"))
		writeFile(t, root, "proj1/a.c", "int a;")
		workspace := gitgo.NewGitGoWorkspaceRepository()

		require.NoError(t, workspace.Stage(root, "proj1", []string{"a.c"}))
		_, err := workspace.Commit(root, "proj1", "first", testAuthor)
		require.NoError(t, err)

		// when
		_, commitErr := workspace.Commit(root, "proj1", "empty", testAuthor)

		// then
		require.Error(t, commitErr)
	})

	t.Run("should fail on a directory that is not a repository", func(t *testing.T) {
		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "norepo"), 0o755))
		workspace := gitgo.NewGitGoWorkspaceRepository()

		// when
		_, err := workspace.Pending(root, "norepo", []string{"a.c"})

		// then
		require.Error(t, err)
	})
}
