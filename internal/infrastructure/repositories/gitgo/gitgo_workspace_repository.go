// Package gitgo implements the workspace version-control surface on top of
// go-git, so no git binary is required at runtime.
package gitgo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// GitGoWorkspaceRepository implements repositories.WorkspaceRepository for a
// workspace laid out as a tree of independent git repositories (repo/manifest
// style checkouts).
type GitGoWorkspaceRepository struct {
	// projectCache maps an absolute directory to the repository root that
	// owns it. Runs are single-threaded (commits are applied strictly in
	// plan order), so plain map access is fine.
	projectCache map[string]cachedProject
}

type cachedProject struct {
	root  string
	found bool
}

var _ repositories.WorkspaceRepository = (*GitGoWorkspaceRepository)(nil)

// NewGitGoWorkspaceRepository creates a new go-git backed workspace.
func NewGitGoWorkspaceRepository() *GitGoWorkspaceRepository {
	return &GitGoWorkspaceRepository{
		projectCache: make(map[string]cachedProject),
	}
}

// ResolveProject walks up from the file's directory to the nearest ancestor
// containing a .git entry (directory, or file for linked worktrees and
// submodules), never escaping the workspace root. Directories visited on the
// way are cached for the next lookups.
func (it *GitGoWorkspaceRepository) ResolveProject(root, relPath string) (string, bool) {
	abs := filepath.Join(root, filepath.FromSlash(relPath))
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", false
	}

	var visited []string
	dir := filepath.Dir(abs)
	result := cachedProject{}

	for {
		if cached, ok := it.projectCache[dir]; ok {
			result = cached
			break
		}
		visited = append(visited, dir)

		if isRepositoryRoot(dir) {
			result = cachedProject{root: dir, found: true}
			break
		}
		if dir == root {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, v := range visited {
		it.projectCache[v] = result
	}

	if !result.found {
		return "", false
	}

	project, err := filepath.Rel(root, result.root)
	if err != nil || project == "." {
		return "", result.found
	}
	return filepath.ToSlash(project), true
}

// Pending returns the given files that still have uncommitted changes in the
// sub-repository, according to git status.
func (it *GitGoWorkspaceRepository) Pending(root, project string, files []string) ([]string, error) {
	worktree, err := openWorktree(root, project)
	if err != nil {
		return nil, err
	}

	status, statusErr := worktree.Status()
	if statusErr != nil {
		return nil, fmt.Errorf("failed to read status of %q: %w", projectDir(root, project), statusErr)
	}

	var pending []string
	for _, f := range files {
		if fs, ok := status[f]; ok {
			if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
				pending = append(pending, f)
			}
		}
	}
	return pending, nil
}

// Stage adds exactly the given files to the sub-repository's index. A file
// absent from the working tree is only acceptable when its deletion is what
// is being staged.
func (it *GitGoWorkspaceRepository) Stage(root, project string, files []string) error {
	worktree, err := openWorktree(root, project)
	if err != nil {
		return err
	}

	status, statusErr := worktree.Status()
	if statusErr != nil {
		return fmt.Errorf("failed to read status of %q: %w", projectDir(root, project), statusErr)
	}

	for _, f := range files {
		if _, statErr := os.Stat(filepath.Join(projectDir(root, project), filepath.FromSlash(f))); statErr != nil {
			fs, known := status[f]
			if !known || fs.Worktree != git.Deleted {
				return fmt.Errorf("file not found in working tree: %s", f)
			}
		}
		if _, addErr := worktree.Add(f); addErr != nil {
			return fmt.Errorf("failed to stage %s: %w", f, addErr)
		}
	}
	return nil
}

// Commit creates a commit from the staged set and returns its hash.
func (it *GitGoWorkspaceRepository) Commit(
	root, project, message string,
	author *entities.CommitAuthor,
) (string, error) {
	worktree, err := openWorktree(root, project)
	if err != nil {
		return "", err
	}

	opts := &git.CommitOptions{}
	if author != nil {
		opts.Author = &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		}
	}

	hash, commitErr := worktree.Commit(message, opts)
	if commitErr != nil {
		return "", fmt.Errorf("failed to commit in %q: %w", projectDir(root, project), commitErr)
	}
	return hash.String(), nil
}

func openWorktree(root, project string) (*git.Worktree, error) {
	dir := projectDir(root, project)

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", dir, err)
	}

	worktree, wtErr := repo.Worktree()
	if wtErr != nil {
		return nil, fmt.Errorf("repository %q has no working tree: %w", dir, wtErr)
	}
	return worktree, nil
}

func projectDir(root, project string) string {
	if project == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(project))
}

// isRepositoryRoot reports whether dir contains a .git entry.
func isRepositoryRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
