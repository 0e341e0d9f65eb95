package repositories

import (
	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// WorkspaceRepository is the version-control surface of a multi-repository
// workspace: resolving which sub-repository owns a file, and staging and
// committing inside one sub-repository.
//
// root is the absolute workspace root. project is a sub-repository root
// relative to it ("" means the workspace root itself is the repository).
// File arguments to Pending/Stage are slash-separated and relative to the
// sub-repository root.
type WorkspaceRepository interface {
	// ResolveProject maps a workspace-relative file path to its owning
	// sub-repository (the nearest ancestor that is a repository boundary).
	// found is false when no ancestor up to and including root qualifies.
	ResolveProject(root, relPath string) (project string, found bool)

	// Pending returns the subset of files that still carry uncommitted
	// changes (index or worktree, including untracked and deleted files).
	Pending(root, project string, files []string) ([]string, error)

	// Stage adds exactly the given files to the sub-repository's index.
	Stage(root, project string, files []string) error

	// Commit creates a commit from the staged set and returns its hash.
	// A nil author falls back to the repository's git configuration.
	Commit(root, project, message string, author *entities.CommitAuthor) (string, error)
}
