package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/autocommit/internal/domain/repositories"
	"github.com/rios0rios0/autocommit/internal/infrastructure/repositories/gitgo"
	"github.com/rios0rios0/autocommit/internal/infrastructure/repositories/patchlist"
)

// RegisterProviders registers all infrastructure repository providers with
// the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(patchlist.NewBlockPatchListRepository); err != nil {
		return err
	}
	if err := container.Provide(gitgo.NewGitGoWorkspaceRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *patchlist.BlockPatchListRepository) repositories.PatchListRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitgo.GitGoWorkspaceRepository) repositories.WorkspaceRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
