package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// List is the interface for the list command (inspect the patch list).
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, path string) (*entities.PatchList, error)
}

// ListCommand loads the patch list so its change requests can be inspected
// without touching any repository.
type ListCommand struct {
	patchLists repositories.PatchListRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(patchLists repositories.PatchListRepository) *ListCommand {
	return &ListCommand{patchLists: patchLists}
}

// Execute parses the patch list at path (or the settings default) and
// returns it.
func (it *ListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	path string,
) (*entities.PatchList, error) {
	if path == "" {
		path = settings.PatchList
	}

	list, err := it.patchLists.Load(path)
	if err != nil {
		return nil, fmt.Errorf("invalid patch list: %w", err)
	}
	return list, nil
}
