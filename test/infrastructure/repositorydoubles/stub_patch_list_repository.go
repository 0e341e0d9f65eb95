//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs) for the
// domain repository interfaces. These are hand-crafted implementations — no
// mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// StubPatchListRepository implements repositories.PatchListRepository with a
// canned result.
type StubPatchListRepository struct {
	List *entities.PatchList
	Err  error

	// spy: paths that were requested
	LoadedPaths []string
}

var _ repositories.PatchListRepository = (*StubPatchListRepository)(nil)

func (s *StubPatchListRepository) Load(path string) (*entities.PatchList, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.List, nil
}
