//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// CommitCall records one Commit invocation received by the spy.
type CommitCall struct {
	Project string
	Message string
	Author  *entities.CommitAuthor
}

// SpyWorkspaceRepository implements repositories.WorkspaceRepository as a
// configurable spy. Configure the response fields for the methods your test
// exercises, then inspect the call-tracking fields to verify behavior.
type SpyWorkspaceRepository struct {
	// --- ResolveProject ---
	// Projects maps workspace-relative file paths to their owning project
	// ("" = the workspace root repository). Paths absent from the map are
	// reported as unresolved.
	Projects map[string]string

	// --- Pending ---
	AllPending       bool                // report every asked file as pending
	PendingByProject map[string][]string // used when AllPending is false
	PendingErr       map[string]error

	// --- Stage / Commit ---
	StageErr  map[string]error
	CommitErr map[string]error

	// spy: calls received
	ResolvedPaths []string
	StagedFiles   map[string][]string
	Commits       []CommitCall

	commitCount int
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (s *SpyWorkspaceRepository) ResolveProject(_, relPath string) (string, bool) {
	s.ResolvedPaths = append(s.ResolvedPaths, relPath)
	project, ok := s.Projects[relPath]
	return project, ok
}

func (s *SpyWorkspaceRepository) Pending(_, project string, files []string) ([]string, error) {
	if err := s.PendingErr[project]; err != nil {
		return nil, err
	}
	if s.AllPending {
		return files, nil
	}
	return s.PendingByProject[project], nil
}

func (s *SpyWorkspaceRepository) Stage(_, project string, files []string) error {
	if err := s.StageErr[project]; err != nil {
		return err
	}
	if s.StagedFiles == nil {
		s.StagedFiles = make(map[string][]string)
	}
	s.StagedFiles[project] = append(s.StagedFiles[project], files...)
	return nil
}

func (s *SpyWorkspaceRepository) Commit(
	_, project, message string,
	author *entities.CommitAuthor,
) (string, error) {
	if err := s.CommitErr[project]; err != nil {
		return "", err
	}
	s.commitCount++
	s.Commits = append(s.Commits, CommitCall{
		Project: project,
		Message: message,
		Author:  author,
	})
	return fmt.Sprintf("%040x", s.commitCount), nil
}
