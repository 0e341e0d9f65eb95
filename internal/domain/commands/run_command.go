package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// Run is the interface for the run command (plan and execute commits).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) (*entities.RunSummary, error)
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Root      string // workspace root containing all sub-repositories
	PTag      string // release marker embedded in every commit title/body
	PatchList string // patch-list path; empty falls back to the settings default
	DryRun    bool
	Verbose   bool
}

// RunCommand turns a patch list into per-(project, CR) commits: load the
// manifest, resolve the owning sub-repository of every file, build the
// deterministic commit plans, then apply them in order. Validation problems
// abort before any mutation; a failing plan never blocks the remaining ones.
type RunCommand struct {
	patchLists repositories.PatchListRepository
	workspace  repositories.WorkspaceRepository
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	patchLists repositories.PatchListRepository,
	workspace repositories.WorkspaceRepository,
) *RunCommand {
	return &RunCommand{
		patchLists: patchLists,
		workspace:  workspace,
	}
}

// Execute performs one full run and returns the per-plan summary. The
// returned error is non-nil only for whole-run problems (bad workspace,
// invalid patch list, unresolved paths); per-plan failures are reported
// through the summary instead.
func (it *RunCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts RunOptions,
) (*entities.RunSummary, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace root %q: %w", opts.Root, err)
	}
	info, statErr := os.Stat(root)
	if statErr != nil {
		return nil, fmt.Errorf("workspace root is not accessible: %w", statErr)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %q is not a directory", root)
	}

	patchPath := opts.PatchList
	if patchPath == "" {
		patchPath = settings.PatchList
	}

	list, loadErr := it.patchLists.Load(patchPath)
	if loadErr != nil {
		return nil, fmt.Errorf("invalid patch list: %w", loadErr)
	}

	logger.Infof(
		"Loaded %d changed files across %d change requests from %s",
		len(list.Entries), len(list.Requests), patchPath,
	)

	resolved, resolveErr := it.resolveAll(root, list.Entries)
	if resolveErr != nil {
		return nil, resolveErr
	}

	plans := entities.BuildCommitPlans(resolved, list.Requests, opts.PTag)
	if len(plans) == 0 {
		logger.Info("Nothing to commit.")
		return &entities.RunSummary{}, nil
	}

	logger.Infof("Planned %d commits across %d projects", len(plans), countProjects(plans))

	summary := &entities.RunSummary{}
	for _, plan := range plans {
		if opts.DryRun {
			summary.Results = append(summary.Results, entities.ExecutionResult{
				Plan:   plan,
				Status: entities.StatusSkipped,
				Reason: "dry-run",
			})
			continue
		}
		summary.Results = append(summary.Results, it.apply(root, plan, settings.Author))
	}

	return summary, nil
}

// resolveAll maps every entry to its owning sub-repository. Unresolvable
// paths are collected so the abort report names all of them at once.
func (it *RunCommand) resolveAll(
	root string,
	entries []entities.PatchEntry,
) ([]entities.ResolvedEntry, error) {
	var resolved []entities.ResolvedEntry
	var unresolved []string

	for _, entry := range entries {
		project, found := it.workspace.ResolveProject(root, entry.FilePath)
		if !found {
			unresolved = append(unresolved, entry.FilePath)
			continue
		}
		logger.Debugf("Resolved %s -> %s", entry.FilePath, displayProject(project))
		resolved = append(resolved, entities.ResolvedEntry{
			FilePath: entry.FilePath,
			CRID:     entry.CRID,
			Project:  project,
		})
	}

	if len(unresolved) > 0 {
		return nil, &entities.UnresolvedPathError{Paths: unresolved}
	}
	return resolved, nil
}

// apply stages and commits one plan. Any failure is captured in the result
// so the remaining plans still get their chance.
func (it *RunCommand) apply(
	root string,
	plan entities.CommitPlan,
	author *entities.CommitAuthor,
) entities.ExecutionResult {
	files := plan.ProjectFiles()

	pending, err := it.workspace.Pending(root, plan.Project, files)
	if err != nil {
		return failedResult(plan, fmt.Errorf("failed to read status: %w", err))
	}
	if len(pending) == 0 {
		logger.Infof(
			"[%s] %s: no pending changes, skipping",
			displayProject(plan.Project), plan.CRID,
		)
		return entities.ExecutionResult{
			Plan:   plan,
			Status: entities.StatusSkipped,
			Reason: "no pending changes",
		}
	}

	if stageErr := it.workspace.Stage(root, plan.Project, files); stageErr != nil {
		return failedResult(plan, fmt.Errorf("failed to stage files: %w", stageErr))
	}

	commitID, commitErr := it.workspace.Commit(root, plan.Project, plan.Message(), author)
	if commitErr != nil {
		return failedResult(plan, fmt.Errorf("failed to commit: %w", commitErr))
	}

	logger.Infof(
		"[%s] Committed %.10s: %s",
		displayProject(plan.Project), commitID, plan.Title,
	)
	return entities.ExecutionResult{
		Plan:     plan,
		Status:   entities.StatusCommitted,
		CommitID: commitID,
	}
}

func failedResult(plan entities.CommitPlan, err error) entities.ExecutionResult {
	logger.Errorf("[%s] %s: %v", displayProject(plan.Project), plan.CRID, err)
	return entities.ExecutionResult{
		Plan:   plan,
		Status: entities.StatusFailed,
		Err:    err,
	}
}

func countProjects(plans []entities.CommitPlan) int {
	seen := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		seen[p.Project] = struct{}{}
	}
	return len(seen)
}

func displayProject(project string) string {
	if project == "" {
		return "(root)"
	}
	return project
}
