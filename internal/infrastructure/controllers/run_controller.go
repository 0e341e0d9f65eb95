package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/infrastructure/console"
)

// RunController handles the "run" subcommand (plan and create commits).
type RunController struct {
	command commands.Run
	printer *console.Printer
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run, printer *console.Printer) *RunController {
	return &RunController{command: command, printer: printer}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Group the patch list into commits and apply them",
		Long: `Group the changed files of a patch list by sub-repository and
change request, then create one commit per group.

Each commit title carries the release marker (P-tag) and the change
request id. Use --dry-run to preview every planned commit, including
its full message, without touching any repository.`,
	}
}

// Execute runs the auto-commit flow. Validation problems and per-plan
// failures surface as a non-zero exit code.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	root, _ := cmd.Flags().GetString("root")
	pTag, _ := cmd.Flags().GetString("p-tag")
	patchList, _ := cmd.Flags().GetString("patch-list")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	summary, runErr := it.command.Execute(ctx, settings, commands.RunOptions{
		Root:      root,
		PTag:      pTag,
		PatchList: patchList,
		DryRun:    dryRun,
		Verbose:   verbose,
	})
	if runErr != nil {
		return runErr
	}

	if dryRun {
		it.printer.PlanPreview(summary.Plans())
	}
	it.printer.Summary(summary)

	if summary.HasFailures() {
		return fmt.Errorf(
			"%d of %d commits failed",
			summary.CountByStatus(entities.StatusFailed), len(summary.Results),
		)
	}
	return nil
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", "", "Workspace root containing all sub-repositories (required)")
	cmd.Flags().String("p-tag", "", "Release marker embedded in every commit title, e.g. P28 (required)")
	cmd.Flags().String("patch-list", "", "Path to the patch list (default: patch_list.txt)")
	cmd.Flags().Bool("dry-run", false, "Preview the commit plan without making changes")

	if err := cmd.MarkFlagRequired("root"); err != nil {
		logger.Debugf("failed to mark root flag required: %v", err)
	}
	if err := cmd.MarkFlagRequired("p-tag"); err != nil {
		logger.Debugf("failed to mark p-tag flag required: %v", err)
	}
}

// loadSettings resolves the optional settings file: an explicit --config
// path must exist, otherwise the standard locations are probed and defaults
// apply when nothing is found.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
