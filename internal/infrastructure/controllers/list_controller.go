package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/infrastructure/console"
)

// ListController handles the "list" subcommand (inspect the patch list).
type ListController struct {
	command commands.List
	printer *console.Printer
}

// NewListController creates a new ListController.
func NewListController(command commands.List, printer *console.Printer) *ListController {
	return &ListController{command: command, printer: printer}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "Parse the patch list and show its change requests",
		Long: `Parse the patch list and print every change request with its
type, severity, summary, and file count. No repository is touched.`,
	}
}

// Execute parses and prints the patch list.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	patchList, _ := cmd.Flags().GetString("patch-list")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	list, listErr := it.command.Execute(ctx, settings, patchList)
	if listErr != nil {
		return listErr
	}

	it.printer.PatchList(list)
	return nil
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("patch-list", "", "Path to the patch list (default: patch_list.txt)")
}
