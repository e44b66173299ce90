package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// EnsureDebhelperController handles the "ensure-debhelper" subcommand.
type EnsureDebhelperController struct {
	command commands.EnsureDebhelper
}

// NewEnsureDebhelperController creates a new EnsureDebhelperController.
func NewEnsureDebhelperController(command commands.EnsureDebhelper) *EnsureDebhelperController {
	return &EnsureDebhelperController{command: command}
}

// GetBind returns the Cobra command metadata for the ensure-debhelper controller.
func (it *EnsureDebhelperController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ensure-debhelper <version> [dir]",
		Short: "Require a minimum debhelper version",
		Long: `Make sure the package build-depends on at least the given debhelper version.

A debhelper-compat build-dependency at or above the version is left alone.
Otherwise the floor of the debhelper build-dependency is raised, adding it
when missing.`,
		Args: cobra.RangeArgs(1, 2),
	}
}

// Execute runs the ensure-debhelper command.
func (it *EnsureDebhelperController) Execute(cmd *cobra.Command, args []string) {
	dir := dirArg(args, 1)
	opts, err := editOptions(cmd, dir)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	changed, err := it.command.Execute(context.Background(), commands.EnsureDebhelperOptions{
		EditOptions:    opts,
		MinimumVersion: args[0],
	})
	if err != nil {
		logger.Errorf("Failed to update debhelper dependency: %v", err)
		return
	}
	if !changed {
		logger.Info("No changes needed")
	}
}
