package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// PruneOverridesController handles the "prune-overrides" subcommand.
type PruneOverridesController struct {
	command commands.PruneOverrides
}

// NewPruneOverridesController creates a new PruneOverridesController.
func NewPruneOverridesController(command commands.PruneOverrides) *PruneOverridesController {
	return &PruneOverridesController{command: command}
}

// GetBind returns the Cobra command metadata for the prune-overrides controller.
func (it *PruneOverridesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "prune-overrides [dir]",
		Short: "Remove pointless override targets",
		Long: `Remove override_* rules from debian/rules that only run the command they
override, and drop them from .PHONY. Prints the number of rules removed.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute runs the prune-overrides command.
func (it *PruneOverridesController) Execute(cmd *cobra.Command, args []string) {
	opts, err := editOptions(cmd, dirArg(args, 0))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	count, err := it.command.Execute(context.Background(), commands.PruneOverridesOptions{EditOptions: opts})
	if err != nil {
		logger.Errorf("Failed to prune debian/rules: %v", err)
		return
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), count)
}
