package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// WrapAndSortController handles the "wrap-and-sort" subcommand.
type WrapAndSortController struct {
	command commands.WrapAndSort
}

// NewWrapAndSortController creates a new WrapAndSortController.
func NewWrapAndSortController(command commands.WrapAndSort) *WrapAndSortController {
	return &WrapAndSortController{command: command}
}

// GetBind returns the Cobra command metadata for the wrap-and-sort controller.
func (it *WrapAndSortController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "wrap-and-sort [dir]",
		Short: "Sort and wrap relation fields",
		Long: `Sort the relation fields of debian/control by package name, drop duplicate
entries and wrap fields longer than 79 columns one entry per line.
debcargo packages are left alone. Requires allow-reformatting in the config.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute runs the wrap-and-sort command.
func (it *WrapAndSortController) Execute(cmd *cobra.Command, args []string) {
	opts, err := editOptions(cmd, dirArg(args, 0))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	changed, err := it.command.Execute(context.Background(), commands.WrapAndSortOptions{EditOptions: opts})
	if err != nil {
		logger.Errorf("Failed to wrap and sort: %v", err)
		return
	}
	if !changed {
		logger.Info("No changes needed")
	}
}
