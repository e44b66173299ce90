package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// DhWithController handles the "dh-with" subcommand.
type DhWithController struct {
	command commands.DhWith
}

// NewDhWithController creates a new DhWithController.
func NewDhWithController(command commands.DhWith) *DhWithController {
	return &DhWithController{command: command}
}

// GetBind returns the Cobra command metadata for the dh-with controller.
func (it *DhWithController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dh-with add|drop <sequence> [dir]",
		Short: "Add or drop a dh --with sequence",
		Long: `Add a sequence to, or drop it from, the --with list of every dh invocation
in debian/rules. Rules files using CDBS are left alone.`,
		Args: cobra.RangeArgs(2, 3),
	}
}

// Execute runs the dh-with command.
func (it *DhWithController) Execute(cmd *cobra.Command, args []string) {
	opts, err := editOptions(cmd, dirArg(args, 2))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	count, err := it.command.Execute(context.Background(), commands.DhWithOptions{
		EditOptions: opts,
		Action:      args[0],
		Value:       args[1],
	})
	if err != nil {
		logger.Errorf("Failed to update debian/rules: %v", err)
		return
	}
	logger.Infof("Updated %d dh invocation(s)", count)
}
