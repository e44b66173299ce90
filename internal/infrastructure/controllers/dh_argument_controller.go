package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// DhArgumentController handles the "dh-argument" subcommand.
type DhArgumentController struct {
	command commands.DhArgument
}

// NewDhArgumentController creates a new DhArgumentController.
func NewDhArgumentController(command commands.DhArgument) *DhArgumentController {
	return &DhArgumentController{command: command}
}

// GetBind returns the Cobra command metadata for the dh-argument controller.
func (it *DhArgumentController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dh-argument drop <arg> [dir] | replace <old> <new> [dir]",
		Short: "Drop or replace a dh argument",
		Long: `Drop a whitespace-delimited argument from every dh invocation in
debian/rules, or replace it with another one. Partial matches are never
touched. Rules files using CDBS are left alone.`,
		Args: cobra.RangeArgs(2, 4),
	}
}

// Execute runs the dh-argument command.
func (it *DhArgumentController) Execute(cmd *cobra.Command, args []string) {
	argOpts := commands.DhArgumentOptions{Action: args[0], Argument: args[1]}
	dirIndex := 2
	if args[0] == commands.ActionReplace {
		if len(args) < 3 {
			logger.Error("replace needs both the old and the new argument")
			return
		}
		argOpts.Replacement = args[2]
		dirIndex = 3
	}

	opts, err := editOptions(cmd, dirArg(args, dirIndex))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}
	argOpts.EditOptions = opts

	count, err := it.command.Execute(context.Background(), argOpts)
	if err != nil {
		logger.Errorf("Failed to update debian/rules: %v", err)
		return
	}
	logger.Infof("Updated %d dh invocation(s)", count)
}
