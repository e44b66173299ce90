package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// MaintainerController handles the "maintainer" subcommand.
type MaintainerController struct {
	command commands.Maintainer
}

// NewMaintainerController creates a new MaintainerController.
func NewMaintainerController(command commands.Maintainer) *MaintainerController {
	return &MaintainerController{command: command}
}

// GetBind returns the Cobra command metadata for the maintainer controller.
func (it *MaintainerController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "maintainer <maintainer> [dir]",
		Short: "Set the maintainer and uploaders",
		Long: `Set the Maintainer of a package. Uploaders are replaced when --uploader is
given and removed with --clear-uploaders.`,
		Args: cobra.RangeArgs(1, 2),
	}
}

// AddFlags adds maintainer-specific flags to the given command.
func (it *MaintainerController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("uploader", nil, "Uploader to set (repeatable)")
	cmd.Flags().Bool("clear-uploaders", false, "Remove the Uploaders field")
}

// Execute runs the maintainer command.
func (it *MaintainerController) Execute(cmd *cobra.Command, args []string) {
	opts, err := editOptions(cmd, dirArg(args, 1))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}
	uploaders, _ := cmd.Flags().GetStringArray("uploader")
	clearUploaders, _ := cmd.Flags().GetBool("clear-uploaders")

	changed, err := it.command.Execute(context.Background(), commands.MaintainerOptions{
		EditOptions:  opts,
		Maintainer:   args[0],
		Uploaders:    uploaders,
		SetUploaders: clearUploaders || len(uploaders) > 0,
	})
	if err != nil {
		logger.Errorf("Failed to set maintainer: %v", err)
		return
	}
	if !changed {
		logger.Info("No changes needed")
	}
}
