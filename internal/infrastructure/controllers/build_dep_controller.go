package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// BuildDepController handles the "build-dep" subcommand.
type BuildDepController struct {
	command commands.BuildDep
}

// NewBuildDepController creates a new BuildDepController.
func NewBuildDepController(command commands.BuildDep) *BuildDepController {
	return &BuildDepController{command: command}
}

// GetBind returns the Cobra command metadata for the build-dep controller.
func (it *BuildDepController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "build-dep <relation> [dir]",
		Short: "Add a build-dependency",
		Long: `Add a relation such as "libssl-dev (>= 3)" or "a | b" to Build-Depends,
unless an identical one is already there.`,
		Args: cobra.RangeArgs(1, 2),
	}
}

// Execute runs the build-dep command.
func (it *BuildDepController) Execute(cmd *cobra.Command, args []string) {
	opts, err := editOptions(cmd, dirArg(args, 1))
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	changed, err := it.command.Execute(context.Background(), commands.BuildDepOptions{
		EditOptions: opts,
		Relation:    args[0],
	})
	if err != nil {
		logger.Errorf("Failed to add build dependency: %v", err)
		return
	}
	if !changed {
		logger.Info("No changes needed")
	}
}
