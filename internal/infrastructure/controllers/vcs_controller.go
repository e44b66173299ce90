package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// VcsController handles the "vcs" subcommand.
type VcsController struct {
	command commands.Vcs
}

// NewVcsController creates a new VcsController.
func NewVcsController(command commands.Vcs) *VcsController {
	return &VcsController{command: command}
}

// GetBind returns the Cobra command metadata for the vcs controller.
func (it *VcsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "vcs <type> [url] [dir]",
		Short: "Get or set a Vcs-* field",
		Long: `Print the URL of a VCS type (Git, Browser, Svn, ...) or set it when a URL
is given. A second argument is taken as the URL when it contains "://".

With --from-remote the Vcs-Git and Vcs-Browser fields are derived from the
origin remote of the working tree and the only argument is the directory.
Existing values are only overwritten with --force.`,
		Args: cobra.MaximumNArgs(3),
	}
}

// AddFlags adds vcs-specific flags to the given command.
func (it *VcsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("from-remote", false, "Derive Vcs-Git and Vcs-Browser from the origin remote")
	cmd.Flags().Bool("force", false, "Overwrite existing values")
}

// Execute runs the vcs command.
func (it *VcsController) Execute(cmd *cobra.Command, args []string) {
	fromRemote, _ := cmd.Flags().GetBool("from-remote")
	force, _ := cmd.Flags().GetBool("force")

	vcsOpts := commands.VcsOptions{FromRemote: fromRemote, Force: force}
	dir := defaultDir
	switch {
	case fromRemote:
		dir = dirArg(args, 0)
	case len(args) == 0:
		logger.Error("A VCS type is required unless --from-remote is given")
		return
	default:
		vcsOpts.Type = args[0]
		rest := args[1:]
		if len(rest) > 0 && strings.Contains(rest[0], "://") {
			vcsOpts.URL = rest[0]
			rest = rest[1:]
		}
		dir = dirArg(rest, 0)
	}

	opts, err := editOptions(cmd, dir)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}
	vcsOpts.EditOptions = opts

	result, err := it.command.Execute(context.Background(), vcsOpts)
	if err != nil {
		logger.Errorf("VCS update failed: %v", err)
		return
	}
	if vcsOpts.URL == "" && !fromRemote {
		for _, vcs := range result.URLs {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), vcs.URL)
		}
		return
	}
	if !result.Changed {
		logger.Info("No changes needed")
	}
}
