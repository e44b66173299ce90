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

// CompatController handles the "compat" subcommand.
type CompatController struct {
	command commands.Compat
}

// NewCompatController creates a new CompatController.
func NewCompatController(command commands.Compat) *CompatController {
	return &CompatController{command: command}
}

// GetBind returns the Cobra command metadata for the compat controller.
func (it *CompatController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compat [dir]",
		Short: "Show the debhelper compat level",
		Long: `Print the effective debhelper compat level of a package, the dh sequences
it enables, and the highest compat level usable for a release.

The compat level is read from X-DH-Compat, then the debhelper-compat
build-dependency, then debian/compat. Without a control file only
debian/compat is read. The release defaults to the compat-release setting.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds compat-specific flags to the given command.
func (it *CompatController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("release", "", "Release to compute the maximum compat level for")
}

// Execute runs the compat command.
func (it *CompatController) Execute(cmd *cobra.Command, args []string) {
	dir := dirArg(args, 0)
	release, _ := cmd.Flags().GetString("release")
	if release == "" {
		settings, err := loadSettings(cmd, dir)
		if err != nil {
			logger.Errorf("%v", err)
			return
		}
		release = settings.CompatRelease
	}

	report, err := it.command.Execute(context.Background(), commands.CompatOptions{Dir: dir, Release: release})
	if err != nil {
		logger.Errorf("Failed to resolve compat level: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	if report.HasLevel {
		_, _ = fmt.Fprintf(out, "Compat level: %d\n", report.Level)
	} else {
		_, _ = fmt.Fprintln(out, "Compat level: none")
	}
	_, _ = fmt.Fprintf(out, "Sequences: %s\n", strings.Join(report.Sequences, ", "))
	if report.Release != "" {
		_, _ = fmt.Fprintf(out, "Maximum compat level for %s: %d\n", report.Release, report.MaximumLevel)
		if report.HighestStable > 0 {
			_, _ = fmt.Fprintf(out, "Highest stable compat level: %d\n", report.HighestStable)
		}
	}
}
