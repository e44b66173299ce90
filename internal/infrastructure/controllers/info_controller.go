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

// InfoController handles the "info" subcommand.
type InfoController struct {
	command commands.Info
}

// NewInfoController creates a new InfoController.
func NewInfoController(command commands.Info) *InfoController {
	return &InfoController{command: command}
}

// GetBind returns the Cobra command metadata for the info controller.
func (it *InfoController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "info [dir]",
		Short: "Show package metadata",
		Long: `Print the backend, source name, binary packages, compat level, dh sequences
and VCS URLs of a package.

Each binary package is listed with its summary and the virtual packages it
provides. The compat level is read from the control document first and from
debian/compat only when the document declares none.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// Execute runs the info command.
func (it *InfoController) Execute(cmd *cobra.Command, args []string) {
	info, err := it.command.Execute(context.Background(), commands.InfoOptions{Dir: dirArg(args, 0)})
	if err != nil {
		logger.Errorf("Failed to read package: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Backend: %s (%s)\n", info.Backend, info.Path)
	_, _ = fmt.Fprintf(out, "Source: %s\n", info.Source)
	_, _ = fmt.Fprintln(out, "Binaries:")
	for _, binary := range info.Binaries {
		line := "  " + binary.Name
		if binary.Summary != "" {
			line += ": " + binary.Summary
		}
		if len(binary.Provides) > 0 {
			line += " (provides " + strings.Join(binary.Provides, ", ") + ")"
		}
		_, _ = fmt.Fprintln(out, line)
	}
	if info.HasCompat {
		_, _ = fmt.Fprintf(out, "Compat level: %d\n", info.CompatLevel)
	} else {
		_, _ = fmt.Fprintln(out, "Compat level: none")
	}
	_, _ = fmt.Fprintf(out, "Sequences: %s\n", strings.Join(info.Sequences, ", "))
	for _, vcs := range info.Vcs {
		_, _ = fmt.Fprintf(out, "%s: %s\n", entities.VcsField(vcs.Type), vcs.URL)
	}
	if info.UsesCdbs {
		_, _ = fmt.Fprintln(out, "Build system: cdbs")
	}
}
