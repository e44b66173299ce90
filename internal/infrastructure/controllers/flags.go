package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

const defaultDir = "."

// AddGlobalFlags registers the flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// dirArg returns the package directory passed at position index, or ".".
func dirArg(args []string, index int) string {
	if len(args) > index && args[index] != "" {
		return args[index]
	}
	return defaultDir
}

func loadSettings(cmd *cobra.Command, dir string) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := entities.LoadSettings(configPath, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// editOptions collects the options shared by every editing command.
func editOptions(cmd *cobra.Command, dir string) (commands.EditOptions, error) {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	settings, err := loadSettings(cmd, dir)
	if err != nil {
		return commands.EditOptions{}, err
	}
	return commands.EditOptions{Dir: dir, DryRun: dryRun, Settings: settings}, nil
}
