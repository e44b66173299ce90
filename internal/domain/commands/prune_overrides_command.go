package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// PruneOverrides is the interface for the prune-overrides command.
type PruneOverrides interface {
	Execute(ctx context.Context, opts PruneOverridesOptions) (int, error)
}

// PruneOverridesOptions holds the options of the prune-overrides command.
type PruneOverridesOptions struct {
	EditOptions
}

// PruneOverridesCommand removes override rules that only re-run the command
// they override.
type PruneOverridesCommand struct {
	rules     repositories.RulesRepository
	changelog repositories.ChangelogRepository
}

// NewPruneOverridesCommand creates a new PruneOverridesCommand.
func NewPruneOverridesCommand(
	rules repositories.RulesRepository,
	changelog repositories.ChangelogRepository,
) *PruneOverridesCommand {
	return &PruneOverridesCommand{rules: rules, changelog: changelog}
}

// Execute prunes debian/rules and returns the number of rules removed.
// A CDBS rules file is left alone.
func (it *PruneOverridesCommand) Execute(_ context.Context, opts PruneOverridesOptions) (int, error) {
	editor, err := it.rules.Open(opts.Dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open rules file: %w", err)
	}
	if editor.UsesCdbs() {
		return 0, ErrUsesCdbs
	}

	count := editor.DiscardPointlessOverrides()
	if count == 0 {
		return 0, nil
	}

	summary := "debian/rules: Drop pointless override target."
	if count > 1 {
		summary = fmt.Sprintf("debian/rules: Drop %d pointless override targets.", count)
	}
	if _, err = commitChange(editor, it.changelog, opts.EditOptions, summary); err != nil {
		return 0, err
	}
	return count, nil
}
