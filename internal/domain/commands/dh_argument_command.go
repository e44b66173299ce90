package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// DhArgument is the interface for the dh-argument command.
type DhArgument interface {
	Execute(ctx context.Context, opts DhArgumentOptions) (int, error)
}

// DhArgumentOptions holds the options of the dh-argument command.
// Replacement is only used by the replace action.
type DhArgumentOptions struct {
	EditOptions
	Action      string
	Argument    string
	Replacement string
}

// DhArgumentCommand drops or replaces arguments of the dh invocations in debian/rules.
type DhArgumentCommand struct {
	rules     repositories.RulesRepository
	changelog repositories.ChangelogRepository
}

// NewDhArgumentCommand creates a new DhArgumentCommand.
func NewDhArgumentCommand(
	rules repositories.RulesRepository,
	changelog repositories.ChangelogRepository,
) *DhArgumentCommand {
	return &DhArgumentCommand{rules: rules, changelog: changelog}
}

// Execute applies the action on every dh line and returns the number of
// lines changed.
func (it *DhArgumentCommand) Execute(_ context.Context, opts DhArgumentOptions) (int, error) {
	var update func(string) string
	var summary string
	switch opts.Action {
	case ActionDrop:
		update = func(line string) string { return entities.DhDropArgument(line, opts.Argument) }
		summary = fmt.Sprintf("debian/rules: Drop %s argument from dh.", opts.Argument)
	case ActionReplace:
		update = func(line string) string {
			return entities.DhReplaceArgument(line, opts.Argument, opts.Replacement)
		}
		summary = fmt.Sprintf("debian/rules: Replace %s with %s in dh invocation.", opts.Argument, opts.Replacement)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, opts.Action)
	}
	return updateDhLines(it.rules, it.changelog, opts.EditOptions, update, summary)
}
