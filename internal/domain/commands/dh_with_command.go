package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// Actions accepted by the dh-with and dh-argument commands.
const (
	ActionAdd     = "add"
	ActionDrop    = "drop"
	ActionReplace = "replace"
)

var (
	// ErrUsesCdbs is returned when debian/rules is driven by CDBS rather than dh.
	ErrUsesCdbs = errors.New("debian/rules uses CDBS, not editing")
	// ErrUnknownAction is returned for an action the command does not support.
	ErrUnknownAction = errors.New("unknown action")
)

// DhWith is the interface for the dh-with command.
type DhWith interface {
	Execute(ctx context.Context, opts DhWithOptions) (int, error)
}

// DhWithOptions holds the options of the dh-with command.
type DhWithOptions struct {
	EditOptions
	Action string
	Value  string
}

// DhWithCommand edits the --with sequences of the dh invocations in debian/rules.
type DhWithCommand struct {
	rules     repositories.RulesRepository
	changelog repositories.ChangelogRepository
}

// NewDhWithCommand creates a new DhWithCommand.
func NewDhWithCommand(
	rules repositories.RulesRepository,
	changelog repositories.ChangelogRepository,
) *DhWithCommand {
	return &DhWithCommand{rules: rules, changelog: changelog}
}

// Execute adds or drops the sequence on every dh line and returns the number
// of lines changed.
func (it *DhWithCommand) Execute(_ context.Context, opts DhWithOptions) (int, error) {
	var update func(string) string
	var summary string
	switch opts.Action {
	case ActionAdd:
		update = func(line string) string { return entities.DhAddWith(line, opts.Value) }
		summary = fmt.Sprintf("debian/rules: Add --with=%s to dh invocation.", opts.Value)
	case ActionDrop:
		update = func(line string) string { return entities.DhDropWith(line, opts.Value) }
		summary = fmt.Sprintf("debian/rules: Drop %s from dh --with.", opts.Value)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, opts.Action)
	}
	return updateDhLines(it.rules, it.changelog, opts.EditOptions, update, summary)
}

// updateDhLines applies update to every dh invocation of debian/rules.
func updateDhLines(
	rules repositories.RulesRepository,
	changelog repositories.ChangelogRepository,
	opts EditOptions,
	update func(string) string,
	summary string,
) (int, error) {
	editor, err := rules.Open(opts.Dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open rules file: %w", err)
	}
	if editor.UsesCdbs() {
		return 0, ErrUsesCdbs
	}

	count := editor.UpdateRecipeLines(func(line string) string {
		if !isDhInvocation(line) {
			return line
		}
		return update(line)
	})
	if count == 0 {
		logger.Info("No dh invocation needed changes")
		return 0, nil
	}

	if _, err = commitChange(editor, changelog, opts, summary); err != nil {
		return 0, err
	}
	return count, nil
}

// isDhInvocation reports whether a recipe line runs the dh sequencer.
func isDhInvocation(line string) bool {
	command := strings.TrimLeft(line, " \t@-+")
	return command == "dh" || strings.HasPrefix(command, "dh ") || strings.HasPrefix(command, "dh\t")
}
