package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// ErrReformattingNotAllowed is returned when the settings forbid rewriting whole fields.
var ErrReformattingNotAllowed = errors.New("reformatting is not allowed, set allow-reformatting to true")

// WrapAndSort is the interface for the wrap-and-sort command.
type WrapAndSort interface {
	Execute(ctx context.Context, opts WrapAndSortOptions) (bool, error)
}

// WrapAndSortOptions holds the options of the wrap-and-sort command.
type WrapAndSortOptions struct {
	EditOptions
}

// WrapAndSortCommand sorts and wraps the relation fields of a package.
type WrapAndSortCommand struct {
	editors   repositories.EditorRepository
	changelog repositories.ChangelogRepository
}

// NewWrapAndSortCommand creates a new WrapAndSortCommand.
func NewWrapAndSortCommand(
	editors repositories.EditorRepository,
	changelog repositories.ChangelogRepository,
) *WrapAndSortCommand {
	return &WrapAndSortCommand{editors: editors, changelog: changelog}
}

// Execute normalises the relation fields and reports whether anything changed.
func (it *WrapAndSortCommand) Execute(_ context.Context, opts WrapAndSortOptions) (bool, error) {
	if !opts.settings().AllowsReformatting() {
		return false, ErrReformattingNotAllowed
	}

	editor, err := it.editors.Open(opts.Dir)
	if err != nil {
		return false, fmt.Errorf("failed to open control file: %w", err)
	}
	if !editor.WrapAndSort() {
		return false, nil
	}
	return commitChange(editor, it.changelog, opts.EditOptions, "Wrap and sort relation fields.")
}
