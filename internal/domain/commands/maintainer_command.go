package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// Maintainer is the interface for the maintainer command.
type Maintainer interface {
	Execute(ctx context.Context, opts MaintainerOptions) (bool, error)
}

// MaintainerOptions holds the options of the maintainer command. Uploaders
// are only touched when SetUploaders is true, so an empty list clears them.
type MaintainerOptions struct {
	EditOptions
	Maintainer   string
	Uploaders    []string
	SetUploaders bool
}

// MaintainerCommand sets the maintainer and uploaders of a package.
type MaintainerCommand struct {
	editors   repositories.EditorRepository
	changelog repositories.ChangelogRepository
}

// NewMaintainerCommand creates a new MaintainerCommand.
func NewMaintainerCommand(
	editors repositories.EditorRepository,
	changelog repositories.ChangelogRepository,
) *MaintainerCommand {
	return &MaintainerCommand{editors: editors, changelog: changelog}
}

// Execute updates the maintainer (and uploaders) and reports whether the
// document changed.
func (it *MaintainerCommand) Execute(_ context.Context, opts MaintainerOptions) (bool, error) {
	editor, source, err := openSource(it.editors, opts.Dir)
	if err != nil {
		return false, err
	}

	if err = source.SetMaintainer(opts.Maintainer); err != nil {
		return false, fmt.Errorf("failed to set maintainer: %w", err)
	}
	summary := fmt.Sprintf("Set maintainer to %s.", opts.Maintainer)
	if opts.SetUploaders {
		if err = source.SetUploaders(opts.Uploaders); err != nil {
			return false, fmt.Errorf("failed to set uploaders: %w", err)
		}
		if len(opts.Uploaders) > 0 {
			summary = fmt.Sprintf("Set maintainer to %s and uploaders to %s.",
				opts.Maintainer, strings.Join(opts.Uploaders, ", "))
		} else {
			summary = fmt.Sprintf("Set maintainer to %s and remove uploaders.", opts.Maintainer)
		}
	}

	return commitChange(editor, it.changelog, opts.EditOptions, summary)
}
