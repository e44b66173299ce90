package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"pault.ag/go/debian/version"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// EnsureDebhelper is the interface for the ensure-debhelper command.
type EnsureDebhelper interface {
	Execute(ctx context.Context, opts EnsureDebhelperOptions) (bool, error)
}

// EnsureDebhelperOptions holds the options of the ensure-debhelper command.
type EnsureDebhelperOptions struct {
	EditOptions
	MinimumVersion string
}

// EnsureDebhelperCommand raises the debhelper build-dependency of a package.
type EnsureDebhelperCommand struct {
	editors   repositories.EditorRepository
	changelog repositories.ChangelogRepository
}

// NewEnsureDebhelperCommand creates a new EnsureDebhelperCommand.
func NewEnsureDebhelperCommand(
	editors repositories.EditorRepository,
	changelog repositories.ChangelogRepository,
) *EnsureDebhelperCommand {
	return &EnsureDebhelperCommand{editors: editors, changelog: changelog}
}

// Execute makes sure the package build-depends on at least the requested
// debhelper version and reports whether anything changed.
func (it *EnsureDebhelperCommand) Execute(_ context.Context, opts EnsureDebhelperOptions) (bool, error) {
	minimum, err := version.Parse(opts.MinimumVersion)
	if err != nil {
		return false, fmt.Errorf("invalid debhelper version %q: %w", opts.MinimumVersion, err)
	}

	editor, source, err := openSource(it.editors, opts.Dir)
	if err != nil {
		return false, err
	}

	changed, err := EnsureMinimumDebhelperVersion(source, minimum)
	if err != nil {
		return false, err
	}
	if !changed {
		logger.Infof("debhelper already satisfies >= %s", minimum)
		return false, nil
	}

	return commitChange(editor, it.changelog, opts.EditOptions,
		fmt.Sprintf("Bump debhelper dependency to >= %s.", minimum))
}
