package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// BuildDep is the interface for the build-dep command.
type BuildDep interface {
	Execute(ctx context.Context, opts BuildDepOptions) (bool, error)
}

// BuildDepOptions holds the options of the build-dep command.
type BuildDepOptions struct {
	EditOptions
	Relation string
}

// BuildDepCommand adds a build-dependency to a package.
type BuildDepCommand struct {
	editors   repositories.EditorRepository
	changelog repositories.ChangelogRepository
}

// NewBuildDepCommand creates a new BuildDepCommand.
func NewBuildDepCommand(
	editors repositories.EditorRepository,
	changelog repositories.ChangelogRepository,
) *BuildDepCommand {
	return &BuildDepCommand{editors: editors, changelog: changelog}
}

// Execute adds the relation unless an identical one is already present.
func (it *BuildDepCommand) Execute(_ context.Context, opts BuildDepOptions) (bool, error) {
	entry, err := entities.ParseEntry(opts.Relation)
	if err != nil {
		return false, fmt.Errorf("invalid relation %q: %w", opts.Relation, err)
	}
	if len(entry.Relations()) == 0 {
		return false, fmt.Errorf("invalid relation %q: %w", opts.Relation, entities.ErrEmptyRelation)
	}

	editor, source, err := openSource(it.editors, opts.Dir)
	if err != nil {
		return false, err
	}

	changed, err := source.EnsureBuildDep(entry)
	if err != nil {
		return false, fmt.Errorf("failed to add build dependency: %w", err)
	}
	if !changed {
		logger.Infof("Build-Depends already contains %s", entry.Content())
		return false, nil
	}

	return commitChange(editor, it.changelog, opts.EditOptions,
		fmt.Sprintf("Add build dependency on %s.", entry.Content()))
}
