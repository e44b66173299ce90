package commands

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// ErrNoSource is returned when the control document has no source package.
var ErrNoSource = errors.New("no source package found")

// EditOptions holds the options shared by every command that edits a package.
type EditOptions struct {
	Dir      string
	DryRun   bool
	Settings *entities.Settings
}

func (it EditOptions) settings() *entities.Settings {
	if it.Settings == nil {
		return entities.DefaultSettings()
	}
	return it.Settings
}

type committer interface {
	Changed() bool
	Commit() (bool, error)
}

// commitChange writes doc and, when the settings ask for it, records summary
// in debian/changelog. In dry-run mode nothing is written.
func commitChange(
	doc committer,
	changelog repositories.ChangelogRepository,
	opts EditOptions,
	summary string,
) (bool, error) {
	if opts.DryRun {
		if !doc.Changed() {
			return false, nil
		}
		logger.Infof("[DRY RUN] Would write: %s", summary)
		return true, nil
	}

	changed, err := doc.Commit()
	if err != nil {
		return false, fmt.Errorf("failed to write changes: %w", err)
	}
	if !changed {
		return false, nil
	}
	logger.Info(summary)

	if opts.settings().UpdatesChangelog() {
		recorded, recordErr := changelog.AddEntries(opts.Dir, []string{summary})
		if recordErr != nil {
			return true, fmt.Errorf("failed to update changelog: %w", recordErr)
		}
		if !recorded {
			logger.Debugf("Top changelog entry is not UNRELEASED, not recording %q", summary)
		}
	}
	return true, nil
}

// openSource opens the control editor of dir together with its source package.
func openSource(
	editors repositories.EditorRepository,
	dir string,
) (repositories.ControlEditor, repositories.SourceView, error) {
	editor, err := editors.Open(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open control file: %w", err)
	}
	source, ok := editor.Source()
	if !ok {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoSource, editor.Path())
	}
	return editor, source, nil
}
