package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/control"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/debcargo"
)

// LocalEditorRepository opens the control editor of a source tree on disk.
// Trees carrying debian/debcargo.toml get the manifest backend.
type LocalEditorRepository struct{}

// NewLocalEditorRepository creates a LocalEditorRepository.
func NewLocalEditorRepository() *LocalEditorRepository {
	return &LocalEditorRepository{}
}

func (it *LocalEditorRepository) Open(dir string) (domainRepos.ControlEditor, error) {
	manifestPath := filepath.Join(dir, debcargo.DebcargoPath)
	_, err := os.Stat(manifestPath)
	switch {
	case err == nil:
		logger.Debugf("Using manifest backend for %s", dir)
		editor, openErr := debcargo.FromDirectory(dir)
		if openErr != nil {
			return nil, openErr
		}
		return NewManifestEditor(editor), nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to inspect %s: %w", manifestPath, err)
	}

	editor, err := control.FromDirectory(dir)
	if err != nil {
		return nil, err
	}
	return NewStanzaEditor(editor), nil
}
