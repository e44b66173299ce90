package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// ChangelogPath is the location of the changelog inside a source tree.
const ChangelogPath = "debian/changelog"

const changelogFileMode = 0o644

// ChangelogRepository records changes in debian/changelog.
type ChangelogRepository struct{}

// NewChangelogRepository creates a ChangelogRepository.
func NewChangelogRepository() *ChangelogRepository {
	return &ChangelogRepository{}
}

// AddEntries adds bullets to the top entry when it is UNRELEASED. A missing
// changelog or a released top entry is left alone.
func (it *ChangelogRepository) AddEntries(dir string, entries []string) (bool, error) {
	path := filepath.Join(dir, ChangelogPath)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("[changelog] No %s, not recording changes", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, changed := entities.InsertChangelogEntry(string(data), entries)
	if !changed {
		logger.Debugf("[changelog] Top entry of %s is released, not recording changes", path)
		return false, nil
	}
	if writeErr := os.WriteFile(path, []byte(updated), changelogFileMode); writeErr != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, writeErr)
	}
	return true, nil
}

var _ domainRepos.ChangelogRepository = (*ChangelogRepository)(nil)
