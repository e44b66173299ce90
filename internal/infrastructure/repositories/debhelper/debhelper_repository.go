package debhelper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// CompatPath is the legacy compat file inside a source tree.
const CompatPath = "debian/compat"

// DebhelperRepository combines the legacy compat file, dh_assistant and the
// release table.
type DebhelperRepository struct {
	assistant *DhAssistant
	releases  *ReleaseTable
}

// NewDebhelperRepository creates a DebhelperRepository.
func NewDebhelperRepository(assistant *DhAssistant, releases *ReleaseTable) *DebhelperRepository {
	return &DebhelperRepository{assistant: assistant, releases: releases}
}

func (it *DebhelperRepository) LegacyCompatLevel(dir string) (int, bool, error) {
	return ReadDebhelperCompatFile(filepath.Join(dir, CompatPath))
}

func (it *DebhelperRepository) SupportedCompatLevels(ctx context.Context) (entities.CompatLevels, error) {
	return it.assistant.SupportedCompatLevels(ctx)
}

func (it *DebhelperRepository) DebhelperVersion(release string) (string, bool) {
	return it.releases.DebhelperVersion(release)
}

// ReadDebhelperCompatFile reads a compat level file. A missing file or a
// value that is not a level yields no level and no error.
func ReadDebhelperCompatFile(path string) (int, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	level, ok := entities.ParseDebhelperCompat(string(data))
	return level, ok, nil
}

var _ domainRepos.DebhelperRepository = (*DebhelperRepository)(nil)
