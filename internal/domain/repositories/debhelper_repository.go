package repositories

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// DebhelperRepository provides compat-level data that lives outside the
// control document.
type DebhelperRepository interface {
	// LegacyCompatLevel reads debian/compat. A missing file is not an error.
	LegacyCompatLevel(dir string) (int, bool, error)

	// SupportedCompatLevels asks the installed debhelper which levels it supports.
	SupportedCompatLevels(ctx context.Context) (entities.CompatLevels, error)

	// DebhelperVersion returns the debhelper version shipped in a release.
	DebhelperVersion(release string) (string, bool)
}
