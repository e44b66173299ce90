//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// StubDebhelperRepository implements repositories.DebhelperRepository with
// canned answers.
type StubDebhelperRepository struct {
	// --- LegacyCompatLevel ---
	LegacyLevel     int
	HasLegacy       bool
	LegacyErr       error
	LegacyCallCount int

	// --- SupportedCompatLevels ---
	Levels          entities.CompatLevels
	LevelsErr       error
	LevelsCallCount int

	// --- DebhelperVersion ---
	Versions map[string]string
}

var _ repositories.DebhelperRepository = (*StubDebhelperRepository)(nil)

func (s *StubDebhelperRepository) LegacyCompatLevel(_ string) (int, bool, error) {
	s.LegacyCallCount++
	return s.LegacyLevel, s.HasLegacy, s.LegacyErr
}

func (s *StubDebhelperRepository) SupportedCompatLevels(_ context.Context) (entities.CompatLevels, error) {
	s.LevelsCallCount++
	return s.Levels, s.LevelsErr
}

func (s *StubDebhelperRepository) DebhelperVersion(release string) (string, bool) {
	v, ok := s.Versions[release]
	return v, ok
}
