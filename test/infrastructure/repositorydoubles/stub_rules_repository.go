//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// StubRulesRepository implements repositories.RulesRepository by handing
// out a preconfigured editor.
type StubRulesRepository struct {
	Editor   repositories.RulesEditor
	OpenErr  error
	OpenDirs []string
	Cdbs     bool
}

var _ repositories.RulesRepository = (*StubRulesRepository)(nil)

func (s *StubRulesRepository) Open(dir string) (repositories.RulesEditor, error) {
	s.OpenDirs = append(s.OpenDirs, dir)
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.Editor, nil
}

func (s *StubRulesRepository) UsesCdbs(_ string) bool {
	return s.Cdbs
}
