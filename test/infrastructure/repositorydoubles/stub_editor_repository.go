//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// StubEditorRepository implements repositories.EditorRepository by handing
// out a preconfigured editor.
type StubEditorRepository struct {
	Editor   repositories.ControlEditor
	OpenErr  error
	OpenDirs []string
}

var _ repositories.EditorRepository = (*StubEditorRepository)(nil)

func (s *StubEditorRepository) Open(dir string) (repositories.ControlEditor, error) {
	s.OpenDirs = append(s.OpenDirs, dir)
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.Editor, nil
}
