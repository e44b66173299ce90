//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pault.ag/go/debian/version"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/debbrush/internal/infrastructure/repositories"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/control"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/rules"
)

// parseControl returns an in-memory control document and the editor facade around it.
func parseControl(t *testing.T, text string) (*control.Editor, repositories.ControlEditor) {
	t.Helper()
	editor, err := control.Parse(text)
	require.NoError(t, err)
	return editor, infraRepos.NewStanzaEditor(editor)
}

func sourceOf(t *testing.T, text string) (*control.Editor, repositories.SourceView) {
	t.Helper()
	editor, facade := parseControl(t, text)
	source, ok := facade.Source()
	require.True(t, ok)
	return editor, source
}

func parseRules(text string) *rules.Editor {
	return rules.ParseEditor(text)
}

func mustVersion(t *testing.T, raw string) version.Version {
	t.Helper()
	v, err := version.Parse(raw)
	require.NoError(t, err)
	return v
}
