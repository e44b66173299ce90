//go:build unit

package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLocalEditorRepository(t *testing.T) {
	t.Parallel()

	t.Run("should open the stanza backend for debian/control", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeFiles(t, map[string]string{
			"debian/control": "Source: foo\n\nPackage: foo\n",
		})

		// when
		editor, err := repositories.NewLocalEditorRepository().Open(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BackendStanza, editor.Backend())
		assert.Equal(t, filepath.Join(dir, "debian/control"), editor.Path())
		source, ok := editor.Source()
		require.True(t, ok)
		name, _ := source.Name()
		assert.Equal(t, "foo", name)
		assert.Len(t, editor.Binaries(), 1)
	})

	t.Run("should prefer the manifest backend when debcargo.toml exists", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeFiles(t, map[string]string{
			"debian/control":       "Source: ignored\n",
			"debian/debcargo.toml": "overlay = \".\"\n",
			"Cargo.toml":           "[package]\nname = \"example\"\nversion = \"0.1.0\"\n",
		})

		// when
		editor, err := repositories.NewLocalEditorRepository().Open(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BackendManifest, editor.Backend())
		source, ok := editor.Source()
		require.True(t, ok)
		name, _ := source.Name()
		assert.Equal(t, "rust-example", name)
		assert.Len(t, editor.Binaries(), 2)
		assert.False(t, editor.WrapAndSort())
	})

	t.Run("should report unchanged without edits", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeFiles(t, map[string]string{
			"debian/control": "Source: foo\nBuild-Depends: b,  a\n",
		})
		editor, err := repositories.NewLocalEditorRepository().Open(dir)
		require.NoError(t, err)

		// when
		changed, err := editor.Commit()

		// then
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("should fail when no control file exists", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := repositories.NewLocalEditorRepository().Open(t.TempDir())

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
