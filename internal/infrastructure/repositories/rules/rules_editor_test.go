//go:build unit

package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/rules"
)

func TestCheckCdbs(t *testing.T) {
	t.Parallel()

	t.Run("should detect a CDBS include", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "rules")
		require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/make -f\ninclude /usr/share/cdbs/1/rules/debhelper.mk\n"), 0o755))

		// when
		uses := rules.CheckCdbs(path)

		// then
		assert.True(t, uses)
	})

	t.Run("should detect an optional CDBS include", func(t *testing.T) {
		t.Parallel()

		// given
		editor := rules.ParseEditor("-include /usr/share/cdbs/1/class/autotools.mk\n")

		// when
		uses := editor.UsesCdbs()

		// then
		assert.True(t, uses)
	})

	t.Run("should report false for dh rules", func(t *testing.T) {
		t.Parallel()

		// given
		editor := rules.ParseEditor("%:\n\tdh $@\n")

		// when
		uses := editor.UsesCdbs()

		// then
		assert.False(t, uses)
	})

	t.Run("should report false for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		uses := rules.CheckCdbs(filepath.Join(t.TempDir(), "missing"))

		// then
		assert.False(t, uses)
	})
}

func TestRulesRepository(t *testing.T) {
	t.Parallel()

	t.Run("should detect CDBS in the package directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "debian"), 0o755))
		content := "#!/usr/bin/make -f\ninclude /usr/share/cdbs/1/rules/debhelper.mk\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, rules.RulesPath), []byte(content), 0o755))

		// when
		uses := rules.NewRulesRepository().UsesCdbs(dir)

		// then
		assert.True(t, uses)
	})

	t.Run("should not report CDBS without a rules file", func(t *testing.T) {
		t.Parallel()

		// when
		uses := rules.NewRulesRepository().UsesCdbs(t.TempDir())

		// then
		assert.False(t, uses)
	})

	t.Run("should write changes and keep the executable bit", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "debian"), 0o755))
		path := filepath.Join(dir, rules.RulesPath)
		require.NoError(t, os.WriteFile(path, []byte("%:\n\tdh $@\n\noverride_dh_auto_test:\n\tdh_auto_test\n"), 0o755))
		editor, err := rules.NewRulesRepository().Open(dir)
		require.NoError(t, err)

		// when
		removed := editor.DiscardPointlessOverrides()
		changed, err := editor.Commit()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.True(t, changed)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%:\n\tdh $@\n\n", string(data))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("should not write an unchanged file", func(t *testing.T) {
		t.Parallel()

		// given
		editor := rules.ParseEditor("%:\n\tdh $@\n")

		// when
		changed, err := editor.Commit()

		// then
		require.NoError(t, err)
		assert.False(t, changed)
	})
}
