//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/test/infrastructure/repositorydoubles"
)

func TestPruneOverridesCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should remove pointless overrides", func(t *testing.T) {
		t.Parallel()

		// given
		editor := parseRules("%:\n\tdh $@\n\noverride_dh_auto_build:\n\tdh_auto_build\n")
		cmd := commands.NewPruneOverridesCommand(
			&repositorydoubles.StubRulesRepository{Editor: editor}, &repositorydoubles.DummyChangelogRepository{},
		)

		// when
		count, err := cmd.Execute(context.Background(), commands.PruneOverridesOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NotContains(t, editor.String(), "override_dh_auto_build")
	})

	t.Run("should keep overrides passing arguments", func(t *testing.T) {
		t.Parallel()

		// given
		content := "%:\n\tdh $@\n\noverride_dh_auto_build:\n\tdh_auto_build --foo\n"
		editor := parseRules(content)
		changelog := &repositorydoubles.SpyChangelogRepository{}
		cmd := commands.NewPruneOverridesCommand(&repositorydoubles.StubRulesRepository{Editor: editor}, changelog)

		// when
		count, err := cmd.Execute(context.Background(), commands.PruneOverridesOptions{})

		// then
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Equal(t, content, editor.String())
		assert.Empty(t, changelog.Calls)
	})
	t.Run("should refuse to prune a CDBS rules file", func(t *testing.T) {
		t.Parallel()

		// given
		content := "include /usr/share/cdbs/1/rules/debhelper.mk\n\noverride_dh_auto_build:\n\tdh_auto_build\n"
		editor := parseRules(content)
		changelog := &repositorydoubles.SpyChangelogRepository{}
		cmd := commands.NewPruneOverridesCommand(&repositorydoubles.StubRulesRepository{Editor: editor}, changelog)

		// when
		count, err := cmd.Execute(context.Background(), commands.PruneOverridesOptions{})

		// then
		require.ErrorIs(t, err, commands.ErrUsesCdbs)
		assert.Zero(t, count)
		assert.Equal(t, content, editor.String())
		assert.Empty(t, changelog.Calls)
	})
}
