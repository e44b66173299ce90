//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/test/domain/entitybuilders"
	"github.com/rios0rios0/debbrush/test/infrastructure/repositorydoubles"
)

func TestEnsureDebhelperCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should raise the floor and record it in the changelog", func(t *testing.T) {
		t.Parallel()

		// given
		document, editor := parseControl(t, "Source: foo\nBuild-Depends: debhelper (>= 9), libc6\n")
		changelog := &repositorydoubles.SpyChangelogRepository{Recorded: true}
		cmd := commands.NewEnsureDebhelperCommand(&repositorydoubles.StubEditorRepository{Editor: editor}, changelog)
		settings := entitybuilders.NewSettingsBuilder().WithUpdateChangelog(true).BuildSettings()

		// when
		changed, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{
			EditOptions:    commands.EditOptions{Dir: "/pkg", Settings: settings},
			MinimumVersion: "12",
		})

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Source: foo\nBuild-Depends: debhelper (>= 12), libc6\n", document.String())
		require.Len(t, changelog.Calls, 1)
		assert.Equal(t, "/pkg", changelog.Calls[0].Dir)
		assert.Equal(t, []string{"Bump debhelper dependency to >= 12."}, changelog.Calls[0].Entries)
	})

	t.Run("should leave the changelog alone by default", func(t *testing.T) {
		t.Parallel()

		// given
		_, editor := parseControl(t, "Source: foo\nBuild-Depends: debhelper (>= 9)\n")
		changelog := &repositorydoubles.SpyChangelogRepository{}
		cmd := commands.NewEnsureDebhelperCommand(&repositorydoubles.StubEditorRepository{Editor: editor}, changelog)

		// when
		changed, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{
			EditOptions:    commands.EditOptions{Dir: "/pkg"},
			MinimumVersion: "12",
		})

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Empty(t, changelog.Calls)
	})

	t.Run("should report no change when the floor is high enough", func(t *testing.T) {
		t.Parallel()

		// given
		_, editor := parseControl(t, "Source: foo\nBuild-Depends: debhelper (>= 13)\n")
		changelog := &repositorydoubles.SpyChangelogRepository{}
		cmd := commands.NewEnsureDebhelperCommand(&repositorydoubles.StubEditorRepository{Editor: editor}, changelog)

		// when
		changed, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{
			EditOptions:    commands.EditOptions{Dir: "/pkg"},
			MinimumVersion: "12",
		})

		// then
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("should not touch the changelog in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		_, editor := parseControl(t, "Source: foo\nBuild-Depends: debhelper (>= 9)\n")
		changelog := &repositorydoubles.SpyChangelogRepository{}
		cmd := commands.NewEnsureDebhelperCommand(&repositorydoubles.StubEditorRepository{Editor: editor}, changelog)
		settings := entitybuilders.NewSettingsBuilder().WithUpdateChangelog(true).BuildSettings()

		// when
		changed, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{
			EditOptions:    commands.EditOptions{Dir: "/pkg", DryRun: true, Settings: settings},
			MinimumVersion: "12",
		})

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Empty(t, changelog.Calls)
	})

	t.Run("should reject an invalid version", func(t *testing.T) {
		t.Parallel()

		// given
		editors := &repositorydoubles.StubEditorRepository{}
		cmd := commands.NewEnsureDebhelperCommand(editors, &repositorydoubles.DummyChangelogRepository{})

		// when
		_, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{MinimumVersion: ""})

		// then
		require.Error(t, err)
		assert.Empty(t, editors.OpenDirs)
	})

	t.Run("should propagate open failures", func(t *testing.T) {
		t.Parallel()

		// given
		openErr := errors.New("no such file")
		editors := &repositorydoubles.StubEditorRepository{OpenErr: openErr}
		cmd := commands.NewEnsureDebhelperCommand(editors, &repositorydoubles.DummyChangelogRepository{})

		// when
		_, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{MinimumVersion: "12"})

		// then
		assert.ErrorIs(t, err, openErr)
	})

	t.Run("should fail without a source paragraph", func(t *testing.T) {
		t.Parallel()

		// given
		_, editor := parseControl(t, "Package: foo\n")
		cmd := commands.NewEnsureDebhelperCommand(
			&repositorydoubles.StubEditorRepository{Editor: editor}, &repositorydoubles.DummyChangelogRepository{},
		)

		// when
		_, err := cmd.Execute(context.Background(), commands.EnsureDebhelperOptions{MinimumVersion: "12"})

		// then
		assert.ErrorIs(t, err, commands.ErrNoSource)
	})
}
