//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/test/infrastructure/repositorydoubles"
)

func TestBuildDepCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should add a missing build dependency", func(t *testing.T) {
		t.Parallel()

		// given
		document, editor := parseControl(t, "Source: foo\nBuild-Depends: debhelper-compat (= 13)\n")
		cmd := commands.NewBuildDepCommand(
			&repositorydoubles.StubEditorRepository{Editor: editor}, &repositorydoubles.DummyChangelogRepository{},
		)

		// when
		changed, err := cmd.Execute(context.Background(), commands.BuildDepOptions{Relation: "pkgconf"})

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Source: foo\nBuild-Depends: debhelper-compat (= 13), pkgconf\n", document.String())
	})

	t.Run("should not duplicate an existing build dependency", func(t *testing.T) {
		t.Parallel()

		// given
		content := "Source: foo\nBuild-Depends: debhelper-compat (= 13), pkgconf\n"
		document, editor := parseControl(t, content)
		cmd := commands.NewBuildDepCommand(
			&repositorydoubles.StubEditorRepository{Editor: editor}, &repositorydoubles.DummyChangelogRepository{},
		)

		// when
		changed, err := cmd.Execute(context.Background(), commands.BuildDepOptions{Relation: "pkgconf"})

		// then
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, content, document.String())
	})

	t.Run("should reject a malformed relation", func(t *testing.T) {
		t.Parallel()

		// given
		editors := &repositorydoubles.StubEditorRepository{}
		cmd := commands.NewBuildDepCommand(editors, &repositorydoubles.DummyChangelogRepository{})

		// when
		_, err := cmd.Execute(context.Background(), commands.BuildDepOptions{Relation: "  "})

		// then
		require.ErrorIs(t, err, entities.ErrEmptyRelation)
		assert.Empty(t, editors.OpenDirs)
	})
}
