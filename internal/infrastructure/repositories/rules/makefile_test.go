//go:build unit

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/rules"
)

const sampleRules = `#!/usr/bin/make -f

export DH_VERBOSE = 1
DEB_HOST_MULTIARCH ?= $(shell dpkg-architecture -qDEB_HOST_MULTIARCH)

%:
	dh $@ --with python3 \
		--buildsystem=pybuild

.PHONY: override_dh_auto_build override_dh_auto_test

# nothing special here
override_dh_auto_build:
	dh_auto_build

override_dh_auto_test:
	dh_auto_test -- --verbose
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should reproduce the input byte for byte", func(t *testing.T) {
		t.Parallel()

		// when
		makefile := rules.Parse(sampleRules)

		// then
		assert.Equal(t, sampleRules, makefile.String())
	})

	t.Run("should recognise rules and skip assignments", func(t *testing.T) {
		t.Parallel()

		// when
		parsed := rules.Parse(sampleRules).Rules()

		// then
		require.Len(t, parsed, 4)
		assert.Equal(t, []string{"%"}, parsed[0].Targets())
		assert.Equal(t, []string{".PHONY"}, parsed[1].Targets())
		assert.Equal(t, []string{"override_dh_auto_build", "override_dh_auto_test"}, parsed[1].Prerequisites())
		assert.Equal(t, []string{"dh_auto_build"}, parsed[2].Recipes())
	})

	t.Run("should join continuation lines into one recipe line", func(t *testing.T) {
		t.Parallel()

		// when
		recipes := rules.Parse(sampleRules).Rules()[0].Recipes()

		// then
		require.Len(t, recipes, 1)
		assert.Equal(t, "dh $@ --with python3 \\\n\t\t--buildsystem=pybuild", recipes[0])
	})

	t.Run("should leave comments out of the recipe", func(t *testing.T) {
		t.Parallel()

		// given
		text := "build:\n\techo one\n# note\n\techo two\n"

		// when
		recipes := rules.Parse(text).Rules()[0].Recipes()

		// then
		assert.Equal(t, []string{"echo one", "echo two"}, recipes)
	})
}

func TestDiscardPointlessOverrides(t *testing.T) {
	t.Parallel()

	t.Run("should remove an override that only runs its command", func(t *testing.T) {
		t.Parallel()

		// given
		makefile := rules.Parse(sampleRules)

		// when
		removed := makefile.DiscardPointlessOverrides()

		// then
		expected := `#!/usr/bin/make -f

export DH_VERBOSE = 1
DEB_HOST_MULTIARCH ?= $(shell dpkg-architecture -qDEB_HOST_MULTIARCH)

%:
	dh $@ --with python3 \
		--buildsystem=pybuild

.PHONY: override_dh_auto_test

# nothing special here
override_dh_auto_test:
	dh_auto_test -- --verbose
`
		assert.Equal(t, 1, removed)
		assert.Equal(t, expected, makefile.String())
	})

	t.Run("should keep an override that passes arguments", func(t *testing.T) {
		t.Parallel()

		// given
		text := "override_dh_auto_build:\n\tdh_auto_build --foo\n"
		makefile := rules.Parse(text)

		// when
		removed := makefile.DiscardPointlessOverrides()

		// then
		assert.Zero(t, removed)
		assert.Equal(t, text, makefile.String())
	})

	t.Run("should ignore blank recipe lines", func(t *testing.T) {
		t.Parallel()

		// given
		makefile := rules.Parse("override_dh_auto_build:\n\t\n\tdh_auto_build\n\nbuild:\n\tdh build\n")

		// when
		removed := makefile.DiscardPointlessOverrides()

		// then
		assert.Equal(t, 1, removed)
		assert.Equal(t, "build:\n\tdh build\n", makefile.String())
	})

	t.Run("should keep overrides with prerequisites", func(t *testing.T) {
		t.Parallel()

		// given
		text := "override_dh_auto_build: prepare\n\tdh_auto_build\n"
		makefile := rules.Parse(text)

		// when
		removed := makefile.DiscardPointlessOverrides()

		// then
		assert.Zero(t, removed)
	})

	t.Run("should drop an emptied .PHONY declaration", func(t *testing.T) {
		t.Parallel()

		// given
		makefile := rules.Parse(".PHONY: override_dh_auto_build\noverride_dh_auto_build:\n\tdh_auto_build\n")

		// when
		removed := makefile.DiscardPointlessOverrides()

		// then
		assert.Equal(t, 1, removed)
		assert.Empty(t, makefile.String())
	})
}

func TestUpdateRecipeLines(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite matching recipe lines only", func(t *testing.T) {
		t.Parallel()

		// given
		makefile := rules.Parse("# dh $@\n%:\n\tdh $@\n")

		// when
		changed := makefile.UpdateRecipeLines(func(line string) string {
			return line + " --with foo"
		})

		// then
		assert.Equal(t, 1, changed)
		assert.Equal(t, "# dh $@\n%:\n\tdh $@ --with foo\n", makefile.String())
	})
}
