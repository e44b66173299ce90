//go:build unit

package debcargo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/debcargo"
)

func TestDebcargoBinaryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		suffix   string
		expected string
	}{
		{"", "librust-foo-dev"},
		{"-1", "librust-foo-1-dev"},
		{"-1.2", "librust-foo-1.2-dev"},
		{"-1.2.3", "librust-foo-1.2.3-dev"},
	}
	for _, tt := range tests {
		t.Run("should name the package for suffix "+tt.suffix, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, debcargo.DebcargoBinaryName("foo", tt.suffix))
		})
	}
}

func TestSemverPair(t *testing.T) {
	t.Parallel()

	t.Run("should keep major and minor", func(t *testing.T) {
		t.Parallel()

		// when
		first, firstOK := debcargo.SemverPair("1.2.3")
		second, secondOK := debcargo.SemverPair("1.2.6")

		// then
		assert.True(t, firstOK)
		assert.True(t, secondOK)
		assert.Equal(t, "1.2", first)
		assert.Equal(t, "1.2", second)
	})

	t.Run("should understand mangled pre-release versions", func(t *testing.T) {
		t.Parallel()

		// when
		pair, ok := debcargo.SemverPair("0.3.0~beta.1")

		// then
		assert.True(t, ok)
		assert.Equal(t, "0.3", pair)
	})

	t.Run("should reject versions that are not semver", func(t *testing.T) {
		t.Parallel()

		// when
		_, ok := debcargo.SemverPair("not-a-version")

		// then
		assert.False(t, ok)
	})
}

func TestDebnormalize(t *testing.T) {
	t.Parallel()

	t.Run("should lowercase and replace underscores", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "foo-bar", debcargo.Debnormalize("foo_bar"))
		assert.Equal(t, "foo", debcargo.Debnormalize("foo"))
		assert.Equal(t, "serde-json", debcargo.Debnormalize("Serde_JSON"))
	})
}

func TestUnmangleDebcargoVersion(t *testing.T) {
	t.Parallel()

	t.Run("should turn tildes back into dashes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.0.0-rc.1", debcargo.UnmangleDebcargoVersion("1.0.0~rc.1"))
	})
}
