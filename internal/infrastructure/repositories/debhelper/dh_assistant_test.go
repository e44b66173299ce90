//go:build unit

package debhelper_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/debhelper"
)

const compatLevelsJSON = `{"HIGHEST_STABLE_COMPAT_LEVEL":13,"LOWEST_NON_DEPRECATED_COMPAT_LEVEL":7,` +
	`"LOWEST_VIRTUAL_DEBHELPER_COMPAT_LEVEL":11,"MAX_COMPAT_LEVEL":14,"MIN_COMPAT_LEVEL":5,` +
	`"MIN_COMPAT_LEVEL_NOT_SCHEDULED_FOR_REMOVAL":7}`

func TestDhAssistant(t *testing.T) {
	t.Parallel()

	t.Run("should parse the supported compat levels", func(t *testing.T) {
		t.Parallel()

		// given
		assistant := debhelper.NewDhAssistantWithRunner(func(context.Context, string, ...string) ([]byte, error) {
			return []byte(compatLevelsJSON), nil
		})

		// when
		levels, err := assistant.SupportedCompatLevels(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, 13, levels.HighestStable)
		assert.Equal(t, 7, levels.LowestNonDeprecated)
		assert.Equal(t, 11, levels.LowestVirtualDebhelper)
		assert.Equal(t, 14, levels.Max)
		assert.Equal(t, 5, levels.Min)
		assert.Equal(t, 7, levels.MinNotScheduledForRemoval)
	})

	t.Run("should run the tool only once", func(t *testing.T) {
		t.Parallel()

		// given
		var calls atomic.Int32
		assistant := debhelper.NewDhAssistantWithRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
			calls.Add(1)
			assert.Equal(t, "dh_assistant", name)
			assert.Equal(t, []string{"supported-compat-levels"}, args)
			return []byte(compatLevelsJSON), nil
		})

		// when
		first, err := assistant.SupportedCompatLevels(context.Background())
		require.NoError(t, err)
		second, err := assistant.SupportedCompatLevels(context.Background())
		require.NoError(t, err)

		// then
		assert.Equal(t, 7, first.LowestNonDeprecated)
		assert.Equal(t, 13, second.HighestStable)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should fail when a level is missing", func(t *testing.T) {
		t.Parallel()

		// given
		assistant := debhelper.NewDhAssistantWithRunner(func(context.Context, string, ...string) ([]byte, error) {
			return []byte(`{"HIGHEST_STABLE_COMPAT_LEVEL":13}`), nil
		})

		// when
		_, err := assistant.SupportedCompatLevels(context.Background())

		// then
		require.ErrorIs(t, err, debhelper.ErrIncompleteCompatLevels)
	})

	t.Run("should fail on malformed output", func(t *testing.T) {
		t.Parallel()

		// given
		assistant := debhelper.NewDhAssistantWithRunner(func(context.Context, string, ...string) ([]byte, error) {
			return []byte("not json"), nil
		})

		// when
		_, err := assistant.SupportedCompatLevels(context.Background())

		// then
		require.Error(t, err)
	})

	t.Run("should memoize a failed run", func(t *testing.T) {
		t.Parallel()

		// given
		runErr := errors.New("exit status 2")
		var calls atomic.Int32
		assistant := debhelper.NewDhAssistantWithRunner(func(context.Context, string, ...string) ([]byte, error) {
			calls.Add(1)
			return nil, runErr
		})

		// when
		_, firstErr := assistant.SupportedCompatLevels(context.Background())
		_, secondErr := assistant.SupportedCompatLevels(context.Background())

		// then
		require.ErrorIs(t, firstErr, runErr)
		require.ErrorIs(t, secondErr, runErr)
		assert.Equal(t, int32(1), calls.Load())
	})
}
