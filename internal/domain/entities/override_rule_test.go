//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

func TestIsPointlessOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		targets       []string
		prerequisites []string
		recipes       []string
		expected      bool
	}{
		{
			name:     "override running only its command",
			targets:  []string{"override_dh_auto_build"},
			recipes:  []string{"\tdh_auto_build"},
			expected: true,
		},
		{
			name:     "override with blank recipe lines",
			targets:  []string{"override_dh_auto_test"},
			recipes:  []string{"", "\tdh_auto_test", "\t"},
			expected: true,
		},
		{
			name:    "override passing extra arguments",
			targets: []string{"override_dh_auto_build"},
			recipes: []string{"\tdh_auto_build -- -j1"},
		},
		{
			name:    "override with two commands",
			targets: []string{"override_dh_install"},
			recipes: []string{"\tdh_install", "\trm -rf debian/tmp/foo"},
		},
		{
			name:          "override with prerequisites",
			targets:       []string{"override_dh_auto_build"},
			prerequisites: []string{"prepare"},
			recipes:       []string{"\tdh_auto_build"},
		},
		{
			name:    "several targets",
			targets: []string{"override_dh_auto_build", "override_dh_auto_test"},
			recipes: []string{"\tdh_auto_build"},
		},
		{
			name:    "regular target",
			targets: []string{"build"},
			recipes: []string{"\tbuild"},
		},
		{
			name:    "empty override",
			targets: []string{"override_dh_auto_test"},
		},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.IsPointlessOverride(tt.targets, tt.prerequisites, tt.recipes)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
