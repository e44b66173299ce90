//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/debbrush/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	compatRelease     string
	minimumCertainty  string
	allowReformatting *bool
	updateChangelog   *bool
}

// NewSettingsBuilder creates a new settings builder with every key unset.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithCompatRelease sets the release bounding the compat level.
func (b *SettingsBuilder) WithCompatRelease(release string) *SettingsBuilder {
	b.compatRelease = release
	return b
}

// WithMinimumCertainty sets the minimum certainty.
func (b *SettingsBuilder) WithMinimumCertainty(certainty string) *SettingsBuilder {
	b.minimumCertainty = certainty
	return b
}

// WithAllowReformatting sets allow-reformatting.
func (b *SettingsBuilder) WithAllowReformatting(allow bool) *SettingsBuilder {
	b.allowReformatting = &allow
	return b
}

// WithUpdateChangelog sets update-changelog.
func (b *SettingsBuilder) WithUpdateChangelog(update bool) *SettingsBuilder {
	b.updateChangelog = &update
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		CompatRelease:     b.compatRelease,
		MinimumCertainty:  b.minimumCertainty,
		AllowReformatting: b.allowReformatting,
		UpdateChangelog:   b.updateChangelog,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.compatRelease = ""
	b.minimumCertainty = ""
	b.allowReformatting = nil
	b.updateChangelog = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	clone := &SettingsBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		compatRelease:    b.compatRelease,
		minimumCertainty: b.minimumCertainty,
	}
	if b.allowReformatting != nil {
		allow := *b.allowReformatting
		clone.allowReformatting = &allow
	}
	if b.updateChangelog != nil {
		update := *b.updateChangelog
		clone.updateChangelog = &update
	}
	return clone
}
