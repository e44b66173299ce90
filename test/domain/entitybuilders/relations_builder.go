//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RelationsBuilder helps create relation sets from entry texts.
type RelationsBuilder struct {
	*testkit.BaseBuilder
	entries   []string
	multiline bool
}

// NewRelationsBuilder creates a new builder for an empty relation set.
func NewRelationsBuilder() *RelationsBuilder {
	return &RelationsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithEntry appends an OR-group, e.g. "debhelper (>= 10)" or "a | b".
func (b *RelationsBuilder) WithEntry(entry string) *RelationsBuilder {
	b.entries = append(b.entries, entry)
	return b
}

// Multiline lays the entries out one per line, as wrap-and-sort does.
func (b *RelationsBuilder) Multiline() *RelationsBuilder {
	b.multiline = true
	return b
}

// Text renders the field value the builder describes.
func (b *RelationsBuilder) Text() string {
	if b.multiline {
		return "\n " + strings.Join(b.entries, ",\n ")
	}
	return " " + strings.Join(b.entries, ", ")
}

// Build creates the relation set (satisfies testkit.Builder interface).
func (b *RelationsBuilder) Build() interface{} {
	return b.BuildRelations()
}

// BuildRelations creates the relation set with a concrete return type. It
// panics on malformed entries, which are a bug in the test itself.
func (b *RelationsBuilder) BuildRelations() *entities.Relations {
	if len(b.entries) == 0 {
		return entities.NewRelations()
	}
	relations, err := entities.ParseRelations(b.Text())
	if err != nil {
		panic(err)
	}
	return relations
}

// Reset clears the builder state, allowing it to be reused.
func (b *RelationsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.entries = nil
	b.multiline = false
	return b
}

// Clone creates a deep copy of the RelationsBuilder.
func (b *RelationsBuilder) Clone() testkit.Builder {
	return &RelationsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		entries:     append([]string(nil), b.entries...),
		multiline:   b.multiline,
	}
}
