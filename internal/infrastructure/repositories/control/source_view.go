package control

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/deb822"
)

// SourceView is a handle on the source paragraph of an Editor.
type SourceView struct {
	editor *Editor
}

func (it *SourceView) paragraph() *deb822.Paragraph {
	paragraph, _ := it.editor.document.Find(string(entities.FieldSource))
	return paragraph
}

// Name returns the Source field.
func (it *SourceView) Name() (string, bool) {
	return it.Field(entities.FieldSource)
}

// Field returns the value of any field of the source paragraph.
func (it *SourceView) Field(field entities.ControlField) (string, bool) {
	paragraph := it.paragraph()
	if paragraph == nil {
		return "", false
	}
	return paragraph.Get(string(field))
}

// Relations parses a relation field of the source paragraph.
func (it *SourceView) Relations(field entities.ControlField) (*entities.Relations, bool, error) {
	paragraph := it.paragraph()
	if paragraph == nil {
		return nil, false, nil
	}
	raw, ok := paragraph.Raw(string(field))
	if !ok {
		return nil, false, nil
	}
	relations, err := entities.ParseRelations(raw)
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return relations, true, nil
}

// SetRelations writes a relation field back. An empty set removes the field.
func (it *SourceView) SetRelations(field entities.ControlField, relations *entities.Relations) error {
	paragraph := it.paragraph()
	if paragraph == nil {
		return fmt.Errorf("failed to set %s: %w", field, ErrNoSourceParagraph)
	}
	if relations.IsEmpty() {
		paragraph.Remove(string(field))
		return nil
	}
	paragraph.SetRaw(string(field), relations.String())
	return nil
}

// EnsureBuildDep adds entry to Build-Depends unless an identical entry exists.
func (it *SourceView) EnsureBuildDep(entry *entities.Entry) (bool, error) {
	relations, _, err := it.Relations(entities.FieldBuildDepends)
	if err != nil {
		return false, err
	}
	if relations == nil {
		relations = entities.NewRelations()
	}
	if !relations.EnsureRelation(entry) {
		return false, nil
	}
	return true, it.SetRelations(entities.FieldBuildDepends, relations)
}

func (it *SourceView) SetMaintainer(maintainer string) error {
	return it.set(entities.FieldMaintainer, maintainer)
}

// SetUploaders writes a comma-separated Uploaders field, or removes it when empty.
func (it *SourceView) SetUploaders(uploaders []string) error {
	if len(uploaders) == 0 {
		if paragraph := it.paragraph(); paragraph != nil {
			paragraph.Remove(string(entities.FieldUploaders))
		}
		return nil
	}
	return it.set(entities.FieldUploaders, strings.Join(uploaders, ", "))
}

func (it *SourceView) GetVcsURL(vcsType string) (string, bool) {
	return it.Field(entities.VcsField(vcsType))
}

func (it *SourceView) SetVcsURL(vcsType, url string) error {
	return it.set(entities.VcsField(vcsType), url)
}

func (it *SourceView) set(field entities.ControlField, value string) error {
	paragraph := it.paragraph()
	if paragraph == nil {
		return fmt.Errorf("failed to set %s: %w", field, ErrNoSourceParagraph)
	}
	paragraph.Set(string(field), value)
	return nil
}
