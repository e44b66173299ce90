package control

import (
	"errors"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/deb822"
)

// ErrNoSourceParagraph is returned when the document lost its source paragraph.
var ErrNoSourceParagraph = errors.New("no source paragraph")

// descriptionParagraphSeparator stands for an empty line inside an extended description.
const descriptionParagraphSeparator = "."

// BinaryView is a handle on one binary paragraph, addressed by position.
type BinaryView struct {
	editor *Editor
	index  int
}

func (it *BinaryView) paragraph() *deb822.Paragraph {
	paragraphs := it.editor.document.Paragraphs()
	if it.index >= len(paragraphs) {
		return nil
	}
	return paragraphs[it.index]
}

func (it *BinaryView) Name() (string, bool) {
	paragraph := it.paragraph()
	if paragraph == nil {
		return "", false
	}
	return paragraph.Get(string(entities.FieldPackage))
}

// Summary is the first line of the Description field.
func (it *BinaryView) Summary() (string, bool) {
	lines, ok := it.descriptionLines()
	if !ok {
		return "", false
	}
	summary := strings.TrimSpace(lines[0])
	return summary, summary != ""
}

// LongDescription is the Description field without its first line, with
// the continuation indent removed and " ." lines turned into blank lines.
func (it *BinaryView) LongDescription() (string, bool) {
	lines, ok := it.descriptionLines()
	if !ok || len(lines) < 2 {
		return "", false
	}
	body := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimPrefix(strings.TrimPrefix(line, " "), "\t")
		if strings.TrimSpace(line) == descriptionParagraphSeparator {
			line = ""
		}
		body = append(body, line)
	}
	return strings.Join(body, "\n"), true
}

// Provides lists the entries of the Provides field.
func (it *BinaryView) Provides() []string {
	paragraph := it.paragraph()
	if paragraph == nil {
		return nil
	}
	raw, ok := paragraph.Raw(string(entities.FieldProvides))
	if !ok {
		return nil
	}
	relations, err := entities.ParseRelations(raw)
	if err != nil {
		logger.Warnf("[control] Ignoring unparsable Provides field: %v", err)
		return nil
	}
	return relations.Contents()
}

func (it *BinaryView) descriptionLines() ([]string, bool) {
	paragraph := it.paragraph()
	if paragraph == nil {
		return nil, false
	}
	raw, ok := paragraph.Raw(string(entities.FieldDescription))
	if !ok {
		return nil, false
	}
	return strings.Split(raw, "\n"), true
}
