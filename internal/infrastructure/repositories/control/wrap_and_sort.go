package control

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

const maxLineLength = 79

// WrapAndSort sorts and deduplicates every relation field, writing it on one
// line when it fits and one entry per line otherwise.
func (it *Editor) WrapAndSort() bool {
	changed := false
	for _, paragraph := range it.document.Paragraphs() {
		for _, name := range paragraph.Names() {
			if !isRelationField(name) {
				continue
			}
			raw, _ := paragraph.Raw(name)
			relations, err := entities.ParseRelations(raw)
			if err != nil {
				logger.Warnf("[control] Not sorting %s: %v", name, err)
				continue
			}
			contents := relations.SortedContents()
			if len(contents) == 0 {
				continue
			}
			formatted := formatRelations(name, contents)
			if formatted != raw {
				paragraph.SetRaw(name, formatted)
				changed = true
			}
		}
	}
	return changed
}

func formatRelations(name string, contents []string) string {
	single := " " + strings.Join(contents, ", ")
	if len(name)+1+len(single) <= maxLineLength {
		return single
	}
	return " " + strings.Join(contents, ",\n ")
}

func isRelationField(name string) bool {
	for _, field := range entities.RelationFields {
		if strings.EqualFold(string(field), name) {
			return true
		}
	}
	return false
}
