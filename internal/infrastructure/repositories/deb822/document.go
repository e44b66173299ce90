package deb822

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned for a line that is neither a field, a
// continuation, a comment nor blank.
var ErrMalformedLine = errors.New("malformed deb822 line")

// ErrOrphanContinuation is returned for a continuation line with no field before it.
var ErrOrphanContinuation = errors.New("continuation line without a field")

// Document is a sequence of paragraphs together with the blank lines and
// comments separating them. String returns the parsed text byte for byte
// until a paragraph is modified.
type Document struct {
	chunks []chunk
}

type chunk struct {
	paragraph *Paragraph
	raw       string
}

// Parse builds a Document from deb822 text.
func Parse(text string) (*Document, error) {
	doc := &Document{}
	var current *Paragraph

	for number, line := range splitLines(text) {
		content := strings.TrimRight(line, "\n")
		switch {
		case strings.TrimSpace(content) == "":
			current = nil
			doc.chunks = append(doc.chunks, chunk{raw: line})
		case strings.HasPrefix(content, "#"):
			if current != nil {
				current.items = append(current.items, &item{raw: content, newline: hasNewline(line)})
			} else {
				doc.chunks = append(doc.chunks, chunk{raw: line})
			}
		case content[0] == ' ' || content[0] == '\t':
			if current == nil {
				return nil, fmt.Errorf("line %d: %w", number+1, ErrOrphanContinuation)
			}
			field := current.absorbComments()
			if field == nil {
				return nil, fmt.Errorf("line %d: %w", number+1, ErrOrphanContinuation)
			}
			field.raw += "\n" + content
			field.newline = hasNewline(line)
		default:
			name, value, found := strings.Cut(content, ":")
			if !found || name == "" || strings.ContainsAny(name, " \t") {
				return nil, fmt.Errorf("line %d: %w: %q", number+1, ErrMalformedLine, content)
			}
			if current == nil {
				current = &Paragraph{}
				doc.chunks = append(doc.chunks, chunk{paragraph: current})
			}
			current.items = append(current.items, &item{name: name, raw: value, newline: hasNewline(line)})
		}
	}

	return doc, nil
}

// Paragraphs returns the paragraphs in document order.
func (it *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, c := range it.chunks {
		if c.paragraph != nil {
			paragraphs = append(paragraphs, c.paragraph)
		}
	}
	return paragraphs
}

// Find returns the first paragraph carrying the field.
func (it *Document) Find(field string) (*Paragraph, bool) {
	for _, paragraph := range it.Paragraphs() {
		if _, ok := paragraph.Raw(field); ok {
			return paragraph, true
		}
	}
	return nil, false
}

func (it *Document) String() string {
	var builder strings.Builder
	for _, c := range it.chunks {
		if c.paragraph != nil {
			builder.WriteString(c.paragraph.String())
		} else {
			builder.WriteString(c.raw)
		}
	}
	return builder.String()
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func hasNewline(line string) bool {
	return strings.HasSuffix(line, "\n")
}
