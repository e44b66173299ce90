package deb822

import (
	"strings"
)

// Paragraph is a run of fields, possibly interleaved with comment lines.
// Field names are matched case-insensitively and keep their written case.
type Paragraph struct {
	items []*item
}

// item is either a field (name set) or a comment line (name empty).
// raw holds everything after the colon, continuation lines included.
type item struct {
	name    string
	raw     string
	newline bool
}

func (it *item) String() string {
	text := it.raw
	if it.name != "" {
		text = it.name + ":" + it.raw
	}
	if it.newline {
		text += "\n"
	}
	return text
}

// Names returns the field names in written order.
func (it *Paragraph) Names() []string {
	var names []string
	for _, i := range it.items {
		if i.name != "" {
			names = append(names, i.name)
		}
	}
	return names
}

// Get returns the value of a field with surrounding whitespace removed.
func (it *Paragraph) Get(name string) (string, bool) {
	raw, ok := it.Raw(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// Raw returns a field value as written after the colon, without the comment
// lines embedded between its continuation lines.
func (it *Paragraph) Raw(name string) (string, bool) {
	field := it.field(name)
	if field == nil {
		return "", false
	}
	if !strings.Contains(field.raw, "\n#") {
		return field.raw, true
	}
	lines := strings.Split(field.raw, "\n")
	kept := lines[:1]
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "#") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), true
}

// Set stores a single-line value, written after one space.
func (it *Paragraph) Set(name, value string) {
	raw := ""
	if value != "" {
		raw = " " + value
	}
	it.SetRaw(name, raw)
}

// SetRaw stores raw as the text following the colon. Comment lines embedded
// in the old value are kept. A new field is appended at the end of the
// paragraph.
func (it *Paragraph) SetRaw(name, raw string) {
	if field := it.field(name); field != nil {
		field.raw = restoreComments(field.raw, raw)
		return
	}
	field := &item{name: name, raw: raw, newline: true}
	if len(it.items) > 0 {
		last := it.items[len(it.items)-1]
		field.newline = last.newline
		last.newline = true
	}
	it.items = append(it.items, field)
}

// Remove deletes a field and reports whether it was present.
func (it *Paragraph) Remove(name string) bool {
	for i, field := range it.items {
		if field.name != "" && strings.EqualFold(field.name, name) {
			if i == len(it.items)-1 && i > 0 {
				it.items[i-1].newline = field.newline
			}
			it.items = append(it.items[:i], it.items[i+1:]...)
			return true
		}
	}
	return false
}

func (it *Paragraph) String() string {
	var builder strings.Builder
	for _, i := range it.items {
		builder.WriteString(i.String())
	}
	return builder.String()
}

func (it *Paragraph) field(name string) *item {
	for _, i := range it.items {
		if i.name != "" && strings.EqualFold(i.name, name) {
			return i
		}
	}
	return nil
}

// absorbComments returns the field a continuation line belongs to. Comment
// lines between that field and the continuation become part of its value.
func (it *Paragraph) absorbComments() *item {
	i := len(it.items) - 1
	for i >= 0 && it.items[i].name == "" {
		i--
	}
	if i < 0 {
		return nil
	}
	field := it.items[i]
	for _, comment := range it.items[i+1:] {
		field.raw += "\n" + comment.raw
	}
	it.items = it.items[:i+1]
	return field
}

// commentBlock is a run of comment lines embedded in a field value, with the
// value line that followed it and that line's position among the value lines.
type commentBlock struct {
	lines  []string
	next   string
	offset int
}

// restoreComments carries the comment lines of old over to updated. A block
// goes back in front of the line it preceded, or in front of the line at the
// same position when that line changed.
func restoreComments(old, updated string) string {
	if !strings.Contains(old, "\n#") {
		return updated
	}

	var blocks []commentBlock
	var pending []string
	offset := 0
	for i, line := range strings.Split(old, "\n") {
		if i > 0 && strings.HasPrefix(line, "#") {
			pending = append(pending, line)
			continue
		}
		if len(pending) > 0 {
			blocks = append(blocks, commentBlock{lines: pending, next: line, offset: offset})
			pending = nil
		}
		offset++
	}

	lines := strings.Split(updated, "\n")
	before := make(map[int][]string, len(blocks))
	tail := pending
	for _, block := range blocks {
		at := -1
		for j := 1; j < len(lines); j++ {
			if _, taken := before[j]; !taken && lines[j] == block.next {
				at = j
				break
			}
		}
		if at < 0 && block.offset < len(lines) {
			at = block.offset
		}
		if at < 0 {
			tail = append(tail, block.lines...)
			continue
		}
		before[at] = append(before[at], block.lines...)
	}

	result := make([]string, 0, len(lines)+len(tail))
	for j, line := range lines {
		result = append(result, before[j]...)
		result = append(result, line)
	}
	result = append(result, tail...)
	return strings.Join(result, "\n")
}
