package debcargo

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// tomlDocument is a line-oriented view of a TOML file. Reads decode the
// current text with go-toml, writes splice rendered key lines in place so
// that every other byte survives.
type tomlDocument struct {
	lines           []string
	trailingNewline bool
}

type tomlLineKind int

const (
	tomlHeader tomlLineKind = iota
	tomlKey
)

// tomlLine is a table header or a key/value pair spanning start..end.
type tomlLine struct {
	kind  tomlLineKind
	path  string // dotted path of the header, or of table + key
	table string // table the line belongs to
	start int
	end   int
	eq    int // offset of "=" on the start line
}

func parseTOMLDocument(text string) *tomlDocument {
	doc := &tomlDocument{trailingNewline: strings.HasSuffix(text, "\n")}
	if text == "" {
		return doc
	}
	doc.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return doc
}

func (it *tomlDocument) String() string {
	text := strings.Join(it.lines, "\n")
	if it.trailingNewline && len(it.lines) > 0 {
		text += "\n"
	}
	return text
}

func (it *tomlDocument) decode() (map[string]any, error) {
	data := map[string]any{}
	if err := toml.Unmarshal([]byte(it.String()), &data); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	return data, nil
}

// set replaces the value of table.key or inserts it after the last key of
// the table. A missing table is created at the end of the document.
func (it *tomlDocument) set(table, key, rendered string) {
	target := joinPath(table, key)
	scanned := it.scan()

	for _, line := range scanned {
		if line.kind == tomlKey && line.path == target {
			lhs := strings.TrimRight(it.lines[line.start][:line.eq+1], " \t")
			it.splice(line.start, line.end+1, lhs+" "+rendered)
			return
		}
	}

	header, last, dotted := -1, -1, -1
	for _, line := range scanned {
		switch {
		case line.kind == tomlHeader && line.path == table:
			header = line.start
		case line.kind == tomlKey && line.table == table:
			last = line.end
		case line.kind == tomlKey && line.table == "" && table != "" && strings.HasPrefix(line.path, table+"."):
			dotted = line.end
		}
	}

	switch {
	case table == "" || header >= 0:
		at := header + 1
		if last >= 0 {
			at = last + 1
		}
		it.splice(at, at, key+" = "+rendered)
	case dotted >= 0:
		it.splice(dotted+1, dotted+1, table+"."+key+" = "+rendered)
	default:
		if len(it.lines) > 0 && strings.TrimSpace(it.lines[len(it.lines)-1]) != "" {
			it.lines = append(it.lines, "")
		}
		it.lines = append(it.lines, "["+table+"]", key+" = "+rendered)
		it.trailingNewline = true
	}
}

// remove deletes table.key and reports whether it existed.
func (it *tomlDocument) remove(table, key string) bool {
	target := joinPath(table, key)
	for _, line := range it.scan() {
		if line.kind == tomlKey && line.path == target {
			it.lines = append(it.lines[:line.start], it.lines[line.end+1:]...)
			return true
		}
	}
	return false
}

func (it *tomlDocument) splice(from, to int, replacement ...string) {
	updated := make([]string, 0, len(it.lines)-(to-from)+len(replacement))
	updated = append(updated, it.lines[:from]...)
	updated = append(updated, replacement...)
	updated = append(updated, it.lines[to:]...)
	it.lines = updated
}

// scan classifies every header and key line, skipping over multi-line values.
func (it *tomlDocument) scan() []tomlLine {
	var scanned []tomlLine
	table := ""
	for i := 0; i < len(it.lines); i++ {
		trimmed := strings.TrimSpace(it.lines[i])
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, "[["):
			parts, _ := parseKeyPath(trimmed[2:])
			table = "[[" + strings.Join(parts, ".") + "]]"
			scanned = append(scanned, tomlLine{kind: tomlHeader, path: table, start: i, end: i})
		case strings.HasPrefix(trimmed, "["):
			parts, _ := parseKeyPath(trimmed[1:])
			table = strings.Join(parts, ".")
			scanned = append(scanned, tomlLine{kind: tomlHeader, path: table, start: i, end: i})
		default:
			indent := len(it.lines[i]) - len(strings.TrimLeft(it.lines[i], " \t"))
			parts, stop := parseKeyPath(trimmed)
			if len(parts) == 0 || stop >= len(trimmed) || trimmed[stop] != '=' {
				continue
			}
			eq := indent + stop
			end := valueEnd(it.lines, i, eq+1)
			scanned = append(scanned, tomlLine{
				kind:  tomlKey,
				path:  joinPath(table, strings.Join(parts, ".")),
				table: table,
				start: i,
				end:   end,
				eq:    eq,
			})
			i = end
		}
	}
	return scanned
}

// parseKeyPath reads a dotted key made of bare or quoted parts and returns
// the parts with the offset of the first character after the key.
func parseKeyPath(s string) ([]string, int) {
	var parts []string
	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '"', '\'':
			quote := s[i]
			end := strings.IndexByte(s[i+1:], quote)
			if end < 0 {
				return parts, len(s)
			}
			parts = append(parts, s[i+1:i+1+end])
			i += end + 2
		default:
			start := i
			for i < len(s) && isBareKeyChar(s[i]) {
				i++
			}
			if start == i {
				return parts, i
			}
			parts = append(parts, s[start:i])
		}
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i < len(s) && s[i] == '.' {
			i++
			continue
		}
		return parts, i
	}
	return parts, i
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// valueEnd returns the last line of the value starting at lines[start][offset:].
//
//nolint:gocognit // single pass over the string and bracket states
func valueEnd(lines []string, start, offset int) int {
	depth := 0
	quote := ""
	for i := start; i < len(lines); i++ {
		line := lines[i]
		j := 0
		if i == start {
			j = offset
		}
		for j < len(line) {
			switch quote {
			case `"""`, `'''`:
				if strings.HasPrefix(line[j:], quote) {
					quote = ""
					j += 3
					continue
				}
				if quote == `"""` && line[j] == '\\' {
					j++
				}
				j++
			case `"`:
				if line[j] == '\\' {
					j++
				} else if line[j] == '"' {
					quote = ""
				}
				j++
			case `'`:
				if line[j] == '\'' {
					quote = ""
				}
				j++
			default:
				switch {
				case strings.HasPrefix(line[j:], `"""`), strings.HasPrefix(line[j:], `'''`):
					quote = line[j : j+3]
					j += 3
				case line[j] == '"' || line[j] == '\'':
					quote = line[j : j+1]
					j++
				case line[j] == '#':
					j = len(line)
				case line[j] == '[' || line[j] == '{':
					depth++
					j++
				case line[j] == ']' || line[j] == '}':
					depth--
					j++
				default:
					j++
				}
			}
		}
		if quote == `"` || quote == `'` {
			quote = ""
		}
		if depth <= 0 && quote == "" {
			return i
		}
	}
	return len(lines) - 1
}

func joinPath(table, key string) string {
	if table == "" {
		return key
	}
	return table + "." + key
}

// setValue encodes value with go-toml and stores it under table.key.
func (it *tomlDocument) setValue(table, key string, value any) error {
	rendered, err := renderValue(value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", joinPath(table, key), err)
	}
	it.set(table, key, rendered)
	return nil
}

const renderKey = "v"

// renderValue returns the right-hand side go-toml writes for value.
func renderValue(value any) (string, error) {
	if values, ok := value.([]string); ok && values == nil {
		value = []string{}
	}
	encoded, err := toml.Marshal(map[string]any{renderKey: value})
	if err != nil {
		return "", fmt.Errorf("failed to render TOML value: %w", err)
	}
	line := strings.TrimSuffix(string(encoded), "\n")
	return strings.TrimPrefix(line, renderKey+" = "), nil
}
