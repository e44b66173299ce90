package debcargo

// SetTOMLKey runs tomlDocument.set on text for testing.
func SetTOMLKey(text, table, key, rendered string) string {
	doc := parseTOMLDocument(text)
	doc.set(table, key, rendered)
	return doc.String()
}

// RemoveTOMLKey runs tomlDocument.remove on text for testing.
func RemoveTOMLKey(text, table, key string) (string, bool) {
	doc := parseTOMLDocument(text)
	removed := doc.remove(table, key)
	return doc.String(), removed
}

// RenderValue exports renderValue for testing.
var RenderValue = renderValue //nolint:gochecknoglobals // test export
