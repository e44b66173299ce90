package control

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/deb822"
)

// ControlPath is the location of the control file inside a source tree.
const ControlPath = "debian/control"

const controlFileMode = 0o644

// Editor edits a debian/control file without disturbing the text it does not touch.
type Editor struct {
	path     string
	original string
	document *deb822.Document
}

// Open reads and parses the control file at path.
func Open(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	editor, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	editor.path = path
	return editor, nil
}

// FromDirectory opens debian/control below dir.
func FromDirectory(dir string) (*Editor, error) {
	return Open(filepath.Join(dir, ControlPath))
}

// Parse builds an in-memory editor. Commit never writes for such an editor.
func Parse(text string) (*Editor, error) {
	document, err := deb822.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Editor{original: text, document: document}, nil
}

// Backend identifies the stanza-based artifact family.
func (it *Editor) Backend() entities.Backend { return entities.BackendStanza }

// Path returns the control file location, empty for in-memory editors.
func (it *Editor) Path() string { return it.path }

// String returns the current text of the document.
func (it *Editor) String() string { return it.document.String() }

// Source returns a view on the source paragraph.
func (it *Editor) Source() (*SourceView, bool) {
	if _, ok := it.document.Find(string(entities.FieldSource)); !ok {
		return nil, false
	}
	return &SourceView{editor: it}, true
}

// Binaries returns one view per paragraph carrying a Package field.
func (it *Editor) Binaries() []*BinaryView {
	var views []*BinaryView
	for i, paragraph := range it.document.Paragraphs() {
		if _, ok := paragraph.Raw(string(entities.FieldPackage)); ok {
			views = append(views, &BinaryView{editor: it, index: i})
		}
	}
	return views
}

// Changed reports whether the text differs from what was read.
func (it *Editor) Changed() bool { return it.document.String() != it.original }

// Commit writes the document when its text differs from what was read.
func (it *Editor) Commit() (bool, error) {
	updated := it.document.String()
	if updated == it.original {
		return false, nil
	}
	if it.path == "" {
		return true, nil
	}
	if err := os.WriteFile(it.path, []byte(updated), controlFileMode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", it.path, err)
	}
	logger.Debugf("[control] Wrote %s", it.path)
	it.original = updated
	return true, nil
}
