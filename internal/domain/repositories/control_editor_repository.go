package repositories

import (
	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// RelationFields gives access to the relation-valued fields of a source
// package, whatever the backing artifact.
type RelationFields interface {
	// Field returns the raw value of a scalar field.
	Field(field entities.ControlField) (string, bool)

	// Relations parses a relation field. The boolean is false when the field is absent.
	Relations(field entities.ControlField) (*entities.Relations, bool, error)

	// SetRelations stores a relation field back into the document.
	SetRelations(field entities.ControlField, relations *entities.Relations) error
}

// SourceView is a handle on the source package of a ControlEditor. It is
// re-resolved against the editor's document on every call.
type SourceView interface {
	RelationFields

	// Name returns the source package name, if it can be determined.
	Name() (string, bool)

	// EnsureBuildDep adds entry to Build-Depends unless it is already there.
	EnsureBuildDep(entry *entities.Entry) (bool, error)

	SetMaintainer(maintainer string) error
	SetUploaders(uploaders []string) error

	// SetVcsURL stores the URL of a VCS type (Git, Browser, Svn, ...).
	SetVcsURL(vcsType, url string) error

	// GetVcsURL looks up the URL of a VCS type, case-insensitively.
	GetVcsURL(vcsType string) (string, bool)
}

// BinaryView is a handle on one binary package.
type BinaryView interface {
	Name() (string, bool)
	// Summary returns the one-line description.
	Summary() (string, bool)
	// LongDescription returns the extended description without the summary.
	LongDescription() (string, bool)
	// Provides lists the virtual packages the binary provides.
	Provides() []string
}

// ControlEditor edits the package metadata of one source tree.
type ControlEditor interface {
	// Backend reports which artifact family the editor is bound to.
	Backend() entities.Backend

	// Path returns the file written by Commit, empty for in-memory documents.
	Path() string

	Source() (SourceView, bool)
	Binaries() []BinaryView

	// WrapAndSort normalises relation fields. It returns true when the document changed.
	WrapAndSort() bool

	// Changed reports whether the document differs from the file it was read from.
	Changed() bool
	// Commit writes the document when it differs from the file on disk and
	// reports whether it did.
	Commit() (bool, error)
}

// EditorRepository opens the control editor of a source tree.
type EditorRepository interface {
	Open(dir string) (ControlEditor, error)
}
