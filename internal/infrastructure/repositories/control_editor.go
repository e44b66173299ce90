package repositories

import (
	"github.com/rios0rios0/debbrush/internal/domain/entities"
	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/control"
	"github.com/rios0rios0/debbrush/internal/infrastructure/repositories/debcargo"
)

// ControlEditor binds the domain editing contract to one of the two
// document backends, selected by its tag.
type ControlEditor struct {
	backend  entities.Backend
	stanza   *control.Editor
	manifest *debcargo.Editor
}

// NewStanzaEditor wraps a debian/control editor.
func NewStanzaEditor(editor *control.Editor) *ControlEditor {
	return &ControlEditor{backend: entities.BackendStanza, stanza: editor}
}

// NewManifestEditor wraps a debian/debcargo.toml editor.
func NewManifestEditor(editor *debcargo.Editor) *ControlEditor {
	return &ControlEditor{backend: entities.BackendManifest, manifest: editor}
}

func (it *ControlEditor) Backend() entities.Backend { return it.backend }

func (it *ControlEditor) Path() string {
	if it.backend == entities.BackendManifest {
		return it.manifest.Path()
	}
	return it.stanza.Path()
}

func (it *ControlEditor) Source() (domainRepos.SourceView, bool) {
	if it.backend == entities.BackendManifest {
		return it.manifest.Source(), true
	}
	source, ok := it.stanza.Source()
	if !ok {
		return nil, false
	}
	return source, true
}

func (it *ControlEditor) Binaries() []domainRepos.BinaryView {
	var views []domainRepos.BinaryView
	if it.backend == entities.BackendManifest {
		for _, binary := range it.manifest.Binaries() {
			views = append(views, binary)
		}
		return views
	}
	for _, binary := range it.stanza.Binaries() {
		views = append(views, binary)
	}
	return views
}

func (it *ControlEditor) WrapAndSort() bool {
	if it.backend == entities.BackendManifest {
		return it.manifest.WrapAndSort()
	}
	return it.stanza.WrapAndSort()
}

func (it *ControlEditor) Changed() bool {
	if it.backend == entities.BackendManifest {
		return it.manifest.Changed()
	}
	return it.stanza.Changed()
}

func (it *ControlEditor) Commit() (bool, error) {
	if it.backend == entities.BackendManifest {
		return it.manifest.Commit()
	}
	return it.stanza.Commit()
}

var (
	_ domainRepos.ControlEditor = (*ControlEditor)(nil)
	_ domainRepos.SourceView    = (*control.SourceView)(nil)
	_ domainRepos.SourceView    = (*debcargo.SourceView)(nil)
	_ domainRepos.BinaryView    = (*control.BinaryView)(nil)
	_ domainRepos.BinaryView    = (*debcargo.BinaryView)(nil)
)
