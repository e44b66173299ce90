package entities

// Backend identifies which artifact family a control editor is bound to.
type Backend int

const (
	// BackendStanza edits a deb822 debian/control file.
	BackendStanza Backend = iota
	// BackendManifest edits debian/debcargo.toml paired with Cargo.toml.
	BackendManifest
)

func (b Backend) String() string {
	switch b {
	case BackendStanza:
		return "stanza"
	case BackendManifest:
		return "manifest"
	default:
		return "unknown"
	}
}
