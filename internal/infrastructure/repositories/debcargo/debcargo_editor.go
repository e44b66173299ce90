package debcargo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

const (
	// DebcargoPath is the location of the packaging manifest inside a source tree.
	DebcargoPath = "debian/debcargo.toml"
	// CargoPath is the location of the crate manifest.
	CargoPath = "Cargo.toml"

	// DefaultMaintainer maintains crates whose manifest names nobody.
	DefaultMaintainer = "Debian Rust Maintainers <pkg-rust-maintainers@alioth-lists.debian.net>"
	// DefaultSection is the archive section of Rust crates.
	DefaultSection = "rust"
	// CurrentStandardsVersion is assumed when the manifest does not set one.
	CurrentStandardsVersion = "4.5.1"
	// DefaultPriority is the archive priority of Rust crates.
	DefaultPriority = "optional"

	sourceTable      = "source"
	debcargoFileMode = 0o644
)

// Editor edits a debcargo.toml file, reading defaults from the crate's Cargo.toml.
type Editor struct {
	path     string
	original string
	document *tomlDocument
	cargo    map[string]any
}

// Open reads the manifest at path without a companion Cargo.toml.
func Open(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	editor, err := Parse(string(data), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	editor.path = path
	return editor, nil
}

// FromDirectory opens debian/debcargo.toml below dir together with Cargo.toml.
// A missing Cargo.toml leaves the crate-derived defaults unresolved.
func FromDirectory(dir string) (*Editor, error) {
	editor, err := Open(filepath.Join(dir, DebcargoPath))
	if err != nil {
		return nil, err
	}

	cargoPath := filepath.Join(dir, CargoPath)
	data, err := os.ReadFile(cargoPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debugf("[debcargo] No %s, crate defaults unavailable", cargoPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", cargoPath, err)
	default:
		cargo := map[string]any{}
		if unmarshalErr := toml.Unmarshal(data, &cargo); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", cargoPath, unmarshalErr)
		}
		editor.cargo = cargo
	}
	return editor, nil
}

// Parse builds an in-memory editor from manifest text. An empty cargo text
// means there is no Cargo.toml.
func Parse(debcargoText, cargoText string) (*Editor, error) {
	document := parseTOMLDocument(debcargoText)
	if _, err := document.decode(); err != nil {
		return nil, err
	}
	editor := &Editor{original: debcargoText, document: document}
	if cargoText != "" {
		cargo := map[string]any{}
		if err := toml.Unmarshal([]byte(cargoText), &cargo); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", CargoPath, err)
		}
		editor.cargo = cargo
	}
	return editor, nil
}

// Backend identifies the manifest-based artifact family.
func (it *Editor) Backend() entities.Backend { return entities.BackendManifest }

// Path returns the manifest location, empty for in-memory editors.
func (it *Editor) Path() string { return it.path }

// String returns the current manifest text.
func (it *Editor) String() string { return it.document.String() }

// Source returns the view on the source package. It always exists.
func (it *Editor) Source() *SourceView {
	return &SourceView{editor: it}
}

// Binaries synthesizes the library package and, when enabled, the executable package.
func (it *Editor) Binaries() []*BinaryView {
	if _, ok := it.crateName(); !ok {
		return nil
	}
	views := []*BinaryView{{editor: it, kind: binaryLib}}
	if it.hasBinary() {
		views = append(views, &BinaryView{editor: it, kind: binaryBin})
	}
	return views
}

// WrapAndSort has nothing to normalise in a manifest.
func (it *Editor) WrapAndSort() bool { return false }

// Changed reports whether the text differs from what was read.
func (it *Editor) Changed() bool { return it.document.String() != it.original }

// Commit writes the manifest when its text differs from what was read.
func (it *Editor) Commit() (bool, error) {
	updated := it.document.String()
	if updated == it.original {
		return false, nil
	}
	if it.path == "" {
		return true, nil
	}
	if err := os.WriteFile(it.path, []byte(updated), debcargoFileMode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", it.path, err)
	}
	logger.Debugf("[debcargo] Wrote %s", it.path)
	it.original = updated
	return true, nil
}

func (it *Editor) data() map[string]any {
	data, err := it.document.decode()
	if err != nil {
		logger.Warnf("[debcargo] %v", err)
		return map[string]any{}
	}
	return data
}

func (it *Editor) crateName() (string, bool) {
	return lookupString(it.cargo, "package", "name")
}

func (it *Editor) crateVersion() (string, bool) {
	return lookupString(it.cargo, "package", "version")
}

func (it *Editor) semverSuffix() bool {
	data := it.data()
	if value, ok := lookupBool(data, "semver_suffix"); ok {
		return value
	}
	value, _ := lookupBool(data, sourceTable, "semver_suffix")
	return value
}

func (it *Editor) hasBinary() bool {
	if value, ok := lookupBool(it.data(), "bin"); ok {
		return value
	}
	return !it.semverSuffix()
}

// versionSuffix is "-major.minor" for semver-suffixed packages.
func (it *Editor) versionSuffix() string {
	if !it.semverSuffix() {
		return ""
	}
	version, _ := it.crateVersion()
	if pair, ok := SemverPair(version); ok {
		return "-" + pair
	}
	return ""
}

func (it *Editor) features() []string {
	table, ok := lookup(it.cargo, "features")
	if !ok {
		return nil
	}
	features, ok := table.(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	return names
}

func (it *Editor) globalSummary() (string, bool) {
	if summary, ok := lookupString(it.data(), "summary"); ok {
		return summary + " - Rust source code", true
	}
	if description, ok := lookupString(it.cargo, "package", "description"); ok {
		first, _, _ := strings.Cut(description, "\n")
		return first, true
	}
	return "", false
}

func lookup(data map[string]any, path ...string) (any, bool) {
	var current any = data
	for _, key := range path {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = table[key]; !ok {
			return nil, false
		}
	}
	return current, true
}

func lookupString(data map[string]any, path ...string) (string, bool) {
	value, ok := lookup(data, path...)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

func lookupBool(data map[string]any, path ...string) (bool, bool) {
	value, ok := lookup(data, path...)
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

func lookupStrings(data map[string]any, path ...string) ([]string, bool) {
	value, ok := lookup(data, path...)
	if !ok {
		return nil, false
	}
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			values = append(values, s)
		}
	}
	return values, true
}
