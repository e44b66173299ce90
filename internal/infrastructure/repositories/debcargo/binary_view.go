package debcargo

import (
	"slices"
)

type binaryKind string

const (
	binaryLib binaryKind = "lib"
	binaryBin binaryKind = "bin"
)

// BinaryView is a binary package synthesized from the crate metadata. Its
// overrides live in [packages.lib] or [packages.bin].
type BinaryView struct {
	editor *Editor
	kind   binaryKind
}

func (it *BinaryView) Name() (string, bool) {
	crate, ok := it.editor.crateName()
	if !ok {
		return "", false
	}
	if it.kind == binaryBin {
		if name, found := lookupString(it.editor.data(), "bin_name"); found {
			return name, true
		}
		return crate, true
	}
	return DebcargoBinaryName(crate, it.editor.versionSuffix()), true
}

// Summary falls back to the global summary, then to the crate description.
func (it *BinaryView) Summary() (string, bool) {
	if summary, ok := it.override("summary"); ok {
		return summary, true
	}
	return it.editor.globalSummary()
}

func (it *BinaryView) LongDescription() (string, bool) {
	if description, ok := it.override("description"); ok {
		return description, true
	}
	if description, ok := lookupString(it.editor.data(), "description"); ok {
		return description, true
	}
	crate, ok := it.editor.crateName()
	if !ok {
		return "", false
	}
	if it.kind == binaryBin {
		return "This package contains the source for the Rust " + crate +
			" crate, packaged by debcargo for use with cargo and dh-cargo.", true
	}
	return "Source code for Debianized Rust crate \"" + crate + "\"", true
}

// Provides returns the default provides of the library. The executable
// provides nothing.
func (it *BinaryView) Provides() []string {
	if it.kind != binaryLib {
		return nil
	}
	return it.DefaultProvides()
}

// DefaultProvides lists the virtual packages debcargo provides for the
// library: every version suffix combined with every feature suffix.
func (it *BinaryView) DefaultProvides() []string {
	crate, ok := it.editor.crateName()
	if !ok {
		return nil
	}
	version, _ := it.editor.crateVersion()
	suffixes, ok := versionSuffixes(version)
	if !ok {
		return nil
	}
	if !it.editor.semverSuffix() {
		suffixes = append([]string{""}, suffixes...)
	}

	features := []string{"", "+default"}
	for _, feature := range it.editor.features() {
		if feature != "default" {
			features = append(features, "+"+feature)
		}
	}

	own, _ := it.Name()
	var provides []string
	for _, versionSuffix := range suffixes {
		for _, featureSuffix := range features {
			name := DebcargoBinaryName(crate, versionSuffix+featureSuffix)
			if name != own && !slices.Contains(provides, name) {
				provides = append(provides, name)
			}
		}
	}
	slices.Sort(provides)
	return provides
}

func (it *BinaryView) override(key string) (string, bool) {
	return lookupString(it.editor.data(), "packages", string(it.kind), key)
}
