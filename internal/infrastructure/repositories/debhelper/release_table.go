package debhelper

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed releases.yaml
var releasesYAML []byte

// ReleaseTable maps release codenames to the debhelper version they ship.
type ReleaseTable struct {
	versions map[string]string
}

// NewReleaseTable loads the table embedded in the binary.
func NewReleaseTable() (*ReleaseTable, error) {
	return ParseReleaseTable(releasesYAML)
}

// ParseReleaseTable reads a "distribution: {release: version}" YAML document.
func ParseReleaseTable(data []byte) (*ReleaseTable, error) {
	var distributions map[string]map[string]string
	if err := yaml.Unmarshal(data, &distributions); err != nil {
		return nil, fmt.Errorf("failed to parse release table: %w", err)
	}
	versions := make(map[string]string)
	for _, releases := range distributions {
		for release, version := range releases {
			versions[release] = version
		}
	}
	return &ReleaseTable{versions: versions}, nil
}

// DebhelperVersion returns the debhelper version shipped in release.
func (it *ReleaseTable) DebhelperVersion(release string) (string, bool) {
	version, ok := it.versions[release]
	return version, ok
}
