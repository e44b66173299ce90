package debcargo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

// ErrUnsupportedField is returned when a control field has no manifest equivalent.
var ErrUnsupportedField = errors.New("field not supported by debcargo.toml")

const (
	vcsGitKey       = "vcs_git"
	vcsBrowserKey   = "vcs_browser"
	extraLinesKey   = "extra_lines"
	buildDependsKey = "build_depends"

	defaultVcsGitFormat     = "https://salsa.debian.org/rust-team/debcargo-conf.git [src/%s]"
	defaultVcsBrowserFormat = "https://salsa.debian.org/rust-team/debcargo-conf/tree/master/src/%s"
)

// SourceView exposes the [source] table of debcargo.toml as control fields.
// Values the manifest leaves out fall back to debcargo's defaults.
type SourceView struct {
	editor *Editor
}

// Name returns rust-<crate>, with a -major.minor suffix for semver-suffixed packages.
func (it *SourceView) Name() (string, bool) {
	crate, ok := it.editor.crateName()
	if !ok {
		return "", false
	}
	return "rust-" + Debnormalize(crate) + it.editor.versionSuffix(), true
}

func (it *SourceView) StandardsVersion() string {
	return it.stringOr("standards-version", CurrentStandardsVersion)
}

// Homepage falls back to the homepage of the crate.
func (it *SourceView) Homepage() (string, bool) {
	if homepage, ok := it.get("homepage"); ok {
		return homepage, true
	}
	return lookupString(it.editor.cargo, "package", "homepage")
}

func (it *SourceView) Section() string {
	return it.stringOr("section", DefaultSection)
}

func (it *SourceView) Priority() string {
	return it.stringOr("priority", DefaultPriority)
}

// RulesRequiresRoot accepts both a boolean and the "yes"/"no" strings.
func (it *SourceView) RulesRequiresRoot() bool {
	data := it.editor.data()
	if value, ok := lookupBool(data, sourceTable, "requires_root"); ok {
		return value
	}
	value, _ := lookupString(data, sourceTable, "requires_root")
	return value == "yes"
}

func (it *SourceView) Maintainer() string {
	return it.stringOr("maintainer", DefaultMaintainer)
}

func (it *SourceView) Uploaders() ([]string, bool) {
	return lookupStrings(it.editor.data(), sourceTable, "uploaders")
}

func (it *SourceView) SetMaintainer(maintainer string) error {
	return it.editor.document.setValue(sourceTable, "maintainer", maintainer)
}

func (it *SourceView) SetUploaders(uploaders []string) error {
	return it.editor.document.setValue(sourceTable, "uploaders", uploaders)
}

// Field maps control field names onto the manifest.
func (it *SourceView) Field(field entities.ControlField) (string, bool) {
	name := strings.ToLower(string(field))
	switch name {
	case lower(entities.FieldSource):
		return it.Name()
	case lower(entities.FieldMaintainer):
		return it.Maintainer(), true
	case lower(entities.FieldUploaders):
		uploaders, ok := it.Uploaders()
		return strings.Join(uploaders, ", "), ok
	case lower(entities.FieldStandardsVersion):
		return it.StandardsVersion(), true
	case lower(entities.FieldSection):
		return it.Section(), true
	case lower(entities.FieldPriority):
		return it.Priority(), true
	case lower(entities.FieldHomepage):
		return it.Homepage()
	case "rules-requires-root":
		if it.RulesRequiresRoot() {
			return "yes", true
		}
		return "no", true
	}
	if vcsType, ok := strings.CutPrefix(name, "vcs-"); ok {
		return it.GetVcsURL(vcsType)
	}
	return "", false
}

// Relations supports Build-Depends, stored as the [source].build_depends array.
func (it *SourceView) Relations(field entities.ControlField) (*entities.Relations, bool, error) {
	if !strings.EqualFold(string(field), string(entities.FieldBuildDepends)) {
		return nil, false, nil
	}
	entries, ok := lookupStrings(it.editor.data(), sourceTable, buildDependsKey)
	if !ok {
		return nil, false, nil
	}
	relations, err := entities.ParseRelations(strings.Join(entries, ", "))
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", buildDependsKey, err)
	}
	return relations, true, nil
}

func (it *SourceView) SetRelations(field entities.ControlField, relations *entities.Relations) error {
	if !strings.EqualFold(string(field), string(entities.FieldBuildDepends)) {
		return fmt.Errorf("failed to set %s: %w", field, ErrUnsupportedField)
	}
	if relations.IsEmpty() {
		it.editor.document.remove(sourceTable, buildDependsKey)
		return nil
	}
	return it.editor.document.setValue(sourceTable, buildDependsKey, relations.Contents())
}

// EnsureBuildDep adds entry to [source].build_depends unless an identical entry exists.
func (it *SourceView) EnsureBuildDep(entry *entities.Entry) (bool, error) {
	relations, _, err := it.Relations(entities.FieldBuildDepends)
	if err != nil {
		return false, err
	}
	if relations == nil {
		relations = entities.NewRelations()
	}
	if !relations.EnsureRelation(entry) {
		return false, nil
	}
	return true, it.SetRelations(entities.FieldBuildDepends, relations)
}

// GetVcsURL reads vcs_git and vcs_browser natively and any other type from
// the "Vcs-<Type>: <url>" lines of extra_lines.
func (it *SourceView) GetVcsURL(vcsType string) (string, bool) {
	switch strings.ToLower(vcsType) {
	case "git":
		if url, ok := it.get(vcsGitKey); ok {
			return url, true
		}
		return it.defaultVcsURL(defaultVcsGitFormat)
	case "browser":
		if url, ok := it.get(vcsBrowserKey); ok {
			return url, true
		}
		return it.defaultVcsURL(defaultVcsBrowserFormat)
	}

	lines, _ := lookupStrings(it.editor.data(), sourceTable, extraLinesKey)
	for _, line := range lines {
		if value, ok := matchVcsLine(line, vcsType); ok {
			return value, true
		}
	}
	return "", false
}

func (it *SourceView) SetVcsURL(vcsType, url string) error {
	switch strings.ToLower(vcsType) {
	case "git":
		return it.editor.document.setValue(sourceTable, vcsGitKey, url)
	case "browser":
		return it.editor.document.setValue(sourceTable, vcsBrowserKey, url)
	}

	line := string(entities.VcsField(vcsType)) + ": " + url
	lines, _ := lookupStrings(it.editor.data(), sourceTable, extraLinesKey)
	replaced := false
	for i, existing := range lines {
		if _, ok := matchVcsLine(existing, vcsType); ok {
			lines[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, line)
	}
	return it.editor.document.setValue(sourceTable, extraLinesKey, lines)
}

func (it *SourceView) defaultVcsURL(format string) (string, bool) {
	crate, ok := it.editor.crateName()
	if !ok {
		return "", false
	}
	return fmt.Sprintf(format, strings.ToLower(crate)), true
}

func (it *SourceView) get(key string) (string, bool) {
	return lookupString(it.editor.data(), sourceTable, key)
}

func (it *SourceView) stringOr(key, fallback string) string {
	if value, ok := it.get(key); ok {
		return value
	}
	return fallback
}

// matchVcsLine parses "Vcs-<Type>:<spaces><url>", comparing the type case-insensitively.
func matchVcsLine(line, vcsType string) (string, bool) {
	name, value, found := strings.Cut(line, ":")
	if !found || !strings.EqualFold(strings.TrimSpace(name), "Vcs-"+vcsType) {
		return "", false
	}
	return strings.TrimLeft(value, " "), true
}

func lower(field entities.ControlField) string {
	return strings.ToLower(string(field))
}
