package entities

import "strings"

// ControlField names a field of a Debian source control paragraph.
type ControlField string

const (
	FieldSource            ControlField = "Source"
	FieldPackage           ControlField = "Package"
	FieldMaintainer        ControlField = "Maintainer"
	FieldUploaders         ControlField = "Uploaders"
	FieldHomepage          ControlField = "Homepage"
	FieldSection           ControlField = "Section"
	FieldPriority          ControlField = "Priority"
	FieldStandardsVersion  ControlField = "Standards-Version"
	FieldBuildDepends      ControlField = "Build-Depends"
	FieldBuildDependsArch  ControlField = "Build-Depends-Arch"
	FieldBuildDependsIndep ControlField = "Build-Depends-Indep"
	FieldBuildConflicts    ControlField = "Build-Conflicts"
	FieldDepends           ControlField = "Depends"
	FieldPreDepends        ControlField = "Pre-Depends"
	FieldRecommends        ControlField = "Recommends"
	FieldSuggests          ControlField = "Suggests"
	FieldBreaks            ControlField = "Breaks"
	FieldConflicts         ControlField = "Conflicts"
	FieldProvides          ControlField = "Provides"
	FieldReplaces          ControlField = "Replaces"
	FieldDescription       ControlField = "Description"
	FieldXDHCompat         ControlField = "X-DH-Compat"
)

// RelationFields lists the fields whose values are relation sets.
//
//nolint:gochecknoglobals // read-only lookup table
var RelationFields = []ControlField{
	FieldBuildDepends,
	FieldBuildDependsArch,
	FieldBuildDependsIndep,
	FieldBuildConflicts,
	FieldDepends,
	FieldPreDepends,
	FieldRecommends,
	FieldSuggests,
	FieldBreaks,
	FieldConflicts,
	FieldProvides,
	FieldReplaces,
}

// VcsField returns the control field carrying the URL of the given VCS type,
// e.g. "git" gives "Vcs-Git".
func VcsField(vcsType string) ControlField {
	if vcsType == "" {
		return "Vcs-"
	}
	return ControlField("Vcs-" + capitalize(vcsType))
}

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
