package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pault.ag/go/debian/version"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// EnsureMinimumDebhelperVersion makes sure the package build-depends on at
// least the given debhelper version.
//
// A debhelper-compat relation in Build-Depends is authoritative: when its
// level already satisfies minimum nothing changes. Otherwise the floor of
// the plain debhelper relation is raised, leaving debhelper-compat alone.
func EnsureMinimumDebhelperVersion(
	source repositories.RelationFields,
	minimum version.Version,
) (bool, error) {
	for _, field := range []entities.ControlField{
		entities.FieldBuildDependsArch,
		entities.FieldBuildDependsIndep,
	} {
		relations, found, err := source.Relations(field)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", field, err)
		}
		if !found {
			continue
		}
		if relations.Contains(entities.DebhelperPackage) || relations.Contains(entities.DebhelperCompatPackage) {
			return false, entities.NewDebhelperInWrongFieldError(field)
		}
	}

	relations, found, err := source.Relations(entities.FieldBuildDepends)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", entities.FieldBuildDepends, err)
	}
	if !found {
		relations = entities.NewRelations()
	}

	for _, entry := range relations.Entries() {
		for _, compat := range entry.Relations() {
			if compat.Name != entities.DebhelperCompatPackage {
				continue
			}
			satisfied, compatErr := compatSatisfies(entry, compat, minimum)
			if compatErr != nil || satisfied {
				return false, compatErr
			}
		}
	}

	changed, err := relations.EnsureMinimumVersion(entities.DebhelperPackage, minimum)
	if err != nil || !changed {
		return false, err
	}
	if setErr := source.SetRelations(entities.FieldBuildDepends, relations); setErr != nil {
		return false, fmt.Errorf("failed to update %s: %w", entities.FieldBuildDepends, setErr)
	}
	return true, nil
}

// compatSatisfies validates a debhelper-compat relation and reports whether
// its level already reaches minimum.
func compatSatisfies(entry *entities.Entry, compat *entities.Relation, minimum version.Version) (bool, error) {
	if len(entry.Relations()) > 1 {
		return false, entities.ErrComplexDebhelperCompatRule
	}
	if !compat.HasVersion() {
		return false, entities.ErrDebhelperCompatWithoutVersion
	}
	if compat.Operator() != entities.OpEqual {
		return false, entities.ErrComplexDebhelperCompatRule
	}
	current, err := version.Parse(compat.Version())
	if err != nil {
		return false, fmt.Errorf("failed to parse debhelper-compat version %q: %w", compat.Version(), err)
	}
	return version.Compare(current, minimum) >= 0, nil
}

// CompatLevelFromSource returns the compat level declared in the source
// package: X-DH-Compat first, then the debhelper-compat build-dependency.
func CompatLevelFromSource(source repositories.RelationFields) (int, bool, error) {
	if value, ok := source.Field(entities.FieldXDHCompat); ok {
		if level, valid := entities.ParseDebhelperCompat(value); valid {
			return level, true, nil
		}
	}

	relations, found, err := source.Relations(entities.FieldBuildDepends)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s: %w", entities.FieldBuildDepends, err)
	}
	if !found {
		return 0, false, nil
	}
	for _, entry := range relations.Entries() {
		for _, rel := range entry.Relations() {
			if rel.Name != entities.DebhelperCompatPackage || !rel.HasVersion() {
				continue
			}
			if level, valid := entities.ParseDebhelperCompat(rel.Version()); valid {
				return level, true, nil
			}
		}
	}
	return 0, false, nil
}

// CompatLevelFromDocument resolves the compat level of a package whose
// control document is already open: X-DH-Compat, then debhelper-compat, and
// debian/compat only when neither is declared.
func CompatLevelFromDocument(
	source repositories.RelationFields,
	dir string,
	debhelper repositories.DebhelperRepository,
) (int, bool, error) {
	level, found, err := CompatLevelFromSource(source)
	if err != nil || found {
		return level, found, err
	}
	return debhelper.LegacyCompatLevel(dir)
}

// CompatLevel returns the compat level of the package in dir, reading the
// legacy debian/compat file before the control document. It suits callers
// that only have a directory; editor may be nil.
func CompatLevel(
	dir string,
	debhelper repositories.DebhelperRepository,
	editor repositories.ControlEditor,
) (int, bool, error) {
	level, found, err := debhelper.LegacyCompatLevel(dir)
	if err != nil {
		return 0, false, err
	}
	if found {
		return level, true, nil
	}
	if editor == nil {
		return 0, false, nil
	}
	source, ok := editor.Source()
	if !ok {
		return 0, false, nil
	}
	return CompatLevelFromSource(source)
}

// GetSequences lists the dh sequences enabled through dh-sequence-*
// build-dependencies, in written order.
func GetSequences(source repositories.RelationFields) ([]string, error) {
	relations, found, err := source.Relations(entities.FieldBuildDepends)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", entities.FieldBuildDepends, err)
	}
	if !found {
		return nil, nil
	}
	var sequences []string
	for _, entry := range relations.Entries() {
		for _, rel := range entry.Relations() {
			if name, ok := strings.CutPrefix(rel.Name, entities.DhSequencePrefix); ok {
				sequences = append(sequences, name)
			}
		}
	}
	return sequences, nil
}

// MaximumDebhelperCompatVersion returns the highest compat level usable for
// a release: the major version of the debhelper it ships, or the lowest
// non-deprecated level of the installed debhelper for unknown releases.
func MaximumDebhelperCompatVersion(
	ctx context.Context,
	debhelper repositories.DebhelperRepository,
	release string,
) (int, error) {
	if raw, ok := debhelper.DebhelperVersion(release); ok {
		parsed, err := version.Parse(raw)
		if err != nil {
			return 0, fmt.Errorf("failed to parse debhelper version %q: %w", raw, err)
		}
		major, _, _ := strings.Cut(parsed.Version, ".")
		level, err := strconv.Atoi(major)
		if err != nil {
			return 0, fmt.Errorf("failed to parse debhelper major version %q: %w", raw, err)
		}
		return level, nil
	}

	levels, err := debhelper.SupportedCompatLevels(ctx)
	if err != nil {
		return 0, err
	}
	return levels.LowestNonDeprecated, nil
}

// HighestStableCompatLevel returns the newest compat level the installed
// debhelper considers stable.
func HighestStableCompatLevel(ctx context.Context, debhelper repositories.DebhelperRepository) (int, error) {
	levels, err := debhelper.SupportedCompatLevels(ctx)
	if err != nil {
		return 0, err
	}
	return levels.HighestStable, nil
}
