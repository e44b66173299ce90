package entities

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DebhelperPackage is the build helper whose version floor is managed.
	DebhelperPackage = "debhelper"
	// DebhelperCompatPackage is the virtual package encoding the compat level.
	DebhelperCompatPackage = "debhelper-compat"
	// DhSequencePrefix prefixes build-dependencies that enable a dh sequence.
	DhSequencePrefix = "dh-sequence-"

	maxCompatLevel = 255
)

// CompatLevels mirrors the output of "dh_assistant supported-compat-levels".
type CompatLevels struct {
	HighestStable             int
	LowestNonDeprecated       int
	LowestVirtualDebhelper    int
	Max                       int
	Min                       int
	MinNotScheduledForRemoval int
}

// EnsureDebhelperErrorKind classifies a malformed debhelper declaration.
type EnsureDebhelperErrorKind int

const (
	// DebhelperInWrongField: debhelper appears outside Build-Depends.
	DebhelperInWrongField EnsureDebhelperErrorKind = iota
	// ComplexDebhelperCompatRule: debhelper-compat has alternatives or a non-equality constraint.
	ComplexDebhelperCompatRule
	// DebhelperCompatWithoutVersion: debhelper-compat carries no version.
	DebhelperCompatWithoutVersion
)

// EnsureDebhelperError is returned when the debhelper declarations of a
// package cannot be upgraded without guessing at the maintainer's intent.
type EnsureDebhelperError struct {
	Kind  EnsureDebhelperErrorKind
	Field string
}

//nolint:gochecknoglobals // sentinel errors for errors.Is
var (
	ErrComplexDebhelperCompatRule    = &EnsureDebhelperError{Kind: ComplexDebhelperCompatRule}
	ErrDebhelperCompatWithoutVersion = &EnsureDebhelperError{Kind: DebhelperCompatWithoutVersion}
)

// NewDebhelperInWrongFieldError reports a debhelper relation found in field.
func NewDebhelperInWrongFieldError(field ControlField) *EnsureDebhelperError {
	return &EnsureDebhelperError{Kind: DebhelperInWrongField, Field: string(field)}
}

func (e *EnsureDebhelperError) Error() string {
	switch e.Kind {
	case DebhelperInWrongField:
		return fmt.Sprintf("debhelper in %s", e.Field)
	case ComplexDebhelperCompatRule:
		return "Complex rule for debhelper-compat, aborting"
	case DebhelperCompatWithoutVersion:
		return "debhelper-compat without version, aborting"
	default:
		return "unknown debhelper error"
	}
}

// Is matches on kind, and on field when the target names one.
func (e *EnsureDebhelperError) Is(target error) bool {
	other, ok := target.(*EnsureDebhelperError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind && (other.Field == "" || other.Field == e.Field)
}

// ParseDebhelperCompat parses a compat level, ignoring a trailing "#" comment.
func ParseDebhelperCompat(s string) (int, bool) {
	if before, _, found := strings.Cut(s, "#"); found {
		s = before
	}
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || level < 0 || level > maxCompatLevel {
		return 0, false
	}
	return level, true
}
