package entities

import (
	"strings"
)

// OverridePrefix marks a debian/rules target overriding a dh build step.
const OverridePrefix = "override_"

// IsPointlessOverride reports whether a rule does nothing but run the
// command it overrides: a single override target, no prerequisites, and a
// recipe whose only non-blank line is that command.
func IsPointlessOverride(targets, prerequisites, recipes []string) bool {
	if len(targets) != 1 || len(prerequisites) != 0 {
		return false
	}
	command, ok := strings.CutPrefix(targets[0], OverridePrefix)
	if !ok {
		return false
	}
	var effective []string
	for _, recipe := range recipes {
		if strings.TrimSpace(recipe) != "" {
			effective = append(effective, recipe)
		}
	}
	return len(effective) == 1 && strings.TrimSpace(effective[0]) == command
}
