package entities

import (
	"regexp"
	"strings"
)

const (
	unreleasedDistribution = "UNRELEASED"
	trailerPrefix          = " -- "
	bulletPrefix           = "  * "
)

// changelogHeaderPattern matches "package (version) distribution; urgency=...".
var changelogHeaderPattern = regexp.MustCompile(`^(\S+) \(([^)]+)\) ([^;]+);`)

// InsertChangelogEntry appends bullet entries to the topmost entry of a
// debian/changelog when that entry is still UNRELEASED.
//
// Behaviour:
//   - If the first entry has been released, the content is returned unchanged.
//   - The bullets are added after the last non-blank line of the entry body,
//     before the " -- " trailer.
//   - An empty body receives the bullets between the header and the trailer.
func InsertChangelogEntry(content string, entries []string) (string, bool) {
	if len(entries) == 0 {
		return content, false
	}

	lines := strings.Split(content, "\n")

	headerIdx := findHeaderIndex(lines)
	if headerIdx < 0 || !isUnreleased(lines[headerIdx]) {
		return content, false
	}

	trailerIdx := findTrailerIndex(lines, headerIdx)
	if trailerIdx < 0 {
		return content, false
	}

	bulletLines := make([]string, 0, len(entries))
	for _, entry := range entries {
		bulletLines = append(bulletLines, bulletPrefix+entry)
	}

	lastBody := findLastBodyLine(lines, headerIdx, trailerIdx)
	if lastBody == headerIdx {
		// Empty body: keep one blank line on each side of the bullets.
		block := append([]string{""}, bulletLines...)
		if trailerIdx == headerIdx+1 || strings.TrimSpace(lines[trailerIdx-1]) != "" {
			block = append(block, "")
		}
		lines = insertLines(lines, headerIdx+1, block)
	} else {
		lines = insertLines(lines, lastBody+1, bulletLines)
	}

	return strings.Join(lines, "\n"), true
}

// findHeaderIndex returns the line index of the first entry header, or -1.
func findHeaderIndex(lines []string) int {
	for i, line := range lines {
		if changelogHeaderPattern.MatchString(line) {
			return i
		}
	}
	return -1
}

func isUnreleased(header string) bool {
	match := changelogHeaderPattern.FindStringSubmatch(header)
	if match == nil {
		return false
	}
	distributions := strings.Fields(match[3])
	return len(distributions) > 0 && distributions[0] == unreleasedDistribution
}

// findTrailerIndex returns the line index of the " -- " signature closing the
// entry that starts at headerIdx, or -1 if there is none.
func findTrailerIndex(lines []string, headerIdx int) int {
	for i := headerIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], trailerPrefix) {
			return i
		}
	}
	return -1
}

// findLastBodyLine returns the index of the last non-blank line between the
// header and the trailer, or headerIdx when the body is empty.
func findLastBodyLine(lines []string, headerIdx, trailerIdx int) int {
	last := headerIdx
	for i := headerIdx + 1; i < trailerIdx; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			last = i
		}
	}
	return last
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
