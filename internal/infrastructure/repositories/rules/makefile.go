package rules

import (
	"slices"
	"strings"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
)

const phonyTarget = ".PHONY"

type lineKind int

const (
	lineOther lineKind = iota
	lineRecipe
	lineComment
	lineBlank
)

// line is one logical line: physical lines joined by backslash
// continuations, trailing newline included.
type line struct {
	text string
	kind lineKind
}

// Rule is a "targets: prerequisites" header followed by its recipe. The body
// also keeps the blank and comment lines found between recipe lines.
type Rule struct {
	header        string
	targets       []string
	prerequisites []string
	body          []*line
}

func (it *Rule) Targets() []string       { return it.targets }
func (it *Rule) Prerequisites() []string { return it.prerequisites }

// Recipes returns the recipe lines without their leading tab. Comment lines
// are not part of the recipe.
func (it *Rule) Recipes() []string {
	var recipes []string
	for _, l := range it.body {
		if l.kind == lineRecipe {
			recipes = append(recipes, recipeContent(l.text))
		}
	}
	return recipes
}

func (it *Rule) String() string {
	var builder strings.Builder
	builder.WriteString(it.header)
	for _, l := range it.body {
		builder.WriteString(l.text)
	}
	return builder.String()
}

type node struct {
	rule *Rule
	line *line
}

// Makefile is a lossless model of a debian/rules file: rules are structured,
// every other line is kept verbatim.
type Makefile struct {
	nodes []*node
}

// Parse builds a Makefile from its text. Lines it does not understand are
// kept as they are, so parsing never fails.
func Parse(text string) *Makefile {
	makefile := &Makefile{}
	var current *Rule

	for _, text := range logicalLines(text) {
		content := strings.TrimRight(text, "\n")
		if current != nil {
			switch {
			case strings.HasPrefix(content, "\t"):
				current.body = append(current.body, &line{text: text, kind: lineRecipe})
				continue
			case strings.TrimSpace(content) == "":
				current.body = append(current.body, &line{text: text, kind: lineBlank})
				continue
			case strings.HasPrefix(content, "#"):
				current.body = append(current.body, &line{text: text, kind: lineComment})
				continue
			}
			makefile.closeRule(current)
			current = nil
		}

		if targets, prerequisites, ok := parseRuleHeader(content); ok {
			current = &Rule{header: text, targets: targets, prerequisites: prerequisites}
			makefile.nodes = append(makefile.nodes, &node{rule: current})
			continue
		}
		makefile.nodes = append(makefile.nodes, &node{line: &line{text: text}})
	}
	if current != nil {
		makefile.closeRule(current)
	}

	return makefile
}

// closeRule hands comments trailing the last recipe line back to the top
// level, where they introduce whatever follows.
func (it *Makefile) closeRule(rule *Rule) {
	lastRecipe := -1
	for i, l := range rule.body {
		if l.kind == lineRecipe {
			lastRecipe = i
		}
	}
	firstComment := -1
	for i := lastRecipe + 1; i < len(rule.body); i++ {
		if rule.body[i].kind == lineComment {
			firstComment = i
			break
		}
	}
	if firstComment < 0 {
		return
	}
	for _, l := range rule.body[firstComment:] {
		it.nodes = append(it.nodes, &node{line: l})
	}
	rule.body = rule.body[:firstComment]
}

// Rules returns the rules in file order.
func (it *Makefile) Rules() []*Rule {
	var rules []*Rule
	for _, n := range it.nodes {
		if n.rule != nil {
			rules = append(rules, n.rule)
		}
	}
	return rules
}

// RemoveRule deletes a rule together with its recipe.
func (it *Makefile) RemoveRule(rule *Rule) {
	it.nodes = slices.DeleteFunc(it.nodes, func(n *node) bool { return n.rule == rule })
}

// DropPhony removes target from every .PHONY declaration. A declaration left
// empty is removed.
func (it *Makefile) DropPhony(target string) {
	for _, rule := range it.Rules() {
		if len(rule.targets) != 1 || rule.targets[0] != phonyTarget || !slices.Contains(rule.prerequisites, target) {
			continue
		}
		rule.prerequisites = slices.DeleteFunc(rule.prerequisites, func(p string) bool { return p == target })
		if len(rule.prerequisites) == 0 {
			it.RemoveRule(rule)
			continue
		}
		colon := strings.Index(rule.header, ":")
		rule.header = rule.header[:colon+1] + removeWord(rule.header[colon+1:], target)
	}
}

// UpdateRecipeLines rewrites recipe lines through update and returns how
// many changed.
func (it *Makefile) UpdateRecipeLines(update func(string) string) int {
	changed := 0
	for _, rule := range it.Rules() {
		for _, l := range rule.body {
			if l.kind != lineRecipe {
				continue
			}
			content := recipeContent(l.text)
			updated := update(content)
			if updated == content {
				continue
			}
			newline := ""
			if strings.HasSuffix(l.text, "\n") {
				newline = "\n"
			}
			l.text = "\t" + updated + newline
			changed++
		}
	}
	return changed
}

// DiscardPointlessOverrides removes every override rule that only runs the
// command it overrides, and returns how many were removed.
func (it *Makefile) DiscardPointlessOverrides() int {
	removed := 0
	for _, rule := range it.Rules() {
		if !entities.IsPointlessOverride(rule.targets, rule.prerequisites, rule.Recipes()) {
			continue
		}
		it.RemoveRule(rule)
		it.DropPhony(rule.targets[0])
		removed++
	}
	return removed
}

func (it *Makefile) String() string {
	var builder strings.Builder
	for _, n := range it.nodes {
		if n.rule != nil {
			builder.WriteString(n.rule.String())
		} else {
			builder.WriteString(n.line.text)
		}
	}
	return builder.String()
}

//nolint:gochecknoglobals // read-only lookup table
var directives = []string{
	"define", "else", "endef", "endif", "export", "ifdef", "ifeq", "ifndef", "ifneq",
	"include", "-include", "sinclude", "override", "unexport", "vpath",
}

// parseRuleHeader recognises "targets: prerequisites" and "targets::
// prerequisites", rejecting variable assignments and directives.
func parseRuleHeader(content string) ([]string, []string, bool) {
	if content == "" || content[0] == '\t' || content[0] == '#' {
		return nil, nil, false
	}
	fields := strings.Fields(content)
	if len(fields) == 0 || slices.Contains(directives, fields[0]) {
		return nil, nil, false
	}
	colon := strings.Index(content, ":")
	if colon < 0 || strings.Contains(content[:colon], "=") {
		return nil, nil, false
	}
	rest := strings.TrimPrefix(content[colon+1:], ":")
	if strings.HasPrefix(rest, "=") {
		return nil, nil, false
	}
	if before, _, found := strings.Cut(rest, ";"); found {
		rest = before
	}
	if before, _, found := strings.Cut(rest, "#"); found {
		rest = before
	}

	targets := strings.Fields(content[:colon])
	if len(targets) == 0 {
		return nil, nil, false
	}
	var prerequisites []string
	for _, field := range strings.Fields(rest) {
		if field != "\\" {
			prerequisites = append(prerequisites, field)
		}
	}
	return targets, prerequisites, true
}

// logicalLines splits text into lines, joining backslash continuations.
func logicalLines(text string) []string {
	var lines []string
	var pending strings.Builder
	for _, physical := range strings.SplitAfter(text, "\n") {
		if physical == "" {
			continue
		}
		pending.WriteString(physical)
		if continues(physical) {
			continue
		}
		lines = append(lines, pending.String())
		pending.Reset()
	}
	if pending.Len() > 0 {
		lines = append(lines, pending.String())
	}
	return lines
}

// continues reports whether a line ends with an odd number of backslashes.
func continues(physical string) bool {
	if !strings.HasSuffix(physical, "\n") {
		return false
	}
	content := strings.TrimSuffix(physical, "\n")
	count := len(content) - len(strings.TrimRight(content, "\\"))
	return count%2 == 1
}

func recipeContent(text string) string {
	return strings.TrimPrefix(strings.TrimSuffix(text, "\n"), "\t")
}

// removeWord deletes a whitespace-delimited word together with the
// whitespace before it.
func removeWord(s, word string) string {
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		wordStart := i
		for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' {
			i++
		}
		if s[wordStart:i] == word {
			return s[:start] + s[i:]
		}
		if i < len(s) && s[i] == '\n' {
			i++
		}
	}
	return s
}
