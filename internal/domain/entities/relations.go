package entities

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pault.ag/go/debian/dependency"
	"pault.ag/go/debian/version"
)

// Version constraint operators, as written inside a relation's parentheses.
const (
	OpEqual        = "="
	OpGreaterEqual = ">="
	OpLessEqual    = "<="
	OpGreater      = ">>"
	OpLess         = "<<"
)

const (
	entrySeparator       = ","
	alternativeSeparator = "|"
	defaultLead          = " "
	substvarPrefix       = "${"
)

// ErrEmptyRelation is returned when an alternative has no package name.
var ErrEmptyRelation = errors.New("empty relation")

var versionGroupPattern = regexp.MustCompile(`\([^)]*\)`)

// Relation is one alternative of an Entry: a package name with an optional
// version constraint. The text around the constraint is kept verbatim.
type Relation struct {
	Name       string
	operator   string
	version    string
	lead       string
	body       string
	trail      string
	qualifiers string
}

// NewRelation builds a relation on name. Operator and version may be empty.
func NewRelation(name, operator, ver string) *Relation {
	body := name
	if operator != "" {
		body = fmt.Sprintf("%s (%s %s)", name, operator, ver)
	}
	return &Relation{Name: name, operator: operator, version: ver, body: body}
}

// Operator returns the constraint operator, or "" when unversioned.
func (it *Relation) Operator() string { return it.operator }

// Version returns the constraint version, or "" when unversioned.
func (it *Relation) Version() string { return it.version }

// HasVersion reports whether the relation carries a version constraint.
func (it *Relation) HasVersion() bool { return it.operator != "" }

// IsSubstvar reports whether the relation is a ${...} substitution variable.
func (it *Relation) IsSubstvar() bool { return strings.HasPrefix(it.Name, substvarPrefix) }

// SetVersion rewrites the parenthesised constraint in place, or adds one after
// the package name. Architecture and profile qualifiers are left untouched.
func (it *Relation) SetVersion(operator, ver string) {
	group := fmt.Sprintf("(%s %s)", operator, ver)
	if loc := versionGroupPattern.FindStringIndex(it.body); loc != nil {
		it.body = it.body[:loc[0]] + group + it.body[loc[1]:]
	} else {
		end := nameEnd(it.body)
		rest := it.body[end:]
		if rest != "" && !strings.HasPrefix(rest, " ") {
			rest = " " + rest
		}
		it.body = it.body[:end] + " " + group + rest
	}
	it.operator = operator
	it.version = ver
}

// Equal compares name, constraint and qualifiers, ignoring whitespace.
func (it *Relation) Equal(other *Relation) bool {
	return it.Name == other.Name &&
		it.operator == other.operator &&
		it.version == other.version &&
		it.qualifiers == other.qualifiers
}

// Content returns the relation text without surrounding whitespace.
func (it *Relation) Content() string { return it.body }

func (it *Relation) String() string { return it.lead + it.body + it.trail }

func nameEnd(body string) int {
	if i := strings.IndexAny(body, " \t\n([<"); i >= 0 {
		return i
	}
	return len(body)
}

func parseRelation(raw string) (*Relation, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return nil, ErrEmptyRelation
	}
	lead := raw[:strings.Index(raw, body)]
	rel := &Relation{lead: lead, body: body, trail: raw[len(lead)+len(body):]}

	rest := body[nameEnd(body):]
	rel.qualifiers = strings.Join(strings.Fields(versionGroupPattern.ReplaceAllString(rest, "")), " ")

	if strings.HasPrefix(body, substvarPrefix) {
		rel.Name = body[:nameEnd(body)]
		return rel, nil
	}

	parsed, err := dependency.Parse(strings.Join(strings.Fields(body), " "))
	if err != nil {
		return nil, fmt.Errorf("failed to parse relation %q: %w", body, err)
	}
	if len(parsed.Relations) != 1 || len(parsed.Relations[0].Possibilities) != 1 {
		return nil, fmt.Errorf("failed to parse relation %q: expected a single alternative", body)
	}
	possibility := parsed.Relations[0].Possibilities[0]
	rel.Name = possibility.Name
	if possibility.Version != nil {
		rel.operator = possibility.Version.Operator
		rel.version = possibility.Version.Number
	}
	return rel, nil
}

// Entry is one OR-group of alternative relations.
type Entry struct {
	relations []*Relation
	lead      string
	trail     string
}

// NewEntry builds an entry from the given alternatives.
func NewEntry(relations ...*Relation) *Entry {
	for i, rel := range relations {
		if i > 0 && rel.lead == "" {
			rel.lead = " "
		}
		if i < len(relations)-1 && rel.trail == "" {
			rel.trail = " "
		}
	}
	return &Entry{relations: relations}
}

// ParseEntry parses a single OR-group such as "foo (>= 1) | bar".
func ParseEntry(text string) (*Entry, error) {
	content := strings.TrimSpace(text)
	lead := text[:strings.Index(text, content)]
	entry := &Entry{lead: lead, trail: text[len(lead)+len(content):]}
	if content == "" {
		return entry, nil
	}
	for _, piece := range strings.Split(content, alternativeSeparator) {
		rel, err := parseRelation(piece)
		if err != nil {
			return nil, err
		}
		entry.relations = append(entry.relations, rel)
	}
	return entry, nil
}

// Relations returns the alternatives of the entry, in written order.
func (it *Entry) Relations() []*Relation { return it.relations }

// Names returns the package names of all alternatives.
func (it *Entry) Names() []string {
	names := make([]string, 0, len(it.relations))
	for _, rel := range it.relations {
		names = append(names, rel.Name)
	}
	return names
}

// Equal reports whether both entries list the same alternatives in the same order.
func (it *Entry) Equal(other *Entry) bool {
	if len(it.relations) != len(other.relations) {
		return false
	}
	for i, rel := range it.relations {
		if !rel.Equal(other.relations[i]) {
			return false
		}
	}
	return true
}

// Content returns the entry text without surrounding whitespace.
func (it *Entry) Content() string {
	return strings.TrimSpace(it.body())
}

func (it *Entry) body() string {
	parts := make([]string, 0, len(it.relations))
	for _, rel := range it.relations {
		parts = append(parts, rel.String())
	}
	return strings.Join(parts, alternativeSeparator)
}

func (it *Entry) String() string { return it.lead + it.body() + it.trail }

func (it *Entry) sortKey() string {
	if len(it.relations) == 0 {
		return ""
	}
	if it.relations[0].IsSubstvar() {
		// substitution variables conventionally go last
		return "~" + it.relations[0].Name
	}
	return it.relations[0].Name
}

// Relations is an ordered set of OR-groups, as found in Build-Depends and
// friends. Untouched entries serialize back byte for byte.
type Relations struct {
	entries  []*Entry
	blank    string
	trailing *string
}

// NewRelations returns an empty relation set.
func NewRelations() *Relations {
	return &Relations{}
}

// ParseRelations parses the value of a relation field.
func ParseRelations(text string) (*Relations, error) {
	if strings.TrimSpace(text) == "" {
		return &Relations{blank: text}, nil
	}
	pieces := strings.Split(text, entrySeparator)
	rels := &Relations{}
	if last := pieces[len(pieces)-1]; len(pieces) > 1 && strings.TrimSpace(last) == "" {
		rels.trailing = &last
		pieces = pieces[:len(pieces)-1]
	}
	for _, piece := range pieces {
		entry, err := ParseEntry(piece)
		if err != nil {
			return nil, err
		}
		rels.entries = append(rels.entries, entry)
	}
	return rels, nil
}

// Entries returns the OR-groups in written order.
func (it *Relations) Entries() []*Entry { return it.entries }

// Len returns the number of entries.
func (it *Relations) Len() int { return len(it.entries) }

// IsEmpty reports whether the set has no entries.
func (it *Relations) IsEmpty() bool { return len(it.entries) == 0 }

func (it *Relations) String() string {
	if len(it.entries) == 0 {
		return it.blank
	}
	parts := make([]string, 0, len(it.entries))
	for _, entry := range it.entries {
		parts = append(parts, entry.String())
	}
	text := strings.Join(parts, entrySeparator)
	if it.trailing != nil {
		text += entrySeparator + *it.trailing
	}
	return text
}

// Contents returns the text of every entry without surrounding whitespace.
func (it *Relations) Contents() []string {
	contents := make([]string, 0, len(it.entries))
	for _, entry := range it.entries {
		if content := entry.Content(); content != "" {
			contents = append(contents, content)
		}
	}
	return contents
}

// Contains reports whether any alternative of any entry names the package.
func (it *Relations) Contains(name string) bool {
	_, rel := it.find(name)
	return rel != nil
}

func (it *Relations) find(name string) (*Entry, *Relation) {
	for _, entry := range it.entries {
		for _, rel := range entry.relations {
			if rel.Name == name {
				return entry, rel
			}
		}
	}
	return nil, nil
}

// EnsureRelation appends entry unless an identical OR-group is already
// present. It returns true when the set changed.
func (it *Relations) EnsureRelation(entry *Entry) bool {
	for _, existing := range it.entries {
		if existing.Equal(entry) {
			return false
		}
	}
	it.insert(len(it.entries), entry)
	return true
}

// EnsureMinimumVersion makes sure the first relation on name requires at
// least minimum. A missing relation is added as "name (>= minimum)". A
// constraint whose version cannot be parsed is reported, not rewritten.
func (it *Relations) EnsureMinimumVersion(name string, minimum version.Version) (bool, error) {
	if _, rel := it.find(name); rel != nil {
		if rel.HasVersion() {
			current, err := version.Parse(rel.version)
			if err != nil {
				return false, fmt.Errorf("failed to parse version %q of %s: %w", rel.version, name, err)
			}
			if version.Compare(current, minimum) >= 0 {
				return false, nil
			}
		}
		operator := rel.operator
		if operator != OpGreaterEqual && operator != OpGreater {
			operator = OpGreaterEqual
		}
		rel.SetVersion(operator, minimum.String())
		return true, nil
	}

	it.insert(it.sortedPosition(name), NewEntry(NewRelation(name, OpGreaterEqual, minimum.String())))
	return true, nil
}

// SortedContents returns the entry texts sorted by package name with
// verbatim duplicates removed. Substitution variables sort last.
func (it *Relations) SortedContents() []string {
	entries := make([]*Entry, 0, len(it.entries))
	seen := make(map[string]bool, len(it.entries))
	for _, entry := range it.entries {
		content := entry.Content()
		if content == "" || seen[content] {
			continue
		}
		seen[content] = true
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey() < entries[j].sortKey()
	})
	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		contents = append(contents, entry.Content())
	}
	return contents
}

// sortedPosition returns where a new entry on name belongs: its sorted
// position when the entries are already sorted, the end otherwise.
func (it *Relations) sortedPosition(name string) int {
	for i := 1; i < len(it.entries); i++ {
		if it.entries[i-1].sortKey() > it.entries[i].sortKey() {
			return len(it.entries)
		}
	}
	for i, entry := range it.entries {
		if entry.sortKey() > name {
			return i
		}
	}
	return len(it.entries)
}

// separatorLead returns the whitespace used in front of non-first entries.
func (it *Relations) separatorLead() string {
	switch {
	case len(it.entries) >= 2:
		return it.entries[1].lead
	case len(it.entries) == 1 && strings.Contains(it.entries[0].lead, "\n"):
		return it.entries[0].lead
	default:
		return defaultLead
	}
}

func (it *Relations) insert(at int, entry *Entry) {
	separator := it.separatorLead()
	switch {
	case len(it.entries) == 0:
		entry.lead = defaultLead
	case at < len(it.entries):
		entry.lead = it.entries[at].lead
		if at == 0 {
			it.entries[0].lead = separator
		}
	default:
		entry.lead = separator
	}
	it.entries = append(it.entries, nil)
	copy(it.entries[at+1:], it.entries[at:])
	it.entries[at] = entry
}
