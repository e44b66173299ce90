package repositories

// RulesEditor edits a debian/rules file.
type RulesEditor interface {
	// UpdateRecipeLines passes every recipe line, without its leading tab, to
	// update and stores the result. It returns the number of lines changed.
	UpdateRecipeLines(update func(line string) string) int

	// DiscardPointlessOverrides removes override rules that only re-run the
	// command they override and returns how many were removed.
	DiscardPointlessOverrides() int

	// UsesCdbs reports whether the file includes the CDBS build system.
	UsesCdbs() bool

	Changed() bool
	Commit() (bool, error)
}

// RulesRepository opens the debian/rules file of a source tree.
type RulesRepository interface {
	Open(dir string) (RulesEditor, error)
	// UsesCdbs reports whether the rules file of dir includes CDBS. A
	// missing file does not.
	UsesCdbs(dir string) bool
}
