package repositories

// ChangelogRepository records changes in debian/changelog.
type ChangelogRepository interface {
	// AddEntries appends bullets to the top entry when it is UNRELEASED and
	// reports whether the file changed.
	AddEntries(dir string, entries []string) (bool, error)
}
