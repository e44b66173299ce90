package repositories

// RemoteRepository inspects the version control checkout holding a package.
type RemoteRepository interface {
	// OriginURL returns the first URL of the "origin" remote.
	OriginURL(dir string) (string, error)
}
