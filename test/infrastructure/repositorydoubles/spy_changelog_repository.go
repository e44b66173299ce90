//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// SpyChangelogRepository implements repositories.ChangelogRepository and
// records every call.
type SpyChangelogRepository struct {
	Recorded bool
	Err      error
	Calls    []AddEntriesCall
}

// AddEntriesCall records a single invocation of AddEntries.
type AddEntriesCall struct {
	Dir     string
	Entries []string
}

var _ repositories.ChangelogRepository = (*SpyChangelogRepository)(nil)

func (s *SpyChangelogRepository) AddEntries(dir string, entries []string) (bool, error) {
	s.Calls = append(s.Calls, AddEntriesCall{Dir: dir, Entries: entries})
	return s.Recorded, s.Err
}

// DummyChangelogRepository is a no-op implementation of repositories.ChangelogRepository.
type DummyChangelogRepository struct{}

var _ repositories.ChangelogRepository = (*DummyChangelogRepository)(nil)

func (d *DummyChangelogRepository) AddEntries(_ string, _ []string) (bool, error) {
	return false, nil
}
