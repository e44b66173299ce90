//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// StubRemoteRepository implements repositories.RemoteRepository with a fixed URL.
type StubRemoteRepository struct {
	URL string
	Err error
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) OriginURL(_ string) (string, error) {
	return s.URL, s.Err
}
