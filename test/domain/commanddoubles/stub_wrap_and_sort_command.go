//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubWrapAndSortCommand is a stub implementation of commands.WrapAndSort.
type StubWrapAndSortCommand struct {
	ExecuteCallCount int
	ExecuteResult    bool
	ExecuteErr       error
	LastOpts         commands.WrapAndSortOptions
}

var _ commands.WrapAndSort = (*StubWrapAndSortCommand)(nil)

func (s *StubWrapAndSortCommand) Execute(
	_ context.Context,
	opts commands.WrapAndSortOptions,
) (bool, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
