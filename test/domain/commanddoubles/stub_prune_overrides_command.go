//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubPruneOverridesCommand is a stub implementation of commands.PruneOverrides.
type StubPruneOverridesCommand struct {
	ExecuteCallCount int
	ExecuteResult    int
	ExecuteErr       error
	LastOpts         commands.PruneOverridesOptions
}

var _ commands.PruneOverrides = (*StubPruneOverridesCommand)(nil)

func (s *StubPruneOverridesCommand) Execute(
	_ context.Context,
	opts commands.PruneOverridesOptions,
) (int, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
