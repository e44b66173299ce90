//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubVcsCommand is a stub implementation of commands.Vcs.
type StubVcsCommand struct {
	ExecuteCallCount int
	ExecuteResult    *commands.VcsResult
	ExecuteErr       error
	LastOpts         commands.VcsOptions
}

var _ commands.Vcs = (*StubVcsCommand)(nil)

func (s *StubVcsCommand) Execute(
	_ context.Context,
	opts commands.VcsOptions,
) (*commands.VcsResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
