//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubDhWithCommand is a stub implementation of commands.DhWith.
type StubDhWithCommand struct {
	ExecuteCallCount int
	ExecuteResult    int
	ExecuteErr       error
	LastOpts         commands.DhWithOptions
}

var _ commands.DhWith = (*StubDhWithCommand)(nil)

func (s *StubDhWithCommand) Execute(
	_ context.Context,
	opts commands.DhWithOptions,
) (int, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
