//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubDhArgumentCommand is a stub implementation of commands.DhArgument.
type StubDhArgumentCommand struct {
	ExecuteCallCount int
	ExecuteResult    int
	ExecuteErr       error
	LastOpts         commands.DhArgumentOptions
}

var _ commands.DhArgument = (*StubDhArgumentCommand)(nil)

func (s *StubDhArgumentCommand) Execute(
	_ context.Context,
	opts commands.DhArgumentOptions,
) (int, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
