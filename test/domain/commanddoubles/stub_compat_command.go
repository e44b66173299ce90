//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubCompatCommand is a stub implementation of commands.Compat.
type StubCompatCommand struct {
	ExecuteCallCount int
	ExecuteResult    *commands.CompatReport
	ExecuteErr       error
	LastOpts         commands.CompatOptions
}

var _ commands.Compat = (*StubCompatCommand)(nil)

func (s *StubCompatCommand) Execute(
	_ context.Context,
	opts commands.CompatOptions,
) (*commands.CompatReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
