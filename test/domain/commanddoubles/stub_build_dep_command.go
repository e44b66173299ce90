//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubBuildDepCommand is a stub implementation of commands.BuildDep.
type StubBuildDepCommand struct {
	ExecuteCallCount int
	ExecuteResult    bool
	ExecuteErr       error
	LastOpts         commands.BuildDepOptions
}

var _ commands.BuildDep = (*StubBuildDepCommand)(nil)

func (s *StubBuildDepCommand) Execute(
	_ context.Context,
	opts commands.BuildDepOptions,
) (bool, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
