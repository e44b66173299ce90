//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubEnsureDebhelperCommand is a stub implementation of commands.EnsureDebhelper.
type StubEnsureDebhelperCommand struct {
	ExecuteCallCount int
	ExecuteResult    bool
	ExecuteErr       error
	LastOpts         commands.EnsureDebhelperOptions
}

var _ commands.EnsureDebhelper = (*StubEnsureDebhelperCommand)(nil)

func (s *StubEnsureDebhelperCommand) Execute(
	_ context.Context,
	opts commands.EnsureDebhelperOptions,
) (bool, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
