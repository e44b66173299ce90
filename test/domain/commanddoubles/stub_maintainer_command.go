//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubMaintainerCommand is a stub implementation of commands.Maintainer.
type StubMaintainerCommand struct {
	ExecuteCallCount int
	ExecuteResult    bool
	ExecuteErr       error
	LastOpts         commands.MaintainerOptions
}

var _ commands.Maintainer = (*StubMaintainerCommand)(nil)

func (s *StubMaintainerCommand) Execute(
	_ context.Context,
	opts commands.MaintainerOptions,
) (bool, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
