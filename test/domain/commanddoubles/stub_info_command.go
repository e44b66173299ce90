//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
)

// StubInfoCommand is a stub implementation of commands.Info.
type StubInfoCommand struct {
	ExecuteCallCount int
	ExecuteResult    *commands.PackageInfo
	ExecuteErr       error
	LastOpts         commands.InfoOptions
}

var _ commands.Info = (*StubInfoCommand)(nil)

func (s *StubInfoCommand) Execute(
	_ context.Context,
	opts commands.InfoOptions,
) (*commands.PackageInfo, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteResult, s.ExecuteErr
}
