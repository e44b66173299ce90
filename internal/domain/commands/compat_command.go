package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// Compat is the interface for the compat command.
type Compat interface {
	Execute(ctx context.Context, opts CompatOptions) (*CompatReport, error)
}

// CompatOptions holds the options of the compat command.
type CompatOptions struct {
	Dir     string
	Release string
}

// CompatReport describes the debhelper state of a package.
type CompatReport struct {
	Level        int
	HasLevel     bool
	Sequences    []string
	Release      string
	MaximumLevel int
	// HighestStable is the newest stable level of the installed debhelper,
	// zero when dh_assistant could not be run.
	HighestStable int
}

// CompatCommand resolves the effective compat level of a package.
type CompatCommand struct {
	editors   repositories.EditorRepository
	debhelper repositories.DebhelperRepository
}

// NewCompatCommand creates a new CompatCommand.
func NewCompatCommand(
	editors repositories.EditorRepository,
	debhelper repositories.DebhelperRepository,
) *CompatCommand {
	return &CompatCommand{editors: editors, debhelper: debhelper}
}

// Execute builds the compat report. Without a control document only
// debian/compat is consulted. The maximum level is only resolved when a
// release is given.
func (it *CompatCommand) Execute(ctx context.Context, opts CompatOptions) (*CompatReport, error) {
	report := &CompatReport{Release: opts.Release}

	_, source, err := openSource(it.editors, opts.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debugf("No control document in %s, reading debian/compat only", opts.Dir)
		report.Level, report.HasLevel, err = CompatLevel(opts.Dir, it.debhelper, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve compat level: %w", err)
		}
	case err != nil:
		return nil, err
	default:
		report.Level, report.HasLevel, err = CompatLevelFromDocument(source, opts.Dir, it.debhelper)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve compat level: %w", err)
		}
		report.Sequences, err = GetSequences(source)
		if err != nil {
			return nil, err
		}
	}

	if opts.Release != "" {
		report.MaximumLevel, err = MaximumDebhelperCompatVersion(ctx, it.debhelper, opts.Release)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve maximum compat level for %s: %w", opts.Release, err)
		}
		report.HighestStable, err = HighestStableCompatLevel(ctx, it.debhelper)
		if err != nil {
			logger.Warnf("Could not determine the highest stable compat level: %v", err)
		}
	}
	return report, nil
}
