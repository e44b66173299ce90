package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

// vcsTypes lists the VCS types reported by the info command.
//
//nolint:gochecknoglobals // read-only lookup table
var vcsTypes = []string{vcsTypeGit, vcsTypeBrowser, "Svn", "Bzr", "Hg", "Darcs", "Arch", "Cvs", "Mtn"}

// Info is the interface for the info command.
type Info interface {
	Execute(ctx context.Context, opts InfoOptions) (*PackageInfo, error)
}

// InfoOptions holds the options of the info command.
type InfoOptions struct {
	Dir string
}

// PackageInfo summarises a package's metadata.
type PackageInfo struct {
	Backend     entities.Backend
	Path        string
	Source      string
	Binaries    []BinaryInfo
	CompatLevel int
	HasCompat   bool
	Sequences   []string
	Vcs         []VcsURL
	UsesCdbs    bool
}

// BinaryInfo describes one binary package.
type BinaryInfo struct {
	Name        string
	Summary     string
	Description string
	Provides    []string
}

// InfoCommand gathers the metadata of a package.
type InfoCommand struct {
	editors   repositories.EditorRepository
	debhelper repositories.DebhelperRepository
	rules     repositories.RulesRepository
}

// NewInfoCommand creates a new InfoCommand.
func NewInfoCommand(
	editors repositories.EditorRepository,
	debhelper repositories.DebhelperRepository,
	rules repositories.RulesRepository,
) *InfoCommand {
	return &InfoCommand{editors: editors, debhelper: debhelper, rules: rules}
}

// Execute reads the package in opts.Dir without modifying it.
func (it *InfoCommand) Execute(_ context.Context, opts InfoOptions) (*PackageInfo, error) {
	editor, source, err := openSource(it.editors, opts.Dir)
	if err != nil {
		return nil, err
	}

	info := &PackageInfo{Backend: editor.Backend(), Path: editor.Path()}
	if name, ok := source.Name(); ok {
		info.Source = name
	}
	for _, binary := range editor.Binaries() {
		name, ok := binary.Name()
		if !ok {
			continue
		}
		summary, _ := binary.Summary()
		description, _ := binary.LongDescription()
		info.Binaries = append(info.Binaries, BinaryInfo{
			Name:        name,
			Summary:     summary,
			Description: description,
			Provides:    binary.Provides(),
		})
	}

	info.CompatLevel, info.HasCompat, err = CompatLevelFromDocument(source, opts.Dir, it.debhelper)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve compat level: %w", err)
	}
	info.Sequences, err = GetSequences(source)
	if err != nil {
		return nil, err
	}

	for _, vcsType := range vcsTypes {
		if url, ok := source.GetVcsURL(vcsType); ok {
			info.Vcs = append(info.Vcs, VcsURL{Type: vcsType, URL: url})
		}
	}
	info.UsesCdbs = it.rules.UsesCdbs(opts.Dir)
	return info, nil
}
