package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/domain/repositories"
)

const (
	vcsTypeGit     = "Git"
	vcsTypeBrowser = "Browser"
)

var (
	// ErrVcsNotSet is returned when looking up a VCS URL the package does not declare.
	ErrVcsNotSet = errors.New("VCS URL not set")
	// ErrVcsAlreadySet is returned when a different URL is already declared and --force is off.
	ErrVcsAlreadySet = errors.New("VCS URL already set, use --force to overwrite")
)

// Vcs is the interface for the vcs command.
type Vcs interface {
	Execute(ctx context.Context, opts VcsOptions) (*VcsResult, error)
}

// VcsOptions holds the options of the vcs command. Without URL and
// FromRemote the command only looks the URL up.
type VcsOptions struct {
	EditOptions
	Type       string
	URL        string
	FromRemote bool
	Force      bool
}

// VcsURL is one VCS field of a package.
type VcsURL struct {
	Type string
	URL  string
}

// VcsResult holds the URLs read or written by the vcs command.
type VcsResult struct {
	URLs    []VcsURL
	Changed bool
}

// VcsCommand reads and writes the Vcs-* fields of a package.
type VcsCommand struct {
	editors   repositories.EditorRepository
	remotes   repositories.RemoteRepository
	changelog repositories.ChangelogRepository
}

// NewVcsCommand creates a new VcsCommand.
func NewVcsCommand(
	editors repositories.EditorRepository,
	remotes repositories.RemoteRepository,
	changelog repositories.ChangelogRepository,
) *VcsCommand {
	return &VcsCommand{editors: editors, remotes: remotes, changelog: changelog}
}

// Execute looks up or updates VCS URLs, depending on the options.
func (it *VcsCommand) Execute(_ context.Context, opts VcsOptions) (*VcsResult, error) {
	editor, source, err := openSource(it.editors, opts.Dir)
	if err != nil {
		return nil, err
	}

	var wanted []VcsURL
	switch {
	case opts.FromRemote:
		remote, remoteErr := it.remotes.OriginURL(opts.Dir)
		if remoteErr != nil {
			return nil, fmt.Errorf("failed to read origin remote: %w", remoteErr)
		}
		urls, urlErr := entities.VcsURLsFromRemote(remote)
		if urlErr != nil {
			return nil, urlErr
		}
		logger.Debugf("Derived VCS URLs from remote %s", remote)
		wanted = []VcsURL{{Type: vcsTypeGit, URL: urls.Git}, {Type: vcsTypeBrowser, URL: urls.Browser}}
	case opts.URL != "":
		wanted = []VcsURL{{Type: opts.Type, URL: opts.URL}}
	default:
		url, ok := source.GetVcsURL(opts.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrVcsNotSet, entities.VcsField(opts.Type))
		}
		return &VcsResult{URLs: []VcsURL{{Type: opts.Type, URL: url}}}, nil
	}

	for _, vcs := range wanted {
		if existing, ok := source.GetVcsURL(vcs.Type); ok && existing != vcs.URL && !opts.Force {
			return nil, fmt.Errorf("%w: %s is %s", ErrVcsAlreadySet, entities.VcsField(vcs.Type), existing)
		}
		if err = source.SetVcsURL(vcs.Type, vcs.URL); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", entities.VcsField(vcs.Type), err)
		}
	}

	summary := fmt.Sprintf("Set %s.", entities.VcsField(wanted[0].Type))
	if len(wanted) > 1 {
		summary = fmt.Sprintf("Set %s and %s.", entities.VcsField(wanted[0].Type), entities.VcsField(wanted[1].Type))
	}
	changed, err := commitChange(editor, it.changelog, opts.EditOptions, summary)
	if err != nil {
		return nil, err
	}
	return &VcsResult{URLs: wanted, Changed: changed}, nil
}
