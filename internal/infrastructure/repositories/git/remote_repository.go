package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/debbrush/internal/domain/repositories"
)

const originRemote = "origin"

// ErrNoRemoteURL is returned when the origin remote has no URL configured.
var ErrNoRemoteURL = errors.New("origin remote has no URL")

// RemoteRepository reads remotes from the git checkout enclosing a directory.
type RemoteRepository struct{}

// NewRemoteRepository creates a RemoteRepository.
func NewRemoteRepository() *RemoteRepository {
	return &RemoteRepository{}
}

func (it *RemoteRepository) OriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}
	remote, err := repo.Remote(originRemote)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %q: %w", originRemote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemoteURL
	}
	logger.Debugf("[git] %s remote of %s is %s", originRemote, dir, urls[0])
	return urls[0], nil
}

var _ domainRepos.RemoteRepository = (*RemoteRepository)(nil)
