package entities

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsupportedRemote is returned for remote URLs no web location can be derived from.
var ErrUnsupportedRemote = errors.New("unsupported git remote URL")

// VcsURLs holds the Vcs-Git and Vcs-Browser values of a package.
type VcsURLs struct {
	Git     string
	Browser string
}

// VcsURLsFromRemote derives public https URLs from a clone URL such as
// "git@salsa.debian.org:team/pkg.git" or "ssh://git@host/team/pkg".
func VcsURLsFromRemote(remote string) (VcsURLs, error) {
	host, path, err := splitRemote(strings.TrimSpace(remote))
	if err != nil {
		return VcsURLs{}, err
	}
	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || path == "" {
		return VcsURLs{}, fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
	}
	browser := "https://" + host + "/" + path
	return VcsURLs{Git: browser + ".git", Browser: browser}, nil
}

func splitRemote(remote string) (string, string, error) {
	if !strings.Contains(remote, "://") {
		// scp-like syntax: [user@]host:path
		hostPart, path, found := strings.Cut(remote, ":")
		if !found {
			return "", "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
		}
		if _, host, hasUser := strings.Cut(hostPart, "@"); hasUser {
			hostPart = host
		}
		return hostPart, path, nil
	}

	parsed, err := url.Parse(remote)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUnsupportedRemote, err)
	}
	switch parsed.Scheme {
	case "http", "https", "ssh", "git", "git+ssh":
		return parsed.Hostname(), parsed.Path, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, remote)
	}
}
