package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Certainty levels accepted by minimum-certainty, most certain first.
const (
	CertaintyCertain   = "certain"
	CertaintyConfident = "confident"
	CertaintyLikely    = "likely"
	CertaintyPossible  = "possible"
)

// ErrConfigNotFound is returned by FindConfigFile when no settings file exists.
var ErrConfigNotFound = errors.New("config file not found in default locations")

//nolint:gochecknoglobals // read-only lookup tables
var (
	supportedKeys = []string{
		"compat-release",
		"minimum-certainty",
		"allow-reformatting",
		"update-changelog",
	}
	certainties = []string{CertaintyCertain, CertaintyConfident, CertaintyLikely, CertaintyPossible}
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings holds the per-package preferences of debbrush.
type Settings struct {
	CompatRelease     string `yaml:"compat-release"`     // release whose debhelper bounds the compat level
	MinimumCertainty  string `yaml:"minimum-certainty"`  // certain, confident, likely or possible
	AllowReformatting *bool  `yaml:"allow-reformatting"` // nil when unset
	UpdateChangelog   *bool  `yaml:"update-changelog"`   // nil when unset
}

// NewSettings reads and parses a settings file. Unknown keys and invalid
// values are reported and ignored.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var raw map[string]any
	if unmarshalErr := yaml.Unmarshal(data, &raw); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	for key := range raw {
		if !slices.Contains(supportedKeys, key) {
			logger.Warnf("unknown key %s in %s, ignoring.", key, path)
		}
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.CompatRelease = expandEnv(settings.CompatRelease)
	if settings.MinimumCertainty != "" && !slices.Contains(certainties, settings.MinimumCertainty) {
		logger.Warnf("invalid minimum-certainty value %s, ignoring.", settings.MinimumCertainty)
		settings.MinimumCertainty = ""
	}

	return &settings, nil
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{}
}

// LoadSettings resolves the settings for a package directory: the explicit
// path when given, the first file found by FindConfigFile otherwise, and the
// defaults when there is none.
func LoadSettings(explicitPath, dir string) (*Settings, error) {
	if explicitPath != "" {
		return NewSettings(explicitPath)
	}
	path, err := FindConfigFile(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a settings file in the package directory and
// then in the user's home directory.
func FindConfigFile(dir string) (string, error) {
	locations := []string{
		filepath.Join(dir, "debian"),
		dir,
		filepath.Join(dir, ".config"),
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		"debbrush.yaml",
		".debbrush.yaml",
		"debbrush.yml",
		".debbrush.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// AllowsReformatting reports whether whole-field rewrites are permitted.
func (it *Settings) AllowsReformatting() bool {
	return it.AllowReformatting != nil && *it.AllowReformatting
}

// UpdatesChangelog reports whether changes should be recorded in debian/changelog.
func (it *Settings) UpdatesChangelog() bool {
	return it.UpdateChangelog != nil && *it.UpdateChangelog
}

// expandEnv expands ${ENV_VAR} references.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
