package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// localConfigName is the repo-local configuration file.
const localConfigName = ".verbump.toml"

// fileSettings mirrors the TOML layout of the configuration file:
//
//	issue_pattern = "^[A-Z]{2,}-[0-9]+$"
//
//	[verbs]
//	Vendored = "patch"
//
//	[changelog]
//	style = "prefix"
type fileSettings struct {
	IssuePattern string            `toml:"issue_pattern"`
	Verbs        map[string]string `toml:"verbs"`
	Changelog    struct {
		Style string `toml:"style"`
	} `toml:"changelog"`
}

// SettingsStore is a read-only TOML-backed settings store.
// The file is read once at Load; nothing is ever written back.
type SettingsStore struct {
	filePath string
}

// NewSettingsStore creates a settings store for the given path.
// When path is empty, a repo-local .verbump.toml is preferred if it
// exists, falling back to ~/.verbump/config.toml.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path != "" {
		return &SettingsStore{filePath: path}, nil
	}

	if _, err := os.Stat(localConfigName); err == nil {
		return &SettingsStore{filePath: localConfigName}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &SettingsStore{filePath: filepath.Join(home, ".verbump", "config.toml")}, nil
}

// Load reads the raw settings from the TOML file.
// A missing file yields defaults; a file that does not parse is a
// configuration failure.
func (s *SettingsStore) Load() (domain.Settings, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("read %s: %w", s.filePath, err)
	}

	var raw fileSettings
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidConfig, s.filePath, err)
	}

	return domain.Settings{
		Verbs:          raw.Verbs,
		IssuePattern:   raw.IssuePattern,
		ChangelogStyle: raw.Changelog.Style,
	}, nil
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
