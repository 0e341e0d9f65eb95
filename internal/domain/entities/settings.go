package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultPatchList = "patch_list.txt"

// CommitAuthor identifies who the generated commits are attributed to.
// When nil, the repository's own git configuration is used.
type CommitAuthor struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Settings is the optional configuration file for autocommit. Everything in
// it can also be expressed (and overridden) via CLI flags.
type Settings struct {
	PatchList string        `yaml:"patch_list"`
	Author    *CommitAuthor `yaml:"author"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{PatchList: defaultPatchList}
}

// NewSettings reads and parses a configuration file, applying defaults for
// anything left unset.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if settings.PatchList == "" {
		settings.PatchList = defaultPatchList
	}
	if settings.Author != nil && settings.Author.Name == "" {
		return nil, fmt.Errorf("config file %q: author.name is required when author is set", path)
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".autocommit.yaml",
		".autocommit.yml",
		"autocommit.yaml",
		"autocommit.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}
