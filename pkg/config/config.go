// Package config loads the optional .cppgen.yaml project configuration
// file.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

// DefaultFileName is the config file looked for in the current directory
// when --config is not given.
const DefaultFileName = ".cppgen.yaml"

// Config carries project-wide settings for the generate and index
// subcommands.
type Config struct {
	// OutputHeader and OutputSource are used by "cppgen generate" in place
	// of an empty --header/--cpp value. Both flags are still required on
	// the command line, so these apply only when a flag is given as "".
	OutputHeader string `yaml:"outputHeader,omitempty"`
	OutputSource string `yaml:"outputSource,omitempty"`

	// OutputIndex is used by "cppgen index" in place of an empty --output
	// value; the flag itself is still required on the command line.
	OutputIndex string `yaml:"outputIndex,omitempty"`

	// IncludeDirs lists directories the CLI layer searches when reporting
	// which #include "..." directives it saw while walking the input.
	// The parser itself never opens an included file.
	IncludeDirs []string `yaml:"includeDirs,omitempty"`

	// Ignore lists glob patterns of files to skip when a subcommand is
	// given a directory instead of individual files.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Load reads path and parses it as a Config. A missing file is not an
// error: it returns a zero-value Config so callers can proceed with
// command-line flags alone.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &cfg, nil
}

// Resolve loads explicitPath if non-empty, otherwise falls back to
// DefaultFileName in the current directory.
func Resolve(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	return Load(DefaultFileName)
}
