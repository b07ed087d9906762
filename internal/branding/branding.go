// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	StateDir    string `yaml:"state_dir"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "crosslink",
			DisplayName: "Crosslink",
			Description: "Link, install and tear down interdependent local npm packages",
			HomeDir:     ".crosslink",
			EnvPrefix:   "CROSSLINK",
			StateDir:    "crosslink",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "crosslink").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".crosslink").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CROSSLINK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// StateDir returns the directory name used under $XDG_STATE_HOME.
func StateDir() string { load(); return defaults.StateDir }
