// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool (or target another
// namespace package) without touching Go code.
package branding

import (
	_ "embed"
	"strings"
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
	Namespace   string `yaml:"namespace"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "make-flaskext",
			DisplayName: "Flask Extension Creator Wizard",
			Description: "Scaffold a new Flask extension project",
			HomeDir:     ".flaskext",
			EnvPrefix:   "FLASKEXT",
			Namespace:   "flaskext",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "make-flaskext").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable wizard title.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".flaskext").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FLASKEXT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Namespace returns the shared namespace package every generated extension
// lives under (e.g., "flaskext").
func Namespace() string { load(); return defaults.Namespace }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("author") → "FLASKEXT_AUTHOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
