package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/flaskext/make-flaskext/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognised in the config file.
const (
	KeyAuthor    = "author"
	KeyDocsTheme = "docs_theme"
	KeyVersion   = "version"
	KeyThemeRepo = "theme_repo"
)

// Built-in defaults used when neither the config file nor the environment
// provide a value.
const (
	DefaultDocsTheme = "flask_small"
	DefaultVersion   = "0.1"
	DefaultThemeRepo = "git://github.com/mitsuhiko/flask-sphinx-themes.git"
)

// Settings holds the resolved wizard defaults.
type Settings struct {
	Author    string `mapstructure:"author"`
	DocsTheme string `mapstructure:"docs_theme"`
	Version   string `mapstructure:"version"`
	ThemeRepo string `mapstructure:"theme_repo"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{
		DocsTheme: DefaultDocsTheme,
		Version:   DefaultVersion,
		ThemeRepo: DefaultThemeRepo,
	}
}

// Dir returns the path to the config directory (~/.flaskext/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.flaskext/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the config file at FilePath and the environment.
func Load() (*Settings, error) {
	return LoadFile(FilePath())
}

// LoadFile reads settings from path, overlaid with FLASKEXT_* environment
// variables. A missing file is not an error. The merged settings are checked
// against the embedded schema before decoding, and the version must parse as
// a semantic version.
func LoadFile(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyAuthor, d.Author)
	v.SetDefault(KeyDocsTheme, d.DocsTheme)
	v.SetDefault(KeyVersion, d.Version)
	v.SetDefault(KeyThemeRepo, d.ThemeRepo)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("invalid config file %s: %s", path, strings.Join(msgs, "; "))
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	if _, err := semver.NewVersion(s.Version); err != nil {
		return nil, fmt.Errorf("invalid config file %s: version %q: %w", path, s.Version, err)
	}
	return s, nil
}
