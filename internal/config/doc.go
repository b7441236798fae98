// Package config manages user-level defaults stored at ~/.flaskext/config.yaml.
// The file is optional; when present its keys (author, docs_theme, version,
// theme_repo) only change the defaults the wizard offers, never skip a prompt.
// FLASKEXT_* environment variables override the file.
package config
