// Package config loads shelf's settings.
//
// # Resolution Order
//
// Values are layered, later sources winning:
//
//  1. Built-in defaults
//  2. TOML file (-config path, or ~/.config/shelf/config.toml)
//  3. SHELF_* environment variables, with ./.env loaded first when present
//  4. Command-line flags, applied by the caller
//
// A missing file is not an error. A file that fails to parse is.
// Blank values at any layer fall back to the defaults.
//
// # TOML Format
//
//	api_url = "http://localhost:8001"
//	log_file = "~/.local/state/shelf/shelf.log"
//	log_level = "info"
//
// # Environment
//
//	SHELF_API_URL, SHELF_LOG_FILE, SHELF_LOG_LEVEL
//
// # Path Expansion
//
// The config and log paths accept a leading tilde and are made absolute.
package config
