// Package config loads internboard settings from TOML and the environment.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/internboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. INTERNBOARD_DATA_SOURCE, INTERNBOARD_LOG_DIR and INTERNBOARD_LOG_LEVEL
//     override whatever came from the file
//
// A .env file in the working directory is loaded into the environment by the
// command before Load runs, so it feeds step 5.
//
// # TOML Format
//
//	data_source = "data/internships.json"   # path or http(s) URL
//	log_dir = "~/.local/share/internboard/logs"
//	log_level = "info"                     # debug switches to the console encoder
//	search_debounce_ms = 300
//	request_timeout_seconds = 30
//
// Every field is optional. Tilde expansion is performed on log_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error.
package config
