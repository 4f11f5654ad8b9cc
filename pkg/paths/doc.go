// Package paths provides centralized path handling for gig.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/gig/config.toml (user configuration)
//   - Data: $XDG_DATA_HOME/gig/templates (default local template directory)
//   - State: $XDG_STATE_HOME/gig/gig.log (log file)
//
// # Environment Variables
//
//   - GIG_TEMPLATES_DIR: local template directory, read by the local backend
//     on every call
//   - GIG_CONFIG: explicit configuration file
package paths
