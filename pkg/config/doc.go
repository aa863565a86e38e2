// Package config loads swman's configuration.
//
// Sources are layered with koanf, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/swman/config.toml or --config
//  3. SWMAN_* environment variables, double underscore separating levels
//     (SWMAN_MANAGERS__YAY__UPDATE_TIMEOUT=45m)
//  4. programmatic overrides, used for command line flags
//
// The merged tree is decoded into Config with mapstructure hooks so
// durations can be written as "600s" or "30m".
package config
