// Package paths provides centralized path handling for swman.
// It follows the XDG Base Directory specification for the config
// file and the log file, and expands ~ in user supplied paths such
// as plugin manager markers.
package paths
