package swman

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Update system packages, tools and plugins"
	MsgListShort       = "List known package managers and whether they are installed"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInterrupted = "Interrupted"

	// Error messages
	MsgErrNoOperation   = "no operation specified: use --check, --system, --tools, --plugins or --all"
	MsgErrUpdatesFailed = "%d of %d update(s) failed"
	MsgErrBadFormat     = "invalid --format: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show what an update would do without changing anything"
	MsgFlagCheck   = "List pending updates for every installed manager"
	MsgFlagSystem  = "Update system package managers (pacman, yay, apt)"
	MsgFlagTools   = "Update tool managers (uv)"
	MsgFlagPlugins = "Update plugin managers (lazy.nvim, fisher)"
	MsgFlagAll     = "Update every installed manager"
	MsgFlagJSON    = "Output JSON (same as --format json)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/swman/config.toml)"

	MsgFlagDefaults = "Print the commented built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
