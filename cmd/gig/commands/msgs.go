package commands

import (
	_ "embed"
	"strings"
)

// Short messages
const (
	MsgRootShort = "Generate .gitignore files from templates"

	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagList          = "List available template names"
	MsgFlagCheck         = "Check template names against each source listing before generating"
	MsgFlagServerURL     = "Base URL of the template service"
	MsgFlagGeneratorPath = "Path of the generator endpoint on the template service"
	MsgFlagListerPath    = "Path of the lister endpoint on the template service"
	MsgFlagTimeoutFormat = "HTTP timeout in --timeout-unit, 0 for the default (%d seconds, %d milliseconds)"
	MsgFlagTimeoutUnit   = "Unit of --timeout: second or millisecond"
	MsgFlagSource        = "Template source, repeat for several (local, remote)"
	MsgFlagAuthor        = "Print author information"
	MsgFlagVersion       = "Print version information"
	MsgFlagOutputFormat  = "Output format: auto, term or text"
	MsgFlagPrintConfig   = "Print the effective configuration (toml or yaml) and exit"

	MsgVersionFormat = "gig %s\n  commit: %s\n  built:  %s"
	MsgAuthorFormat  = "gig is written by %s"

	MsgErrInvalidName   = "Invalid template name %q: names must not contain commas or whitespace."
	MsgErrConfig        = "An error occurred while loading the configuration: "
	MsgErrOutputFormat  = "Invalid output format: "
	MsgErrPrintConfig   = "An error occurred while printing the configuration: "
	MsgErrBackends      = "An error occurred while setting up template sources: "
	MsgErrArgumentsHint = "Run 'gig --help' for usage."
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimRight(msgUsageTemplateRaw, "\n") + "\n"
)
