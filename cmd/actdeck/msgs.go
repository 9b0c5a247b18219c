package actdeck

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A debug action console"
	MsgListShort       = "List registered actions"
	MsgRunShort        = "Run actions by id or name"
	MsgConsoleShort    = "Start an interactive action console"
	MsgVersionShort    = "Print build information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgActionCompleted    = "✓ %s completed"
	MsgActionNotCompleted = "✗ %s did not complete"
	MsgDidYouMean         = "did you mean '%s'?"
	MsgConsoleWelcome     = "%d actions registered. Type an id or name, 'list' to show them, 'quit' to leave."
	MsgConsoleBye         = "Bye."
	MsgQuitOption         = "quit"
	MsgSelectPrompt       = "Select an action"
	MsgVersionFormat      = "actdeck %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrNotCompleted = "%d of %d actions did not complete"
	MsgErrHelpNotFound = "help command not found"
	MsgErrConfirmNoTTY = "stdin is not a terminal; use --yes to run actions that require confirmation"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to the configuration file"
	MsgFlagActions    = "Load actions from a TOML or YAML file (repeatable)"
	MsgFlagNoBuiltins = "Do not register the builtin runtime actions"
	MsgFlagFormat     = "Output format (auto, term, text, json, yaml, toml, xml)"
	MsgFlagYes        = "Answer yes to every confirmation prompt"
	MsgFlagSort       = "Listing order (name, registration)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/console-long.txt
	msgConsoleLongRaw string
	MsgConsoleLong    = strings.TrimSpace(msgConsoleLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
