package cmd

import (
	"os"

	"github.com/fatih/color" // Global color switch for --no-color
	"github.com/spf13/cobra"

	"modlist/internal/console"  // Line-oriented prompt/read over stdin and stdout
	"modlist/internal/logger"   // Colored leveled logging to stderr
	"modlist/internal/mods"     // Item model and list emitter
	"modlist/internal/terminal" // Interactive commands and the dispatcher loop
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// output is the format the list is printed in, "json" (default) or "yaml".
// It is set via the `--output` or `-o` flag and validated before the session starts.
var output string

// noColor turns off colored warnings and logs.
// Colors are already off when stdout is not a terminal; this flag forces it.
var noColor bool

// rootCmd is the base command for the CLI tool `modlist`.
// It has no subcommands: running it starts the interactive session.
var rootCmd = &cobra.Command{
	Use:   "modlist",                                                        // The name of the CLI tool
	Short: "Interactively build the mods upgrade list and print it as JSON", // Short description shown in help output
	Args:  cobra.NoArgs,                                                     // Everything is typed at the prompts

	// Errors are printed once, by Execute.
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before the command.
	// Here, we apply the color switch and initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		// Reject an unknown --output value before any prompt is shown
		format, err := mods.ParseFormat(output)
		if err != nil {
			return err
		}

		// The session talks through the command's streams: os.Stdin and os.Stdout unless overridden
		session := terminal.NewSession(console.New(cmd.InOrStdin(), cmd.OutOrStdout()), format)

		// Run returns only after Quit; returning nil exits with status 0.
		session.Run()
		return nil
	},
}

// Execute starts the command execution.
// It's the entry point for the CLI when invoked by the user.
// Flag errors are logged and exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// init registers the global flags on the root command.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", string(mods.FormatJSON), "Output format of the list (json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
