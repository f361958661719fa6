package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Output is where diagnostics are written.
// It defaults to a colorable stderr so stdout only carries the interactive session and the emitted list.
var Output io.Writer = color.Error

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
// Green is used for normal progress, such as the end-of-session summary.
var Info = printer(color.FgGreen)

// Warn logs warning messages in bright magenta color.
// The console uses the same color for its user-facing warnings.
var Warn = printer(color.FgHiMagenta)

// Error logs error messages in red color.
// Red marks failures that did not stop the session, such as an emitter error.
var Error = printer(color.FgRed)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It stays a no-op until Init is called with enableDebug set.
var Debug = func(format string, a ...any) {}

// printer builds a printf-like function writing to Output with the given color.
// Output is resolved on every call, so tests may swap it after package init.
func printer(attr color.Attribute) func(format string, a ...any) {
	c := color.New(attr) // Color is fixed here, NoColor is checked on each print
	return func(format string, a ...any) {
		_, _ = c.Fprintf(Output, format, a...)
	}
}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = printer(color.FgCyan)
	} else {
		// Assign Debug to a no-op function that ignores all debug logs.
		Debug = func(format string, a ...any) {}
	}
}
