package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"modlist/internal/logger"
)

// Console is the line-oriented terminal the session talks through.
// Prompts, notices and warnings go to the writer; answers are read one line at a time.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	warn *color.Color
}

// New wraps r and w. In production these are os.Stdin and os.Stdout.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:   bufio.NewReader(r),
		out:  w,
		warn: color.New(color.FgHiMagenta),
	}
}

// Out exposes the writer so commands can emit the list on the same stream.
func (c *Console) Out() io.Writer {
	return c.out
}

// Prompt displays message without a trailing newline and returns the next line, trimmed.
// A read failure yields an empty string; callers treat it like the user typed nothing.
func (c *Console) Prompt(message string) string {
	fmt.Fprint(c.out, message)
	if f, ok := c.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		// A last line without a newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line)
		}
		logger.Debug("[DEBUG] Failed to read input: %v\n", err)
		return ""
	}
	return strings.TrimSpace(line)
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text as is.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Warn writes msg on its own line in the warning color.
func (c *Console) Warn(msg string) {
	_, _ = c.warn.Fprintln(c.out, msg)
}
