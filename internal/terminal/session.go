package terminal

import (
	"strings"

	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

const commandPrompt = "Enter command (q: Quit, a: Add, m: Modify, d: Delete, s: Show): "

// Session owns the item list and runs the read-command/execute-command loop.
type Session struct {
	console *console.Console
	format  mods.Format
	items   mods.Items
	done    bool
}

// NewSession starts with an empty list.
func NewSession(c *console.Console, format mods.Format) *Session {
	return &Session{console: c, format: format}
}

// Items returns the current list.
func (s *Session) Items() mods.Items {
	return s.items
}

// Run dispatches commands until the user quits.
func (s *Session) Run() {
	for !s.done {
		cmd := s.readCommand()
		logger.Debug("[DEBUG] Executing %T\n", cmd)
		cmd.Execute()
	}
	logger.Info("[INFO] Session finished with %d items\n", len(s.items))
}

// readCommand prompts until the token is a known command letter and binds that command to the list.
func (s *Session) readCommand() Command {
	for {
		switch strings.ToLower(s.console.Prompt(commandPrompt)) {
		case "q":
			return &QuitCommand{Console: s.console, Items: s.items, Format: s.format, Done: &s.done}
		case "a":
			return &AddCommand{Console: s.console, Items: &s.items}
		case "m":
			return &ModifyCommand{Console: s.console, Items: &s.items}
		case "d":
			return &DeleteCommand{Console: s.console, Items: &s.items}
		case "s":
			return &ShowCommand{Console: s.console, Items: s.items, Format: s.format}
		default:
			s.console.Warn(InvalidInputMsg)
		}
	}
}
