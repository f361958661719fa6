package terminal

import (
	"modlist/internal/console"
	"modlist/internal/mods"
)

// QuitCommand prints the final list, if any, and ends the session.
// The process exit itself belongs to the caller of Session.Run.
type QuitCommand struct {
	Console *console.Console
	Items   mods.Items
	Format  mods.Format
	Done    *bool
}

func (cmd *QuitCommand) Execute() {
	if len(cmd.Items) > 0 {
		emit(cmd.Console, cmd.Items, cmd.Format)
	}
	*cmd.Done = true
}
