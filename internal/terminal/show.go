package terminal

import (
	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

// ShowCommand prints the list without changing it.
type ShowCommand struct {
	Console *console.Console
	Items   mods.Items
	Format  mods.Format
}

func (cmd *ShowCommand) Execute() {
	if len(cmd.Items) == 0 {
		cmd.Console.Warn("WARNING: no items, cannot show.")
		return
	}
	emit(cmd.Console, cmd.Items, cmd.Format)
}

// emit writes the list to the console. Errors are logged; the session goes on.
func emit(c *console.Console, items mods.Items, format mods.Format) {
	if err := mods.Encode(c.Out(), items, format); err != nil {
		logger.Error("[ERROR] Failed to print items: %v\n", err)
	}
}
