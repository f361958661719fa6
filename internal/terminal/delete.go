package terminal

import (
	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

// DeleteCommand removes the item the user selects.
type DeleteCommand struct {
	Console *console.Console
	Items   *mods.Items
}

func (cmd *DeleteCommand) Execute() {
	if len(*cmd.Items) == 0 {
		cmd.Console.Warn("WARNING: no items, cannot delete.")
		return
	}
	idx := readItemIndex(cmd.Console, *cmd.Items)
	logger.Debug("[DEBUG] Deleting item %d: %s\n", idx+1, (*cmd.Items)[idx])
	cmd.Items.Remove(idx)
}
