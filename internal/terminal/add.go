package terminal

import (
	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

// AddCommand appends one item read from the console.
type AddCommand struct {
	Console *console.Console
	Items   *mods.Items
}

func (cmd *AddCommand) Execute() {
	item := readItem(cmd.Console)
	*cmd.Items = append(*cmd.Items, item)
	logger.Debug("[DEBUG] Added %s, list now has %d items\n", item, len(*cmd.Items))
}
