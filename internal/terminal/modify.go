package terminal

import (
	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

// Field numbers offered by the modify menu.
const (
	fieldFilename     = "1"
	fieldAction       = "2"
	fieldDownloadLink = "3"
)

// ModifyCommand overwrites one field of the item the user selects.
type ModifyCommand struct {
	Console *console.Console
	Items   *mods.Items
}

func (cmd *ModifyCommand) Execute() {
	if len(*cmd.Items) == 0 {
		cmd.Console.Warn("WARNING: no items, cannot modify.")
		return
	}
	idx := readItemIndex(cmd.Console, *cmd.Items)
	cmd.modifyItem(&(*cmd.Items)[idx])
	logger.Debug("[DEBUG] Item %d is now %s\n", idx+1, (*cmd.Items)[idx])
}

// readField asks which field to change until the answer is one of the menu numbers.
func (cmd *ModifyCommand) readField() string {
	cmd.Console.Println("What do you want to modify?")
	for {
		in := cmd.Console.Prompt("1: Filename\n2: Action\n3: Direct download link\n-> ")
		switch in {
		case fieldFilename, fieldAction, fieldDownloadLink:
			return in
		default:
			cmd.Console.Warn(InvalidInputMsg)
		}
	}
}

// modifyItem touches only the chosen field of item.
func (cmd *ModifyCommand) modifyItem(item *mods.Item) {
	switch cmd.readField() {
	case fieldFilename:
		item.Filename = cmd.readText("Filename new value: ")
	case fieldAction:
		for {
			action, err := mods.ParseAction(cmd.Console.Prompt("Action new value (ADD, DELETE, UPDATE) : "))
			if err != nil {
				logger.Debug("[DEBUG] %v\n", err)
				cmd.Console.Warn(InvalidInputMsg)
				continue
			}
			item.Action = action
			return
		}
	case fieldDownloadLink:
		item.DownloadLink = cmd.readText("Direct download link new value: ")
	}
}

// readText prompts until the answer is not empty.
func (cmd *ModifyCommand) readText(message string) string {
	for {
		in := cmd.Console.Prompt(message)
		if in != "" {
			return in
		}
		cmd.Console.Warn(InvalidInputMsg)
	}
}
