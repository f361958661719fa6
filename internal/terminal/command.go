package terminal

import (
	"strconv"
	"strings"

	"modlist/internal/console"
	"modlist/internal/logger"
	"modlist/internal/mods"
)

// Warnings shown on the console.
const (
	InvalidInputMsg  = "WARNING: Invalid input, please try again."
	EmptyFilenameMsg = "WARNING: filename is empty, please try again."
	OutOfBoundsMsg   = "WARNING: index out of bounds, please try again."
)

// Command is one user-invocable operation. It holds the list only for the duration of Execute.
type Command interface {
	Execute()
}

// readItem asks for the three fields of a new item, looping on each until it is valid.
func readItem(c *console.Console) mods.Item {
	c.Printf("\n--- Adding a new item ---\n\n")
	var item mods.Item

	for {
		in := c.Prompt("Filename: ")
		if in == "" {
			c.Warn(EmptyFilenameMsg)
			continue
		}
		item.Filename = in
		break
	}

	c.Printf("\n\n")

	for {
		action, err := mods.ParseAction(c.Prompt("Action (ADD, DELETE, UPDATE): "))
		if err != nil {
			logger.Debug("[DEBUG] %v\n", err)
			c.Warn(InvalidInputMsg)
			continue
		}
		item.Action = action
		break
	}

	c.Printf("\n\n")

	for {
		in := c.Prompt("Direct download link: ")
		if in == "" {
			c.Warn(EmptyFilenameMsg)
			continue
		}
		item.DownloadLink = in
		break
	}

	return item
}

// printItems lists items numbered from 1.
func printItems(c *console.Console, items mods.Items) {
	c.Printf("\n\n-- ITEMS LISTED --\n\n\n")
	for i, item := range items {
		c.Printf("%d: %s\n", i+1, item)
	}
}

// readItemIndex redisplays the list and asks for a 1-based number until it names an item.
// It returns the 0-based index. items must not be empty.
func readItemIndex(c *console.Console, items mods.Items) int {
	for {
		printItems(c, items)
		in := c.Prompt("Enter the item number you wish to change: ")
		// A single leading plus sign is accepted, as in "+2".
		n, err := strconv.ParseUint(strings.TrimPrefix(in, "+"), 10, 0)
		if err != nil {
			c.Warn(InvalidInputMsg)
			continue
		}
		if n == 0 || n > uint64(len(items)) {
			c.Warn(OutOfBoundsMsg)
			continue
		}
		return int(n - 1)
	}
}
