package main

import (
	"modlist/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// modlist builds the JSON list consumed by the mods upgrader client:
//   - Each entry names a mod file, the action to take on it (ADD, DELETE, UPDATE) and a direct download link
//   - Entries are added, modified, deleted and shown through one-letter commands typed at a prompt
//   - Quitting prints the accumulated list as indented JSON on stdout and exits with status 0
//
// Nothing is read from or written to disk: redirect stdout to keep the list.
func main() {
	cmd.Execute()
}
