package terminal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"modlist/internal/logger"
	"modlist/internal/mods"
)

func TestSession_QuitOnEmptyList(t *testing.T) {
	c, out := scripted("q")
	s := NewSession(c, mods.FormatJSON)

	s.Run()

	require.Empty(t, s.Items())
	require.Equal(t, commandPrompt, out.String())
}

func TestSession_InvalidCommandsKeepList(t *testing.T) {
	c, out := scripted("x", "", "add", "Q")
	s := NewSession(c, mods.FormatJSON)

	s.Run()

	require.Empty(t, s.Items())
	require.Equal(t, 3, strings.Count(out.String(), InvalidInputMsg))
	require.Equal(t, 4, strings.Count(out.String(), commandPrompt))
}

func TestSession_FullRun(t *testing.T) {
	c, out := scripted(
		"a", "a.zip", "add", "u1",
		"A", "b.zip", "UPDATE", "u2",
		"a", "c.zip", "delete", "u3",
		"d", "1",
		"m", "1", "2", "DELETE",
		"s",
		"q",
	)
	s := NewSession(c, mods.FormatJSON)

	s.Run()

	want := mods.Items{
		{Filename: "b.zip", Action: mods.ActionDelete, DownloadLink: "u2"},
		{Filename: "c.zip", Action: mods.ActionDelete, DownloadLink: "u3"},
	}
	require.Equal(t, want, s.Items())

	// Show and Quit both print the list.
	printed := strings.Split(out.String(), "\n\n[")
	require.Len(t, printed, 3)

	doc := "[" + printed[2]
	doc = doc[:strings.Index(doc, "]")+1]
	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(doc), &got))
	require.Equal(t, []map[string]string{
		{"mod_filename": "b.zip", "action": "DELETE", "download_link": "u2"},
		{"mod_filename": "c.zip", "action": "DELETE", "download_link": "u3"},
	}, got)
}

func TestSession_ShowYAML(t *testing.T) {
	c, out := scripted("a", "mod.zip", "add", "http://x/y", "s", "q")
	s := NewSession(c, mods.FormatYAML)

	s.Run()

	require.Contains(t, out.String(), "mod_filename: mod.zip")
	require.Contains(t, out.String(), "action: ADD")
	require.Contains(t, out.String(), "download_link: http://x/y")
}

func TestSession_EmptyListCommands(t *testing.T) {
	c, out := scripted("d", "m", "s", "q")
	s := NewSession(c, mods.FormatJSON)

	s.Run()

	require.Empty(t, s.Items())
	require.Contains(t, out.String(), "WARNING: no items, cannot delete.")
	require.Contains(t, out.String(), "WARNING: no items, cannot modify.")
	require.Contains(t, out.String(), "WARNING: no items, cannot show.")
	require.NotContains(t, out.String(), "[")
}

func TestSession_LogsSummary(t *testing.T) {
	var logs bytes.Buffer
	logger.Output = &logs
	t.Cleanup(func() { logger.Output = color.Error })

	c, out := scripted("a", "mod.zip", "add", "u1", "q")
	NewSession(c, mods.FormatJSON).Run()

	require.Equal(t, "[INFO] Session finished with 1 items\n", logs.String())
	require.NotContains(t, out.String(), "[INFO]")
}
