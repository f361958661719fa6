package console

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestPrompt_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  mod.zip \r\nnext\n"), &out)

	require.Equal(t, "mod.zip", c.Prompt("Filename: "))
	require.Equal(t, "next", c.Prompt("Again: "))
	require.Equal(t, "Filename: Again: ", out.String())
}

func TestPrompt_LastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("q"), &bytes.Buffer{})
	require.Equal(t, "q", c.Prompt("> "))
}

func TestPrompt_EOFIsEmpty(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})
	require.Equal(t, "", c.Prompt("> "))
	require.Equal(t, "", c.Prompt("> "))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrompt_ReadFailureIsEmpty(t *testing.T) {
	c := New(failingReader{}, &bytes.Buffer{})
	require.Equal(t, "", c.Prompt("> "))
}

func TestWarn(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Warn("WARNING: something")
	c.Println("plain")
	require.Equal(t, "WARNING: something\nplain\n", out.String())
}
