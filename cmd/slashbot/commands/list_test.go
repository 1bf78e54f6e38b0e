package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	botcommands "slashbot/internal/commands"
	"slashbot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCommands(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printCommands(&buf, botcommands.NewModuleHandler(config.NewMockConfig(nil))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "/help"))
	assert.Contains(t, lines[1], "ephemeral")
	assert.Contains(t, lines[1], "Displays all commands available to you!")
	assert.True(t, strings.HasPrefix(lines[2], "/ping"))
	assert.Contains(t, lines[2], "public")
	assert.Contains(t, lines[2], "Replies with Pong(ms)!")
}

func TestRootCmdWiring(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "commands"})
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestCommandsSubcommand(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("SLASHBOT_LOG_DIR", t.TempDir())

	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"commands", "--log-level", "error"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "/help")
	assert.Contains(t, buf.String(), "/ping")
}

// chdirForTest changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (unavailable before Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
