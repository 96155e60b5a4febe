package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_Registered(t *testing.T) {
	cmds := commands()

	for _, name := range []string{"migrate", "audit-list", "sessions-clear"} {
		cmd, ok := cmds[name]
		require.True(t, ok, "command %q missing", name)
		assert.Equal(t, name, cmd.name)
		assert.NotEmpty(t, cmd.description)
		assert.NotNil(t, cmd.run)
	}
}

func TestPrintUsage_ListsEveryCommand(t *testing.T) {
	var buf strings.Builder

	printUsage(&buf)

	out := buf.String()
	for name := range commands() {
		assert.Contains(t, out, name)
	}
}
