package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})
	require.NoError(t, err)
	assert.Same(t, tuiCmd, cmd)
	assert.Equal(t, "Launch the interactive case review screen", cmd.Short)
}

func TestTUICmd_HelpListsControls(t *testing.T) {
	out, err := execute("tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Controls:")
	for _, control := range []string{"Toggle override", "Switch mode", "Generate paperwork", "Reload cases"} {
		assert.Contains(t, out, control)
	}
}

func TestTUICmd_ServiceNotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := execute("tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}
