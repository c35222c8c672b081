package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Registered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Metadata(t *testing.T) {
	assert.Equal(t, "tui [document]", tuiCmd.Use)
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestTUICmd_OutputDirFlag(t *testing.T) {
	flag := tuiCmd.Flags().Lookup("output-dir")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, ".", flag.DefValue)
}

func TestTUICmd_RejectsExtraArgs(t *testing.T) {
	assert.Error(t, tuiCmd.Args(tuiCmd, []string{"a.pdf", "b.pdf"}))
	assert.NoError(t, tuiCmd.Args(tuiCmd, []string{"a.pdf"}))
	assert.NoError(t, tuiCmd.Args(tuiCmd, nil))
}

func TestTUICmd_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tui", "--help"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "--output-dir")
}
