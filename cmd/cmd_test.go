package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mmadalone/rick-assistant/envconfig"
)

func TestNewCLIStructure(t *testing.T) {
	root := NewCLI()
	require.Equal(t, "rick", root.Name())
	require.True(t, root.SilenceUsage)
	require.True(t, root.SilenceErrors)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, expected := range []string{"menu", "config", "status", "say", "version"} {
		require.Contains(t, names, expected)
	}

	listCmd, _, err := root.Find([]string{"config", "list"})
	require.NoError(t, err)
	require.Equal(t, "list", listCmd.Name())
}

func TestAppendEnvDocs(t *testing.T) {
	c := &cobra.Command{Use: "probe"}
	appendEnvDocs(c, []envconfig.EnvVar{{Name: "RICK_HOME", Description: "Directory for state"}})
	require.Contains(t, c.UsageTemplate(), "Environment Variables")
	require.Contains(t, c.UsageTemplate(), "RICK_HOME")

	// No vars, no section.
	d := &cobra.Command{Use: "probe"}
	before := d.UsageTemplate()
	appendEnvDocs(d, nil)
	require.Equal(t, before, d.UsageTemplate())
}
