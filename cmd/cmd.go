// Package cmd assembles the rick command line: the interactive menu,
// config inspection, system status, and the flavor-text surface.
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mmadalone/rick-assistant/envconfig"
	"github.com/mmadalone/rick-assistant/version"
)

// appendEnvDocs adds an environment-variable section to the command's
// usage output.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Printf("rick version is %s\n", version.Version)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.ExactArgs(0),
		Run:   versionHandler,
	}
}

// NewCLI builds the root command with every subcommand attached.
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "rick",
		Short:         "Rick's terminal assistant",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.SetVersionTemplate("rick version is {{.Version}}\n")

	menuCmd := newMenuCmd()
	configCmd := newConfigCmd()
	statusCmd := newStatusCmd()
	sayCmd := newSayCmd()

	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["RICK_DEBUG"], envVars["RICK_HOME"]}

	for _, cmd := range []*cobra.Command{menuCmd, configCmd, statusCmd, sayCmd} {
		switch cmd {
		case menuCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["RICK_DEBUG"],
				envVars["RICK_HOME"],
				envVars["RICK_COLOR"],
				envVars["RICK_UNICODE"],
				envVars["RICK_MENU_IDLE"],
				envVars["RICK_KEY_TIMEOUT"],
			})
		case sayCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["RICK_HOME"], envVars["RICK_PERSONALITY"]})
		default:
			appendEnvDocs(cmd, envs)
		}
	}

	rootCmd.AddCommand(
		menuCmd,
		configCmd,
		statusCmd,
		sayCmd,
		newVersionCmd(),
	)

	return rootCmd
}
