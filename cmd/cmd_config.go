package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/readline"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change stored settings",
	}

	getCmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE:  ConfigGetHandler,
	}
	setCmd := &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Change one setting",
		Long:  "Change one setting. Without VALUE an inline editor opens, with the\ncurrent value shown as the placeholder.",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  ConfigSetHandler,
	}
	unsetCmd := &cobra.Command{
		Use:   "unset KEY",
		Short: "Drop a setting back to its default",
		Args:  cobra.ExactArgs(1),
		RunE:  ConfigUnsetHandler,
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show every setting",
		Args:  cobra.ExactArgs(0),
		RunE:  ConfigListHandler,
	}

	configCmd.AddCommand(getCmd, setCmd, unsetCmd, listCmd)
	return configCmd
}

func ConfigGetHandler(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	v, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func ConfigSetHandler(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	key := args[0]

	var value any
	if len(args) == 2 {
		value = args[1]
	} else {
		line, err := editValue(cfg, key)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		value = line
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	stored, err := cfg.Get(key)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %v\n", key, stored)
	return nil
}

// editValue opens the inline editor for key. An empty return means
// the edit was abandoned.
func editValue(cfg *config.Config, key string) (string, error) {
	current, err := cfg.Get(key)
	if err != nil {
		return "", err
	}

	rl, err := readline.New(readline.Prompt{
		Prompt:      key + "> ",
		Placeholder: fmt.Sprintf("%v", current),
	})
	if err != nil {
		return "", err
	}

	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", err
	}
	return line, nil
}

func ConfigUnsetHandler(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if err := cfg.Unset(args[0]); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	def, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s = %v (default)\n", args[0], def)
	return nil
}

func ConfigListHandler(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}

	var data [][]string
	for _, key := range config.Keys() {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		def, err := config.Default(key)
		if err != nil {
			return err
		}
		data = append(data, []string{key, fmt.Sprintf("%v", v), fmt.Sprintf("%v", def)})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"KEY", "VALUE", "DEFAULT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
