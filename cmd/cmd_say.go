package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/personality"
)

func newSayCmd() *cobra.Command {
	sayCmd := &cobra.Command{
		Use:   "say [TOPIC...]",
		Short: "Let Rick comment on something",
		RunE:  SayHandler,
	}
	sayCmd.Flags().String("mood", "greeting", "Mood to draw from: greeting, confirm, cancel, error or status")
	return sayCmd
}

func SayHandler(cmd *cobra.Command, args []string) error {
	moodName, err := cmd.Flags().GetString("mood")
	if err != nil {
		return err
	}
	mood, err := personality.ParseMood(moodName)
	if err != nil {
		return err
	}

	line := personality.New(&config.Config{}).Line(mood)
	if len(args) > 0 {
		line += " (re: " + strings.Join(args, " ") + ")"
	}
	fmt.Println(line)
	return nil
}
