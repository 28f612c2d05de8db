package cmd

import (
	"fmt"

	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the display theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var t habit.Theme
		switch {
		case len(args) == 0:
			t, err = client.Theme(ctx)
		case args[0] == "toggle":
			t, err = client.ToggleTheme(ctx)
		default:
			t, err = client.SetTheme(ctx, habit.ParseTheme(args[0]))
		}
		if err != nil {
			return fmt.Errorf("theme: %w", err)
		}
		cmd.Printf("Theme: %s\n", t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
