package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <habit-id> [date]",
	Short: "Toggle a habit's completion for a day",
	Long: `Mark a habit done for today, or for the given YYYY-MM-DD date. Running it
again for the same day clears the mark.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var date string
		if len(args) == 2 {
			date = args[1]
		}
		row, err := client.Toggle(cmd.Context(), args[0], date)
		if err != nil {
			return err
		}

		progress := fmt.Sprintf("%d/%d this week", row.CompletedInWeek, row.Habit.WeeklyGoal)
		if row.GoalMet {
			progress = goalMet(progress + ", goal met")
		}
		cmd.Printf("%s: %s\n", row.Habit.Title, progress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
