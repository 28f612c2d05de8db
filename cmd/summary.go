package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show this week's totals across all habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := client.Summary(cmd.Context())
		if err != nil {
			return err
		}
		s := resp.Summary

		var from, to string
		if n := len(resp.Week); n > 0 {
			from, to = resp.Week[0].DateStr, resp.Week[n-1].DateStr
		}

		table := uitable.New()
		table.AddRow("Week:", fmt.Sprintf("%s to %s", from, to))
		table.AddRow("Habits:", s.TotalHabits)
		table.AddRow("Completions:", fmt.Sprintf("%d/%d", s.TotalCompleted, s.TotalPossible))
		table.AddRow("Average progress:", fmt.Sprintf("%d%%", s.AverageProgress))
		table.AddRow("Goals met:", goalMet(fmt.Sprintf("%d/%d", s.HabitsAchievedGoal, s.TotalHabits)))
		cmd.Println(table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
