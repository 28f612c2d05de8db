package cmd

import (
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the days of the current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		wk, err := client.Week(cmd.Context())
		if err != nil {
			return err
		}

		table := uitable.New()
		table.AddRow("", "DAY", "DATE")
		for _, d := range wk.Days {
			marker := ""
			if d.DateStr == wk.Today {
				marker = ">"
			}
			table.AddRow(marker, d.DayName, d.DateStr)
		}
		cmd.Println(table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
