package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var exportPath string

// Backup mirrors the three persisted records.
type Backup struct {
	Sections []habit.Section `json:"sections"`
	Habits   []habit.Habit   `json:"habits"`
	Theme    habit.Theme     `json:"theme"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all sections, habits and the theme to a JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		b := Backup{Sections: []habit.Section{}, Habits: []habit.Habit{}}
		sections, err := client.ListSections(ctx)
		if err != nil {
			return fmt.Errorf("fetching sections: %w", err)
		}
		b.Sections = append(b.Sections, sections...)

		resp, err := client.ListHabits(ctx)
		if err != nil {
			return fmt.Errorf("fetching habits: %w", err)
		}
		for _, r := range resp.Habits {
			b.Habits = append(b.Habits, r.Habit)
		}

		if b.Theme, err = client.Theme(ctx); err != nil {
			return fmt.Errorf("fetching theme: %w", err)
		}

		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		if err := atomic.WriteFile(exportPath, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("writing %s: %w", exportPath, err)
		}
		cmd.Printf("Exported %d sections and %d habits to %s\n", len(b.Sections), len(b.Habits), exportPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "habits-export.json", "file to write")
	rootCmd.AddCommand(exportCmd)
}
