package cmd

import (
	"fmt"

	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	doneMark   = color.New(color.FgGreen).SprintFunc()
	todayMark  = color.New(color.Bold).SprintFunc()
	goalMet    = color.New(color.FgGreen, color.Bold).SprintFunc()
	goalBehind = color.New(color.FgYellow).SprintFunc()
	heading    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long: `The "list" command shows every habit grouped by section, with a tick for
each day of the current week it was completed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return list(cmd)
	},
}

func list(cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	sections, err := client.ListSections(ctx)
	if err != nil {
		return fmt.Errorf("fetching sections: %w", err)
	}
	resp, err := client.ListHabits(ctx)
	if err != nil {
		return fmt.Errorf("fetching habits: %w", err)
	}
	wk, err := client.Week(ctx)
	if err != nil {
		return fmt.Errorf("fetching week: %w", err)
	}

	if len(resp.Habits) == 0 {
		cmd.Println("No habits yet. Add one with: habits habit add <title>")
		return nil
	}

	for _, g := range groupBySection(sections, resp.Habits) {
		cmd.Println(heading(g.name))
		cmd.Println(weekTable(g.rows, resp.Week, wk.Today))
		cmd.Println()
	}
	return nil
}

type sectionGroup struct {
	name string
	rows []habit.HabitProgress
}

// groupBySection keeps section order and habit order within each section.
// Habits pointing at an unknown section are collected last.
func groupBySection(sections []habit.Section, rows []habit.HabitProgress) []sectionGroup {
	idx := make(map[string]int, len(sections))
	groups := make([]sectionGroup, 0, len(sections)+1)
	for _, s := range sections {
		idx[s.ID] = len(groups)
		groups = append(groups, sectionGroup{name: s.Name})
	}

	var orphans []habit.HabitProgress
	for _, r := range rows {
		i, ok := idx[r.Habit.SectionID]
		if !ok {
			orphans = append(orphans, r)
			continue
		}
		groups[i].rows = append(groups[i].rows, r)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.rows) > 0 {
			out = append(out, g)
		}
	}
	if len(orphans) > 0 {
		out = append(out, sectionGroup{name: habit.UncategorizedSection, rows: orphans})
	}
	return out
}

func weekTable(rows []habit.HabitProgress, days []habit.DayInfo, today string) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 40

	header := []any{"ID", "HABIT"}
	for _, d := range days {
		name := d.DayName
		if d.DateStr == today {
			name = todayMark(name)
		}
		header = append(header, name)
	}
	header = append(header, "GOAL", "PROGRESS")
	table.AddRow(header...)

	for _, r := range rows {
		done := make(map[string]struct{}, len(r.Habit.CompletedDates))
		for _, d := range r.Habit.CompletedDates {
			done[d] = struct{}{}
		}

		cells := []any{r.Habit.ID, r.Habit.Title}
		for _, d := range days {
			if _, ok := done[d.DateStr]; ok {
				cells = append(cells, doneMark("x"))
			} else {
				cells = append(cells, ".")
			}
		}
		cells = append(cells,
			fmt.Sprintf("%d/%d", r.CompletedInWeek, r.Habit.WeeklyGoal),
			progressCell(r),
		)
		table.AddRow(cells...)
	}
	return table
}

func progressCell(r habit.HabitProgress) string {
	s := fmt.Sprintf("%d%%", r.ProgressPercent)
	if r.GoalMet {
		return goalMet(s + " *")
	}
	return goalBehind(s)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
