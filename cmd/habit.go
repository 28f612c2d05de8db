package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brk3/weekly-habits/internal/apiclient"
	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/spf13/cobra"
)

const defaultWeeklyGoal = 3

var (
	habitSection string
	habitGoal    int
	habitColor   string
	habitTitle   string
	habitYes     bool
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Add, edit, remove and reorder habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a habit",
	Long: `Create a habit with a weekly goal. Without --section the habit goes into
the first section.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		sectionID := habitSection
		if sectionID == "" {
			sectionID, err = firstSection(ctx, client)
			if err != nil {
				return err
			}
		}

		h, err := client.CreateHabit(ctx, tracker.HabitInput{
			Title:      args[0],
			SectionID:  sectionID,
			WeeklyGoal: habitGoal,
			Color:      habitColor,
		})
		if err != nil {
			return err
		}
		cmd.Printf("Created habit %s (%s), goal %d per week\n", h.Title, h.ID, h.WeeklyGoal)
		return nil
	},
}

func firstSection(ctx context.Context, client *apiclient.Client) (string, error) {
	sections, err := client.ListSections(ctx)
	if err != nil {
		return "", err
	}
	if len(sections) == 0 {
		return "", errors.New("no sections yet, create one with: habits section add <name>")
	}
	return sections[0].ID, nil
}

var habitEditCmd = &cobra.Command{
	Use:   "edit <habit-id>",
	Short: "Change a habit's title, section, goal or colour",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u tracker.HabitUpdate
		flags := cmd.Flags()
		if flags.Changed("title") {
			u.Title = &habitTitle
		}
		if flags.Changed("section") {
			u.SectionID = &habitSection
		}
		if flags.Changed("goal") {
			u.WeeklyGoal = &habitGoal
		}
		if flags.Changed("color") {
			u.Color = &habitColor
		}
		if u == (tracker.HabitUpdate{}) {
			return errors.New("nothing to change, pass at least one of --title, --section, --goal or --color")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		h, err := client.UpdateHabit(cmd.Context(), args[0], u)
		if err != nil {
			return err
		}
		cmd.Printf("Updated habit %s (%s)\n", h.Title, h.ID)
		return nil
	},
}

var habitRmCmd = &cobra.Command{
	Use:     "rm <habit-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a habit and its completion history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		row, err := client.GetHabit(ctx, args[0])
		if err != nil {
			return err
		}

		confirmed := habitYes
		if !confirmed {
			cmd.Printf("Delete habit %q and all its completions? [y/N] ", row.Habit.Title)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			confirmed = answer == "y" || answer == "yes"
		}
		if !confirmed {
			cmd.Println("Aborted")
			return nil
		}

		if err := client.DeleteHabit(ctx, args[0], true); err != nil {
			return err
		}
		cmd.Printf("Deleted habit %s\n", row.Habit.Title)
		return nil
	},
}

func reorderCmd(dir tracker.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <habit-id>", dir),
		Short: fmt.Sprintf("Move a habit %s by one place", dir),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			resp, err := client.ListHabits(ctx)
			if err != nil {
				return err
			}
			index := -1
			for i, r := range resp.Habits {
				if r.Habit.ID == args[0] {
					index = i
					break
				}
			}
			if index < 0 {
				return fmt.Errorf("habit %s not found", args[0])
			}

			if _, err := client.Reorder(ctx, index, dir); err != nil {
				return err
			}
			cmd.Printf("Moved %s %s\n", resp.Habits[index].Habit.Title, dir)
			return nil
		},
	}
}

func init() {
	habitAddCmd.Flags().StringVarP(&habitSection, "section", "s", "", "section ID (default: first section)")
	habitAddCmd.Flags().IntVarP(&habitGoal, "goal", "g", defaultWeeklyGoal, "completions per week")
	habitAddCmd.Flags().StringVarP(&habitColor, "color", "c", "", "display colour as #rgb or #rrggbb")

	habitEditCmd.Flags().StringVarP(&habitTitle, "title", "t", "", "new title")
	habitEditCmd.Flags().StringVarP(&habitSection, "section", "s", "", "new section ID")
	habitEditCmd.Flags().IntVarP(&habitGoal, "goal", "g", defaultWeeklyGoal, "new weekly goal")
	habitEditCmd.Flags().StringVarP(&habitColor, "color", "c", "", "new colour")

	habitRmCmd.Flags().BoolVarP(&habitYes, "yes", "y", false, "delete without asking")

	habitCmd.AddCommand(habitAddCmd, habitEditCmd, habitRmCmd, reorderCmd(tracker.Up), reorderCmd(tracker.Down))
	rootCmd.AddCommand(habitCmd)
}
