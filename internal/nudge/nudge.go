// Package nudge reminds the user of habits that can only meet their weekly
// goal if they are done on (nearly) every remaining day.
package nudge

import (
	"context"
	"fmt"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/internal/progress"
)

type AtRisk struct {
	Title     string
	Remaining int
	DaysLeft  int
}

// Reachable reports whether enough days are left to still meet the goal.
func (a AtRisk) Reachable() bool {
	return a.DaysLeft >= a.Remaining
}

// GetHabitsAtRisk returns habits short of their goal whose spare days (days
// left minus completions still needed) are at most slack.
func GetHabitsAtRisk(ctx context.Context, q Querier, slack int) ([]AtRisk, error) {
	wk, err := q.Week(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch week: %w", err)
	}
	list, err := q.ListHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	var out []AtRisk
	for _, row := range list.Habits {
		if row.GoalMet {
			continue
		}
		remaining := progress.Remaining(row.Habit, wk.Days)
		left := progress.DaysLeft(row.Habit, wk.Days, wk.Today)
		if left-remaining <= slack {
			out = append(out, AtRisk{Title: row.Habit.Title, Remaining: remaining, DaysLeft: left})
		}
	}
	return out, nil
}

// Nudge sends one notification listing every habit at risk. Nothing is sent
// when all habits are on track.
func Nudge(ctx context.Context, q Querier, n Notifier, slack int) error {
	habits, err := GetHabitsAtRisk(ctx, q, slack)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		logger.Info("No habits at risk", "slack", slack)
		return nil
	}

	logger.Info("Sending nudge", "habits", len(habits), "slack", slack)
	if err := n.SendNudge(habits); err != nil {
		return fmt.Errorf("send nudge: %w", err)
	}
	return nil
}
