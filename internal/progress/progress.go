// Package progress computes weekly completion figures for habits. Every
// function is pure and recomputed from the habits and week it is given.
package progress

import (
	"github.com/brk3/weekly-habits/internal/week"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// CompletedInWeek counts the distinct dates of h that fall inside the week.
func CompletedInWeek(h habit.Habit, days []habit.DayInfo) int {
	return completedIn(h, week.Dates(days))
}

func completedIn(h habit.Habit, inWeek map[string]struct{}) int {
	seen := make(map[string]struct{}, len(h.CompletedDates))
	n := 0
	for _, d := range h.CompletedDates {
		if _, ok := inWeek[d]; !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		n++
	}
	return n
}

func GoalMet(h habit.Habit, days []habit.DayInfo) bool {
	return CompletedInWeek(h, days) >= h.WeeklyGoal
}

// ProgressPercent is the rounded share of the weekly goal reached. It is not
// capped at 100.
func ProgressPercent(h habit.Habit, days []habit.DayInfo) int {
	return percent(CompletedInWeek(h, days), h.WeeklyGoal)
}

// percent rounds 100*num/den half-up for non-negative operands.
func percent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (200*num + den) / (2 * den)
}

// Summarize aggregates the week across all habits. AverageProgress is a
// ratio of sums, so habits with larger goals weigh more.
func Summarize(habits []habit.Habit, days []habit.DayInfo) habit.WeeklySummary {
	inWeek := week.Dates(days)
	s := habit.WeeklySummary{TotalHabits: len(habits)}
	for _, h := range habits {
		done := completedIn(h, inWeek)
		s.TotalCompleted += done
		s.TotalPossible += h.WeeklyGoal
		if done >= h.WeeklyGoal {
			s.HabitsAchievedGoal++
		}
	}
	s.AverageProgress = percent(s.TotalCompleted, s.TotalPossible)
	return s
}

// ForHabits builds one progress row per habit, in habit order.
func ForHabits(habits []habit.Habit, sections []habit.Section, days []habit.DayInfo) []habit.HabitProgress {
	names := make(map[string]string, len(sections))
	for _, s := range sections {
		names[s.ID] = s.Name
	}
	inWeek := week.Dates(days)

	rows := make([]habit.HabitProgress, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, row(h, names, inWeek))
	}
	return rows
}

// ForHabit builds the progress row of a single habit.
func ForHabit(h habit.Habit, sections []habit.Section, days []habit.DayInfo) habit.HabitProgress {
	return ForHabits([]habit.Habit{h}, sections, days)[0]
}

func row(h habit.Habit, names map[string]string, inWeek map[string]struct{}) habit.HabitProgress {
	done := completedIn(h, inWeek)
	name, ok := names[h.SectionID]
	if !ok {
		name = habit.UncategorizedSection
	}
	return habit.HabitProgress{
		Habit:           h,
		SectionName:     name,
		CompletedInWeek: done,
		GoalMet:         done >= h.WeeklyGoal,
		ProgressPercent: percent(done, h.WeeklyGoal),
	}
}

// Remaining is how many more completions h needs this week to meet its goal.
func Remaining(h habit.Habit, days []habit.DayInfo) int {
	return max(h.WeeklyGoal-CompletedInWeek(h, days), 0)
}

// DaysLeft counts the days from today to the end of the week on which h has
// not been completed yet.
func DaysLeft(h habit.Habit, days []habit.DayInfo, today string) int {
	done := make(map[string]struct{}, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		done[d] = struct{}{}
	}
	n := 0
	for _, d := range days {
		if d.DateStr < today {
			continue
		}
		if _, ok := done[d.DateStr]; !ok {
			n++
		}
	}
	return n
}
