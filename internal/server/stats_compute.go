package server

import (
	"github.com/brk3/weekly-habits/internal/progress"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// habitRows recomputes every habit's progress for the current week.
func (s *Server) habitRows() ([]habit.DayInfo, []habit.HabitProgress) {
	days := s.week.Current()
	rows := progress.ForHabits(s.tracker.Habits(), s.tracker.Sections(), days)
	return days, rows
}

func (s *Server) habitRow(h habit.Habit) habit.HabitProgress {
	return progress.ForHabit(h, s.tracker.Sections(), s.week.Current())
}

func (s *Server) summary() ([]habit.DayInfo, habit.WeeklySummary) {
	days := s.week.Current()
	return days, progress.Summarize(s.tracker.Habits(), days)
}

// refreshGauges publishes the current totals after a mutation.
func (s *Server) refreshGauges() {
	_, sum := s.summary()
	UpdateTotals(len(s.tracker.Sections()), sum)
}
