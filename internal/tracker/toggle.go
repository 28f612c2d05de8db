package tracker

import (
	"slices"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// ToggleCompletion flips whether date is among the habit's completed dates.
// Applying it twice restores the original set. The date is not validated;
// strings outside the current week simply never count towards progress.
func (t *Tracker) ToggleCompletion(habitID, date string) (habit.Habit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(habitID)
	if i < 0 {
		return habit.Habit{}, ErrHabitNotFound
	}

	h := &t.habits[i]
	done := slices.Contains(h.CompletedDates, date)
	if done {
		h.CompletedDates = slices.DeleteFunc(h.CompletedDates, func(d string) bool { return d == date })
	} else {
		h.CompletedDates = append(h.CompletedDates, date)
	}
	t.persistHabits()

	logger.Debug("Toggled completion", "habit_id", habitID, "date", date, "completed", !done)
	return h.Clone(), nil
}
