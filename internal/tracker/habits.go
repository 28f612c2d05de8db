package tracker

import (
	"regexp"
	"slices"
	"strings"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/pkg/habit"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type HabitInput struct {
	Title      string `json:"title"`
	SectionID  string `json:"sectionId"`
	WeeklyGoal int    `json:"weeklyGoal"`
	Color      string `json:"color,omitempty"`
}

// HabitUpdate carries the fields to change; nil fields are left as they are.
type HabitUpdate struct {
	Title      *string `json:"title,omitempty"`
	SectionID  *string `json:"sectionId,omitempty"`
	WeeklyGoal *int    `json:"weeklyGoal,omitempty"`
	Color      *string `json:"color,omitempty"`
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func (t *Tracker) CreateHabit(in HabitInput) (habit.Habit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h := habit.Habit{
		Title:          strings.TrimSpace(in.Title),
		SectionID:      in.SectionID,
		WeeklyGoal:     in.WeeklyGoal,
		Color:          in.Color,
		CompletedDates: []string{},
	}
	if err := t.validate(h); err != nil {
		return habit.Habit{}, err
	}

	h.ID = t.uniqueID()
	t.habits = append(t.habits, h)
	t.persistHabits()

	logger.Debug("Created habit", "habit_id", h.ID, "section_id", h.SectionID, "weekly_goal", h.WeeklyGoal)
	return h.Clone(), nil
}

// UpdateHabit merges the given fields into the habit. The id, completed dates
// and position are preserved.
func (t *Tracker) UpdateHabit(id string, u HabitUpdate) (habit.Habit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(id)
	if i < 0 {
		return habit.Habit{}, ErrHabitNotFound
	}

	h := t.habits[i]
	if u.Title != nil {
		h.Title = strings.TrimSpace(*u.Title)
	}
	if u.SectionID != nil {
		h.SectionID = *u.SectionID
	}
	if u.WeeklyGoal != nil {
		h.WeeklyGoal = *u.WeeklyGoal
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if err := t.validate(h); err != nil {
		return habit.Habit{}, err
	}

	t.habits[i] = h
	t.persistHabits()

	logger.Debug("Updated habit", "habit_id", id)
	return h.Clone(), nil
}

// DeleteHabit removes the habit once the caller has obtained the user's
// confirmation. Remaining habits keep their relative order.
func (t *Tracker) DeleteHabit(id string, confirmed bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(id)
	if i < 0 {
		return ErrHabitNotFound
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	t.habits = slices.Delete(t.habits, i, i+1)
	t.persistHabits()

	logger.Debug("Deleted habit", "habit_id", id)
	return nil
}

// ReorderHabit swaps the habit at index with its neighbour in dir. Moving
// past either end is a no-op.
func (t *Tracker) ReorderHabit(index int, dir Direction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.habits) {
		return ErrIndexOutOfRange
	}

	var target int
	switch dir {
	case Up:
		target = index - 1
	case Down:
		target = index + 1
	default:
		return ErrInvalidDirection
	}
	if target < 0 || target >= len(t.habits) {
		return nil
	}

	t.habits[index], t.habits[target] = t.habits[target], t.habits[index]
	t.persistHabits()

	logger.Debug("Reordered habit", "from", index, "to", target)
	return nil
}

func (t *Tracker) validate(h habit.Habit) error {
	if h.Title == "" {
		return ErrEmptyTitle
	}
	if t.sectionIndex(h.SectionID) < 0 {
		return ErrSectionNotFound
	}
	if h.WeeklyGoal < 1 {
		return ErrInvalidGoal
	}
	if h.Color != "" && !colorPattern.MatchString(h.Color) {
		return ErrInvalidColor
	}
	return nil
}
