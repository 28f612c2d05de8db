// Package tracker owns the sections and habits of a user. Every operation
// runs under one lock, so mutations never interleave, and each successful
// mutation is handed to a background writer for persistence.
package tracker

import (
	"sync"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// Persister loads and saves the tracker's records.
type Persister interface {
	LoadSections() ([]habit.Section, error)
	SaveSections([]habit.Section) error
	LoadHabits() ([]habit.Habit, error)
	SaveHabits([]habit.Habit) error
	LoadTheme() (habit.Theme, error)
	SaveTheme(habit.Theme) error
}

type Tracker struct {
	mu       sync.Mutex
	sections []habit.Section
	habits   []habit.Habit
	theme    habit.Theme

	w *writer
}

// Load reads the persisted records once. Missing or unreadable records start
// out empty rather than failing.
func Load(p Persister) *Tracker {
	sections, err := p.LoadSections()
	if err != nil {
		logger.Warn("Discarding unreadable sections record", "error", err)
		sections = nil
	}
	habits, err := p.LoadHabits()
	if err != nil {
		logger.Warn("Discarding unreadable habits record", "error", err)
		habits = nil
	}
	theme, err := p.LoadTheme()
	if err != nil {
		logger.Warn("Falling back to light theme", "error", err)
		theme = habit.ThemeLight
	}

	t := &Tracker{
		sections: append([]habit.Section{}, sections...),
		habits:   make([]habit.Habit, 0, len(habits)),
		theme:    theme,
		w:        newWriter(p),
	}
	for _, h := range habits {
		h.CompletedDates = dedupe(h.CompletedDates)
		t.habits = append(t.habits, h)
	}
	t.checkReferences()

	logger.Info("Loaded tracker", "sections", len(t.sections), "habits", len(t.habits), "theme", t.theme)
	return t
}

// Close flushes pending writes.
func (t *Tracker) Close() {
	t.w.close()
}

// Flush writes pending snapshots before returning.
func (t *Tracker) Flush() {
	t.w.flush()
}

// checkReferences logs habits whose section no longer exists. They stay in
// place and render as uncategorized until the user reassigns them.
func (t *Tracker) checkReferences() {
	for _, h := range t.habits {
		if t.sectionIndex(h.SectionID) < 0 {
			logger.Warn("Habit references a missing section", "habit_id", h.ID, "section_id", h.SectionID)
		}
	}
}

func (t *Tracker) Sections() []habit.Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]habit.Section{}, t.sections...)
}

func (t *Tracker) Section(id string) (habit.Section, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectionIndex(id)
	if i < 0 {
		return habit.Section{}, ErrSectionNotFound
	}
	return t.sections[i], nil
}

// Habits returns the habits in display order.
func (t *Tracker) Habits() []habit.Habit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneHabits(t.habits)
}

func (t *Tracker) Habit(id string) (habit.Habit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(id)
	if i < 0 {
		return habit.Habit{}, ErrHabitNotFound
	}
	return t.habits[i].Clone(), nil
}

func (t *Tracker) Theme() habit.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

func (t *Tracker) SetTheme(theme habit.Theme) habit.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.theme = habit.ParseTheme(string(theme))
	t.w.saveTheme(t.theme)
	return t.theme
}

func (t *Tracker) ToggleTheme() habit.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.theme = t.theme.Toggled()
	t.w.saveTheme(t.theme)
	return t.theme
}

func (t *Tracker) sectionIndex(id string) int {
	for i := range t.sections {
		if t.sections[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) habitIndex(id string) int {
	for i := range t.habits {
		if t.habits[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID returns an id not used by any section or habit.
func (t *Tracker) uniqueID() string {
	for {
		id := newID()
		if t.sectionIndex(id) < 0 && t.habitIndex(id) < 0 {
			return id
		}
	}
}

func (t *Tracker) persistSections() {
	t.w.saveSections(append([]habit.Section{}, t.sections...))
}

func (t *Tracker) persistHabits() {
	t.w.saveHabits(cloneHabits(t.habits))
}

func cloneHabits(in []habit.Habit) []habit.Habit {
	out := make([]habit.Habit, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func dedupe(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
