package tracker

import (
	"slices"
	"strings"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/pkg/habit"
)

func (t *Tracker) CreateSection(name string) (habit.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return habit.Section{}, ErrEmptyName
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := habit.Section{ID: t.uniqueID(), Name: name}
	t.sections = append(t.sections, s)
	t.persistSections()

	logger.Debug("Created section", "section_id", s.ID, "name", s.Name)
	return s, nil
}

// RenameSection updates the name in place, keeping the section's position.
func (t *Tracker) RenameSection(id, name string) (habit.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return habit.Section{}, ErrEmptyName
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectionIndex(id)
	if i < 0 {
		return habit.Section{}, ErrSectionNotFound
	}
	t.sections[i].Name = name
	t.persistSections()

	logger.Debug("Renamed section", "section_id", id, "name", name)
	return t.sections[i], nil
}

// DeleteSection removes a section that no habit refers to.
func (t *Tracker) DeleteSection(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectionIndex(id)
	if i < 0 {
		return ErrSectionNotFound
	}
	for _, h := range t.habits {
		if h.SectionID == id {
			return ErrSectionNotEmpty
		}
	}

	t.sections = slices.Delete(t.sections, i, i+1)
	t.persistSections()

	logger.Debug("Deleted section", "section_id", id)
	return nil
}
