package storage

import (
	"encoding/json"
	"fmt"

	"github.com/brk3/weekly-habits/pkg/habit"
)

// Bridge encodes the tracker's collections and theme preference into
// records of a Store.
type Bridge struct {
	kv Store
}

func NewBridge(kv Store) *Bridge {
	return &Bridge{kv: kv}
}

// LoadSections returns nil, nil when no record has been written yet.
func (b *Bridge) LoadSections() ([]habit.Section, error) {
	var out []habit.Section
	if err := b.load(KeySections, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Bridge) SaveSections(sections []habit.Section) error {
	if sections == nil {
		sections = []habit.Section{}
	}
	return b.save(KeySections, sections)
}

// LoadHabits returns nil, nil when no record has been written yet.
func (b *Bridge) LoadHabits() ([]habit.Habit, error) {
	var out []habit.Habit
	if err := b.load(KeyHabits, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Bridge) SaveHabits(habits []habit.Habit) error {
	if habits == nil {
		habits = []habit.Habit{}
	}
	return b.save(KeyHabits, habits)
}

// LoadTheme reads the theme preference; absent means light.
func (b *Bridge) LoadTheme() (habit.Theme, error) {
	val, ok, err := b.kv.Get(KeyTheme)
	if err != nil {
		return habit.ThemeLight, fmt.Errorf("read %s: %w", KeyTheme, err)
	}
	if !ok {
		return habit.ThemeLight, nil
	}
	return habit.ParseTheme(string(val)), nil
}

func (b *Bridge) SaveTheme(t habit.Theme) error {
	if err := b.kv.Put(KeyTheme, []byte(t)); err != nil {
		return fmt.Errorf("write %s: %w", KeyTheme, err)
	}
	return nil
}

func (b *Bridge) Close() error {
	return b.kv.Close()
}

func (b *Bridge) load(key string, v any) error {
	val, ok, err := b.kv.Get(key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(val, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (b *Bridge) save(key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.kv.Put(key, val); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
