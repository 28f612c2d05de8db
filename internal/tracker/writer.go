package tracker

import (
	"sync"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// writer persists snapshots in the background. Pending snapshots of the same
// record are coalesced so only the latest one is written.
type writer struct {
	p Persister

	mu       sync.Mutex
	sections []habit.Section
	habits   []habit.Habit
	theme    habit.Theme
	dirty    map[string]bool

	// serialises flushes so an older snapshot never lands after a newer one
	flushMu sync.Mutex

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

const (
	recSections = "sections"
	recHabits   = "habits"
	recTheme    = "theme"
)

func newWriter(p Persister) *writer {
	w := &writer{
		p:     p,
		dirty: map[string]bool{},
		wake:  make(chan struct{}, 1),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *writer) saveSections(s []habit.Section) {
	w.mu.Lock()
	w.sections = s
	w.dirty[recSections] = true
	w.mu.Unlock()
	w.signal()
}

func (w *writer) saveHabits(h []habit.Habit) {
	w.mu.Lock()
	w.habits = h
	w.dirty[recHabits] = true
	w.mu.Unlock()
	w.signal()
}

func (w *writer) saveTheme(t habit.Theme) {
	w.mu.Lock()
	w.theme = t
	w.dirty[recTheme] = true
	w.mu.Unlock()
	w.signal()
}

func (w *writer) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

func (w *writer) flush() {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	dirty := w.dirty
	sections, habits, theme := w.sections, w.habits, w.theme
	w.dirty = map[string]bool{}
	w.mu.Unlock()

	if dirty[recSections] {
		if err := w.p.SaveSections(sections); err != nil {
			logger.Error("Failed to persist sections", "count", len(sections), "error", err)
		}
	}
	if dirty[recHabits] {
		if err := w.p.SaveHabits(habits); err != nil {
			logger.Error("Failed to persist habits", "count", len(habits), "error", err)
		}
	}
	if dirty[recTheme] {
		if err := w.p.SaveTheme(theme); err != nil {
			logger.Error("Failed to persist theme", "theme", theme, "error", err)
		}
	}
}

// close writes anything still pending and stops the background goroutine.
func (w *writer) close() {
	w.once.Do(func() {
		close(w.quit)
		<-w.done
	})
}
