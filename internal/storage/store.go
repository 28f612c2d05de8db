package storage

// Record keys. Each names one independently persisted collection.
const (
	KeySections = "sections"
	KeyHabits   = "habits"
	KeyTheme    = "theme"
)

// Store is a durable key-value store holding serialized records.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	Put(key string, val []byte) error
	Close() error
}
