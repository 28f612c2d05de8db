package tracker

import "errors"

// Validation failures. Each leaves the tracker unchanged.
var (
	ErrEmptyName        = errors.New("section name is required")
	ErrEmptyTitle       = errors.New("habit title is required")
	ErrSectionNotFound  = errors.New("section not found")
	ErrSectionNotEmpty  = errors.New("section still has habits; move or delete them first")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrInvalidGoal      = errors.New("weekly goal must be at least 1")
	ErrInvalidColor     = errors.New("color must be a hex value like #3b82f6")
	ErrNotConfirmed     = errors.New("deletion must be confirmed")
	ErrIndexOutOfRange  = errors.New("habit index out of range")
	ErrInvalidDirection = errors.New(`direction must be "up" or "down"`)
)

// IsValidation reports whether err is a rejected user input rather than a
// missing entity or an unconfirmed action.
func IsValidation(err error) bool {
	for _, target := range []error{ErrEmptyName, ErrEmptyTitle, ErrInvalidGoal, ErrInvalidColor, ErrIndexOutOfRange, ErrInvalidDirection} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
