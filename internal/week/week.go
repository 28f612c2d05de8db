// Package week derives the Sunday-first week containing today's local date.
package week

import (
	"time"

	"github.com/brk3/weekly-habits/pkg/habit"
)

const DateLayout = "2006-01-02"

var dayNames = map[string][7]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"ar": {"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
}

type Calculator struct {
	now   func() time.Time
	names [7]string
}

type Option func(*Calculator)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// New returns a Calculator labelling days in the given locale. Unknown
// locales fall back to English.
func New(locale string, opts ...Option) *Calculator {
	names, ok := dayNames[locale]
	if !ok {
		names = dayNames["en"]
	}
	c := &Calculator{now: time.Now, names: names}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Locales lists the supported day-name tables.
func Locales() []string {
	return []string{"en", "ar"}
}

// Current returns the seven days, Sunday through Saturday, of the week that
// contains the local calendar date of now.
func (c *Calculator) Current() []habit.DayInfo {
	now := c.now().Local()
	first := now.Day() - int(now.Weekday())

	days := make([]habit.DayInfo, 0, 7)
	for i := 0; i < 7; i++ {
		// time.Date normalises out-of-range days across month and year ends.
		d := time.Date(now.Year(), now.Month(), first+i, 12, 0, 0, 0, time.Local)
		days = append(days, habit.DayInfo{
			DateStr:  d.Format(DateLayout),
			DayName:  c.names[i],
			DayIndex: i,
		})
	}
	return days
}

// Today returns the local calendar date of now in canonical form.
func (c *Calculator) Today() string {
	return c.now().Local().Format(DateLayout)
}

// Dates returns the membership set of the week's date strings.
func Dates(days []habit.DayInfo) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d.DateStr] = struct{}{}
	}
	return set
}
