package week

import (
	"testing"
	"time"
)

func calcAt(t time.Time, locale string) *Calculator {
	return New(locale, WithClock(func() time.Time { return t }))
}

func TestCurrent_MidWeek(t *testing.T) {
	// Wednesday
	c := calcAt(time.Date(2024, time.June, 5, 9, 30, 0, 0, time.Local), "en")
	days := c.Current()

	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	want := []string{"2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08"}
	for i, d := range days {
		if d.DateStr != want[i] {
			t.Errorf("day %d: got %s want %s", i, d.DateStr, want[i])
		}
		if d.DayIndex != i {
			t.Errorf("day %d: got index %d", i, d.DayIndex)
		}
	}
	if days[0].DayName != "Sunday" || days[6].DayName != "Saturday" {
		t.Errorf("unexpected day names %q..%q", days[0].DayName, days[6].DayName)
	}
}

func TestCurrent_CrossesMonthAndYear(t *testing.T) {
	// Thursday 2 January 2025, week starts Sunday 29 December 2024
	c := calcAt(time.Date(2025, time.January, 2, 23, 59, 0, 0, time.Local), "en")
	days := c.Current()

	if days[0].DateStr != "2024-12-29" {
		t.Errorf("got first day %s want 2024-12-29", days[0].DateStr)
	}
	if days[3].DateStr != "2025-01-01" {
		t.Errorf("got fourth day %s want 2025-01-01", days[3].DateStr)
	}
	if days[6].DateStr != "2025-01-04" {
		t.Errorf("got last day %s want 2025-01-04", days[6].DateStr)
	}
}

func TestCurrent_SundayAndSaturdayAnchors(t *testing.T) {
	sun := calcAt(time.Date(2024, time.March, 31, 0, 5, 0, 0, time.Local), "en").Current()
	if sun[0].DateStr != "2024-03-31" || sun[6].DateStr != "2024-04-06" {
		t.Errorf("sunday anchor: got %s..%s", sun[0].DateStr, sun[6].DateStr)
	}

	sat := calcAt(time.Date(2024, time.April, 6, 23, 55, 0, 0, time.Local), "en").Current()
	if sat[0].DateStr != "2024-03-31" || sat[6].DateStr != "2024-04-06" {
		t.Errorf("saturday anchor: got %s..%s", sat[0].DateStr, sat[6].DateStr)
	}
}

func TestCurrent_LeapDay(t *testing.T) {
	days := calcAt(time.Date(2024, time.February, 28, 12, 0, 0, 0, time.Local), "en").Current()
	if days[4].DateStr != "2024-02-29" || days[5].DateStr != "2024-03-01" {
		t.Errorf("got %s, %s", days[4].DateStr, days[5].DateStr)
	}
}

func TestCurrent_Locale(t *testing.T) {
	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.Local)

	ar := calcAt(now, "ar").Current()
	if ar[0].DayName != "الأحد" {
		t.Errorf("got %q want Arabic Sunday", ar[0].DayName)
	}

	fallback := calcAt(now, "xx").Current()
	if fallback[1].DayName != "Monday" {
		t.Errorf("got %q want Monday", fallback[1].DayName)
	}
}

func TestToday(t *testing.T) {
	c := calcAt(time.Date(2024, time.June, 5, 0, 0, 1, 0, time.Local), "en")
	if got := c.Today(); got != "2024-06-05" {
		t.Errorf("got %s want 2024-06-05", got)
	}
}

func TestDates(t *testing.T) {
	days := calcAt(time.Date(2024, time.June, 5, 12, 0, 0, 0, time.Local), "en").Current()
	set := Dates(days)
	if len(set) != 7 {
		t.Fatalf("got %d entries", len(set))
	}
	if _, ok := set["2024-06-08"]; !ok {
		t.Error("expected 2024-06-08 in set")
	}
	if _, ok := set["2024-06-09"]; ok {
		t.Error("did not expect 2024-06-09 in set")
	}
}
