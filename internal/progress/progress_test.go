package progress

import (
	"testing"
	"time"

	"github.com/brk3/weekly-habits/internal/week"
	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/google/go-cmp/cmp"
)

// juneWeek is 2024-06-02 (Sunday) through 2024-06-08.
func juneWeek() []habit.DayInfo {
	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.Local)
	return week.New("en", week.WithClock(func() time.Time { return now })).Current()
}

func TestHabitProgress_Example(t *testing.T) {
	h := habit.Habit{
		ID:             "a",
		WeeklyGoal:     3,
		CompletedDates: []string{"2024-06-02", "2024-06-04"},
	}
	days := juneWeek()

	if got := CompletedInWeek(h, days); got != 2 {
		t.Errorf("CompletedInWeek: got %d want 2", got)
	}
	if got := ProgressPercent(h, days); got != 67 {
		t.Errorf("ProgressPercent: got %d want 67", got)
	}
	if GoalMet(h, days) {
		t.Error("GoalMet: got true want false")
	}
}

func TestCompletedInWeek_ExcludesOtherWeeks(t *testing.T) {
	h := habit.Habit{
		WeeklyGoal: 2,
		CompletedDates: []string{
			"2024-06-01", // previous Saturday
			"2024-06-03",
			"2024-06-09", // next Sunday
			"not-a-date",
			"2024-6-4",
		},
	}
	days := juneWeek()

	if got := CompletedInWeek(h, days); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
	if got := CompletedInWeek(h, days); got > len(h.CompletedDates) || got > 7 {
		t.Fatalf("bound violated: %d", got)
	}
}

func TestCompletedInWeek_IgnoresDuplicates(t *testing.T) {
	h := habit.Habit{WeeklyGoal: 1, CompletedDates: []string{"2024-06-03", "2024-06-03"}}
	if got := CompletedInWeek(h, juneWeek()); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
}

func TestProgressPercent(t *testing.T) {
	days := juneWeek()
	all := []string{"2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08"}

	tests := []struct {
		name string
		goal int
		done int
		want int
	}{
		{"zero goal", 0, 3, 0},
		{"nothing done", 4, 0, 0},
		{"half rounds up", 8, 1, 13}, // 12.5
		{"one third", 3, 1, 33},
		{"two thirds", 3, 2, 67},
		{"exact", 5, 5, 100},
		{"over goal", 2, 5, 250},
		{"seven of seven", 7, 7, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := habit.Habit{WeeklyGoal: tt.goal, CompletedDates: all[:tt.done]}
			if got := ProgressPercent(h, days); got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
			if tt.goal > 0 && GoalMet(h, days) != (ProgressPercent(h, days) >= 100) {
				t.Errorf("GoalMet disagrees with percent for goal=%d done=%d", tt.goal, tt.done)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	days := juneWeek()
	habits := []habit.Habit{
		{ID: "a", WeeklyGoal: 3, CompletedDates: []string{"2024-06-02", "2024-06-03", "2024-06-04"}},
		{ID: "b", WeeklyGoal: 5, CompletedDates: []string{"2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-05-01"}},
	}

	got := Summarize(habits, days)
	want := habit.WeeklySummary{
		TotalHabits:        2,
		TotalCompleted:     8,
		TotalPossible:      8,
		AverageProgress:    100,
		HabitsAchievedGoal: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_RatioOfSums(t *testing.T) {
	days := juneWeek()
	habits := []habit.Habit{
		{ID: "small", WeeklyGoal: 1, CompletedDates: []string{"2024-06-02"}},
		{ID: "large", WeeklyGoal: 7},
	}

	got := Summarize(habits, days)
	// mean of percentages would be 50; ratio of sums is 1/8
	if got.AverageProgress != 13 {
		t.Errorf("got %d want 13", got.AverageProgress)
	}
	if got.HabitsAchievedGoal != 1 {
		t.Errorf("got %d achieved want 1", got.HabitsAchievedGoal)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, juneWeek())
	if diff := cmp.Diff(habit.WeeklySummary{}, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestForHabits(t *testing.T) {
	days := juneWeek()
	sections := []habit.Section{{ID: "s1", Name: "Health"}}
	habits := []habit.Habit{
		{ID: "a", SectionID: "s1", WeeklyGoal: 1, CompletedDates: []string{"2024-06-05"}},
		{ID: "b", SectionID: "gone", WeeklyGoal: 2},
	}

	rows := ForHabits(habits, sections, days)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].SectionName != "Health" || !rows[0].GoalMet || rows[0].ProgressPercent != 100 {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if rows[1].SectionName != habit.UncategorizedSection || rows[1].GoalMet || rows[1].CompletedInWeek != 0 {
		t.Errorf("unexpected second row %+v", rows[1])
	}

	one := ForHabit(habits[0], sections, days)
	if diff := cmp.Diff(rows[0], one); diff != "" {
		t.Errorf("ForHabit mismatch (-want +got):\n%s", diff)
	}
}

func TestRemainingAndDaysLeft(t *testing.T) {
	days := juneWeek()
	h := habit.Habit{WeeklyGoal: 4, CompletedDates: []string{"2024-06-02", "2024-06-06"}}

	if got := Remaining(h, days); got != 2 {
		t.Errorf("Remaining: got %d want 2", got)
	}
	// Wed..Sat is 4 days, Thursday already done
	if got := DaysLeft(h, days, "2024-06-05"); got != 3 {
		t.Errorf("DaysLeft: got %d want 3", got)
	}

	h.WeeklyGoal = 1
	if got := Remaining(h, days); got != 0 {
		t.Errorf("Remaining over goal: got %d want 0", got)
	}
}
