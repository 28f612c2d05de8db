package habit

// DefaultColor is used when a habit has no colour of its own.
const DefaultColor = "#3b82f6"

// UncategorizedSection labels habits whose section cannot be resolved.
const UncategorizedSection = "Uncategorized"

type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Habit struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	SectionID      string   `json:"sectionId"`
	WeeklyGoal     int      `json:"weeklyGoal"`
	Color          string   `json:"color,omitempty"`
	CompletedDates []string `json:"completedDates"`
}

// DisplayColor returns the habit colour, falling back to DefaultColor.
func (h Habit) DisplayColor() string {
	if h.Color == "" {
		return DefaultColor
	}
	return h.Color
}

// Clone returns a copy that shares no backing array with h.
func (h Habit) Clone() Habit {
	out := h
	out.CompletedDates = append(make([]string, 0, len(h.CompletedDates)), h.CompletedDates...)
	return out
}

// DayInfo is one day of the current week.
type DayInfo struct {
	DateStr  string `json:"dateStr"`
	DayName  string `json:"dayName"`
	DayIndex int    `json:"dayIndex"`
}

type HabitProgress struct {
	Habit           Habit  `json:"habit"`
	SectionName     string `json:"sectionName"`
	CompletedInWeek int    `json:"completedInWeek"`
	GoalMet         bool   `json:"goalMet"`
	ProgressPercent int    `json:"progressPercent"`
}

type WeeklySummary struct {
	TotalHabits        int `json:"totalHabits"`
	TotalCompleted     int `json:"totalCompleted"`
	TotalPossible      int `json:"totalPossible"`
	AverageProgress    int `json:"averageProgress"`
	HabitsAchievedGoal int `json:"habitsAchievedGoal"`
}
