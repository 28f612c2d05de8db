package server

import (
	"github.com/brk3/weekly-habits/pkg/habit"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type WeekResponse struct {
	Today string          `json:"today"`
	Days  []habit.DayInfo `json:"days"`
}

type SectionListResponse struct {
	Sections []habit.Section `json:"sections"`
}

type HabitListResponse struct {
	Week   []habit.DayInfo       `json:"week"`
	Habits []habit.HabitProgress `json:"habits"`
}

type SummaryResponse struct {
	Week    []habit.DayInfo     `json:"week"`
	Summary habit.WeeklySummary `json:"summary"`
}

type ThemeResponse struct {
	Theme habit.Theme `json:"theme"`
}

type SectionRequest struct {
	Name string `json:"name"`
}

type ToggleRequest struct {
	// Date defaults to today when empty.
	Date string `json:"date"`
}

type ReorderRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}
