package nudge

import (
	"context"

	"github.com/brk3/weekly-habits/internal/server"
)

type Querier interface {
	Week(ctx context.Context) (*server.WeekResponse, error)
	ListHabits(ctx context.Context) (*server.HabitListResponse, error)
}

type Notifier interface {
	SendNudge(habits []AtRisk) error
}
