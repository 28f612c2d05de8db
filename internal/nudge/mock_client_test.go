package nudge

import (
	"context"

	"github.com/brk3/weekly-habits/internal/server"
)

type mockClient struct {
	week   *server.WeekResponse
	habits *server.HabitListResponse
	err    error
}

func (f *mockClient) Week(ctx context.Context) (*server.WeekResponse, error) {
	return f.week, f.err
}

func (f *mockClient) ListHabits(ctx context.Context) (*server.HabitListResponse, error) {
	return f.habits, f.err
}
