package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/brk3/weekly-habits/internal/server"
	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/brk3/weekly-habits/pkg/versioninfo"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		var e server.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = res.Status
		}
		return &APIError{Status: res.StatusCode, Message: e.Error}
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) Version(ctx context.Context) (*versioninfo.VersionInfo, error) {
	var out versioninfo.VersionInfo
	if err := c.do(ctx, http.MethodGet, "/version", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Week(ctx context.Context) (*server.WeekResponse, error) {
	var out server.WeekResponse
	if err := c.do(ctx, http.MethodGet, "/week", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSections(ctx context.Context) ([]habit.Section, error) {
	var out server.SectionListResponse
	if err := c.do(ctx, http.MethodGet, "/sections/", nil, &out); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

func (c *Client) CreateSection(ctx context.Context, name string) (*habit.Section, error) {
	var out habit.Section
	if err := c.do(ctx, http.MethodPost, "/sections/", server.SectionRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RenameSection(ctx context.Context, id, name string) (*habit.Section, error) {
	var out habit.Section
	if err := c.do(ctx, http.MethodPut, "/sections/"+url.PathEscape(id), server.SectionRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sections/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListHabits(ctx context.Context) (*server.HabitListResponse, error) {
	var out server.HabitListResponse
	if err := c.do(ctx, http.MethodGet, "/habits/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHabit(ctx context.Context, id string) (*habit.HabitProgress, error) {
	var out habit.HabitProgress
	if err := c.do(ctx, http.MethodGet, "/habits/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateHabit(ctx context.Context, in tracker.HabitInput) (*habit.Habit, error) {
	var out habit.Habit
	if err := c.do(ctx, http.MethodPost, "/habits/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id string, u tracker.HabitUpdate) (*habit.Habit, error) {
	var out habit.Habit
	if err := c.do(ctx, http.MethodPut, "/habits/"+url.PathEscape(id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteHabit removes a habit; confirmed must reflect the user's answer.
func (c *Client) DeleteHabit(ctx context.Context, id string, confirmed bool) error {
	path := "/habits/" + url.PathEscape(id)
	if confirmed {
		path += "?confirm=true"
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Toggle flips completion of date; an empty date means today on the server.
func (c *Client) Toggle(ctx context.Context, id, date string) (*habit.HabitProgress, error) {
	var out habit.HabitProgress
	if err := c.do(ctx, http.MethodPost, "/habits/"+url.PathEscape(id)+"/toggle", server.ToggleRequest{Date: date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Reorder(ctx context.Context, index int, dir tracker.Direction) (*server.HabitListResponse, error) {
	var out server.HabitListResponse
	req := server.ReorderRequest{Index: index, Direction: string(dir)}
	if err := c.do(ctx, http.MethodPost, "/habits/reorder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Summary(ctx context.Context) (*server.SummaryResponse, error) {
	var out server.SummaryResponse
	if err := c.do(ctx, http.MethodGet, "/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Theme(ctx context.Context) (habit.Theme, error) {
	var out server.ThemeResponse
	if err := c.do(ctx, http.MethodGet, "/theme/", nil, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (c *Client) SetTheme(ctx context.Context, t habit.Theme) (habit.Theme, error) {
	var out server.ThemeResponse
	if err := c.do(ctx, http.MethodPut, "/theme/", server.ThemeResponse{Theme: t}, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}

func (c *Client) ToggleTheme(ctx context.Context) (habit.Theme, error) {
	var out server.ThemeResponse
	if err := c.do(ctx, http.MethodPost, "/theme/toggle", nil, &out); err != nil {
		return "", err
	}
	return out.Theme, nil
}
