package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brk3/weekly-habits/internal/storage"
	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/brk3/weekly-habits/internal/week"
	"github.com/brk3/weekly-habits/pkg/habit"
)

// Wednesday 2024-06-05; the week runs 2024-06-02 .. 2024-06-08.
var testNow = time.Date(2024, time.June, 5, 10, 0, 0, 0, time.Local)

func newTestServer(t *testing.T) (http.Handler, *tracker.Tracker) {
	t.Helper()
	tr := tracker.Load(storage.NewBridge(storage.NewMemStore()))
	t.Cleanup(tr.Close)
	wk := week.New("en", week.WithClock(func() time.Time { return testNow }))
	return New(tr, wk).Router(), tr
}

func mockRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal error: %v (body %s)", err, rr.Body.String())
	}
	return v
}

func createSection(t *testing.T, h http.Handler, name string) habit.Section {
	t.Helper()
	rr := mockRequest(h, http.MethodPost, "/sections/", SectionRequest{Name: name})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create section: got %d want 201: %s", rr.Code, rr.Body.String())
	}
	return decodeBody[habit.Section](t, rr)
}

func createHabit(t *testing.T, h http.Handler, title, sectionID string, goal int) habit.Habit {
	t.Helper()
	rr := mockRequest(h, http.MethodPost, "/habits/", tracker.HabitInput{Title: title, SectionID: sectionID, WeeklyGoal: goal})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create habit: got %d want 201: %s", rr.Code, rr.Body.String())
	}
	return decodeBody[habit.Habit](t, rr)
}

func TestListHabits_Empty(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/habits/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	resp := decodeBody[HabitListResponse](t, rr)
	if len(resp.Habits) != 0 {
		t.Fatalf("len=%d want 0", len(resp.Habits))
	}
	if len(resp.Week) != 7 || resp.Week[0].DateStr != "2024-06-02" {
		t.Fatalf("unexpected week %+v", resp.Week)
	}
}

func TestGetWeek(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/week", nil)
	resp := decodeBody[WeekResponse](t, rr)
	if resp.Today != "2024-06-05" || resp.Days[6].DateStr != "2024-06-08" {
		t.Fatalf("unexpected week response %+v", resp)
	}
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/version", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "version") {
		t.Fatalf("got %d %s", rr.Code, rr.Body.String())
	}
}

func TestSectionLifecycle(t *testing.T) {
	h, _ := newTestServer(t)

	rr := mockRequest(h, http.MethodPost, "/sections/", SectionRequest{Name: ""})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("empty name: got %d want 400", rr.Code)
	}

	sec := createSection(t, h, "Health")

	rr = mockRequest(h, http.MethodPut, "/sections/"+sec.ID, SectionRequest{Name: "Fitness"})
	if rr.Code != http.StatusOK {
		t.Fatalf("rename: got %d want 200", rr.Code)
	}
	rr = mockRequest(h, http.MethodPut, "/sections/missing", SectionRequest{Name: "x"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("rename missing: got %d want 404", rr.Code)
	}

	hab := createHabit(t, h, "Run", sec.ID, 3)
	rr = mockRequest(h, http.MethodDelete, "/sections/"+sec.ID, nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("delete non-empty: got %d want 409", rr.Code)
	}

	rr = mockRequest(h, http.MethodDelete, "/habits/"+hab.ID+"?confirm=true", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete habit: got %d want 204", rr.Code)
	}
	rr = mockRequest(h, http.MethodDelete, "/sections/"+sec.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete section: got %d want 204", rr.Code)
	}

	rr = mockRequest(h, http.MethodGet, "/sections/", nil)
	if resp := decodeBody[SectionListResponse](t, rr); len(resp.Sections) != 0 {
		t.Fatalf("expected no sections, got %+v", resp.Sections)
	}
}

func TestCreateHabit_Validation(t *testing.T) {
	h, _ := newTestServer(t)
	sec := createSection(t, h, "Health")

	tests := []struct {
		name string
		body any
		want int
	}{
		{"invalid json", "not an object", http.StatusBadRequest},
		{"empty title", tracker.HabitInput{SectionID: sec.ID, WeeklyGoal: 1}, http.StatusBadRequest},
		{"unknown section", tracker.HabitInput{Title: "Run", SectionID: "nope", WeeklyGoal: 1}, http.StatusBadRequest},
		{"zero goal", tracker.HabitInput{Title: "Run", SectionID: sec.ID}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := mockRequest(h, http.MethodPost, "/habits/", tt.body)
			if rr.Code != tt.want {
				t.Fatalf("got %d want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
			if resp := decodeBody[ErrorResponse](t, rr); resp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestToggleAndProgress(t *testing.T) {
	h, _ := newTestServer(t)
	sec := createSection(t, h, "Health")
	hab := createHabit(t, h, "Run", sec.ID, 3)

	for _, date := range []string{"2024-06-02", "2024-06-04", "2024-05-30"} {
		rr := mockRequest(h, http.MethodPost, "/habits/"+hab.ID+"/toggle", ToggleRequest{Date: date})
		if rr.Code != http.StatusOK {
			t.Fatalf("toggle %s: got %d", date, rr.Code)
		}
	}

	rr := mockRequest(h, http.MethodGet, "/habits/"+hab.ID, nil)
	row := decodeBody[habit.HabitProgress](t, rr)
	if row.CompletedInWeek != 2 || row.ProgressPercent != 67 || row.GoalMet || row.SectionName != "Health" {
		t.Fatalf("unexpected progress %+v", row)
	}

	// empty date toggles today
	rr = mockRequest(h, http.MethodPost, "/habits/"+hab.ID+"/toggle", ToggleRequest{})
	row = decodeBody[habit.HabitProgress](t, rr)
	if !row.GoalMet || row.ProgressPercent != 100 {
		t.Fatalf("expected goal met after toggling today, got %+v", row)
	}

	rr = mockRequest(h, http.MethodPost, "/habits/missing/toggle", ToggleRequest{Date: "2024-06-02"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("toggle missing: got %d want 404", rr.Code)
	}
}

func TestSummary(t *testing.T) {
	h, _ := newTestServer(t)
	sec := createSection(t, h, "Health")
	a := createHabit(t, h, "A", sec.ID, 3)
	b := createHabit(t, h, "B", sec.ID, 5)

	for i, date := range []string{"2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06"} {
		if i < 3 {
			mockRequest(h, http.MethodPost, "/habits/"+a.ID+"/toggle", ToggleRequest{Date: date})
		}
		mockRequest(h, http.MethodPost, "/habits/"+b.ID+"/toggle", ToggleRequest{Date: date})
	}

	rr := mockRequest(h, http.MethodGet, "/summary", nil)
	resp := decodeBody[SummaryResponse](t, rr)
	want := habit.WeeklySummary{TotalHabits: 2, TotalCompleted: 8, TotalPossible: 8, AverageProgress: 100, HabitsAchievedGoal: 2}
	if resp.Summary != want {
		t.Fatalf("got %+v want %+v", resp.Summary, want)
	}
}

func TestUpdateHabit(t *testing.T) {
	h, _ := newTestServer(t)
	sec := createSection(t, h, "Health")
	hab := createHabit(t, h, "Run", sec.ID, 3)

	rr := mockRequest(h, http.MethodPut, "/habits/"+hab.ID, map[string]any{"title": "Jog", "color": "#112233"})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200: %s", rr.Code, rr.Body.String())
	}
	got := decodeBody[habit.Habit](t, rr)
	if got.Title != "Jog" || got.Color != "#112233" || got.WeeklyGoal != 3 || got.ID != hab.ID {
		t.Fatalf("unexpected habit %+v", got)
	}

	rr = mockRequest(h, http.MethodPut, "/habits/"+hab.ID, map[string]any{"sectionId": "gone"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad section: got %d want 400", rr.Code)
	}
	rr = mockRequest(h, http.MethodPut, "/habits/missing", map[string]any{"title": "x"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing habit: got %d want 404", rr.Code)
	}
}

func TestDeleteHabit_RequiresConfirmation(t *testing.T) {
	h, tr := newTestServer(t)
	sec := createSection(t, h, "Health")
	hab := createHabit(t, h, "Run", sec.ID, 3)

	rr := mockRequest(h, http.MethodDelete, "/habits/"+hab.ID, nil)
	if rr.Code != http.StatusPreconditionRequired {
		t.Fatalf("got %d want 428", rr.Code)
	}
	if len(tr.Habits()) != 1 {
		t.Fatal("habit removed without confirmation")
	}
}

func TestReorderHabit(t *testing.T) {
	h, _ := newTestServer(t)
	sec := createSection(t, h, "Health")
	a := createHabit(t, h, "A", sec.ID, 1)
	b := createHabit(t, h, "B", sec.ID, 1)

	rr := mockRequest(h, http.MethodPost, "/habits/reorder", ReorderRequest{Index: 0, Direction: "up"})
	if rr.Code != http.StatusOK {
		t.Fatalf("boundary reorder: got %d want 200", rr.Code)
	}

	rr = mockRequest(h, http.MethodPost, "/habits/reorder", ReorderRequest{Index: 0, Direction: "down"})
	resp := decodeBody[HabitListResponse](t, rr)
	if resp.Habits[0].Habit.ID != b.ID || resp.Habits[1].Habit.ID != a.ID {
		t.Fatalf("unexpected order %s, %s", resp.Habits[0].Habit.Title, resp.Habits[1].Habit.Title)
	}

	rr = mockRequest(h, http.MethodPost, "/habits/reorder", ReorderRequest{Index: 7, Direction: "down"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("out of range: got %d want 400", rr.Code)
	}
}

func TestTheme(t *testing.T) {
	h, _ := newTestServer(t)

	rr := mockRequest(h, http.MethodGet, "/theme", nil)
	if resp := decodeBody[ThemeResponse](t, rr); resp.Theme != habit.ThemeLight {
		t.Fatalf("got %q want light", resp.Theme)
	}

	rr = mockRequest(h, http.MethodPost, "/theme/toggle", nil)
	if resp := decodeBody[ThemeResponse](t, rr); resp.Theme != habit.ThemeDark {
		t.Fatalf("got %q want dark", resp.Theme)
	}

	rr = mockRequest(h, http.MethodPut, "/theme", ThemeResponse{Theme: "sepia"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d want 400", rr.Code)
	}

	rr = mockRequest(h, http.MethodPut, "/theme", ThemeResponse{Theme: habit.ThemeLight})
	if resp := decodeBody[ThemeResponse](t, rr); resp.Theme != habit.ThemeLight {
		t.Fatalf("got %q want light", resp.Theme)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)
	createSection(t, h, "Health")

	rr := mockRequest(h, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	for _, name := range []string{"habits_sections_total", "habits_http_requests_total"} {
		if !strings.Contains(rr.Body.String(), name) {
			t.Errorf("metric %s missing from exposition", name)
		}
	}
}
