package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/brk3/weekly-habits/internal/logger"
	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/brk3/weekly-habits/pkg/versioninfo"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	if err := writeJSON(w, code, ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to write error response", "status", code, "error", err)
	}
}

func respond(w http.ResponseWriter, code int, v any) {
	if err := writeJSON(w, code, v); err != nil {
		logger.Error("Failed to serialize response", "status", code, "error", err)
	}
}

// statusFor maps a tracker error to an HTTP status. A section reference
// inside a habit body is bad input rather than a missing resource.
func statusFor(err error, sectionRefIsInput bool) int {
	switch {
	case tracker.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrSectionNotFound) && sectionRefIsInput:
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrSectionNotFound), errors.Is(err, tracker.ErrHabitNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrSectionNotEmpty):
		return http.StatusConflict
	case errors.Is(err, tracker.ErrNotConfirmed):
		return http.StatusPreconditionRequired
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid JSON in request", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	})
}

func (s *Server) getWeek(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, WeekResponse{Today: s.week.Today(), Days: s.week.Current()})
}

func (s *Server) getSummary(w http.ResponseWriter, _ *http.Request) {
	days, sum := s.summary()
	respond(w, http.StatusOK, SummaryResponse{Week: days, Summary: sum})
}

func (s *Server) getTheme(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, ThemeResponse{Theme: s.tracker.Theme()})
}

func (s *Server) putTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeResponse
	if !decode(w, r, &req) {
		return
	}
	if req.Theme != habit.ThemeDark && req.Theme != habit.ThemeLight {
		writeError(w, http.StatusBadRequest, `theme must be "dark" or "light"`)
		return
	}
	theme := s.tracker.SetTheme(req.Theme)
	logger.Info("Theme changed", "theme", theme)
	respond(w, http.StatusOK, ThemeResponse{Theme: theme})
}

func (s *Server) toggleTheme(w http.ResponseWriter, _ *http.Request) {
	theme := s.tracker.ToggleTheme()
	logger.Info("Theme toggled", "theme", theme)
	respond(w, http.StatusOK, ThemeResponse{Theme: theme})
}

func (s *Server) listSections(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, SectionListResponse{Sections: s.tracker.Sections()})
}

func (s *Server) createSection(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if !decode(w, r, &req) {
		return
	}
	sec, err := s.tracker.CreateSection(req.Name)
	if err != nil {
		logger.Warn("Rejected section", "error", err)
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	logger.Info("Section created", "section_id", sec.ID)
	s.refreshGauges()
	respond(w, http.StatusCreated, sec)
}

func (s *Server) renameSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "section_id")
	var req SectionRequest
	if !decode(w, r, &req) {
		return
	}
	sec, err := s.tracker.RenameSection(sectionID, req.Name)
	if err != nil {
		logger.Warn("Rejected section rename", "section_id", sectionID, "error", err)
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	logger.Info("Section renamed", "section_id", sectionID)
	respond(w, http.StatusOK, sec)
}

func (s *Server) deleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "section_id")
	if err := s.tracker.DeleteSection(sectionID); err != nil {
		logger.Warn("Rejected section delete", "section_id", sectionID, "error", err)
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	logger.Info("Section deleted", "section_id", sectionID)
	s.refreshGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	days, rows := s.habitRows()
	logger.Debug("Listed habits", "count", len(rows))
	respond(w, http.StatusOK, HabitListResponse{Week: days, Habits: rows})
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	h, err := s.tracker.Habit(habitID)
	if err != nil {
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	respond(w, http.StatusOK, s.habitRow(h))
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var in tracker.HabitInput
	if !decode(w, r, &in) {
		return
	}
	h, err := s.tracker.CreateHabit(in)
	if err != nil {
		logger.Warn("Rejected habit", "section_id", in.SectionID, "error", err)
		writeError(w, statusFor(err, true), err.Error())
		return
	}
	logger.Info("Habit created", "habit_id", h.ID, "section_id", h.SectionID)
	s.refreshGauges()
	respond(w, http.StatusCreated, h)
}

func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	var u tracker.HabitUpdate
	if !decode(w, r, &u) {
		return
	}
	h, err := s.tracker.UpdateHabit(habitID, u)
	if err != nil {
		logger.Warn("Rejected habit update", "habit_id", habitID, "error", err)
		writeError(w, statusFor(err, true), err.Error())
		return
	}
	logger.Info("Habit updated", "habit_id", habitID)
	s.refreshGauges()
	respond(w, http.StatusOK, h)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err := s.tracker.DeleteHabit(habitID, confirmed); err != nil {
		logger.Warn("Rejected habit delete", "habit_id", habitID, "error", err)
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	logger.Info("Habit deleted", "habit_id", habitID)
	s.refreshGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleCompletion(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	var req ToggleRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Date == "" {
		req.Date = s.week.Today()
	}
	h, err := s.tracker.ToggleCompletion(habitID, req.Date)
	if err != nil {
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	logger.Info("Completion toggled", "habit_id", habitID, "date", req.Date)
	s.refreshGauges()
	respond(w, http.StatusOK, s.habitRow(h))
}

func (s *Server) reorderHabit(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decode(w, r, &req) {
		return
	}
	if err := s.tracker.ReorderHabit(req.Index, tracker.Direction(req.Direction)); err != nil {
		logger.Warn("Rejected reorder", "index", req.Index, "direction", req.Direction, "error", err)
		writeError(w, statusFor(err, false), err.Error())
		return
	}
	days, rows := s.habitRows()
	respond(w, http.StatusOK, HabitListResponse{Week: days, Habits: rows})
}
