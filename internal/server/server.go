package server

import (
	"net/http"

	"github.com/brk3/weekly-habits/internal/tracker"
	"github.com/brk3/weekly-habits/internal/week"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	tracker *tracker.Tracker
	week    *week.Calculator
}

func New(t *tracker.Tracker, wk *week.Calculator) *Server {
	s := &Server{tracker: t, week: wk}
	s.refreshGauges()
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Get("/week", s.getWeek)
	r.Get("/summary", s.getSummary)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/theme", func(r chi.Router) {
		r.Get("/", s.getTheme)
		r.Put("/", s.putTheme)
		r.Post("/toggle", s.toggleTheme)
	})

	r.Route("/sections", func(r chi.Router) {
		r.Get("/", s.listSections)
		r.Post("/", s.createSection)
		r.Put("/{section_id}", s.renameSection)
		r.Delete("/{section_id}", s.deleteSection)
	})

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.createHabit)
		r.Post("/reorder", s.reorderHabit)
		r.Get("/{habit_id}", s.getHabit)
		r.Put("/{habit_id}", s.updateHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Post("/{habit_id}/toggle", s.toggleCompletion)
	})
	return r
}
