package http

import (
	"net/http"

	"gestor/internal/activity"
	"gestor/internal/config"
	"gestor/internal/http/handler"
	mw "gestor/internal/http/middleware"
	"gestor/internal/remote"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, syncer *remote.Syncer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	svc := &activity.Service{DB: db}

	actH := &handler.ActivityHandler{Svc: svc}
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", actH.List)
		r.Post("/", actH.Create)
	})

	taskH := &handler.TaskHandler{Svc: svc}
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskH.List)
		r.Post("/", taskH.Create)
		r.Post("/{id}/complete", taskH.Complete)
	})

	calH := &handler.CalendarHandler{Svc: svc, Remote: syncer}
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/grid", calH.Grid)
		r.Get("/month", calH.Month)
		r.Get("/day", calH.Day)
		r.Get("/status", calH.Status)
	})

	return r
}
