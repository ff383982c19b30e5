package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Prioritization/internal/config"
	"github.com/MikeSquared-Agency/Prioritization/internal/dashboard"
	"github.com/MikeSquared-Agency/Prioritization/internal/hermes"
	"github.com/MikeSquared-Agency/Prioritization/internal/metrics"
	"github.com/MikeSquared-Agency/Prioritization/internal/scoring"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

func NewRouter(s store.Store, h hermes.Client, m *metrics.Metrics, sc *scoring.Scorer, views *dashboard.Renderer, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	ss := &sessions{
		store:   s,
		hermes:  h,
		metrics: m,
		scorer:  sc,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
	sessionsH := NewSessionsHandler(ss)
	explain := NewExplainHandler(ss)
	transfer := NewTransferHandler(ss)
	rm := NewRoadmapHandler(ss)
	pages := NewPagesHandler(ss, transfer, views)

	r.Get("/", pages.Matrix)
	r.Get("/roadmap", pages.Roadmap)
	r.Post("/initiatives", pages.SaveTable)
	r.Post("/initiatives/{index}/delete", pages.DeleteRow)
	r.Post("/weights", pages.SetWeights)
	r.Post("/selection", pages.Select)
	r.Post("/import", pages.Import)
	r.Post("/anchor", pages.SetAnchor)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rubric", Rubric)

		r.Post("/sessions", sessionsH.Create)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionsH.Get)
			r.Delete("/", sessionsH.Delete)

			r.Put("/initiatives", sessionsH.ReplaceInitiatives)
			r.Post("/initiatives", sessionsH.AddInitiative)
			r.Delete("/initiatives/{index}", sessionsH.DeleteInitiative)
			r.Put("/weights", sessionsH.SetWeights)

			r.Get("/ranking", sessionsH.Ranking)
			r.Get("/frontier", sessionsH.Frontier)
			r.Get("/explain/{rank}", explain.Explain)
			r.Put("/selection", sessionsH.Select)
			r.Get("/radar", sessionsH.Radar)

			r.Get("/export", transfer.Export)
			r.Post("/import", transfer.Import)

			r.Put("/anchor", rm.SetAnchor)
			r.Get("/roadmap", rm.Roadmap)
		})
	})

	return r
}

// NewMetricsRouter serves health and Prometheus metrics from g.
func NewMetricsRouter(s store.Store, g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		n, err := s.CountSessions(r.Context())
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "sessions": n})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}
