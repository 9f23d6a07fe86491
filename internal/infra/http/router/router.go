package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-scoring/internal/infra/http/handlers"
	"github.com/xavierca1/lead-scoring/internal/infra/http/middleware"
)

type Handlers struct {
	Offer   *handlers.OfferHandler
	Leads   *handlers.LeadHandler
	Score   *handlers.ScoreHandler
	Results *handlers.ResultsHandler
	Health  *handlers.HealthHandler
}

type Options struct {
	AllowedOrigins []string
	// ScoreLimiter guards POST /score. Nil disables it.
	ScoreLimiter *middleware.RateLimiter
}

func New(h Handlers, opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			handlers.HeaderResultBatch,
			handlers.HeaderOfferVersion,
			handlers.HeaderLeadsVersion,
			handlers.HeaderResultsStale,
		},
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/offer", h.Offer.Handle)
	r.Post("/leads/upload", h.Leads.Upload)
	r.Group(func(r chi.Router) {
		if opts.ScoreLimiter != nil {
			r.Use(opts.ScoreLimiter.Handler)
		}
		r.Post("/score", h.Score.Handle)
	})
	r.Get("/results", h.Results.List)
	r.Get("/export_csv", h.Results.Export)

	return r
}
