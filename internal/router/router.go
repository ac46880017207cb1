package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/actuallystonmai/recipe-service/internal/handler"
	"github.com/actuallystonmai/recipe-service/internal/metrics"
	"github.com/actuallystonmai/recipe-service/internal/session"
)

type Options struct {
	CORSOrigins       []string
	RateLimitRequests int // 0 disables
	RateLimitWindow   time.Duration
	RequestTimeout    time.Duration
}

func Setup(h *handler.Handler, opts Options) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", session.UserIDHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Probes stay outside the rate limiter and the session.
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimitRequests > 0 {
			r.Use(httprate.LimitByIP(opts.RateLimitRequests, opts.RateLimitWindow))
		}
		r.Use(middleware.Timeout(opts.RequestTimeout))
		r.Use(session.Middleware)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.ListRecipes)
			r.Get("/featured", h.GetFeatured)
			r.Get("/popular", h.GetPopular)
			r.Get("/favorites", h.GetFavorites)
			r.Get("/recommended", h.GetRecommended)
			r.Post("/suggest", h.SuggestByIngredients)
			r.Get("/suggested", h.GetSuggested)
			r.Get("/{id}", h.GetRecipe)
			r.Get("/{id}/similar", h.GetSimilar)
			r.Post("/{id}/favorite", h.ToggleFavorite)
			r.Post("/{id}/rate", h.RateRecipe)
		})
		r.Post("/website/rate", h.RateWebsite)
		r.Get("/ingredients", h.GetAllIngredients)
	})

	return r
}
