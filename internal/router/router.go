package router

import (
	"net/http"

	"hackfest-backend/internal/handlers"
	customMiddleware "hackfest-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the settings the router needs from config.
type Options struct {
	JWTSecret          string
	AllowedOrigins     []string
	LoginRatePerMinute int
}

type Handlers struct {
	Auth          *handlers.AuthHandler
	Teams         *handlers.TeamHandler
	Leaderboard   *handlers.LeaderboardHandler
	Registrations *handlers.RegistrationHandler
	Feedback      *handlers.FeedbackHandler
	Analysis      *handlers.AnalysisHandler
}

func New(opts Options, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(customMiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"hackfest-backend"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public routes
	r.Post("/teams", h.Teams.Register)
	r.Post("/teams/{id}/payment", h.Teams.SubmitPayment)
	r.Get("/leaderboard", h.Leaderboard.Get)
	r.Post("/registrations", h.Registrations.Register)
	r.Post("/feedback", h.Feedback.SubmitFeedback)

	loginLimiter := customMiddleware.NewIPRateLimiter(opts.LoginRatePerMinute)

	r.Route("/admin", func(r chi.Router) {
		r.With(loginLimiter.Handler).Post("/login", h.Auth.Login)

		// Admin routes (admin session required)
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.AdminAuth(opts.JWTSecret))

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Teams.List)
				r.Get("/{id}", h.Teams.Get)
				r.Delete("/{id}", h.Teams.Delete)
				r.Patch("/{id}/status", h.Teams.UpdateStatus)
				r.Put("/{id}/scores", h.Teams.SaveScores)
			})

			r.Route("/registrations", func(r chi.Router) {
				r.Get("/", h.Registrations.List)
				r.Post("/", h.Registrations.CreateManual)
				r.Get("/{id}", h.Registrations.Get)
				r.Put("/{id}", h.Registrations.Update)
				r.Delete("/{id}", h.Registrations.Delete)
			})

			r.Get("/feedback", h.Feedback.List)
			r.Post("/analysis", h.Analysis.Run)
			r.Get("/analysis/latest", h.Analysis.Latest)
		})
	})

	return r
}
