package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hackfest-backend/internal/config"
	"hackfest-backend/internal/database"
	"hackfest-backend/internal/handlers"
	"hackfest-backend/internal/notify"
	"hackfest-backend/internal/repository"
	"hackfest-backend/internal/router"
	"hackfest-backend/internal/sentiment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	// Connect to MongoDB
	client, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Warn("error disconnecting from MongoDB", "error", err)
		}
	}()

	// Initialize repositories
	teamRepo := repository.NewTeamRepo()
	registrationRepo := repository.NewRegistrationRepo()
	feedbackRepo := repository.NewFeedbackRepo()
	analysisRepo := repository.NewAnalysisRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	for name, repo := range map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"teams":         teamRepo,
		"registrations": registrationRepo,
		"feedback":      feedbackRepo,
		"analyses":      analysisRepo,
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			slog.Warn("failed to create indexes", "collection", name, "error", err)
		}
	}
	cancel()

	notifier := notify.New(cfg.ResendAPIKey, cfg.FromEmail)

	if cfg.ClassifierURL == "" {
		slog.Warn("classifier_url is not set, every analysed feedback will fall back to neutral")
	}
	classifier := sentiment.NewHTTPClassifier(cfg.ClassifierURL, cfg.ClassifierAPIKey,
		sentiment.WithHTTPClient(&http.Client{Timeout: cfg.ClassifierTimeout}))

	handler := router.New(router.Options{
		JWTSecret:          cfg.JWTSecret,
		AllowedOrigins:     cfg.AllowedOrigins,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	}, router.Handlers{
		Auth:          handlers.NewAuthHandler(cfg.AdminPassword, cfg.JWTSecret, cfg.AdminTokenTTL),
		Teams:         handlers.NewTeamHandler(teamRepo, notifier),
		Leaderboard:   handlers.NewLeaderboardHandler(teamRepo),
		Registrations: handlers.NewRegistrationHandler(registrationRepo, notifier),
		Feedback:      handlers.NewFeedbackHandler(feedbackRepo),
		Analysis: handlers.NewAnalysisHandler(teamRepo, feedbackRepo, analysisRepo,
			sentiment.NewAnalyzer(classifier)),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("hackfest backend starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
