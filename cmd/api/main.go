package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/promptstash/promptstash-go/internal/config"
	"github.com/promptstash/promptstash-go/internal/handler"
	"github.com/promptstash/promptstash-go/internal/llm"
	"github.com/promptstash/promptstash-go/internal/middleware"
	"github.com/promptstash/promptstash-go/internal/repository"
	"github.com/promptstash/promptstash-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	promptRepo := repository.NewPromptRepository(db)
	promptService := service.NewPromptService(promptRepo)
	promptHandler := handler.NewPromptHandler(promptService)

	assistService := service.NewAssistService(llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel))
	assistHandler := handler.NewAssistHandler(assistService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Throttle(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Get("/api/v1/user/profile", userHandler.HandleGetProfile)
		r.Put("/api/v1/user/profile", userHandler.HandleUpdateProfile)

		r.Get("/api/v1/prompts", promptHandler.HandleList)
		r.Post("/api/v1/prompts", promptHandler.HandleCreate)
		r.Get("/api/v1/prompts/stats", promptHandler.HandleStats)
		r.Put("/api/v1/prompts/favorite/{prompt_id}", promptHandler.HandleToggleFavorite)
		r.Post("/api/v1/prompts/duplicate/{prompt_id}", promptHandler.HandleDuplicate)
		r.Get("/api/v1/prompts/{prompt_id}", promptHandler.HandleGet)
		r.Put("/api/v1/prompts/{prompt_id}", promptHandler.HandleUpdate)
		r.Delete("/api/v1/prompts/{prompt_id}", promptHandler.HandleDelete)

		r.Post("/api/v1/ai/generate", assistHandler.HandleGenerate)
		r.Post("/api/v1/ai/improve", assistHandler.HandleImprove)
		r.Post("/api/v1/ai/variations", assistHandler.HandleVariations)
		r.Post("/api/v1/ai/suggest-tags", assistHandler.HandleSuggestTags)
		r.Post("/api/v1/ai/generate-title", assistHandler.HandleSuggestTitle)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
