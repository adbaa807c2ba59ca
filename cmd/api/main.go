package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/charknest/charknest/internal/application/analysis"
	"github.com/charknest/charknest/internal/config"
	aiclient "github.com/charknest/charknest/internal/infra/ai/openai"
	googlegeo "github.com/charknest/charknest/internal/infra/geo/google"
	"github.com/charknest/charknest/internal/infra/httpserver"
	"github.com/charknest/charknest/internal/infra/search/serpapi"
	"github.com/charknest/charknest/internal/logger"
)

func main() {
	log := logger.New("api")

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system env vars")
	}

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	maps := googlegeo.New(cfg.GoogleMaps.APIKey, log)
	svc := &analysis.Service{
		Search:   serpapi.New(cfg.SerpAPI.APIKey, cfg.SerpAPI.Engine, cfg.SerpAPI.Site, log),
		Geocoder: maps,
		Places:   maps,
		Composer: aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		Log:      log,
	}

	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, log))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", slog.Any("err", err))
	}
}
