package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/roomplanner/internal/api"
	"github.com/inamate/roomplanner/internal/auth"
	"github.com/inamate/roomplanner/internal/config"
	"github.com/inamate/roomplanner/internal/layout"
	mw "github.com/inamate/roomplanner/internal/middleware"
	"github.com/inamate/roomplanner/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if _, err := layout.LevelByID(cfg.DefaultLevel); err != nil {
		slog.Error("invalid default level", "level", cfg.DefaultLevel, "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(cfg.SessionSecret)

	hub := session.NewHub(cfg.SessionTTL)
	go hub.Run()

	handler := api.NewHandler(hub, authService, cfg.DefaultLevel, cfg.Origins())

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)

	handler.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mw.CORS(cfg.Origins())(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Disconnect websocket clients before draining HTTP
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "defaultLevel", cfg.DefaultLevel, "sessionTTL", cfg.SessionTTL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
