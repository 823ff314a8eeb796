package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"footballdirector/internal/app"
	"footballdirector/internal/config"
	"footballdirector/internal/server"
	"footballdirector/internal/util"
	"footballdirector/pkg/ai"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := util.InitLogger(cfg.LogLevel)

	var generator ai.Generator
	if cfg.GenerationModel != "" {
		client := ai.NewOllamaClient(cfg.OllamaBaseURL)
		generator = ai.NewOllamaGenerator(client, cfg.GenerationModel)
	}

	appCore, err := app.New(app.Config{
		SavePath:            cfg.SavePath,
		Generator:           generator,
		GenerateTimeout:     time.Duration(cfg.GenerateTimeoutSeconds) * time.Second,
		GenerateTemperature: cfg.Temperature,
		GenerateMaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		logger.Error("failed to init game session", "err", err)
		os.Exit(1)
	}

	httpServer := server.New(server.Config{App: appCore})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("game server listening", "addr", addr, "save", cfg.SavePath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
