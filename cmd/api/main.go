package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KN-gho/timebudget/config"
	_ "github.com/KN-gho/timebudget/docs" // Swagger docs
	authUC "github.com/KN-gho/timebudget/internal/auth/usecase"
	"github.com/KN-gho/timebudget/internal/db"
	"github.com/KN-gho/timebudget/internal/httpserver"
	"github.com/KN-gho/timebudget/pkg/deadline"
	"github.com/KN-gho/timebudget/pkg/log"
	"github.com/KN-gho/timebudget/pkg/openai"
	"github.com/KN-gho/timebudget/pkg/pressure"
	"github.com/KN-gho/timebudget/pkg/weather"
)

// @title       TimeBudget API
// @description Personal time management: tasks, diary, weather-linked schedules, voice intake, and pressure scores.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TimeBudget...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	database, err := db.Init(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer database.Close()
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. External clients
	var aiClient openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		aiClient, err = openai.New(openai.Config{
			APIKey:            cfg.OpenAI.APIKey,
			BaseURL:           cfg.OpenAI.BaseURL,
			ChatModel:         cfg.OpenAI.ChatModel,
			TranscribeModel:   cfg.OpenAI.TranscribeModel,
			RequestsPerMinute: cfg.OpenAI.RequestsPerMinute,
		})
		if err != nil {
			logger.Error(ctx, "Failed to init OpenAI client: ", err)
			return
		}
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing: voice intake and advice will fail")
	}

	weatherClient, err := weather.New(weather.Config{BaseURL: cfg.Weather.BaseURL})
	if err != nil {
		logger.Error(ctx, "Failed to init weather client: ", err)
		return
	}

	// 5. Core collaborators
	resolver, err := deadline.NewResolver(cfg.Pressure.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Pressure.Timezone, err)
		resolver, _ = deadline.NewResolver("UTC")
	}
	calc := pressure.NewCalculator(pressure.MondayStart)

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          database,
		OpenAI:      aiClient,
		Weather:     weatherClient,
		Resolver:    resolver,
		Calc:        calc,
		GoogleOAuth: authUC.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		},
		SessionTTL: cfg.Auth.SessionTTLHours,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
