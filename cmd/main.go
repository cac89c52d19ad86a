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
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"

	"github.com/tercas-fc/league-system/config"
	"github.com/tercas-fc/league-system/db"
	"github.com/tercas-fc/league-system/handlers"
	"github.com/tercas-fc/league-system/repositories"
	api "github.com/tercas-fc/league-system/routes"
	"github.com/tercas-fc/league-system/services"
	"github.com/tercas-fc/league-system/storage"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Создаём недостающие таблицы (миграционной системы нет)
	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		logger.Error("failed to ensure database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema ensured")

	// Опциональная выгрузка архивов сезонов (Cloudflare R2)
	var snapshotUploader storage.FileUploader
	if cfg.SnapshotUploadEnabled() {
		snapshotUploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("season snapshot upload disabled (R2 not configured)")
	}

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	matchPlayerRepo := repositories.NewPostgresMatchPlayerRepository(dbConn)
	attendanceRepo := repositories.NewPostgresAttendanceRepository(dbConn)
	championRepo := repositories.NewPostgresChampionRepository(dbConn)
	archiveRepo := repositories.NewPostgresArchiveRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	clock := clockwork.NewRealClock()
	verifier := services.NewBcryptCredentialVerifier(playerRepo)
	authService := services.NewAuthService(verifier)
	playerService := services.NewPlayerService(playerRepo, cfg.MonthlyFee)
	matchService := services.NewMatchService(matchRepo, matchPlayerRepo, playerRepo, cfg.MatchFee)
	tableService := services.NewTableService(playerRepo, matchRepo, matchPlayerRepo)
	scheduleService := services.NewScheduleService(matchRepo, attendanceRepo, clock)
	championService := services.NewChampionService(championRepo)
	seasonService := services.NewSeasonService(
		tableService,
		playerRepo,
		matchRepo,
		matchPlayerRepo,
		championRepo,
		archiveRepo,
		snapshotUploader,
		clock,
		logger,
	)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService, scheduleService)
	tableHandler := handlers.NewTableHandler(tableService)
	championHandler := handlers.NewChampionHandler(championService)
	seasonHandler := handlers.NewSeasonHandler(seasonService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		playerHandler,
		matchHandler,
		tableHandler,
		championHandler,
		seasonHandler,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
