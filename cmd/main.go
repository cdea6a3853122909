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

	"github.com/Dosada05/card-league/config"
	"github.com/Dosada05/card-league/db"
	"github.com/Dosada05/card-league/handlers"
	"github.com/Dosada05/card-league/realtime"
	"github.com/Dosada05/card-league/repositories"
	api "github.com/Dosada05/card-league/routes"
	"github.com/Dosada05/card-league/scheduler"
	"github.com/Dosada05/card-league/services"
	"github.com/Dosada05/card-league/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

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

	if err := db.ApplySchema(ctx, dbConn); err != nil {
		logger.Error("failed to apply schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Загрузчик архивов результатов (Cloudflare R2), опционально
	var uploader storage.FileUploader
	if cfg.ExportEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
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
		logger.Info("result export disabled, R2 is not configured")
	}

	// Инициализация WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run(ctx)

	// Инициализация репозиториев
	transactor := repositories.NewPostgresTransactor(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	pairingRepo := repositories.NewPostgresPairingRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)

	// Инициализация сервисов
	authService := services.NewAuthService(cfg.AdminPasswordHash)
	playerService := services.NewPlayerService(playerRepo, pairingRepo)
	tournamentService := services.NewTournamentService(transactor, tournamentRepo, playerRepo, pairingRepo, gameRepo, wsHub, logger)
	gameService := services.NewGameService(tournamentRepo, pairingRepo, gameRepo, wsHub, logger)
	statsService := services.NewStatisticsService(playerRepo, tournamentRepo, pairingRepo, gameRepo)
	exportService := services.NewExportService(tournamentRepo, pairingRepo, gameRepo, uploader, logger)
	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is empty, admin login is disabled")
	}

	// Планировщик ежемесячных турниров
	monthly := scheduler.New(cfg.AutoScheduleCron, cfg.AutoScheduleNameFormat, tournamentService, logger)
	if err := monthly.Start(); err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	defer monthly.Stop()

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:     handlers.NewPlayerHandler(playerService),
		Tournament: handlers.NewTournamentHandler(tournamentService, gameService, statsService, exportService),
		Game:       handlers.NewGameHandler(gameService),
		Statistics: handlers.NewStatisticsHandler(statsService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub),
	}, api.Options{
		JWTSecret:      []byte(cfg.JWTSecretKey),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

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
			return
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	stop()
	logger.Info("application exited")
}
