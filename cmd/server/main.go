package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/disaster-backend/internal/config"
	"github.com/ignatzorin/disaster-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/disaster-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/disaster-backend/internal/http/router"
	"github.com/ignatzorin/disaster-backend/internal/infrastructure/memory"
	"github.com/ignatzorin/disaster-backend/internal/logger"
	"github.com/ignatzorin/disaster-backend/internal/service"
	"github.com/ignatzorin/disaster-backend/internal/usecase/dispatch"
	"github.com/ignatzorin/disaster-backend/internal/validation"
	"github.com/ignatzorin/disaster-backend/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Реестр волонтёров и хранилище отчётов живут только в памяти процесса.
	registry, err := memory.DefaultRoster(cfg.RosterFirstID, cfg.RosterSize)
	if err != nil {
		logger.Log.WithError(err).Fatal("main: не удалось создать реестр волонтёров")
	}
	dispatcher := dispatch.NewDispatcher(registry, memory.NewReportStore())

	// Учётные записи.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	authService := service.NewAuthService(tokenManager, cfg.BcryptCost)

	volunteerIDs := make([]string, 0, registry.Len())
	for _, v := range registry.List() {
		volunteerIDs = append(volunteerIDs, v.ID)
	}
	if err := authService.Seed(service.SeedInput{
		AdminPassword:    cfg.AdminPassword,
		DefaultPassword:  cfg.DefaultPassword,
		ReporterAccounts: cfg.ReporterAccounts,
		VolunteerIDs:     volunteerIDs,
	}); err != nil {
		logger.Log.WithError(err).Fatal("main: не удалось создать учётные записи")
	}

	// Вебсокеты и уведомления.
	hub := ws.NewHub(ctx)
	goroutine.SafeGo(hub.Run)

	notifications := service.NewNotificationService(hub, authService, goroutine.DefaultRecoveryHandler)
	locations := service.NewLocationService()

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	disasterHandler := httpHandlers.NewDisasterHandler(dispatcher, notifications, validation.NewPhotoValidator(cfg.MaxPhotoSizeMB))
	volunteerHandler := httpHandlers.NewVolunteerHandler(dispatcher, locations, notifications)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dispatcher)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, disasterHandler, volunteerHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithFields(logrus.Fields{
		"port":       cfg.HTTPPort,
		"env":        cfg.Env,
		"volunteers": registry.Len(),
	}).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}

	logger.Log.Info("main: сервер остановлен")
}
