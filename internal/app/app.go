package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/metrics"
	"github.com/denmor86/bet-bankroll/internal/network/router"
	"github.com/denmor86/bet-bankroll/internal/storage"
)

func Run(config config.Config) {

	database, err := storage.NewDatabase(context.Background(), config.DatabaseDSN)
	if err != nil {
		logger.Panic("error create database", err.Error())
	}
	defer database.Close()
	if err := database.Initialize(); err != nil {
		logger.Panic("error initialize database", err.Error())
	}

	router := router.NewRouter(config, storage.NewStorage(database))

	// Создание администратора при первом запуске (пустой пароль - пропуск)
	if err := router.Identity.EnsureAdmin(context.Background(), config.AdminPassword); err != nil {
		logger.Error("error ensure admin user", err.Error())
	}

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: router.HandleRouter(),
	}

	// Сервер метрик и проверки живости на отдельном порту
	metricsServer := metrics.StartServer(config.MetricsAddr, func(ctx context.Context) error {
		return database.Pool.Ping(ctx)
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config.ListenAddr,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown metrics server", err.Error())
	}
	logger.Info("Server stopped")
}
