package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sq "github.com/Masterminds/squirrel"
	"github.com/plastinin/catalog/internal/adapter/http/dto"
	"github.com/plastinin/catalog/internal/adapter/http/handler"
	"github.com/plastinin/catalog/internal/adapter/repository"
	"github.com/plastinin/catalog/internal/adapter/storage"
	"github.com/plastinin/catalog/internal/config"
	"github.com/plastinin/catalog/internal/usecase"
	"github.com/plastinin/catalog/pkg/logger"
	"go.uber.org/zap"

	apphttp "github.com/plastinin/catalog/internal/adapter/http"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Инициализируем логгер
	log := logger.Must(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("Starting catalog API",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	// Контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем PostgreSQL
	dbPool, err := repository.NewPostgresPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()
	log.Info("Connected to PostgreSQL")

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, dbPool, log); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	db := repository.NewSQLDB(dbPool)
	defer db.Close()

	// Инициализируем хранилище изображений
	images, err := storage.NewImageStorage(ctx, cfg.S3)
	if err != nil {
		log.Fatal("Failed to connect to S3", zap.Error(err))
	}
	log.Info("Connected to S3",
		zap.String("endpoint", cfg.S3.Endpoint),
		zap.String("bucket", cfg.S3.Bucket),
	)

	// Инициализируем репозитории
	categoryRepo := repository.NewCategoryRepository(db, sq.Dollar)
	itemRepo := repository.NewItemRepository(db, sq.Dollar)

	// Инициализируем use cases
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, itemRepo, images, log)

	// Инициализируем handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, dto.Limits{
		DefaultCount: cfg.Listing.DefaultCount,
		MaxCount:     cfg.Listing.MaxCount,
	}, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": dbPool,
		"storage":  images,
	}, cfg.Server.ReadTimeout, log)

	// Создаём роутер
	router := apphttp.NewRouter(catalogHandler, healthHandler, cfg.Auth.UserHeader, log)

	// Создаём HTTP сервер
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("HTTP server starting",
			zap.String("addr", cfg.Server.Addr()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
