package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "postcms/internal/adapters/database"
	"postcms/internal/adapters/httpapi"
	memadapter "postcms/internal/adapters/memory"
	redisadapter "postcms/internal/adapters/redis"
	"postcms/internal/config"
	postapp "postcms/internal/core/post/service"
	referenceapp "postcms/internal/core/reference/service"
	postPort "postcms/internal/ports/post"
	referencePort "postcms/internal/ports/reference"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	settings, err := config.Load() // بارگذاری تنظیمات از .env
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.InitLogger(settings.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if settings.AppEnv == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		postRepo   postPort.PostRepository
		users      referencePort.UserRepository
		categories referencePort.CategoryRepository
		db         *gorm.DB
	)
	switch settings.StorageType {
	case config.StorageMemory:
		postRepo = memadapter.NewPostRepositoryMemory()
		users = memadapter.NewUserDirectoryFromMap(settings.MemoryUsers)
		categories = memadapter.NewCategoryDirectoryFromMap(settings.MemoryCategories)
		logger.Warn("using in-memory storage; data is lost on restart",
			zap.Int("users", len(settings.MemoryUsers)),
			zap.Int("categories", len(settings.MemoryCategories)))
	default:
		// اتصال به دیتابیس و اجرای مایگریشن‌ها
		db, err = config.InitDB(settings.DBDSN, settings.AppEnv)
		if err != nil {
			logger.Fatal("database init failed", zap.Error(err))
		}
		logger.Info("database migrations completed")
		postRepo = dbadapter.NewPostRepositoryDatabase(db)
		users = dbadapter.NewUserRepositoryDatabase(db)
		categories = dbadapter.NewCategoryRepositoryDatabase(db)
	}

	redisClient, err := config.InitRedis(ctx, settings)
	if err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	var cache referencePort.ProjectionCache
	if redisClient != nil {
		cache = redisadapter.NewProjectionCacheRedis(redisClient, settings.ProjectionCacheTTL)
		logger.Info("projection cache enabled", zap.String("addr", settings.RedisAddr))
	}

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(logger, db, redisClient)

	resolver := referenceapp.NewResolverService(users, categories, cache, logger)
	postSvc := postapp.NewPostService(postRepo, resolver, logger,
		postapp.WithOwnerOnlyUpdate(settings.UpdateRequiresOwnership))
	r := httpapi.SetupRoutes(postSvc, []byte(settings.JWTSecret), logger) // تزریق یوزکیس به آداپتر ورودی

	srv := &http.Server{
		Addr:              settings.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *redis.Client) {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("error closing redis connection", zap.Error(err))
		}
	}
	if db != nil {
		if err := config.CloseDB(db); err != nil {
			logger.Error("error closing database connection", zap.Error(err))
		}
	}
}
