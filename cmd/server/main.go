package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderlink.backend/internal/config"
	"orderlink.backend/internal/infrastructure/repositories"
	"orderlink.backend/internal/interfaces/http/handlers"
	"orderlink.backend/internal/interfaces/http/middleware"
	"orderlink.backend/internal/usecases"
	"orderlink.backend/pkg/jwt"
	"orderlink.backend/pkg/logger"
	"orderlink.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error {
		srv := &http.Server{Addr: ":" + port, Handler: r}

		// Graceful shutdown: drain in-flight requests on SIGINT/SIGTERM.
		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Println("🛑 Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("forced shutdown: %v", err)
			}
		}()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	getStdDB = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it the public menu is always read from
	// the database.
	var menuCache *redis.MenuCache
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		menuCache = redis.NewMenuCache(cfg.Redis.MenuTTL)
		logger.Info(context.Background(), "Redis initialized")
	} else {
		logger.Info(context.Background(), "Redis not configured, menu cache disabled")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories
	merchantRepo := repositories.NewMerchantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	registrationUsecase := usecases.NewRegistrationUsecase(merchantRepo, userRepo, uow, cfg.Storefront.BaseURL)
	menuUsecase := usecases.NewMenuUsecase(merchantRepo, categoryRepo, itemRepo, menuCache)
	orderUsecase := usecases.NewOrderUsecase(merchantRepo, itemRepo, orderRepo, uow)
	catalogUsecase := usecases.NewCatalogUsecase(merchantRepo, categoryRepo, itemRepo, uow, menuUsecase)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	publicHandler := handlers.NewPublicHandler(menuUsecase, orderUsecase, registrationUsecase)
	adminHandler := handlers.NewAdminHandler(catalogUsecase, orderUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase, authUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	adminKeyMiddleware := middleware.AdminKeyMiddleware(cfg.Admin.APIKey)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r, sqlDB)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		publicHandler:      publicHandler,
		adminHandler:       adminHandler,
		merchantHandler:    merchantHandler,
		authMiddleware:     authMiddleware,
		adminKeyMiddleware: adminKeyMiddleware,
	})

	log.Printf("🚀 OrderLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
