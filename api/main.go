package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/otuedon/shop-tracker/internal/auth"
	"github.com/otuedon/shop-tracker/internal/blobstore"
	"github.com/otuedon/shop-tracker/internal/config"
	"github.com/otuedon/shop-tracker/internal/db"
	"github.com/otuedon/shop-tracker/internal/http/handlers"
	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	rl "github.com/otuedon/shop-tracker/internal/http/rate_limiter"
	"github.com/otuedon/shop-tracker/internal/http/router"
	"github.com/otuedon/shop-tracker/internal/logger"
	"github.com/otuedon/shop-tracker/internal/repo"
)

// @title Shop Tracker API
// @version 1.0
// @description REST API for tracking shop inventory, sales and product drafts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.Get()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load config", zap.Error(err))
	}

	go rl.StartCleanupLoop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("could not connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	userRepo := repo.NewPostgresUserRepository(database)
	authService := auth.NewService(auth.NewRedisCodeStore(rdb), userRepo, auth.ServiceOptions{
		Secret:     cfg.JWTSecret,
		JWTTTL:     cfg.JWTTTL,
		RefreshTTL: cfg.RefreshTTL,
		OTPTTL:     cfg.OTPTTL,
		OTPLength:  cfg.OTPLength,
		MaxTries:   cfg.OTPMaxTries,
	})

	blobs, err := blobstore.NewDiskStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatal("could not set up media store", zap.Error(err))
	}

	mw.SetAuthService(authService)
	handlers.SetAuthService(authService)
	handlers.SetUserRepo(userRepo)
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetNotificationRepo(repo.NewPostgresNotificationRepository(database))
	handlers.SetBlobStore(blobs)
	handlers.SetDevMode(cfg.Env == "development")

	r := router.NewRouter(cfg.MediaDir)
	log.Info("server running", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
