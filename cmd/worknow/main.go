package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/worknow-dev/worknow/db"
	"github.com/worknow-dev/worknow/internal/auth"
	"github.com/worknow-dev/worknow/internal/config"
	"github.com/worknow-dev/worknow/internal/handlers"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/logger"
	"github.com/worknow-dev/worknow/internal/middleware"
	"github.com/worknow-dev/worknow/internal/router"
	"github.com/worknow-dev/worknow/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	slogger := logger.New()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var limiter *middleware.RedisLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter = middleware.NewRedisLimiter(redis.NewClient(opts))
	}

	candidacies := store.NewCandidacyStore(gdb)
	completed := store.NewCompletedWorkStore(gdb)
	postings := store.NewPostingStore(gdb)
	accounts := store.NewAccountStore(gdb)

	projector := lifecycle.NewProjector(completed, postings, slogger)
	engine := lifecycle.NewEngine(candidacies, postings, accounts, projector, slogger)
	aggregator := lifecycle.NewAggregator(candidacies)

	r := router.New(router.Handlers{
		Auth:          handlers.NewAuthHandler(gdb, cfg.Domain),
		Jobs:          handlers.NewJobHandler(gdb),
		Projects:      handlers.NewProjectHandler(gdb),
		Applications:  handlers.NewApplicationHandler(engine, candidacies, postings),
		Completed:     handlers.NewCompletedHandler(completed),
		Notifications: handlers.NewNotificationHandler(aggregator),
	}, middleware.NewAuth(gdb), limiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
