package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	appnotification "rannaghore/internal/application/notification"
	"rannaghore/internal/application/notification/usecases"
	domainnotification "rannaghore/internal/domain/notification"
	"rannaghore/internal/infrastructure/config"
	"rannaghore/internal/infrastructure/database"
	"rannaghore/internal/infrastructure/email"
	"rannaghore/internal/infrastructure/queue"
	"rannaghore/internal/infrastructure/repository"
	"rannaghore/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting notification worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	// Without Redis the worker still drains the notifications table through
	// its periodic pending scan.
	var notificationQueue domainnotification.Queue
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalw("failed to connect to redis", "error", err)
		}
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

		notificationQueue = queue.NewRedisQueue(redisClient, queue.DefaultKey)
	} else {
		notificationQueue = queue.NewMemoryQueue()
	}

	notificationRepo := repository.NewNotificationRepository(database.Get())
	mailer := email.NewSMTPMailer(cfg.Email, log)
	deliverUC := usecases.NewDeliverNotificationUseCase(notificationRepo, mailer, log)
	worker := appnotification.NewWorker(notificationQueue, notificationRepo, deliverUC, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Infow("received signal, shutting down", "signal", sig)
		cancel()
	}()

	worker.Run(ctx)
}
