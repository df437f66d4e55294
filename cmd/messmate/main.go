package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vedant222005/Messmate/internal/auth"
	"github.com/Vedant222005/Messmate/internal/cache"
	"github.com/Vedant222005/Messmate/internal/catalog"
	"github.com/Vedant222005/Messmate/internal/db"
	"github.com/Vedant222005/Messmate/internal/kafka"
	"github.com/Vedant222005/Messmate/internal/logger"
	"github.com/Vedant222005/Messmate/internal/repository/postgresql"
	"github.com/Vedant222005/Messmate/internal/server"
	"github.com/Vedant222005/Messmate/internal/subscription"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db.LoadEnv()
	log := logger.New()
	defer log.Sync()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	if err := db.InitSchema(ctx, database); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	tokens, err := auth.NewTokenIssuer()
	if err != nil {
		log.Fatal("token issuer init failed", zap.Error(err))
	}

	userRepo := postgresql.NewUserRepo(database)
	messRepo := postgresql.NewMessRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	notificationRepo := postgresql.NewNotificationRepo(database)

	messCache := cache.NewMessCache(messRepo, log)
	if err := messCache.LoadInitialData(ctx); err != nil {
		log.Fatal("catalog cache preload failed", zap.Error(err))
	}

	catalogSvc := catalog.New(messRepo, userRepo, messCache, log)
	engine := subscription.New(orderRepo, messRepo, notificationRepo, log)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}
	defer producer.Close()

	srv := server.New(engine, catalogSvc, userRepo, notificationRepo, tokens, producer, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(groupCtx, port)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
