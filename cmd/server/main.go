package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"e2e_relay/internal/config"
	messageRepo "e2e_relay/internal/repository/message"
	userRepo "e2e_relay/internal/repository/user"
	"e2e_relay/internal/service/mailbox"
	redisSvc "e2e_relay/internal/service/redis"
	"e2e_relay/internal/service/registry"
	"e2e_relay/internal/service/server"
	"e2e_relay/internal/utils/log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	log.Init(cfg.LogLevel)
	defer log.Sync()

	users, messages, err := initStores(cfg)
	if err != nil {
		log.Fatal("init stores failed", zap.Error(err))
	}

	registrySvc := registry.NewService(users)
	mailboxSvc := mailbox.NewService(registrySvc, messages)

	srv := server.NewHttpServer(registrySvc, mailboxSvc)

	go func() {
		log.Info("relay listening", zap.String("addr", cfg.Addr), zap.String("backend", cfg.Backend))
		if err := srv.Run(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

func initStores(cfg *config.Config) (userRepo.Repository, messageRepo.Repository, error) {
	if cfg.Backend == config.BackendMemory {
		return userRepo.NewMemoryRepo(), messageRepo.NewMemoryRepo(), nil
	}

	mongoDBClient, err := initMongo(cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}

	db := mongoDBClient.Database(cfg.MongoDatabase)

	users := userRepo.NewMongoRepo(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := users.EnsureIndexes(ctx); err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	messages := messageRepo.NewRedisRepo(redisSvc.NewRedis(rdb))
	return users, messages, nil
}

func initMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return client, client.Ping(ctx, nil)
}
