package main

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/config"
	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/cache"
	"github.com/movietracker/movietracker/internal/handler"
	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/mq"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}, &model.Rating{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	var redisCache *cache.RedisCache
	if cfg.CacheURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.CacheURL)
		if err != nil {
			logger.Fatal("failed to create redis cache", zap.Error(err))
		}
		if err := redisCache.Ping(); err != nil {
			logger.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
			redisCache = nil
		}
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			logger.Warn("rabbitmq unreachable, event publishing disabled", zap.Error(err))
			mqConn = nil
		}
	}

	application := app.New(cfg, db, redisCache, mqConn, logger)
	if err := application.Init(); err != nil {
		logger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	router := handler.NewRouter(application)
	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
