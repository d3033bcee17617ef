package app

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/config"
	"github.com/movietracker/movietracker/internal/cache"
	"github.com/movietracker/movietracker/internal/mq"
	"github.com/movietracker/movietracker/internal/repository"
	"github.com/movietracker/movietracker/internal/service/domain"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	Publisher   *mq.Publisher
	RateLimiter *cache.RateLimiter

	MovieService  domain.MovieService
	UserService   domain.UserService
	RatingService domain.RatingService
	AuthService   domain.AuthService
}

// New wires repositories and services. redisCache and mqConn may be nil;
// rate limiting and event publishing are then disabled.
func New(cfg *config.Config, db *gorm.DB, redisCache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	movieRepo := repository.NewMovieRepoGorm(db)
	userRepo := repository.NewUserRepoGorm(db)
	ratingRepo := repository.NewRatingRepoGorm(db)
	listRepo := repository.NewListRepoGorm(db)

	movieService := domain.NewMovieService(db, movieRepo, ratingRepo, listRepo)
	userService := domain.NewUserService(db, userRepo, movieRepo, listRepo, ratingRepo)
	ratingService := domain.NewRatingService(db, ratingRepo, userRepo, movieRepo)
	authService := domain.NewAuthService(userService, cfg.JWTSecret, cfg.AccessTokenTTLMin, cfg.BcryptCost)

	var limiter *cache.RateLimiter
	if redisCache != nil && cfg.RateLimit.Enabled {
		limiter = cache.NewRateLimiter(
			redisCache,
			cfg.RateLimit.Capacity,
			cfg.RateLimit.RefillTokens,
			cfg.RateLimit.RefillInterval,
			cfg.RateLimit.TTL,
		)
	}

	return &App{
		Config:        cfg,
		DB:            db,
		Cache:         redisCache,
		Logger:        logger,
		MQConn:        mqConn,
		Publisher:     mq.NewPublisher(mqConn, logger),
		RateLimiter:   limiter,
		MovieService:  movieService,
		UserService:   userService,
		RatingService: ratingService,
		AuthService:   authService,
	}
}

func (app *App) Init() error {
	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) Close() error {
	if app.MQConn != nil {
		app.MQConn.Close()
	}
	if app.Cache != nil {
		app.Cache.Close()
	}
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
