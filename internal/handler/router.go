package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/middleware"
	"github.com/movietracker/movietracker/internal/model"
)

func NewRouter(app *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(app.Logger))
	router.Use(middleware.RateLimit(app.RateLimiter, app.Logger))

	users := NewUserHandler(app)
	movies := NewMovieHandler(app)
	ratings := NewRatingHandler(app)

	u := router.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", users.List)
		u.POST("/login", users.Login)
		u.GET("/me", middleware.RequireAuth(app.AuthService), users.Me)
		u.GET("/:id", users.Get)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)

		u.POST("/:id/favorites/:movieID", users.AddToList(model.ListFavorites))
		u.DELETE("/:id/favorites/:movieID", users.RemoveFromList(model.ListFavorites))
		u.POST("/:id/watched/:movieID", users.AddToList(model.ListWatched))
		u.DELETE("/:id/watched/:movieID", users.RemoveFromList(model.ListWatched))
		u.POST("/:id/waiting/:movieID", users.AddToList(model.ListWaiting))
		u.DELETE("/:id/waiting/:movieID", users.RemoveFromList(model.ListWaiting))
	}

	m := router.Group("/movies")
	{
		m.POST("", movies.Create)
		m.GET("", movies.List)
		m.GET("/:id", movies.Get)
		m.PUT("/:id", movies.Update)
		m.DELETE("/:id", movies.Delete)
	}

	r := router.Group("/ratings")
	{
		r.POST("", ratings.Create)
		r.GET("", ratings.List)
		r.GET("/:id", ratings.Get)
		r.PUT("/:id", ratings.Update)
		r.DELETE("/:id", ratings.Delete)
	}

	return router
}
