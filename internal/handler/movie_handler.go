package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/mq"
	"github.com/movietracker/movietracker/internal/service/domain"
)

type MovieHandler struct {
	app *app.App
}

func NewMovieHandler(app *app.App) *MovieHandler {
	return &MovieHandler{
		app: app,
	}
}

type createMovieRequest struct {
	Title    string   `json:"title" binding:"required"`
	Genre    string   `json:"genre" binding:"required"`
	Duration int      `json:"duration" binding:"required,gt=0"`
	Year     int      `json:"year" binding:"required"`
	Director string   `json:"director" binding:"required"`
	Cast     []string `json:"cast" binding:"required"`
	Synopsis string   `json:"synopsis"`
}

func (h *MovieHandler) Create(ctx *gin.Context) {
	var req createMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	movie, err := h.app.MovieService.Create(domain.MovieInput{
		Title:    req.Title,
		Genre:    req.Genre,
		Duration: req.Duration,
		Year:     req.Year,
		Director: req.Director,
		Cast:     req.Cast,
		Synopsis: req.Synopsis,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(201, movie)
}

func (h *MovieHandler) Get(ctx *gin.Context) {
	movie, err := h.app.MovieService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, movie)
}

func (h *MovieHandler) List(ctx *gin.Context) {
	p := bindPagination(ctx, 20)
	movies, err := h.app.MovieService.List(p.Skip, p.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, movies)
}

func (h *MovieHandler) Update(ctx *gin.Context) {
	var patch model.MoviePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	movie, err := h.app.MovieService.Update(ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, movie)
}

func (h *MovieHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	removed, err := h.app.MovieService.Delete(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !removed {
		ctx.JSON(404, gin.H{"error": "movie not found"})
		return
	}
	h.app.Publisher.Publish(mq.EventMovieDeleted, mq.MovieDeletedEvent{MovieID: id})
	ctx.Status(204)
}
