package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/mq"
)

type RatingHandler struct {
	app *app.App
}

func NewRatingHandler(app *app.App) *RatingHandler {
	return &RatingHandler{
		app: app,
	}
}

type createRatingRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	MovieID string `json:"movie_id" binding:"required"`
	Score   *int   `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

func (h *RatingHandler) Create(ctx *gin.Context) {
	var req createRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	rating, err := h.app.RatingService.Create(req.UserID, req.MovieID, *req.Score, req.Comment)
	if err != nil {
		respondError(ctx, err)
		return
	}
	h.app.Publisher.Publish(mq.EventRatingCreated, mq.RatingCreatedEvent{
		RatingID: rating.ID,
		UserID:   rating.UserID,
		MovieID:  rating.MovieID,
		Score:    rating.Score,
	})
	ctx.JSON(201, rating)
}

func (h *RatingHandler) Get(ctx *gin.Context) {
	rating, err := h.app.RatingService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, rating)
}

func (h *RatingHandler) List(ctx *gin.Context) {
	p := bindPagination(ctx, 100)
	ratings, err := h.app.RatingService.List(p.Skip, p.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, ratings)
}

func (h *RatingHandler) Update(ctx *gin.Context) {
	var patch model.RatingPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	rating, err := h.app.RatingService.Update(ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, rating)
}

func (h *RatingHandler) Delete(ctx *gin.Context) {
	if err := h.app.RatingService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(204)
}
