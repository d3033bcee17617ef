package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/service"
)

// respondError translates the service error taxonomy to HTTP. Anything
// outside the taxonomy is a storage or programming fault and is reported
// generically, never echoed to the client.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(400, gin.H{"error": err.Error()})
	default:
		ctx.JSON(500, gin.H{"error": "internal server error"})
	}
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(400, gin.H{
		"error":  "invalid request format",
		"detail": err.Error(),
	})
}

type pagination struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

func bindPagination(ctx *gin.Context, defaultLimit int) pagination {
	p := pagination{Limit: defaultLimit}
	_ = ctx.ShouldBindQuery(&p)
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	return p
}
