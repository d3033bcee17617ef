package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/service/domain"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

func RequireAuth(auth domain.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "missing or malformed authorization header",
			})
			return
		}
		userID, err := auth.ParseToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "invalid or expired token",
			})
			return
		}
		ctx.Set(ContextUserID, userID)
		ctx.Next()
	}
}
