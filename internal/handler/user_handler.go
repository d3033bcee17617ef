package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/middleware"
	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/mq"
	"github.com/movietracker/movietracker/internal/service/domain"
)

const dateLayout = "2006-01-02"

type UserHandler struct {
	app *app.App
}

func NewUserHandler(app *app.App) *UserHandler {
	return &UserHandler{
		app: app,
	}
}

type createUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,max=72"`
	BirthDate string `json:"birth_date" binding:"required"`
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var req createUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	hashed, err := h.app.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	user, err := h.app.UserService.Create(domain.UserInput{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashed,
		BirthDate:      birthDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	h.app.Publisher.Publish(mq.EventUserRegistered, mq.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
	})
	ctx.JSON(201, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	user, err := h.app.AuthService.Authenticate(req.Email, req.Password)
	if err != nil {
		ctx.JSON(401, gin.H{"error": "invalid email or password"})
		return
	}
	token, exp, err := h.app.AuthService.IssueToken(user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_at":   exp.Format(time.RFC3339),
	})
}

func (h *UserHandler) Me(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	user, err := h.app.UserService.Get(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, user)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	user, err := h.app.UserService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, user)
}

func (h *UserHandler) List(ctx *gin.Context) {
	p := bindPagination(ctx, 100)
	users, err := h.app.UserService.List(p.Skip, p.Limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, users)
}

type updateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,max=72"`
	BirthDate *string `json:"birth_date"`
}

func (h *UserHandler) Update(ctx *gin.Context) {
	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	patch := model.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != nil {
		hashed, err := h.app.AuthService.HashPassword(*req.Password)
		if err != nil {
			respondError(ctx, err)
			return
		}
		patch.HashedPassword = &hashed
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(dateLayout, *req.BirthDate)
		if err != nil {
			badRequest(ctx, err)
			return
		}
		patch.BirthDate = &birthDate
	}
	user, err := h.app.UserService.Update(ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(200, user)
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := h.app.UserService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	h.app.Publisher.Publish(mq.EventUserDeleted, mq.UserDeletedEvent{UserID: id})
	ctx.Status(204)
}

// AddToList and RemoveFromList serve all three lists; the kind is fixed per
// route at registration time.
func (h *UserHandler) AddToList(kind model.ListKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := h.app.UserService.AddToList(kind, ctx.Param("id"), ctx.Param("movieID"))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(200, user)
	}
}

func (h *UserHandler) RemoveFromList(kind model.ListKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := h.app.UserService.RemoveFromList(kind, ctx.Param("id"), ctx.Param("movieID"))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(200, user)
	}
}
