package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/config"
	"github.com/movietracker/movietracker/internal/app"
	"github.com/movietracker/movietracker/internal/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}, &model.Rating{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenTTLMin: 60,
		BcryptCost:        4,
	}
	return NewRouter(app.New(cfg, db, nil, nil, zap.NewNop()))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func createMovie(t *testing.T, router *gin.Engine, title string) model.Movie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/movies", gin.H{
		"title":    title,
		"genre":    "Sci-Fi",
		"duration": 136,
		"year":     1999,
		"director": "Lana Wachowski",
		"cast":     []string{"Keanu Reeves", "Carrie-Anne Moss"},
	})
	if rec.Code != 201 {
		t.Fatalf("movie create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var movie model.Movie
	decode(t, rec, &movie)
	return movie
}

func createUser(t *testing.T, router *gin.Engine, email string) model.User {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"name":       "Test User",
		"email":      email,
		"password":   "s3cret",
		"birth_date": "1990-01-01",
	})
	if rec.Code != 201 {
		t.Fatalf("user create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var user model.User
	decode(t, rec, &user)
	return user
}

func TestMovieEndpoints(t *testing.T) {
	router := newTestRouter(t)

	movie := createMovie(t, router, "Matrix")

	rec := doJSON(t, router, http.MethodGet, "/movies/"+movie.ID, nil)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.Movie
	decode(t, rec, &got)
	if got.Title != "Matrix" || len(got.Cast) != 2 {
		t.Errorf("unexpected movie payload: %+v", got)
	}

	// partial update keeps everything that was not supplied
	rec = doJSON(t, router, http.MethodPut, "/movies/"+movie.ID, gin.H{"year": 2000})
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &got)
	if got.Year != 2000 || got.Title != "Matrix" {
		t.Errorf("partial update went wrong: %+v", got)
	}

	if rec := doJSON(t, router, http.MethodDelete, "/movies/"+movie.ID, nil); rec.Code != 204 {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodDelete, "/movies/"+movie.ID, nil); rec.Code != 404 {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestMovieValidationAndNotFound(t *testing.T) {
	router := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/movies", gin.H{"title": "No Director"}); rec.Code != 400 {
		t.Errorf("expected 400 for missing fields, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodGet, "/movies/c3a1f6e0-0000-0000-0000-000000000000", nil); rec.Code != 404 {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUserConflictAndRatingFlow(t *testing.T) {
	router := newTestRouter(t)

	user := createUser(t, router, "a@x.com")
	movie := createMovie(t, router, "Matrix")

	if rec := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"name": "Dup", "email": "a@x.com", "password": "x", "birth_date": "1991-01-01",
	}); rec.Code != 409 {
		t.Errorf("expected 409 for duplicate email, got %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/ratings", gin.H{
		"user_id": user.ID, "movie_id": movie.ID, "score": 8, "comment": "great",
	})
	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var rating model.Rating
	decode(t, rec, &rating)

	if rec := doJSON(t, router, http.MethodPost, "/ratings", gin.H{
		"user_id": user.ID, "movie_id": movie.ID, "score": 5, "comment": "meh",
	}); rec.Code != 409 {
		t.Errorf("expected 409 for duplicate rating, got %d", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodPut, "/ratings/"+rating.ID, gin.H{"score": 11}); rec.Code != 400 {
		t.Errorf("expected 400 for out-of-range score, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/ratings/"+rating.ID, gin.H{"score": 9})
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	decode(t, rec, &rating)
	if rating.Score != 9 || rating.Comment != "great" {
		t.Errorf("expected score 9 with comment preserved, got %+v", rating)
	}
}

func TestListRoutes(t *testing.T) {
	router := newTestRouter(t)

	user := createUser(t, router, "a@x.com")
	movie := createMovie(t, router, "Matrix")
	path := "/users/" + user.ID + "/favorites/" + movie.ID

	var got model.User
	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodPost, path, nil)
		if rec.Code != 200 {
			t.Fatalf("add #%d: expected 200, got %d: %s", i+1, rec.Code, rec.Body.String())
		}
		decode(t, rec, &got)
	}
	if len(got.Favorites) != 1 {
		t.Errorf("expected exactly one favorite after repeated add, got %d", len(got.Favorites))
	}

	rec := doJSON(t, router, http.MethodDelete, path, nil)
	if rec.Code != 200 {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}
	got = model.User{}
	decode(t, rec, &got)
	if len(got.Favorites) != 0 {
		t.Errorf("expected no favorites after remove, got %d", len(got.Favorites))
	}

	if rec := doJSON(t, router, http.MethodPost, "/users/"+user.ID+"/favorites/c3a1f6e0-0000-0000-0000-000000000000", nil); rec.Code != 404 {
		t.Errorf("expected 404 for unknown movie, got %d", rec.Code)
	}
}

func TestLoginAndMe(t *testing.T) {
	router := newTestRouter(t)
	user := createUser(t, router, "a@x.com")

	rec := doJSON(t, router, http.MethodPost, "/users/login", gin.H{
		"email": "a@x.com", "password": "s3cret",
	})
	if rec.Code != 200 {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var login struct {
		AccessToken string    `json:"access_token"`
		TokenType   string    `json:"token_type"`
		ExpiresAt   time.Time `json:"expires_at"`
	}
	decode(t, rec, &login)
	if login.AccessToken == "" || login.TokenType != "bearer" {
		t.Fatalf("unexpected login payload: %+v", login)
	}

	rec = doJSON(t, router, http.MethodGet, "/users/me", nil, "Authorization", "Bearer "+login.AccessToken)
	if rec.Code != 200 {
		t.Fatalf("me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me model.User
	decode(t, rec, &me)
	if me.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, me.ID)
	}

	if rec := doJSON(t, router, http.MethodGet, "/users/me", nil); rec.Code != 401 {
		t.Errorf("expected 401 without a token, got %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPost, "/users/login", gin.H{
		"email": "a@x.com", "password": "wrong",
	}); rec.Code != 401 {
		t.Errorf("expected 401 for a wrong password, got %d", rec.Code)
	}
}
