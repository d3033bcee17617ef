package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/repository"
)

// openTestDB returns a fresh in-memory sqlite database, named after the test
// so parallel tests stay isolated while gorm's pool shares the connection.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}, &model.Rating{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type testEnv struct {
	db      *gorm.DB
	movies  MovieService
	users   UserService
	ratings RatingService
	auth    AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := openTestDB(t)
	movieRepo := repository.NewMovieRepoGorm(db)
	userRepo := repository.NewUserRepoGorm(db)
	ratingRepo := repository.NewRatingRepoGorm(db)
	listRepo := repository.NewListRepoGorm(db)

	users := NewUserService(db, userRepo, movieRepo, listRepo, ratingRepo)
	return &testEnv{
		db:      db,
		movies:  NewMovieService(db, movieRepo, ratingRepo, listRepo),
		users:   users,
		ratings: NewRatingService(db, ratingRepo, userRepo, movieRepo),
		auth:    NewAuthService(users, "test-secret", 60, bcrypt.MinCost),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := e.users.Create(UserInput{
		Name:           "Test User",
		Email:          email,
		HashedPassword: "$2a$04$notarealhashbutopaque0000000000000000000000000000000",
		BirthDate:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func (e *testEnv) seedMovie(t *testing.T, title string) *model.Movie {
	t.Helper()
	movie, err := e.movies.Create(MovieInput{
		Title:    title,
		Genre:    "Sci-Fi",
		Duration: 136,
		Year:     1999,
		Director: "Lana Wachowski",
		Cast:     []string{"Keanu Reeves", "Carrie-Anne Moss"},
		Synopsis: "A hacker learns the truth.",
	})
	if err != nil {
		t.Fatalf("failed to seed movie %s: %v", title, err)
	}
	return movie
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
