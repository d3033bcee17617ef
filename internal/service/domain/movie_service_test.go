package domain

import (
	"errors"
	"reflect"
	"testing"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/service"
)

func TestMovieCreateGetRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	cast := []string{"Keanu Reeves", "Carrie-Anne Moss", "Laurence Fishburne"}
	created, err := env.movies.Create(MovieInput{
		Title:    "Matrix",
		Genre:    "Sci-Fi",
		Duration: 136,
		Year:     1999,
		Director: "Lana Wachowski",
		Cast:     cast,
		Synopsis: "A hacker learns the truth.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := env.movies.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Matrix" || got.Genre != "Sci-Fi" || got.Duration != 136 ||
		got.Year != 1999 || got.Director != "Lana Wachowski" || got.Synopsis != "A hacker learns the truth." {
		t.Errorf("fields did not round trip: %+v", got)
	}
	if !reflect.DeepEqual(got.Cast, cast) {
		t.Errorf("cast did not round trip in order: got %v, want %v", got.Cast, cast)
	}
}

func TestMovieGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.movies.Get("c3a1f6e0-0000-0000-0000-000000000000")
	if !errors.Is(err, service.ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieListPagination(t *testing.T) {
	env := newTestEnv(t)

	for _, title := range []string{"First", "Second", "Third"} {
		env.seedMovie(t, title)
	}

	page, err := env.movies.List(1, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(page))
	}

	empty, err := env.movies.List(10, 5)
	if err != nil {
		t.Fatalf("list past the end must not fail: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page, got %d movies", len(empty))
	}
}

func TestMovieUpdatePartialMerge(t *testing.T) {
	env := newTestEnv(t)
	movie := env.seedMovie(t, "Matrix")

	updated, err := env.movies.Update(movie.ID, model.MoviePatch{
		Title: strPtr("The Matrix"),
		Year:  intPtr(2000),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "The Matrix" || updated.Year != 2000 {
		t.Errorf("supplied fields not applied: %+v", updated)
	}
	if updated.Genre != movie.Genre || updated.Director != movie.Director || updated.Duration != movie.Duration {
		t.Errorf("unsupplied fields were changed: %+v", updated)
	}
	if !reflect.DeepEqual(updated.Cast, movie.Cast) {
		t.Errorf("cast changed without being supplied: %v", updated.Cast)
	}
}

func TestMovieUpdateReplacesCastAndAppliesZeroValues(t *testing.T) {
	env := newTestEnv(t)
	movie := env.seedMovie(t, "Matrix")

	newCast := []string{"Keanu Reeves"}
	updated, err := env.movies.Update(movie.ID, model.MoviePatch{
		Cast:     &newCast,
		Synopsis: strPtr(""),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !reflect.DeepEqual(updated.Cast, newCast) {
		t.Errorf("cast not replaced wholesale: %v", updated.Cast)
	}
	if updated.Synopsis != "" {
		t.Errorf("explicit empty synopsis not applied: %q", updated.Synopsis)
	}
}

func TestMovieUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.movies.Update("c3a1f6e0-0000-0000-0000-000000000000", model.MoviePatch{Title: strPtr("x")})
	if !errors.Is(err, service.ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieDeleteIdempotent(t *testing.T) {
	env := newTestEnv(t)
	movie := env.seedMovie(t, "Matrix")

	removed, err := env.movies.Delete(movie.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !removed {
		t.Error("expected first delete to report a removed row")
	}

	removed, err = env.movies.Delete(movie.ID)
	if err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
	if removed {
		t.Error("expected second delete to report nothing removed")
	}
}

func TestMovieDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com")
	movie := env.seedMovie(t, "Matrix")

	rating, err := env.ratings.Create(user.ID, movie.ID, 8, "great")
	if err != nil {
		t.Fatalf("rating create failed: %v", err)
	}
	if _, err := env.users.AddToList(model.ListFavorites, user.ID, movie.ID); err != nil {
		t.Fatalf("add to favorites failed: %v", err)
	}

	if _, err := env.movies.Delete(movie.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := env.ratings.Get(rating.ID); !errors.Is(err, service.ErrRatingNotFound) {
		t.Errorf("expected rating removed by cascade, got %v", err)
	}
	refreshed, err := env.users.Get(user.ID)
	if err != nil {
		t.Fatalf("user get failed: %v", err)
	}
	if len(refreshed.Favorites) != 0 {
		t.Errorf("expected favorites cleared by cascade, got %d entries", len(refreshed.Favorites))
	}
}
