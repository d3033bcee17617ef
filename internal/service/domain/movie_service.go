package domain

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/repository"
	"github.com/movietracker/movietracker/internal/service"
)

type MovieInput struct {
	Title    string
	Genre    string
	Duration int
	Year     int
	Director string
	Cast     []string
	Synopsis string
}

type MovieService interface {
	Create(input MovieInput) (*model.Movie, error)
	Get(id string) (*model.Movie, error)
	List(skip, limit int) ([]model.Movie, error)
	Update(id string, patch model.MoviePatch) (*model.Movie, error)
	// Delete removes the movie together with every rating referencing it
	// and every list membership naming it. The bool reports whether a row
	// was actually removed; a missing id is not an error.
	Delete(id string) (bool, error)
}

type movieService struct {
	db      *gorm.DB
	repo    repository.MovieRepo
	ratings repository.RatingRepo
	lists   repository.ListRepo
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(db *gorm.DB, movieRepo repository.MovieRepo, ratingRepo repository.RatingRepo, listRepo repository.ListRepo) *movieService {
	return &movieService{
		db:      db,
		repo:    movieRepo,
		ratings: ratingRepo,
		lists:   listRepo,
	}
}

func (s *movieService) Create(input MovieInput) (*model.Movie, error) {
	movie := &model.Movie{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Genre:    input.Genre,
		Duration: input.Duration,
		Year:     input.Year,
		Director: input.Director,
		Cast:     input.Cast,
		Synopsis: input.Synopsis,
	}
	if err := s.repo.Create(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Get(id string) (*model.Movie, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) List(skip, limit int) ([]model.Movie, error) {
	return s.repo.List(skip, limit)
}

func (s *movieService) Update(id string, patch model.MoviePatch) (*model.Movie, error) {
	var movie *model.Movie
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		m, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrMovieNotFound
			}
			return err
		}
		if patch.Title != nil {
			m.Title = *patch.Title
		}
		if patch.Genre != nil {
			m.Genre = *patch.Genre
		}
		if patch.Duration != nil {
			m.Duration = *patch.Duration
		}
		if patch.Year != nil {
			m.Year = *patch.Year
		}
		if patch.Director != nil {
			m.Director = *patch.Director
		}
		if patch.Cast != nil {
			m.Cast = *patch.Cast
		}
		if patch.Synopsis != nil {
			m.Synopsis = *patch.Synopsis
		}
		if err := repo.Save(m); err != nil {
			return err
		}
		movie = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Delete(id string) (bool, error) {
	var removed bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ratings.WithTx(tx).DeleteByMovieID(id); err != nil {
			return err
		}
		if err := s.lists.WithTx(tx).RemoveAllForMovie(id); err != nil {
			return err
		}
		n, err := s.repo.WithTx(tx).Delete(id)
		if err != nil {
			return err
		}
		removed = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
