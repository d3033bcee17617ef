package domain

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/repository"
	"github.com/movietracker/movietracker/internal/service"
)

type RatingService interface {
	// Create validates, in order: the user exists, the movie exists, and no
	// rating for this (user, movie) pair exists yet. The order is part of
	// the contract so callers see deterministic errors.
	Create(userID, movieID string, score int, comment string) (*model.Rating, error)
	Get(id string) (*model.Rating, error)
	List(skip, limit int) ([]model.Rating, error)
	// Update applies score and/or comment. The user and movie references
	// are immutable after creation.
	Update(id string, patch model.RatingPatch) (*model.Rating, error)
	Delete(id string) error
}

type ratingService struct {
	db     *gorm.DB
	repo   repository.RatingRepo
	users  repository.UserRepo
	movies repository.MovieRepo
}

var _ RatingService = (*ratingService)(nil)

func NewRatingService(db *gorm.DB, ratingRepo repository.RatingRepo, userRepo repository.UserRepo, movieRepo repository.MovieRepo) *ratingService {
	return &ratingService{
		db:     db,
		repo:   ratingRepo,
		users:  userRepo,
		movies: movieRepo,
	}
}

func validScore(score int) bool {
	return score >= model.ScoreMin && score <= model.ScoreMax
}

func (s *ratingService) Create(userID, movieID string, score int, comment string) (*model.Rating, error) {
	if !validScore(score) {
		return nil, service.ErrScoreOutOfRange
	}
	var rating *model.Rating
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.WithTx(tx).GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrUserNotFound
			}
			return err
		}
		if _, err := s.movies.WithTx(tx).GetByID(movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrMovieNotFound
			}
			return err
		}
		_, err := s.repo.WithTx(tx).GetByUserAndMovie(userID, movieID)
		if err == nil {
			return service.ErrDuplicateRating
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rating = &model.Rating{
			ID:      uuid.NewString(),
			Score:   score,
			Comment: comment,
			UserID:  userID,
			MovieID: movieID,
		}
		return s.repo.WithTx(tx).Create(rating)
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) Get(id string) (*model.Rating, error) {
	rating, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) List(skip, limit int) ([]model.Rating, error) {
	return s.repo.List(skip, limit)
}

func (s *ratingService) Update(id string, patch model.RatingPatch) (*model.Rating, error) {
	var rating *model.Rating
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		r, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrRatingNotFound
			}
			return err
		}
		if patch.Score != nil {
			if !validScore(*patch.Score) {
				return service.ErrScoreOutOfRange
			}
			r.Score = *patch.Score
		}
		if patch.Comment != nil {
			r.Comment = *patch.Comment
		}
		if err := repo.Save(r); err != nil {
			return err
		}
		rating = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) Delete(id string) error {
	n, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return service.ErrRatingNotFound
	}
	return nil
}
