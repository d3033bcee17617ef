package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
	"github.com/movietracker/movietracker/internal/repository"
	"github.com/movietracker/movietracker/internal/service"
)

// UserInput carries an already-hashed credential. This service never hashes
// and never logs it.
type UserInput struct {
	Name           string
	Email          string
	HashedPassword string
	BirthDate      time.Time
}

type UserService interface {
	Create(input UserInput) (*model.User, error)
	Get(id string) (*model.User, error)
	// GetByEmail reports absence as (nil, nil); it backs the authentication
	// flow, where a missing user is an expected outcome.
	GetByEmail(email string) (*model.User, error)
	List(skip, limit int) ([]model.User, error)
	Update(id string, patch model.UserPatch) (*model.User, error)
	// Delete removes the user, every rating they authored and every list
	// membership naming them.
	Delete(id string) error
	// AddToList and RemoveFromList are idempotent membership operations.
	// Both return the user reloaded with all three lists so callers can
	// observe the post-state without a separate read.
	AddToList(kind model.ListKind, userID, movieID string) (*model.User, error)
	RemoveFromList(kind model.ListKind, userID, movieID string) (*model.User, error)
}

type userService struct {
	db     *gorm.DB
	repo   repository.UserRepo
	movies repository.MovieRepo
	lists  repository.ListRepo
	rates  repository.RatingRepo
}

var _ UserService = (*userService)(nil)

func NewUserService(db *gorm.DB, userRepo repository.UserRepo, movieRepo repository.MovieRepo, listRepo repository.ListRepo, ratingRepo repository.RatingRepo) *userService {
	return &userService{
		db:     db,
		repo:   userRepo,
		movies: movieRepo,
		lists:  listRepo,
		rates:  ratingRepo,
	}
}

func (s *userService) Create(input UserInput) (*model.User, error) {
	var user *model.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		_, err := repo.GetByEmail(input.Email)
		if err == nil {
			return service.ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user = &model.User{
			ID:             uuid.NewString(),
			Name:           input.Name,
			Email:          input.Email,
			HashedPassword: input.HashedPassword,
			BirthDate:      input.BirthDate,
		}
		return repo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(id string) (*model.User, error) {
	user, err := s.repo.GetByIDWithLists(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(email string) (*model.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(skip, limit int) ([]model.User, error) {
	return s.repo.List(skip, limit)
}

func (s *userService) Update(id string, patch model.UserPatch) (*model.User, error) {
	var user *model.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		u, err := repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrUserNotFound
			}
			return err
		}
		if patch.Email != nil && *patch.Email != u.Email {
			if _, err := repo.GetByEmail(*patch.Email); err == nil {
				return service.ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.HashedPassword != nil {
			u.HashedPassword = *patch.HashedPassword
		}
		if patch.BirthDate != nil {
			u.BirthDate = *patch.BirthDate
		}
		if err := repo.Save(u); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrUserNotFound
			}
			return err
		}
		if err := s.rates.WithTx(tx).DeleteByUserID(id); err != nil {
			return err
		}
		if err := s.lists.WithTx(tx).RemoveAllForUser(id); err != nil {
			return err
		}
		_, err := repo.Delete(id)
		return err
	})
}

func (s *userService) AddToList(kind model.ListKind, userID, movieID string) (*model.User, error) {
	if !kind.Valid() {
		return nil, service.ErrUnknownListKind
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkEndpoints(tx, userID, movieID); err != nil {
			return err
		}
		lists := s.lists.WithTx(tx)
		member, err := lists.Contains(kind, userID, movieID)
		if err != nil {
			return err
		}
		if member {
			return nil
		}
		return lists.Add(kind, userID, movieID)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByIDWithLists(userID)
}

func (s *userService) RemoveFromList(kind model.ListKind, userID, movieID string) (*model.User, error) {
	if !kind.Valid() {
		return nil, service.ErrUnknownListKind
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkEndpoints(tx, userID, movieID); err != nil {
			return err
		}
		lists := s.lists.WithTx(tx)
		member, err := lists.Contains(kind, userID, movieID)
		if err != nil {
			return err
		}
		if !member {
			return nil
		}
		return lists.Remove(kind, userID, movieID)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByIDWithLists(userID)
}

func (s *userService) checkEndpoints(tx *gorm.DB, userID, movieID string) error {
	if _, err := s.repo.WithTx(tx).GetByID(userID); err != nil {
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
	return nil
}
