package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
)

type RatingRepo interface {
	WithTx(tx *gorm.DB) RatingRepo
	Create(rating *model.Rating) error
	GetByID(id string) (*model.Rating, error)
	GetByUserAndMovie(userID, movieID string) (*model.Rating, error)
	List(skip, limit int) ([]model.Rating, error)
	Save(rating *model.Rating) error
	Delete(id string) (int64, error)
	DeleteByMovieID(movieID string) error
	DeleteByUserID(userID string) error
}

type ratingRepoGorm struct {
	db *gorm.DB
}

var _ RatingRepo = (*ratingRepoGorm)(nil)

func NewRatingRepoGorm(db *gorm.DB) *ratingRepoGorm {
	return &ratingRepoGorm{
		db: db,
	}
}

func (r *ratingRepoGorm) WithTx(tx *gorm.DB) RatingRepo {
	return &ratingRepoGorm{
		db: tx,
	}
}

func (r *ratingRepoGorm) Create(rating *model.Rating) error {
	ctx := context.Background()
	if err := gorm.G[model.Rating](r.db).Create(ctx, rating); err != nil {
		return err
	}
	return nil
}

func (r *ratingRepoGorm) GetByID(id string) (*model.Rating, error) {
	ctx := context.Background()
	rating, err := gorm.G[model.Rating](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepoGorm) GetByUserAndMovie(userID, movieID string) (*model.Rating, error) {
	ctx := context.Background()
	rating, err := gorm.G[model.Rating](r.db).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepoGorm) List(skip, limit int) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := r.db.Offset(skip).Limit(limit).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepoGorm) Save(rating *model.Rating) error {
	return r.db.Save(rating).Error
}

func (r *ratingRepoGorm) Delete(id string) (int64, error) {
	res := r.db.Delete(&model.Rating{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *ratingRepoGorm) DeleteByMovieID(movieID string) error {
	return r.db.Delete(&model.Rating{}, "movie_id = ?", movieID).Error
}

func (r *ratingRepoGorm) DeleteByUserID(userID string) error {
	return r.db.Delete(&model.Rating{}, "user_id = ?", userID).Error
}
