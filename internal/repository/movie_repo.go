package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
)

type MovieRepo interface {
	WithTx(tx *gorm.DB) MovieRepo
	Create(movie *model.Movie) error
	GetByID(id string) (*model.Movie, error)
	List(skip, limit int) ([]model.Movie, error)
	Save(movie *model.Movie) error
	Delete(id string) (int64, error)
}

type movieRepoGorm struct {
	db *gorm.DB
}

var _ MovieRepo = (*movieRepoGorm)(nil)

func NewMovieRepoGorm(db *gorm.DB) *movieRepoGorm {
	return &movieRepoGorm{
		db: db,
	}
}

func (r *movieRepoGorm) WithTx(tx *gorm.DB) MovieRepo {
	return &movieRepoGorm{
		db: tx,
	}
}

func (r *movieRepoGorm) Create(movie *model.Movie) error {
	ctx := context.Background()
	if err := gorm.G[model.Movie](r.db).Create(ctx, movie); err != nil {
		return err
	}
	return nil
}

func (r *movieRepoGorm) GetByID(id string) (*model.Movie, error) {
	ctx := context.Background()
	movie, err := gorm.G[model.Movie](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepoGorm) List(skip, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.Offset(skip).Limit(limit).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepoGorm) Save(movie *model.Movie) error {
	return r.db.Save(movie).Error
}

func (r *movieRepoGorm) Delete(id string) (int64, error) {
	res := r.db.Delete(&model.Movie{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
