package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
)

type UserRepo interface {
	WithTx(tx *gorm.DB) UserRepo
	Create(user *model.User) error
	GetByID(id string) (*model.User, error)
	// GetByIDWithLists loads the user together with the three movie lists
	// and authored ratings, so callers can observe the full projection.
	GetByIDWithLists(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	List(skip, limit int) ([]model.User, error)
	Save(user *model.User) error
	Delete(id string) (int64, error)
}

type userRepoGorm struct {
	db *gorm.DB
}

var _ UserRepo = (*userRepoGorm)(nil)

func NewUserRepoGorm(db *gorm.DB) *userRepoGorm {
	return &userRepoGorm{
		db: db,
	}
}

func (r *userRepoGorm) WithTx(tx *gorm.DB) UserRepo {
	return &userRepoGorm{
		db: tx,
	}
}

func (r *userRepoGorm) Create(user *model.User) error {
	ctx := context.Background()
	if err := gorm.G[model.User](r.db).Create(ctx, user); err != nil {
		return err
	}
	return nil
}

func (r *userRepoGorm) GetByID(id string) (*model.User, error) {
	ctx := context.Background()
	user, err := gorm.G[model.User](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoGorm) GetByIDWithLists(id string) (*model.User, error) {
	var user model.User
	err := r.db.
		Preload("Favorites").
		Preload("Watched").
		Preload("Waiting").
		Preload("Ratings").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoGorm) GetByEmail(email string) (*model.User, error) {
	ctx := context.Background()
	user, err := gorm.G[model.User](r.db).Where("email = ?", email).First(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepoGorm) List(skip, limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepoGorm) Save(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepoGorm) Delete(id string) (int64, error) {
	res := r.db.Delete(&model.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
