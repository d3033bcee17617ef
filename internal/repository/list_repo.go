package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/movietracker/movietracker/internal/model"
)

// ListRepo manages the three user<->movie membership sets. Checks are
// row-wise against the join tables and cascade removal is an explicit
// operation here, not an ORM relationship side effect.
type ListRepo interface {
	WithTx(tx *gorm.DB) ListRepo
	Contains(kind model.ListKind, userID, movieID string) (bool, error)
	Add(kind model.ListKind, userID, movieID string) error
	Remove(kind model.ListKind, userID, movieID string) error
	RemoveAllForUser(userID string) error
	RemoveAllForMovie(movieID string) error
}

type listRepoGorm struct {
	db *gorm.DB
}

var _ ListRepo = (*listRepoGorm)(nil)

func NewListRepoGorm(db *gorm.DB) *listRepoGorm {
	return &listRepoGorm{
		db: db,
	}
}

func (r *listRepoGorm) WithTx(tx *gorm.DB) ListRepo {
	return &listRepoGorm{
		db: tx,
	}
}

func (r *listRepoGorm) Contains(kind model.ListKind, userID, movieID string) (bool, error) {
	var count int64
	err := r.db.Table(kind.JoinTable()).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *listRepoGorm) Add(kind model.ListKind, userID, movieID string) error {
	user := model.User{ID: userID}
	movie := model.Movie{ID: movieID}
	return r.db.Model(&user).Association(kind.Association()).Append(&movie)
}

func (r *listRepoGorm) Remove(kind model.ListKind, userID, movieID string) error {
	user := model.User{ID: userID}
	movie := model.Movie{ID: movieID}
	return r.db.Model(&user).Association(kind.Association()).Delete(&movie)
}

func (r *listRepoGorm) RemoveAllForUser(userID string) error {
	return r.removeAll("user_id", userID)
}

func (r *listRepoGorm) RemoveAllForMovie(movieID string) error {
	return r.removeAll("movie_id", movieID)
}

func (r *listRepoGorm) removeAll(column, id string) error {
	for _, kind := range []model.ListKind{model.ListFavorites, model.ListWatched, model.ListWaiting} {
		stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", kind.JoinTable(), column)
		if err := r.db.Exec(stmt, id).Error; err != nil {
			return err
		}
	}
	return nil
}
