package model

import (
	"time"
)

type User struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	BirthDate      time.Time `gorm:"type:date;not null" json:"birth_date"`

	Favorites []Movie  `gorm:"many2many:user_favorites" json:"favorites,omitempty"`
	Watched   []Movie  `gorm:"many2many:user_watched" json:"watched,omitempty"`
	Waiting   []Movie  `gorm:"many2many:user_waiting" json:"waiting,omitempty"`
	Ratings   []Rating `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

type Movie struct {
	ID       string   `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string   `gorm:"size:200;not null" json:"title"`
	Genre    string   `gorm:"size:100;not null" json:"genre"`
	Duration int      `gorm:"not null" json:"duration"`
	Year     int      `gorm:"not null" json:"year"`
	Director string   `gorm:"size:100;not null" json:"director"`
	Cast     []string `gorm:"serializer:json" json:"cast"`
	Synopsis string   `gorm:"type:text" json:"synopsis,omitempty"`

	Ratings []Rating `gorm:"foreignKey:MovieID" json:"ratings,omitempty"`
}

// Rating holds one user's score for one movie. The write-time uniqueness
// check in the rating service is authoritative; the composite index is a
// storage-level backstop.
type Rating struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"type:text" json:"comment,omitempty"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_movie" json:"user_id"`
	MovieID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_movie" json:"movie_id"`
}

const (
	ScoreMin = 0
	ScoreMax = 10
)
