package model

import "time"

// Patch structs carry partial updates. A nil field was not supplied and
// leaves the stored value untouched; a non-nil field replaces it, zero
// values included. Cast replaces the whole sequence when present.

type MoviePatch struct {
	Title    *string   `json:"title"`
	Genre    *string   `json:"genre"`
	Duration *int      `json:"duration"`
	Year     *int      `json:"year"`
	Director *string   `json:"director"`
	Cast     *[]string `json:"cast"`
	Synopsis *string   `json:"synopsis"`
}

type UserPatch struct {
	Name           *string
	Email          *string
	HashedPassword *string
	BirthDate      *time.Time
}

type RatingPatch struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}
