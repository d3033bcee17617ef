package model

// ListKind names one of the three user movie lists. Each kind maps to its
// own many-to-many join table; the lists are independent of each other.
type ListKind string

const (
	ListFavorites ListKind = "favorites"
	ListWatched   ListKind = "watched"
	ListWaiting   ListKind = "waiting"
)

// Association returns the User field name GORM uses for this list.
func (k ListKind) Association() string {
	switch k {
	case ListFavorites:
		return "Favorites"
	case ListWatched:
		return "Watched"
	case ListWaiting:
		return "Waiting"
	}
	return ""
}

// JoinTable returns the membership table backing this list.
func (k ListKind) JoinTable() string {
	switch k {
	case ListFavorites:
		return "user_favorites"
	case ListWatched:
		return "user_watched"
	case ListWaiting:
		return "user_waiting"
	}
	return ""
}

func (k ListKind) Valid() bool {
	return k.Association() != ""
}
