package mq

// Queue names and event payload definitions.

// EventsQueue carries after-commit domain events. Consumers (notifications,
// analytics) get enough context to act without querying the database.
const EventsQueue = "movietracker.events"

const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventMovieDeleted   = "movie.deleted"
	EventRatingCreated  = "rating.created"
)

// Envelope wraps every published event.
type Envelope struct {
	Event      string `json:"event"`
	OccurredAt string `json:"occurred_at"`
	Data       any    `json:"data"`
}

type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type UserDeletedEvent struct {
	UserID string `json:"user_id"`
}

type MovieDeletedEvent struct {
	MovieID string `json:"movie_id"`
}

type RatingCreatedEvent struct {
	RatingID string `json:"rating_id"`
	UserID   string `json:"user_id"`
	MovieID  string `json:"movie_id"`
	Score    int    `json:"score"`
}
