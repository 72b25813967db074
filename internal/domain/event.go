package domain

import "context"

// EventStatusCompleted marks an event whose race day has passed. Any other
// status value counts as not yet completed when partitioning.
const EventStatusCompleted = "completed"

// Event is a describable activity open for registration, sourced from the
// fixed local catalog or from the remote approved-events resource.
type Event struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Date                 string  `json:"date"`
	Location             string  `json:"location"`
	ImageURL             string  `json:"imageUrl"`
	Category             string  `json:"category"`
	Status               string  `json:"status"`
	Price                float64 `json:"price"`
	Currency             string  `json:"currency"`
	Participants         int     `json:"participants"`
	MaxParticipants      int     `json:"maxParticipants"`
	Distance             string  `json:"distance"`
	Organizer            string  `json:"organizer"`
	RegistrationDeadline string  `json:"registrationDeadline"`
}

// CatalogService produces the merged, de-duplicated event catalog.
type CatalogService interface {
	// Merged returns the local catalog followed by normalized remote events,
	// de-duplicated by id with local entries taking precedence. The remote
	// source is a soft dependency: on any fetch failure the catalog is the
	// local set alone. The result is recomputed on every call.
	Merged(ctx context.Context) []Event
}

// ReconciledEvents is a user's registered events partitioned by completion.
type ReconciledEvents struct {
	// Upcoming holds at most the first three not-completed matches in
	// catalog order; dashboards never show more than three next events.
	Upcoming []Event `json:"upcoming"`
	// Completed holds every match with completed status.
	Completed []Event `json:"completed"`
}

// Achievement is a badge derived from a user's registration history.
type Achievement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Date  string `json:"date"`
}

// AthleteDashboard is the view-model consumed by the presentation layer for
// the athlete dashboard. All state the dashboard shows is carried here
// explicitly rather than through shared globals.
type AthleteDashboard struct {
	Username        string        `json:"username"`
	FullName        string        `json:"fullName"`
	RegisteredCount int           `json:"registeredCount"`
	CompletedCount  int           `json:"completedCount"`
	Upcoming        []Event       `json:"upcoming"`
	Completed       []Event       `json:"completed"`
	Achievements    []Achievement `json:"achievements"`
}

// ReconciliationService matches a user's registrations against the merged
// catalog.
type ReconciliationService interface {
	Reconcile(ctx context.Context, username string) (*ReconciledEvents, error)
	AthleteDashboard(ctx context.Context, username string) (*AthleteDashboard, error)
}
