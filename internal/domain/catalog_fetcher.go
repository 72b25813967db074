package domain

import (
	"context"
	"encoding/json"
	"strconv"
)

// ApprovedEventsFetcher fetches the approved events from the remote catalog
// resource (or a test double).
type ApprovedEventsFetcher interface {
	Fetch(ctx context.Context) ([]RemoteEvent, error)
}

// RemoteEvent is one loosely-typed record from the approved-events resource.
// Numeric fields are pointers so that an explicit 0 from the source can be
// distinguished from an absent or null value during normalization.
type RemoteEvent struct {
	ID                   FlexibleID `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Date                 string     `json:"date"`
	Location             string     `json:"location"`
	ImageURL             string     `json:"imageUrl"`
	Category             string     `json:"category"`
	Status               string     `json:"status"`
	Price                *float64   `json:"price"`
	Currency             string     `json:"currency"`
	Participants         *int       `json:"participants"`
	MaxParticipants      *int       `json:"maxParticipants"`
	Distance             string     `json:"distance"`
	Organizer            string     `json:"organizer"`
	RegistrationDeadline string     `json:"registrationDeadline"`
}

// FlexibleID is an event id that the source may encode as a JSON string or a
// JSON number. It always decodes to its string form.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Integral ids must not pick up an exponent form.
	if i, err := n.Int64(); err == nil {
		*f = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string { return string(f) }
