package domain

import (
	"context"
	"encoding/json"
)

// Registration is a persisted claim by a user on an event.
//
// Producers of registration records have historically been inconsistent about
// field naming (event_name vs eventName, first_name vs firstName). Both
// spellings are accepted when decoding and converted to the canonical
// camelCase schema below; the snake_case variants never survive ingestion.
// Fields outside the known schema are preserved opaquely in Extra.
type Registration struct {
	ID               int64  `json:"id,omitempty"`
	RegisteredAt     string `json:"registeredAt,omitempty"`
	Username         string `json:"username,omitempty"`
	EventID          string `json:"eventId,omitempty"`
	EventName        string `json:"eventName,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email,omitempty"`
	Mobile           string `json:"mobile,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Amount           string `json:"amount,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	MedicalCondition string `json:"medicalCondition,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// registrationAlias avoids recursion in the custom JSON methods.
type registrationAlias Registration

// registrationAliases maps legacy snake_case spellings to canonical keys.
var registrationAliases = map[string]string{
	"registered_at":     "registeredAt",
	"event_id":          "eventId",
	"event_name":        "eventName",
	"first_name":        "firstName",
	"last_name":         "lastName",
	"emergency_contact": "emergencyContact",
	"medical_condition": "medicalCondition",
}

// registrationKnownKeys are the canonical keys handled by the struct fields.
var registrationKnownKeys = map[string]struct{}{
	"id": {}, "registeredAt": {}, "username": {}, "eventId": {},
	"eventName": {}, "firstName": {}, "lastName": {}, "email": {},
	"mobile": {}, "gender": {}, "amount": {}, "emergencyContact": {},
	"medicalCondition": {},
}

// CanonicalKey resolves a registration field name to its canonical spelling.
func CanonicalKey(key string) string {
	if canonical, ok := registrationAliases[key]; ok {
		return canonical
	}
	return key
}

// UnmarshalJSON decodes a registration, folding legacy snake_case spellings
// into the canonical schema and keeping unknown fields in Extra.
func (r *Registration) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	normalized := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		canonical := CanonicalKey(key)
		// A canonical spelling already present wins over its legacy alias.
		if _, exists := normalized[canonical]; exists && canonical != key {
			continue
		}
		normalized[canonical] = value
	}

	known, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	var alias registrationAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	*r = Registration(alias)

	for key, value := range normalized {
		if _, ok := registrationKnownKeys[key]; ok {
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]json.RawMessage)
		}
		r.Extra[key] = value
	}
	return nil
}

// MarshalJSON encodes the canonical fields together with any opaque extras.
func (r Registration) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(registrationAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range r.Extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// RegistrationStore provides CRUD access to the registration collection held
// in a single storage slot as one JSON array.
//
// Each call is an independent read-modify-write of the whole slot. With
// concurrent writers on a shared backend (e.g. two processes against the same
// database) interleaved writes can be lost; the store targets a single
// interactive user and deliberately does not lock.
type RegistrationStore interface {
	// Save assigns id and registeredAt when absent, appends the record and
	// returns it.
	Save(ctx context.Context, reg *Registration) (*Registration, error)
	// List returns all registrations; an absent slot reads as empty.
	List(ctx context.Context) ([]Registration, error)
	// ListByEvent returns registrations whose event name equals eventName.
	ListByEvent(ctx context.Context, eventName string) ([]Registration, error)
	// GetByID returns the registration with the given id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*Registration, error)
	// Update shallow-merges the supplied fields onto the stored record and
	// returns the result, or nil when no record has the id.
	Update(ctx context.Context, id int64, updates map[string]any) (*Registration, error)
	// Delete removes the record with the given id and reports whether a
	// removal occurred.
	Delete(ctx context.Context, id int64) (bool, error)
	// Clear removes the whole stored collection.
	Clear(ctx context.Context) error
	// Count returns the number of stored registrations.
	Count(ctx context.Context) (int, error)
}
