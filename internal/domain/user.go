package domain

import (
	"context"
	"encoding/json"
	"errors"
)

// Sentinel errors for directory operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// Roles carried by directory profiles. The role is display metadata read by
// the presentation layer; nothing in this library verifies it.
const (
	RoleAthlete    = "athlete"
	RoleOrganizer  = "organizer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
	RoleGuest      = "guest"
)

// UserProfile is one record of the client-side user directory, keyed by
// username in the users slot.
type UserProfile struct {
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email,omitempty"`
	Role             string `json:"role,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
	PasswordHash     string `json:"passwordHash,omitempty"`
	PasswordSalt     string `json:"passwordSalt,omitempty"`
}

// profileAlias avoids recursion in UnmarshalJSON.
type profileAlias UserProfile

var profileAliases = map[string]string{
	"first_name":        "firstName",
	"last_name":         "lastName",
	"organization_name": "organizationName",
	"password_hash":     "passwordHash",
	"password_salt":     "passwordSalt",
}

// UnmarshalJSON folds legacy snake_case profile spellings into the canonical
// schema, mirroring registration ingestion.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	normalized := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		canonical := key
		if c, ok := profileAliases[key]; ok {
			canonical = c
		}
		if _, exists := normalized[canonical]; exists && canonical != key {
			continue
		}
		normalized[canonical] = value
	}
	known, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	var alias profileAlias
	if err := json.Unmarshal(known, &alias); err != nil {
		return err
	}
	*p = UserProfile(alias)
	return nil
}

// FullName returns the display name the dashboards greet the user with.
func (p UserProfile) FullName() string {
	switch {
	case p.FirstName == "" && p.LastName == "":
		return ""
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// UserDirectory manages the username-keyed profile slot.
type UserDirectory interface {
	// Lookup returns the profile for username or ErrUserNotFound.
	Lookup(ctx context.Context, username string) (*UserProfile, error)
	// Register stores a new profile with a hashed password. Returns
	// ErrDuplicateUsername when the username is taken.
	Register(ctx context.Context, username string, profile UserProfile, password string) error
	// VerifyPassword checks a sign-in attempt against the stored hash.
	// Returns ErrInvalidCredentials on mismatch.
	VerifyPassword(ctx context.Context, username, password string) error
}
