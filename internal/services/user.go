package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"athleticsplatform/internal/domain"
)

type userDirectory struct {
	slots          domain.SlotStore
	hasher         domain.PasswordHasher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewUserDirectory returns a UserDirectory over the users slot (a JSON object
// keyed by username).
func NewUserDirectory(slots domain.SlotStore, hasher domain.PasswordHasher, logger *slog.Logger, timeout time.Duration) domain.UserDirectory {
	return &userDirectory{
		slots:          slots,
		hasher:         hasher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *userDirectory) load(ctx context.Context) (map[string]domain.UserProfile, error) {
	raw, ok, err := s.slots.Get(ctx, domain.UsersSlot)
	if err != nil {
		return nil, fmt.Errorf("read users slot: %w", err)
	}
	if !ok || raw == "" {
		return map[string]domain.UserProfile{}, nil
	}
	var users map[string]domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.logger.Warn("users slot holds corrupt JSON, treating as empty", "error", err)
		return map[string]domain.UserProfile{}, nil
	}
	return users, nil
}

func (s *userDirectory) persist(ctx context.Context, users map[string]domain.UserProfile) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.slots.Set(ctx, domain.UsersSlot, string(data)); err != nil {
		return fmt.Errorf("write users slot: %w", err)
	}
	return nil
}

func (s *userDirectory) Lookup(ctx context.Context, username string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	profile, ok := users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &profile, nil
}

func (s *userDirectory) Register(ctx context.Context, username string, profile domain.UserProfile, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, taken := users[username]; taken {
		return domain.ErrDuplicateUsername
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	profile.PasswordSalt = salt
	profile.PasswordHash = hash
	if profile.Role == "" {
		profile.Role = domain.RoleAthlete
	}

	users[username] = profile
	return s.persist(ctx, users)
}

func (s *userDirectory) VerifyPassword(ctx context.Context, username, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	profile, ok := users[username]
	if !ok || profile.PasswordHash == "" {
		return domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(profile.PasswordHash, profile.PasswordSalt, password); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
