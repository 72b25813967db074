package services

import (
	"context"
	"log/slog"

	"athleticsplatform/internal/domain"
)

type registrationIntake struct {
	store  domain.RegistrationStore
	email  domain.EmailService
	logger *slog.Logger
}

// NewRegistrationIntake returns a RegistrationIntake. email may be nil, in
// which case submissions are persisted without a confirmation message.
func NewRegistrationIntake(store domain.RegistrationStore, email domain.EmailService, logger *slog.Logger) domain.RegistrationIntake {
	return &registrationIntake{
		store:  store,
		email:  email,
		logger: logger,
	}
}

// Submit persists the registration, then sends the confirmation email when
// the record carries an address. A failed send is logged, never surfaced:
// the registration is already durable at that point.
func (s *registrationIntake) Submit(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	saved, err := s.store.Save(ctx, reg)
	if err != nil {
		return nil, err
	}

	if s.email != nil && saved.Email != "" {
		data := &domain.RegistrationConfirmationEmailData{
			Email:     saved.Email,
			FirstName: saved.FirstName,
			EventName: saved.EventName,
			Amount:    saved.Amount,
		}
		if err := s.email.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.Warn("registration confirmation email failed",
				"registrationId", saved.ID, "email", saved.Email, "error", err)
		}
	}
	return saved, nil
}
