package services

import (
	"context"
	"log/slog"
	"time"

	"athleticsplatform/internal/domain"
)

// placeholderImageURL is used for remote events that come without an image.
const placeholderImageURL = "https://placehold.co/1200x400?text=Event+Image"

type catalogService struct {
	fetcher      domain.ApprovedEventsFetcher
	local        func() []domain.Event
	logger       *slog.Logger
	fetchTimeout time.Duration
}

// NewCatalogService returns a CatalogService that merges the fixed local
// catalog with the remote approved-events resource.
func NewCatalogService(fetcher domain.ApprovedEventsFetcher, logger *slog.Logger, fetchTimeout time.Duration) domain.CatalogService {
	return &catalogService{
		fetcher:      fetcher,
		local:        domain.LocalEvents,
		logger:       logger,
		fetchTimeout: fetchTimeout,
	}
}

func (s *catalogService) Merged(ctx context.Context) []domain.Event {
	events := s.local()
	for _, remote := range s.fetchRemote(ctx) {
		events = append(events, normalizeRemoteEvent(remote))
	}

	// Keep the first occurrence of each id: local entries precede remote
	// ones, so the local version wins on a shared id.
	seen := make(map[string]struct{}, len(events))
	merged := events[:0:0]
	for _, event := range events {
		if _, dup := seen[event.ID]; dup {
			continue
		}
		seen[event.ID] = struct{}{}
		merged = append(merged, event)
	}
	return merged
}

// fetchRemote returns the remote contribution. The resource is a soft
// dependency: any failure (network, timeout, non-2xx, bad payload) yields an
// empty list and the catalog carries on with the local set.
func (s *catalogService) fetchRemote(ctx context.Context) []domain.RemoteEvent {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	remote, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Debug("approved events unavailable, using local catalog only", "error", err)
		return nil
	}
	return remote
}

// normalizeRemoteEvent applies the documented per-field defaults. Status is
// forced to "upcoming" and currency to "USD" regardless of the source value.
// Price, participants and maxParticipants use nullish semantics: an explicit
// 0 from the source is kept.
func normalizeRemoteEvent(remote domain.RemoteEvent) domain.Event {
	event := domain.Event{
		ID:                   remote.ID.String(),
		Title:                fallback(remote.Title, "Untitled Event"),
		Description:          fallback(remote.Description, "No description available."),
		Date:                 remote.Date,
		Location:             fallback(remote.Location, "Location TBA"),
		ImageURL:             fallback(remote.ImageURL, placeholderImageURL),
		Category:             fallback(remote.Category, "Running"),
		Status:               "upcoming",
		Currency:             "USD",
		MaxParticipants:      200,
		Distance:             fallback(remote.Distance, "—"),
		Organizer:            fallback(remote.Organizer, "Event Organizer"),
		RegistrationDeadline: fallback(remote.RegistrationDeadline, "N/A"),
	}
	if remote.Price != nil {
		event.Price = *remote.Price
	}
	if remote.Participants != nil {
		event.Participants = *remote.Participants
	}
	if remote.MaxParticipants != nil {
		event.MaxParticipants = *remote.MaxParticipants
	}
	return event
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
