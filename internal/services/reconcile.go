package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"athleticsplatform/internal/domain"
)

// upcomingEventsCap bounds the upcoming partition: dashboards only ever show
// the next three events.
const upcomingEventsCap = 3

type reconciliationService struct {
	store          domain.RegistrationStore
	catalog        domain.CatalogService
	users          domain.UserDirectory
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewReconciliationService returns a ReconciliationService over the given
// store, catalog and directory.
func NewReconciliationService(
	store domain.RegistrationStore,
	catalog domain.CatalogService,
	users domain.UserDirectory,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ReconciliationService {
	return &reconciliationService{
		store:          store,
		catalog:        catalog,
		users:          users,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *reconciliationService) Reconcile(ctx context.Context, username string) (*domain.ReconciledEvents, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, reconciled, err := s.reconcile(ctx, username)
	return reconciled, err
}

// reconcile matches the user's registrations against the merged catalog using
// the exact-id -> exact-title -> case-insensitive-substring-title strategy.
// The substring step can over-match on short or generic titles.
func (s *reconciliationService) reconcile(ctx context.Context, username string) ([]domain.Registration, *domain.ReconciledEvents, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	userRegs := []domain.Registration{}
	for _, reg := range all {
		if reg.Username == username {
			userRegs = append(userRegs, reg)
		}
	}

	catalog := s.catalog.Merged(ctx)

	matched := matchByEventID(userRegs, catalog)
	if len(matched) == 0 && len(userRegs) > 0 {
		matched = matchByEventName(userRegs, catalog)
	}

	reconciled := &domain.ReconciledEvents{
		Upcoming:  []domain.Event{},
		Completed: []domain.Event{},
	}
	for _, event := range matched {
		if event.Status == domain.EventStatusCompleted {
			reconciled.Completed = append(reconciled.Completed, event)
		} else if len(reconciled.Upcoming) < upcomingEventsCap {
			reconciled.Upcoming = append(reconciled.Upcoming, event)
		}
	}
	return userRegs, reconciled, nil
}

// matchByEventID selects catalog events whose id appears among the
// registrations' event ids. Ids that are empty or the literal string
// "undefined" (written by forms that never resolved an event) do not count.
func matchByEventID(regs []domain.Registration, catalog []domain.Event) []domain.Event {
	ids := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		if reg.EventID == "" || reg.EventID == "undefined" {
			continue
		}
		ids[reg.EventID] = struct{}{}
	}
	var matched []domain.Event
	for _, event := range catalog {
		if _, ok := ids[event.ID]; ok {
			matched = append(matched, event)
		}
	}
	return matched
}

// matchByEventName is the fallback for registrations that only carry a
// display name: an event matches on exact title equality, or when its title
// contains one of the non-empty names case-insensitively.
func matchByEventName(regs []domain.Registration, catalog []domain.Event) []domain.Event {
	names := make([]string, 0, len(regs))
	for _, reg := range regs {
		names = append(names, reg.EventName)
	}
	var matched []domain.Event
	for _, event := range catalog {
		if slices.Contains(names, event.Title) {
			matched = append(matched, event)
			continue
		}
		title := strings.ToLower(event.Title)
		for _, name := range names {
			if name != "" && strings.Contains(title, strings.ToLower(name)) {
				matched = append(matched, event)
				break
			}
		}
	}
	return matched
}

func (s *reconciliationService) AthleteDashboard(ctx context.Context, username string) (*domain.AthleteDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	userRegs, reconciled, err := s.reconcile(ctx, username)
	if err != nil {
		return nil, err
	}

	fullName := "User"
	profile, err := s.users.Lookup(ctx, username)
	switch {
	case err == nil:
		if name := profile.FullName(); name != "" {
			fullName = name
		}
	case !errors.Is(err, domain.ErrUserNotFound):
		s.logger.Warn("user directory lookup failed", "username", username, "error", err)
	}

	return &domain.AthleteDashboard{
		Username:        username,
		FullName:        fullName,
		RegisteredCount: len(userRegs),
		CompletedCount:  len(reconciled.Completed),
		Upcoming:        reconciled.Upcoming,
		Completed:       reconciled.Completed,
		Achievements:    deriveAchievements(userRegs, reconciled.Completed),
	}, nil
}

// deriveAchievements builds badges from the registration history. Thresholds
// are 1, 5 and 10 completed events, and 3 or more registrations overall.
func deriveAchievements(regs []domain.Registration, completed []domain.Event) []domain.Achievement {
	now := time.Now().UTC().Format(time.RFC3339)
	achievements := []domain.Achievement{}
	if len(completed) >= 1 {
		achievements = append(achievements, domain.Achievement{ID: "1", Title: "First Finish", Icon: "🏅", Date: completed[0].Date})
	}
	if len(completed) >= 5 {
		achievements = append(achievements, domain.Achievement{ID: "2", Title: "5 Events Completed", Icon: "⭐", Date: now})
	}
	if len(completed) >= 10 {
		achievements = append(achievements, domain.Achievement{ID: "3", Title: "Milestone Runner", Icon: "⚡", Date: now})
	}
	if len(regs) >= 3 {
		achievements = append(achievements, domain.Achievement{ID: "4", Title: "Trail Enthusiast", Icon: "⛰️", Date: now})
	}
	return achievements
}
