package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"athleticsplatform/internal/domain"
)

type registrationStore struct {
	slots          domain.SlotStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRegistrationStore returns a RegistrationStore that keeps the whole
// collection as one JSON array in the athleteRegistrations slot.
func NewRegistrationStore(slots domain.SlotStore, logger *slog.Logger, timeout time.Duration) domain.RegistrationStore {
	return &registrationStore{
		slots:          slots,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// load reads the stored collection. An absent slot is an empty collection;
// corrupt JSON is also treated as empty so the store stays available.
func (s *registrationStore) load(ctx context.Context) ([]domain.Registration, error) {
	raw, ok, err := s.slots.Get(ctx, domain.RegistrationsSlot)
	if err != nil {
		return nil, fmt.Errorf("read registrations slot: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Registration{}, nil
	}
	var regs []domain.Registration
	if err := json.Unmarshal([]byte(raw), &regs); err != nil {
		s.logger.Warn("registrations slot holds corrupt JSON, treating as empty", "error", err)
		return []domain.Registration{}, nil
	}
	return regs, nil
}

func (s *registrationStore) persist(ctx context.Context, regs []domain.Registration) error {
	data, err := json.Marshal(regs)
	if err != nil {
		return fmt.Errorf("encode registrations: %w", err)
	}
	if err := s.slots.Set(ctx, domain.RegistrationsSlot, string(data)); err != nil {
		return fmt.Errorf("write registrations slot: %w", err)
	}
	return nil
}

func (s *registrationStore) Save(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if reg.ID == 0 {
		// Ids derive from creation time. Consecutive saves can land in the
		// same millisecond, so bump past the current maximum to keep ids
		// pairwise distinct.
		candidate := time.Now().UnixMilli()
		for _, existing := range regs {
			if existing.ID >= candidate {
				candidate = existing.ID + 1
			}
		}
		reg.ID = candidate
	}
	if reg.RegisteredAt == "" {
		reg.RegisteredAt = time.Now().UTC().Format(time.RFC3339)
	}

	regs = append(regs, *reg)
	if err := s.persist(ctx, regs); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationStore) List(ctx context.Context) ([]domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.load(ctx)
}

func (s *registrationStore) ListByEvent(ctx context.Context, eventName string) ([]domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	// Legacy event_name spellings were already folded into EventName at
	// ingestion, so a single comparison covers both producers.
	matched := []domain.Registration{}
	for _, reg := range regs {
		if reg.EventName == eventName {
			matched = append(matched, reg)
		}
	}
	return matched, nil
}

func (s *registrationStore) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regs {
		if regs[i].ID == id {
			reg := regs[i]
			return &reg, nil
		}
	}
	return nil, nil
}

func (s *registrationStore) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	index := -1
	for i := range regs {
		if regs[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	merged, err := mergeRegistration(regs[index], updates)
	if err != nil {
		return nil, err
	}
	regs[index] = *merged
	if err := s.persist(ctx, regs); err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeRegistration shallow-merges the supplied fields over the existing
// record: supplied keys (canonical or legacy spelling) overwrite, everything
// else is preserved.
func mergeRegistration(existing domain.Registration, updates map[string]any) (*domain.Registration, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("encode registration: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, fmt.Errorf("decode registration: %w", err)
	}
	for key, value := range updates {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode update field %q: %w", key, err)
		}
		canonical := domain.CanonicalKey(key)
		delete(fields, key)
		fields[canonical] = encoded
	}
	remerged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode merged registration: %w", err)
	}
	var merged domain.Registration
	if err := json.Unmarshal(remerged, &merged); err != nil {
		return nil, fmt.Errorf("decode merged registration: %w", err)
	}
	return &merged, nil
}

func (s *registrationStore) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := regs[:0:0]
	for _, reg := range regs {
		if reg.ID != id {
			kept = append(kept, reg)
		}
	}
	if len(kept) == len(regs) {
		return false, nil
	}
	if err := s.persist(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *registrationStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.slots.Remove(ctx, domain.RegistrationsSlot); err != nil {
		return fmt.Errorf("remove registrations slot: %w", err)
	}
	return nil
}

func (s *registrationStore) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(regs), nil
}
