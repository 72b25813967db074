package domain

import "context"

// Well-known slot names.
const (
	RegistrationsSlot = "athleteRegistrations"
	UsersSlot         = "users"
)

// SlotStore is durable named-slot storage: each slot holds one opaque string
// value. Absence of a slot is reported through ok, not through an error.
type SlotStore interface {
	Get(ctx context.Context, name string) (value string, ok bool, err error)
	Set(ctx context.Context, name, value string) error
	Remove(ctx context.Context, name string) error
}
