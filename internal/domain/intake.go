package domain

import "context"

// RegistrationIntake is the submission flow: persist a registration and send
// a best-effort confirmation. The presentation layer's registration form is
// its only caller.
type RegistrationIntake interface {
	Submit(ctx context.Context, reg *Registration) (*Registration, error)
}
