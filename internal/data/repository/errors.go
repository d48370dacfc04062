package repository

import "errors"

// Sentinel error kinds surfaced by the stores. Callers match with
// errors.Is; services wrap them with operation context via %w.
var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrTicketAlreadyExists = errors.New("ticket already exists")
	ErrTicketNotFound      = errors.New("ticket not found")
)
