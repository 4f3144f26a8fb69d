package services

import "errors"

// Service-level error kinds. Lookups never raise on absence; they return a nil
// record instead, and the handler layer translates that into a 404. The
// sentinels below are the client-visible failure kinds; anything else is an
// internal transaction failure surfaced as a generic 500.
var (
	ErrInvalidQuantity    = errors.New("order quantity must be a positive integer")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
