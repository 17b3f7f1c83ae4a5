package entity

import "errors"

var (
	// ErrLeadNotFound distinguishes "nothing to update" from a systemic
	// failure on status transitions.
	ErrLeadNotFound = errors.New("lead not found")

	ErrUserNotFound    = errors.New("user not found")
	ErrServiceNotFound = errors.New("service not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
)
