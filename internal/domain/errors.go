package domain

import "errors"

var (
	// ErrValidation signals bad caller input. Requests failing validation
	// never reach the upstream.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing card or set.
	ErrNotFound = errors.New("not found")
	// ErrUpstream signals a transport or data-source failure.
	ErrUpstream = errors.New("upstream error")
)
