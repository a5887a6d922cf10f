package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrJobNotFound is returned when a job id matches no row.
	ErrJobNotFound = errors.New("job not found")
	// ErrClientNotFound is returned when a client id matches no row.
	ErrClientNotFound = errors.New("client not found")
	// ErrTradespersonNotFound is returned when a tradesperson id matches no row.
	ErrTradespersonNotFound = errors.New("tradesperson not found")
)
