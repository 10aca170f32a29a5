package core

import "errors"

var (
	// ErrInvalidInput is returned for a process record that cannot be registered,
	// such as a non-positive burst time.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration is returned for a simulator that cannot run,
	// such as a non-positive time quantum.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
