package core

import "fmt"

var (
	// ErrSessionNotFound is returned when no session exists for the given
	// user id in the underlying store.
	ErrSessionNotFound = fmt.Errorf("session not found")
)
