package lib

import (
	"errors"
)

// Readiness errors
var (
	ErrNotReady     = errors.New("not ready")
	ErrCheckTimeout = errors.New("readiness check timed out")
)

// ErrResponseStarted marks failures that happened after the status line was
// sent; the response can no longer be replaced.
var ErrResponseStarted = errors.New("response already started")
