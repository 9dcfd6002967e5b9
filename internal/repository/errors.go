package repository

import "errors"

// ErrNotFound is returned when no document matches the given identifier.
// Handlers translate it to a 404 envelope, distinct from storage failures.
var ErrNotFound = errors.New("document not found")
