package repository

import "errors"

// ErrNotFound is returned when a lookup or update targets an id that is not
// in the collection. Deletes are idempotent and never return it.
var ErrNotFound = errors.New("document not found")
