package storage

import "errors"

// ErrNotFound is returned when an entity does not exist or is not owned by the caller.
// Ownership mismatches surface as not-found so existence never leaks across owners.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned on unique-constraint violations: duplicate account
// name, duplicate category name+type, or duplicate sms_hash.
var ErrConflict = errors.New("already exists")
