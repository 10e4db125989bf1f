package domain

import "errors"

// ErrNotFound is returned by repositories when an owner-scoped query matches
// zero rows. Callers must not distinguish "does not exist" from "not yours".
var ErrNotFound = errors.New("record not found")
