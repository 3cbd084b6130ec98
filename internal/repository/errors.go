// Package repository contains data access logic separated from HTTP
// handlers. This file defines error values reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios: ErrNotFound maps to HTTP 404, ErrEmailExists to 409, and
// ErrInvalidID to 400 when a path parameter is not a valid document id.
package repository

import "errors"

// ErrNotFound is returned when a document cannot be found in its
// collection. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when signup collides with an existing
// account email. Handlers should translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidID is returned when a supplied id is not a valid ObjectID
// hex string. Handlers should translate this into an HTTP 400.
var ErrInvalidID = errors.New("invalid id")
