// Package repository contains data access logic separated from HTTP
// handlers.  Sentinel errors defined here let higher layers distinguish
// failure scenarios: handlers translate ErrConflict into HTTP 409 and the
// not-found values into 404 without inspecting driver errors themselves.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id does not resolve.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not resolve.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show id does not resolve.
var ErrShowNotFound = errors.New("show not found")

// ErrConflict is returned when a delete cannot proceed because dependent
// records exist, such as removing a venue that still has shows booked.
var ErrConflict = errors.New("conflict")

// ErrForeignKey is returned when an insert references a row that does not
// exist, e.g. a show pointing at a missing artist or venue.
var ErrForeignKey = errors.New("foreign key violation")
