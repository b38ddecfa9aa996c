// Package handler exposes the HTTP handlers of the API.  Errors from the
// booking service are mapped here onto the response taxonomy: every error
// body is {"error": message, "code": kind}.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
	"github.com/AbdelmonemElsawy/fyyur/internal/repository"
)

// classify maps a service or repository error onto an HTTP status, a code
// string and a message.  ok is false for errors outside the taxonomy,
// which callers report as a generic persistence failure.
func classify(err error) (status int, code, msg string, ok bool) {
	switch {
	case errors.Is(err, repository.ErrVenueNotFound):
		return http.StatusNotFound, "venue_not_found", "venue not found", true
	case errors.Is(err, repository.ErrArtistNotFound):
		return http.StatusNotFound, "artist_not_found", "artist not found", true
	case errors.Is(err, repository.ErrShowNotFound):
		return http.StatusNotFound, "show_not_found", "show not found", true
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, "venue_has_shows", "venue still has shows booked", true
	case errors.Is(err, repository.ErrForeignKey):
		return http.StatusUnprocessableEntity, "foreign_key_violation", "artist or venue does not exist", true
	case errors.Is(err, repository.ErrGenreDelimiter):
		return http.StatusBadRequest, "genre_delimiter", "genre must not contain a comma", true
	case errors.Is(err, booking.ErrInvalidStartTime):
		return http.StatusBadRequest, "invalid_start_time", "start_time must be formatted as " + booking.StartTimeLayout, true
	case errors.Is(err, booking.ErrNameRequired),
		errors.Is(err, booking.ErrCityRequired),
		errors.Is(err, booking.ErrStateRequired),
		errors.Is(err, booking.ErrArtistIDRequired),
		errors.Is(err, booking.ErrVenueIDRequired):
		return http.StatusBadRequest, "missing_required_field", err.Error(), true
	}
	return 0, "", "", false
}

// respondError translates an error into a structured JSON error response.
func respondError(c echo.Context, err error) error {
	if status, code, msg, ok := classify(err); ok {
		return c.JSON(status, echo.Map{"error": msg, "code": code})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error", "code": "database_error"})
}
