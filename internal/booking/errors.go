package booking

import "errors"

// Validation sentinels surfaced to handlers as 400 responses.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrCityRequired     = errors.New("city is required")
	ErrStateRequired    = errors.New("state is required")
	ErrArtistIDRequired = errors.New("artist_id is required")
	ErrVenueIDRequired  = errors.New("venue_id is required")
	ErrInvalidStartTime = errors.New("invalid start_time")
)
