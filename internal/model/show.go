package model

import "time"

// Show links one artist to one venue at a given start time.  It has no
// identity beyond the pair and the time; both foreign keys are required.
// This struct corresponds to a row in the `shows` table.
type Show struct {
	ID        uint64    // shows.id
	ArtistID  uint64    // shows.artist_id
	VenueID   uint64    // shows.venue_id
	StartTime time.Time // shows.start_time (DATETIME, UTC)
	CreatedAt time.Time // shows.created_at
}
