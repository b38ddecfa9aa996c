package model

import "time"

// Venue represents a place that hosts shows.  Genres is an ordered list of
// genre names at the domain level; only the storage layer encodes it into
// the delimited column form.  This struct corresponds to a row in the
// `venues` table.
type Venue struct {
	ID           uint64    // venues.id
	Name         string    // venues.name
	City         string    // venues.city
	State        string    // venues.state
	Address      string    // venues.address
	Phone        string    // venues.phone
	ImageLink    string    // venues.image_link
	FacebookLink string    // venues.facebook_link
	Genres       []string  // venues.genres (comma-joined in storage)
	CreatedAt    time.Time // venues.created_at
	UpdatedAt    time.Time // venues.updated_at
}
