package model

import "time"

// Artist represents a performer who plays shows.  It shares the genre
// encoding rules of Venue.  This struct corresponds to a row in the
// `artists` table.
type Artist struct {
	ID           uint64    // artists.id
	Name         string    // artists.name
	City         string    // artists.city
	State        string    // artists.state
	Phone        string    // artists.phone
	ImageLink    string    // artists.image_link
	FacebookLink string    // artists.facebook_link
	Genres       []string  // artists.genres (comma-joined in storage)
	CreatedAt    time.Time // artists.created_at
	UpdatedAt    time.Time // artists.updated_at
}
