// Package booking implements the query and mutation operations of the
// venue/artist/show domain.  It sits between the HTTP handlers and the
// repositories: handlers parse requests, the service enforces domain rules
// and aggregates rows, the repositories own the SQL.  The current instant
// used to split shows into past and upcoming comes from an injected clock
// so the classification is deterministic under test.
package booking

import (
	"context"
	"time"

	"github.com/AbdelmonemElsawy/fyyur/internal/clock"
	"github.com/AbdelmonemElsawy/fyyur/internal/model"
	"github.com/AbdelmonemElsawy/fyyur/internal/repository"
)

// StartTimeLayout is the textual form of show start times accepted on
// input and produced on output.
const StartTimeLayout = "2006-01-02 15:04:05"

// VenueRepository is the persistence surface the service needs for venues.
type VenueRepository interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	ListAll(ctx context.Context) ([]*model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id uint64) error
}

// ArtistRepository is the persistence surface the service needs for
// artists.  Artists have no delete path.
type ArtistRepository interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ListAll(ctx context.Context) ([]*model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
}

// ShowRepository is the persistence surface the service needs for shows.
type ShowRepository interface {
	Create(ctx context.Context, s *model.Show) error
	ListByVenue(ctx context.Context, venueID uint64) ([]repository.VenueShow, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]repository.ArtistShow, error)
	ListAll(ctx context.Context) ([]repository.ShowListing, error)
	UpcomingVenueCounts(ctx context.Context, now time.Time) (map[uint64]int64, error)
	UpcomingArtistCounts(ctx context.Context, now time.Time) (map[uint64]int64, error)
}

// Service exposes the booking domain operations.
type Service struct {
	venues  VenueRepository
	artists ArtistRepository
	shows   ShowRepository
	clock   clock.Clock
}

// NewService wires a Service from its repositories and a clock.
func NewService(venues VenueRepository, artists ArtistRepository, shows ShowRepository, clk clock.Clock) *Service {
	return &Service{venues: venues, artists: artists, shows: shows, clock: clk}
}
