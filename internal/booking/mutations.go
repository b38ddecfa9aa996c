package booking

import (
	"context"
	"strings"
	"time"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

// VenueInput carries the editable fields of a venue submission.
type VenueInput struct {
	Name         string   `json:"name" form:"name"`
	City         string   `json:"city" form:"city"`
	State        string   `json:"state" form:"state"`
	Address      string   `json:"address" form:"address"`
	Phone        string   `json:"phone" form:"phone"`
	ImageLink    string   `json:"image_link" form:"image_link"`
	FacebookLink string   `json:"facebook_link" form:"facebook_link"`
	Genres       []string `json:"genres" form:"genres"`
}

// ArtistInput carries the editable fields of an artist submission.
type ArtistInput struct {
	Name         string   `json:"name" form:"name"`
	City         string   `json:"city" form:"city"`
	State        string   `json:"state" form:"state"`
	Phone        string   `json:"phone" form:"phone"`
	ImageLink    string   `json:"image_link" form:"image_link"`
	FacebookLink string   `json:"facebook_link" form:"facebook_link"`
	Genres       []string `json:"genres" form:"genres"`
}

// ShowInput carries a new show submission.  StartTime must be in
// StartTimeLayout form.
type ShowInput struct {
	ArtistID  uint64 `json:"artist_id" form:"artist_id"`
	VenueID   uint64 `json:"venue_id" form:"venue_id"`
	StartTime string `json:"start_time" form:"start_time"`
}

func (in VenueInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return ErrNameRequired
	case strings.TrimSpace(in.City) == "":
		return ErrCityRequired
	case strings.TrimSpace(in.State) == "":
		return ErrStateRequired
	}
	return nil
}

func (in ArtistInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return ErrNameRequired
	case strings.TrimSpace(in.City) == "":
		return ErrCityRequired
	case strings.TrimSpace(in.State) == "":
		return ErrStateRequired
	}
	return nil
}

// CreateVenue validates the input and inserts a new venue.  The returned
// record carries the generated id and timestamps.
func (s *Service) CreateVenue(ctx context.Context, in VenueInput) (*model.Venue, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	v := &model.Venue{
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Address:      in.Address,
		Phone:        in.Phone,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
		Genres:       in.Genres,
	}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVenue replaces the editable fields of an existing venue.  It
// returns repository.ErrVenueNotFound when the id does not resolve.
func (s *Service) UpdateVenue(ctx context.Context, id uint64, in VenueInput) (*model.Venue, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	v := &model.Venue{
		ID:           id,
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Address:      in.Address,
		Phone:        in.Phone,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
		Genres:       in.Genres,
	}
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return s.venues.GetByID(ctx, id)
}

// DeleteVenue removes a venue by id and reports the outcome explicitly:
// repository.ErrVenueNotFound for an unknown id, repository.ErrConflict
// when the venue still has shows booked.
func (s *Service) DeleteVenue(ctx context.Context, id uint64) error {
	return s.venues.Delete(ctx, id)
}

// CreateArtist validates the input and inserts a new artist.
func (s *Service) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	a := &model.Artist{
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Phone:        in.Phone,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
		Genres:       in.Genres,
	}
	if err := s.artists.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateArtist replaces the editable fields of an existing artist.  It
// returns repository.ErrArtistNotFound when the id does not resolve.
func (s *Service) UpdateArtist(ctx context.Context, id uint64, in ArtistInput) (*model.Artist, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	a := &model.Artist{
		ID:           id,
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Phone:        in.Phone,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
		Genres:       in.Genres,
	}
	if err := s.artists.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.artists.GetByID(ctx, id)
}

// CreateShow parses the start time and inserts a new show.  It returns
// ErrInvalidStartTime for an unparsable timestamp and
// repository.ErrForeignKey when either endpoint id does not exist; in both
// cases the shows table is left unchanged.
func (s *Service) CreateShow(ctx context.Context, in ShowInput) (*model.Show, error) {
	if in.ArtistID == 0 {
		return nil, ErrArtistIDRequired
	}
	if in.VenueID == 0 {
		return nil, ErrVenueIDRequired
	}
	start, err := time.Parse(StartTimeLayout, strings.TrimSpace(in.StartTime))
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	show := &model.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: start,
	}
	if err := s.shows.Create(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

// Venue fetches a single venue record, used by handlers that need the base
// fields without the show partitions.
func (s *Service) Venue(ctx context.Context, id uint64) (*model.Venue, error) {
	return s.venues.GetByID(ctx, id)
}

// Artist fetches a single artist record.
func (s *Service) Artist(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.artists.GetByID(ctx, id)
}
