package booking

import (
	"context"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

// VenueSummary is one venue in a grouped or search listing, annotated with
// its number of upcoming shows.
type VenueSummary struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int64  `json:"num_upcoming_shows"`
}

// ArtistSummary is one artist in a search listing.
type ArtistSummary struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int64  `json:"num_upcoming_shows"`
}

// CityGroup is all venues of one city.  State is taken from the first
// venue of the group under the repository's city/id ordering; the product
// assumes a city never spans two states.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResult is the payload of a venue name search.
type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// ArtistSearchResult is the payload of an artist name search.
type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistAppearance is one show on a venue detail page: the artist playing
// plus the start time in StartTimeLayout form.
type ArtistAppearance struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance is one show on an artist detail page.
type VenueAppearance struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueDetail is a venue with its shows partitioned into past and
// upcoming relative to the service clock.
type VenueDetail struct {
	ID                 uint64             `json:"id"`
	Name               string             `json:"name"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Address            string             `json:"address"`
	Phone              string             `json:"phone"`
	ImageLink          string             `json:"image_link"`
	FacebookLink       string             `json:"facebook_link"`
	Genres             []string           `json:"genres"`
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows partitioned into past and
// upcoming relative to the service clock.
type ArtistDetail struct {
	ID                 uint64            `json:"id"`
	Name               string            `json:"name"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	ImageLink          string            `json:"image_link"`
	FacebookLink       string            `json:"facebook_link"`
	Genres             []string          `json:"genres"`
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ShowRow is one row of the full show listing.
type ShowRow struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuesByCity groups every venue by city.  Each venue appears exactly
// once, under the group matching its city.  The time reference for the
// upcoming counts is read once at the start of the call.
func (s *Service) VenuesByCity(ctx context.Context) ([]CityGroup, error) {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.shows.UpcomingVenueCounts(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}

	groups := make([]CityGroup, 0)
	index := make(map[string]int)
	for _, v := range venues {
		i, ok := index[v.City]
		if !ok {
			i = len(groups)
			index[v.City] = i
			groups = append(groups, CityGroup{City: v.City, State: v.State})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:            v.ID,
			Name:          v.Name,
			UpcomingShows: counts[v.ID],
		})
	}
	return groups, nil
}

// SearchVenues returns venues whose name contains the term
// case-insensitively.  An empty term returns every venue.
func (s *Service) SearchVenues(ctx context.Context, term string) (VenueSearchResult, error) {
	venues, err := s.venues.SearchByName(ctx, term)
	if err != nil {
		return VenueSearchResult{}, err
	}
	counts, err := s.shows.UpcomingVenueCounts(ctx, s.clock.Now())
	if err != nil {
		return VenueSearchResult{}, err
	}
	data := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		data = append(data, VenueSummary{ID: v.ID, Name: v.Name, UpcomingShows: counts[v.ID]})
	}
	return VenueSearchResult{Count: len(data), Data: data}, nil
}

// SearchArtists returns artists whose name contains the term
// case-insensitively.  An empty term returns every artist.
func (s *Service) SearchArtists(ctx context.Context, term string) (ArtistSearchResult, error) {
	artists, err := s.artists.SearchByName(ctx, term)
	if err != nil {
		return ArtistSearchResult{}, err
	}
	counts, err := s.shows.UpcomingArtistCounts(ctx, s.clock.Now())
	if err != nil {
		return ArtistSearchResult{}, err
	}
	data := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		data = append(data, ArtistSummary{ID: a.ID, Name: a.Name, UpcomingShows: counts[a.ID]})
	}
	return ArtistSearchResult{Count: len(data), Data: data}, nil
}

// ListArtists returns every artist.
func (s *Service) ListArtists(ctx context.Context) ([]*model.Artist, error) {
	return s.artists.ListAll(ctx)
}

// VenueDetail fetches a venue and partitions its shows around the current
// instant.  A show starting exactly now counts as upcoming.  It returns
// repository.ErrVenueNotFound when the id does not resolve.
func (s *Service) VenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.ListByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	d := &VenueDetail{
		ID:            v.ID,
		Name:          v.Name,
		City:          v.City,
		State:         v.State,
		Address:       v.Address,
		Phone:         v.Phone,
		ImageLink:     v.ImageLink,
		FacebookLink:  v.FacebookLink,
		Genres:        v.Genres,
		PastShows:     []ArtistAppearance{},
		UpcomingShows: []ArtistAppearance{},
	}
	for _, sh := range shows {
		app := ArtistAppearance{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       sh.StartTime.Format(StartTimeLayout),
		}
		if sh.StartTime.Before(now) {
			d.PastShows = append(d.PastShows, app)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, app)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d, nil
}

// ArtistDetail is the artist-side counterpart of VenueDetail.  It returns
// repository.ErrArtistNotFound when the id does not resolve.
func (s *Service) ArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.ListByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	d := &ArtistDetail{
		ID:            a.ID,
		Name:          a.Name,
		City:          a.City,
		State:         a.State,
		Phone:         a.Phone,
		ImageLink:     a.ImageLink,
		FacebookLink:  a.FacebookLink,
		Genres:        a.Genres,
		PastShows:     []VenueAppearance{},
		UpcomingShows: []VenueAppearance{},
	}
	for _, sh := range shows {
		app := VenueAppearance{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      sh.StartTime.Format(StartTimeLayout),
		}
		if sh.StartTime.Before(now) {
			d.PastShows = append(d.PastShows, app)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, app)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d, nil
}

// AllShows returns one row per show with both endpoints' display fields.
// No time partitioning is applied.
func (s *Service) AllShows(ctx context.Context) ([]ShowRow, error) {
	listings, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShowRow, 0, len(listings))
	for _, l := range listings {
		out = append(out, ShowRow{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       l.StartTime.Format(StartTimeLayout),
		})
	}
	return out, nil
}
