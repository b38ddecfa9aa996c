package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
	"github.com/AbdelmonemElsawy/fyyur/internal/clock"
	"github.com/AbdelmonemElsawy/fyyur/internal/model"
	"github.com/AbdelmonemElsawy/fyyur/internal/repository"
)

// stubVenueRepo serves canned venues and canned failures.
type stubVenueRepo struct {
	venue     *model.Venue
	createErr error
	deleteErr error
}

func (s *stubVenueRepo) Create(_ context.Context, v *model.Venue) error {
	if s.createErr != nil {
		return s.createErr
	}
	v.ID = 1
	return nil
}

func (s *stubVenueRepo) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	if s.venue != nil && s.venue.ID == id {
		return s.venue, nil
	}
	return nil, repository.ErrVenueNotFound
}

func (s *stubVenueRepo) ListAll(_ context.Context) ([]*model.Venue, error) {
	if s.venue == nil {
		return nil, nil
	}
	return []*model.Venue{s.venue}, nil
}

func (s *stubVenueRepo) SearchByName(_ context.Context, _ string) ([]*model.Venue, error) {
	return nil, nil
}

func (s *stubVenueRepo) Update(_ context.Context, v *model.Venue) error {
	if s.venue == nil || s.venue.ID != v.ID {
		return repository.ErrVenueNotFound
	}
	return nil
}

func (s *stubVenueRepo) Delete(_ context.Context, id uint64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if s.venue == nil || s.venue.ID != id {
		return repository.ErrVenueNotFound
	}
	return nil
}

type stubArtistRepo struct {
	artist *model.Artist
}

func (s *stubArtistRepo) Create(_ context.Context, a *model.Artist) error {
	a.ID = 1
	return nil
}

func (s *stubArtistRepo) GetByID(_ context.Context, id uint64) (*model.Artist, error) {
	if s.artist != nil && s.artist.ID == id {
		return s.artist, nil
	}
	return nil, repository.ErrArtistNotFound
}

func (s *stubArtistRepo) ListAll(_ context.Context) ([]*model.Artist, error) {
	if s.artist == nil {
		return nil, nil
	}
	return []*model.Artist{s.artist}, nil
}

func (s *stubArtistRepo) SearchByName(_ context.Context, _ string) ([]*model.Artist, error) {
	return nil, nil
}

func (s *stubArtistRepo) Update(_ context.Context, a *model.Artist) error {
	if s.artist == nil || s.artist.ID != a.ID {
		return repository.ErrArtistNotFound
	}
	return nil
}

type stubShowRepo struct {
	createErr error
	created   []*model.Show
}

func (s *stubShowRepo) Create(_ context.Context, sh *model.Show) error {
	if s.createErr != nil {
		return s.createErr
	}
	sh.ID = uint64(len(s.created) + 1)
	s.created = append(s.created, sh)
	return nil
}

func (s *stubShowRepo) ListByVenue(_ context.Context, _ uint64) ([]repository.VenueShow, error) {
	return nil, nil
}

func (s *stubShowRepo) ListByArtist(_ context.Context, _ uint64) ([]repository.ArtistShow, error) {
	return nil, nil
}

func (s *stubShowRepo) ListAll(_ context.Context) ([]repository.ShowListing, error) {
	return nil, nil
}

func (s *stubShowRepo) UpcomingVenueCounts(_ context.Context, _ time.Time) (map[uint64]int64, error) {
	return map[uint64]int64{}, nil
}

func (s *stubShowRepo) UpcomingArtistCounts(_ context.Context, _ time.Time) (map[uint64]int64, error) {
	return map[uint64]int64{}, nil
}

func newStubService(venues *stubVenueRepo, artists *stubArtistRepo, shows *stubShowRepo) *booking.Service {
	if venues == nil {
		venues = &stubVenueRepo{}
	}
	if artists == nil {
		artists = &stubArtistRepo{}
	}
	if shows == nil {
		shows = &stubShowRepo{}
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return booking.NewService(venues, artists, shows, clock.NewFixed(now))
}

// doJSON runs a handler against a JSON request and returns the recorder.
func doJSON(t *testing.T, method, target, body string, h echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
