// This file defines repository methods for shows, including the join
// queries behind the venue/artist detail pages and the full listing.  A
// show is create-only: the product offers no edit or delete path for it.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

// mysqlErrNoReferencedRow is the server error raised when an INSERT
// references a parent row that does not exist.
const mysqlErrNoReferencedRow = 1452

// VenueShow is one show at a venue joined with its artist's display fields.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is one show by an artist joined with its venue's display fields.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is one row of the full show listing, joined across venues
// and artists.
type ShowListing struct {
	ID              uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct.  It returns ErrForeignKey when artist_id or venue_id does not
// reference an existing row, leaving the table unchanged.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrNoReferencedRow {
			return ErrForeignKey
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	const sel = `SELECT created_at FROM shows WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, s.ID).Scan(&s.CreatedAt)
}

// ListByVenue returns all shows booked at a venue joined with the artist
// display fields, ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]VenueShow, error) {
	const q = `SELECT a.id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueShow
	for rows.Next() {
		var vs VenueShow
		if err := rows.Scan(&vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink, &vs.StartTime); err != nil {
			return nil, err
		}
		out = append(out, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns all shows played by an artist joined with the venue
// display fields, ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ArtistShow, error) {
	const q = `SELECT v.id, v.name, v.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ?
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArtistShow
	for rows.Next() {
		var as ArtistShow
		if err := rows.Scan(&as.VenueID, &as.VenueName, &as.VenueImageLink, &as.StartTime); err != nil {
			return nil, err
		}
		out = append(out, as)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns one row per show joined with both endpoints' display
// fields, ordered by start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.id, v.id, v.name, a.id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName,
			&l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpcomingVenueCounts returns, per venue id, the number of shows starting
// at or after the given instant.  Venues without upcoming shows are absent
// from the map.
func (r *ShowRepo) UpcomingVenueCounts(ctx context.Context, now time.Time) (map[uint64]int64, error) {
	const q = `SELECT venue_id, COUNT(*) FROM shows WHERE start_time >= ? GROUP BY venue_id`
	return r.queryCounts(ctx, q, now)
}

// UpcomingArtistCounts is the artist-side counterpart of
// UpcomingVenueCounts.
func (r *ShowRepo) UpcomingArtistCounts(ctx context.Context, now time.Time) (map[uint64]int64, error) {
	const q = `SELECT artist_id, COUNT(*) FROM shows WHERE start_time >= ? GROUP BY artist_id`
	return r.queryCounts(ctx, q, now)
}

func (r *ShowRepo) queryCounts(ctx context.Context, q string, now time.Time) (map[uint64]int64, error) {
	rows, err := r.db.QueryContext(ctx, q, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[uint64]int64)
	for rows.Next() {
		var id uint64
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
