// This file defines repository methods for venues: CRUD plus the name
// search used by the public search endpoint.  All queries go through the
// provided *sql.DB and take the request context so they are cancelled
// together with the request.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = "id, name, city, state, address, phone, image_link, facebook_link, genres, created_at, updated_at"

func scanVenue(row interface{ Scan(...any) error }) (*model.Venue, error) {
	var v model.Venue
	var genres string
	if err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &genres, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Genres = decodeGenres(genres)
	return &v, nil
}

// Create inserts a new venue.  On success the venue's ID is populated with
// the auto-generated value and a follow-up SELECT fills the timestamp
// fields so callers receive a fully populated record.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, genres)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, genres)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM venues WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row matches.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by city then id.  The ordering makes
// the "first venue of a city" deterministic for the grouped listing.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY city, id`
	return r.queryVenues(ctx, q)
}

// SearchByName returns venues whose name contains the term, matched
// case-insensitively.  An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.queryVenues(ctx, q, "%"+strings.ToLower(term)+"%")
}

func (r *VenueRepo) queryVenues(ctx context.Context, q string, args ...any) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the editable fields of a venue.  It returns
// ErrVenueNotFound when the id does not resolve.  An update that leaves
// every field unchanged is not an error.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?,
	               image_link = ?, facebook_link = ?, genres = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, genres, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// Zero rows affected is either a missing row or an identical write.
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil
}

// Delete removes a venue by id inside a transaction.  It returns
// ErrVenueNotFound when the id does not resolve and ErrConflict when the
// venue still has shows booked; shows are never cascaded implicitly.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	if err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	var showCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&showCount); err != nil {
		return err
	}
	if showCount > 0 {
		err = ErrConflict
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
