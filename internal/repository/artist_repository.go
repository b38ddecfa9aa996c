// This file defines repository methods for artists.  The shape mirrors the
// venue repository minus the address column and the delete path, which the
// product only offers for venues.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = "id, name, city, state, phone, image_link, facebook_link, genres, created_at, updated_at"

func scanArtist(row interface{ Scan(...any) error }) (*model.Artist, error) {
	var a model.Artist
	var genres string
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &genres, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Genres = decodeGenres(genres)
	return &a, nil
}

// Create inserts a new artist and populates the generated ID and the
// timestamp fields on success.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO artists (name, city, state, phone, image_link, facebook_link, genres)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, genres)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	const sel = `SELECT created_at, updated_at FROM artists WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound if no
// row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	return r.queryArtists(ctx, q)
}

// SearchByName returns artists whose name contains the term, matched
// case-insensitively.  An empty term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id`
	return r.queryArtists(ctx, q, "%"+strings.ToLower(term)+"%")
}

func (r *ArtistRepo) queryArtists(ctx context.Context, q string, args ...any) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the editable fields of an artist.  It returns
// ErrArtistNotFound when the id does not resolve.  An update that leaves
// every field unchanged is not an error.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?,
	               image_link = ?, facebook_link = ?, genres = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, genres, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}
	return nil
}
