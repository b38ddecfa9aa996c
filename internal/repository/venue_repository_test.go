package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelmonemElsawy/fyyur/internal/model"
)

func newMockVenueRepo(t *testing.T) (*VenueRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVenueRepo(db), mock
}

func venueRows(ts time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "city", "state", "address", "phone",
		"image_link", "facebook_link", "genres", "created_at", "updated_at",
	}).AddRow(1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
		"https://example.com/hop.jpg", "https://facebook.com/hop", "Jazz,Reggae", ts, ts)
}

func TestVenueRepoGetByID(t *testing.T) {
	repo, mock := newMockVenueRepo(t)
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(uint64(1)).
		WillReturnRows(venueRows(ts))

	v, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.ID)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(uint64(9999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoCreate(t *testing.T) {
	repo, mock := newMockVenueRepo(t)
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO venues").
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			"https://example.com/hop.jpg", "https://facebook.com/hop", "Jazz,Reggae").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT created_at, updated_at FROM venues WHERE id = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))

	v := &model.Venue{
		Name:         "The Musical Hop",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		ImageLink:    "https://example.com/hop.jpg",
		FacebookLink: "https://facebook.com/hop",
		Genres:       []string{"Jazz", "Reggae"},
	}
	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, uint64(7), v.ID)
	assert.Equal(t, ts, v.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoCreateRejectsGenreDelimiter(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	v := &model.Venue{Name: "X", City: "Y", State: "Z", Genres: []string{"Rock,Pop"}}
	err := repo.Create(context.Background(), v)
	assert.ErrorIs(t, err, ErrGenreDelimiter)
	// No SQL may run when the encoding is rejected.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoUpdateNotFound(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectExec("UPDATE venues").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? LIMIT 1")).
		WithArgs(uint64(9999)).
		WillReturnError(sql.ErrNoRows)

	v := &model.Venue{ID: 9999, Name: "X", City: "Y", State: "Z"}
	err := repo.Update(context.Background(), v)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoUpdateNoChange(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectExec("UPDATE venues").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? LIMIT 1")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	v := &model.Venue{ID: 1, Name: "X", City: "Y", State: "Z"}
	assert.NoError(t, repo.Update(context.Background(), v))
}

func TestVenueRepoDeleteConflict(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? LIMIT 1")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows WHERE venue_id = ?")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoDelete(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? LIMIT 1")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows WHERE venue_id = ?")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM venues").
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoDeleteNotFound(t *testing.T) {
	repo, mock := newMockVenueRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM venues WHERE id = ? LIMIT 1")).
		WithArgs(uint64(9999)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
