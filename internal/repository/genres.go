package repository

import (
	"errors"
	"strings"
)

// genreDelimiter separates genre names in the stored column.  A single
// genre must not contain it, otherwise the round trip through storage
// would split one genre into two.
const genreDelimiter = ","

// ErrGenreDelimiter is returned when a genre contains the storage
// delimiter.  The domain model carries genres as a list; only this file
// knows about the delimited column form.
var ErrGenreDelimiter = errors.New("genre contains delimiter")

// encodeGenres joins a genre list into the stored column form.  Genres
// containing the delimiter are rejected rather than escaped.
func encodeGenres(genres []string) (string, error) {
	for _, g := range genres {
		if strings.Contains(g, genreDelimiter) {
			return "", ErrGenreDelimiter
		}
	}
	return strings.Join(genres, genreDelimiter), nil
}

// decodeGenres splits the stored column form back into a genre list.  An
// empty column decodes to an empty list, not a list with one empty genre.
func decodeGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, genreDelimiter)
}
