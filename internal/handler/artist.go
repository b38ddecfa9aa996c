package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
)

// ArtistHandler serves the artist routes.
type ArtistHandler struct {
	Svc        *booking.Service
	Invalidate func()
}

func (h *ArtistHandler) invalidate() {
	if h.Invalidate != nil {
		h.Invalidate()
	}
}

// artistItem is one artist in the flat listing.
type artistItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// List handles GET /artists and returns every artist.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Svc.ListArtists(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]artistItem, 0, len(artists))
	for _, a := range artists {
		out = append(out, artistItem{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Search handles POST /artists/search with the `search_term` form field.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	result, err := h.Svc.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Detail handles GET /artists/:id and returns the artist with its shows
// partitioned into past and upcoming.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id", "code": "invalid_id"})
	}
	detail, err := h.Svc.ArtistDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	var in booking.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "code": "invalid_input"})
	}
	a, err := h.Svc.CreateArtist(c.Request().Context(), in)
	if err != nil {
		if _, _, _, known := classify(err); known {
			return respondError(c, err)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name),
			"code":  "database_error",
		})
	}
	h.invalidate()
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      a.ID,
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
	})
}

// Update handles POST /artists/:id/edit with a full replace of the
// editable fields.
func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id", "code": "invalid_id"})
	}
	var in booking.ArtistInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "code": "invalid_input"})
	}
	a, err := h.Svc.UpdateArtist(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	h.invalidate()
	return c.JSON(http.StatusOK, echo.Map{"id": a.ID, "message": "artist updated"})
}
