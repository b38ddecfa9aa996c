package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
	"github.com/AbdelmonemElsawy/fyyur/internal/queue"
)

// ShowHandler serves the show routes.  Publish, when set, emits a
// show.listed event after a successful booking; failures there never fail
// the request.
type ShowHandler struct {
	Svc        *booking.Service
	Invalidate func()
	Publish    func(c echo.Context, ev queue.ShowListedEvent)
}

// List handles GET /shows and returns one row per show with both
// endpoints' display fields.
func (h *ShowHandler) List(c echo.Context) error {
	rows, err := h.Svc.AllShows(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create handles POST /shows/create.
func (h *ShowHandler) Create(c echo.Context) error {
	var in booking.ShowInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "code": "invalid_input"})
	}
	show, err := h.Svc.CreateShow(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	if h.Invalidate != nil {
		h.Invalidate()
	}
	if h.Publish != nil {
		ev := queue.ShowListedEvent{
			ShowID:    show.ID,
			ArtistID:  show.ArtistID,
			VenueID:   show.VenueID,
			StartTime: show.StartTime.Format(booking.StartTimeLayout),
			ListedAt:  show.CreatedAt.Format(booking.StartTimeLayout),
		}
		// Names are display-only in the event; lookup failures leave them empty.
		if a, err := h.Svc.Artist(c.Request().Context(), show.ArtistID); err == nil {
			ev.ArtistName = a.Name
		}
		if v, err := h.Svc.Venue(c.Request().Context(), show.VenueID); err == nil {
			ev.VenueName = v.Name
		}
		h.Publish(c, ev)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      show.ID,
		"message": "Show was successfully listed!",
	})
}
