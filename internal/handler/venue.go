package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
)

// VenueHandler serves the venue routes.  Invalidate, when set, drops the
// response cache after a successful mutation.
type VenueHandler struct {
	Svc        *booking.Service
	Invalidate func()
}

func (h *VenueHandler) invalidate() {
	if h.Invalidate != nil {
		h.Invalidate()
	}
}

// List handles GET /venues and returns all venues grouped by city.
func (h *VenueHandler) List(c echo.Context) error {
	groups, err := h.Svc.VenuesByCity(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, groups)
}

// Search handles POST /venues/search.  The term arrives in the
// `search_term` form field; an empty term matches every venue.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	result, err := h.Svc.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Detail handles GET /venues/:id and returns the venue with its shows
// partitioned into past and upcoming.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id", "code": "invalid_id"})
	}
	detail, err := h.Svc.VenueDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Create handles POST /venues/create.
func (h *VenueHandler) Create(c echo.Context) error {
	var in booking.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "code": "invalid_input"})
	}
	v, err := h.Svc.CreateVenue(c.Request().Context(), in)
	if err != nil {
		if _, _, _, known := classify(err); known {
			return respondError(c, err)
		}
		// Persistence failure: report the submitted name, not a generic notice.
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name),
			"code":  "database_error",
		})
	}
	h.invalidate()
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      v.ID,
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
	})
}

// Update handles POST /venues/:id/edit with a full replace of the
// editable fields.
func (h *VenueHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id", "code": "invalid_id"})
	}
	var in booking.VenueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body", "code": "invalid_input"})
	}
	v, err := h.Svc.UpdateVenue(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	h.invalidate()
	return c.JSON(http.StatusOK, echo.Map{"id": v.ID, "message": "venue updated"})
}

// Delete handles DELETE /venues/:id and reports the outcome explicitly
// rather than discarding it.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id", "code": "invalid_id"})
	}
	if err := h.Svc.DeleteVenue(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	h.invalidate()
	return c.JSON(http.StatusOK, echo.Map{"deleted": true, "id": id})
}
