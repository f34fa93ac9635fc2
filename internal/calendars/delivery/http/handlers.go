package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "multi-calendar-sync/pkg/errors"
)

// GetCalendars godoc
// @Summary     Fetch upcoming events for a batch of users
// @Description Fetches up to 10 upcoming primary-calendar events per supplied token set, input order preserved.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       body body getCalendarsReq true "Batch of user token sets"
// @Success     200 {object} getCalendarsResp
// @Failure     400 {object} map[string]string "Bad Request"
// @Failure     500 {object} map[string]string "Internal Server Error"
// @Router      /get_calendars [POST]
func (h *handler) GetCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetCalendarsReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.ListBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBatch: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newGetCalendarsResp(output))
}

// CreateEvent godoc
// @Summary     Create one event across a batch of users
// @Description Inserts the identical event into every supplied user's primary calendar. Missing fields fall back to documented defaults.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event fields plus batch of user token sets"
// @Success     200 {object} createEventResp
// @Failure     400 {object} map[string]string "Bad Request"
// @Failure     500 {object} map[string]string "Internal Server Error"
// @Router      /create_event [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.CreateBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBatch: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newCreateEventResp(output))
}

// DeleteEvent godoc
// @Summary     Delete one event from one user's calendar
// @Description Removes an event by id from the user's primary calendar. Both userToken and eventId are mandatory.
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       body body deleteEventReq true "User token set plus event id"
// @Success     200 {object} map[string]string
// @Failure     400 {object} map[string]string "Bad Request"
// @Failure     500 {object} map[string]string "Internal Server Error"
// @Router      /delete_event [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteEventReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.DeleteEvent(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		h.respondError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// respondError writes a mapped error in the contract's error shape.
func (h *handler) respondError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, gin.H{"error": httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
