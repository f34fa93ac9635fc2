package http

import (
	"github.com/gin-gonic/gin"
)

// processGetCalendarsReq binds and validates the list batch body.
func (h *handler) processGetCalendarsReq(c *gin.Context) (getCalendarsReq, error) {
	var req getCalendarsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEventReq binds and validates the create batch body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDeleteEventReq binds and validates the delete body.
func (h *handler) processDeleteEventReq(c *gin.Context) (deleteEventReq, error) {
	var req deleteEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errDeleteFieldsRequired
	}
	return req, req.validate()
}
