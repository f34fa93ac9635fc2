package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"multi-calendar-sync/internal/auth"
)

// Authorize godoc
// @Summary     Start the Google OAuth consent flow
// @Description Redirects to the Google consent URL for the calendar and email scopes.
// @Tags        Auth
// @Success     302
// @Router      /google [GET]
func (h *handler) Authorize(c *gin.Context) {
	c.Redirect(http.StatusFound, h.uc.ConsentURL(c.Request.Context()))
}

// Callback godoc
// @Summary     OAuth redirect endpoint
// @Description Exchanges the authorization code and returns the raw token set.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "Authorization code"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]string "Bad Request"
// @Failure     500 {object} map[string]string "Internal Server Error"
// @Router      /google/redirect [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.HandleCallback(ctx, c.Query("code"))
	if err != nil {
		if errors.Is(err, auth.ErrMissingCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": out.TokenSet})
}
