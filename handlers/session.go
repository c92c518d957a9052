package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSessionHandler describes the caller's session
// @Summary      Session info
// @Description  Session ID, creation time and number of history entries. Creates the session if needed.
// @Tags         Session
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.SessionInfo
// @Router       /api/session [get]
func (h *Handlers) GetSessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Info())
}

// EndSessionHandler drops the caller's session with its state and history
// @Summary      End session
// @Description  The archive, when enabled, keeps its copy of the history
// @Tags         Session
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      204
// @Router       /api/session [delete]
func (h *Handlers) EndSessionHandler(c *gin.Context) {
	h.sessions.End(c.GetHeader(SessionHeader))
	c.Status(http.StatusNoContent)
}
