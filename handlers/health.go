package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Service status, number of live sessions and whether the history archive is on
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":   "healthy",
		"sessions": h.sessions.Count(),
		"archive":  "disabled",
	}

	if h.archive != nil {
		status["archive"] = "enabled"
	}

	c.JSON(http.StatusOK, status)
}
