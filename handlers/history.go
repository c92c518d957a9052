package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListHistoryHandler lists the questions asked in this session
// @Summary      List query history
// @Description  Most recent first
// @Tags         History
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  map[string][]models.HistoryEntry
// @Router       /api/history [get]
func (h *Handlers) ListHistoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.session(c).Processor.History().List()})
}

// ReplayHistoryHandler runs a past question again
// @Summary      Replay history entry
// @Description  Runs the stored question through a new processing cycle, adding a new history entry
// @Tags         History
// @Produce      json
// @Param        id   path      string  true  "History entry ID"
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.QueryResponse
// @Failure      404  {object}  map[string]string  "Entry not found"
// @Failure      409  {object}  map[string]string  "A query is already being processed"
// @Router       /api/history/{id}/replay [post]
func (h *Handlers) ReplayHistoryHandler(c *gin.Context) {
	state, err := h.session(c).Processor.Replay(c.Request.Context(), c.Param("id"))
	h.respondCycle(c, state, err)
}

// ListArchivedHistoryHandler lists the archived history of the session
// @Summary      List archived history
// @Description  History entries persisted in the archive, most recent first. Only available when ARCHIVE_HISTORY is on.
// @Tags         History
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  map[string][]models.HistoryEntry
// @Failure      503  {object}  map[string]string  "Archive not enabled"
// @Failure      500  {object}  map[string]string  "Failed to read archive"
// @Router       /api/history/archive [get]
func (h *Handlers) ListArchivedHistoryHandler(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History archive is not enabled"})
		return
	}

	entries, err := h.archive.ListHistory(h.session(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read archive: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}
