package handlers

import (
	"net/http"

	"sqlgenie/models"
	"sqlgenie/validation"

	"github.com/gin-gonic/gin"
)

// QueryHandler turns a natural-language question into SQL and mocked results
// @Summary      Generate SQL from natural language
// @Description  Runs one processing cycle: waits the configured delay, picks a SQL template by keyword and returns mocked results with an analysis of the SQL
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest   true  "Question"
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200      {object}  models.QueryResponse  "Generated SQL and results"
// @Failure      400      {object}  map[string]string     "Invalid or empty query"
// @Failure      409      {object}  map[string]string     "A query is already being processed"
// @Failure      500      {object}  map[string]string     "Processing error"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.ValidateQueryLength(req.Query, h.maxQueryLength); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.session(c).Processor.Submit(c.Request.Context(), req.Query)
	h.respondCycle(c, state, err)
}

// RetryQueryHandler resubmits the last question
// @Summary      Retry last query
// @Description  Runs the last submitted question through a new processing cycle
// @Tags         Query
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.QueryResponse
// @Failure      400  {object}  map[string]string  "Nothing to retry"
// @Failure      409  {object}  map[string]string  "A query is already being processed"
// @Router       /api/query/retry [post]
func (h *Handlers) RetryQueryHandler(c *gin.Context) {
	state, err := h.session(c).Processor.Retry(c.Request.Context())
	h.respondCycle(c, state, err)
}

// GetQueryStateHandler returns the processing state of the session
// @Summary      Get processing state
// @Tags         Query
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.ProcessingState
// @Router       /api/query/state [get]
func (h *Handlers) GetQueryStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Processor.State())
}

// ClearQueryHandler clears the current results
// @Summary      Clear results
// @Description  Resets the processing state. History is kept.
// @Tags         Query
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.ProcessingState
// @Router       /api/query [delete]
func (h *Handlers) ClearQueryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Processor.Clear())
}
