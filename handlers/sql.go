package handlers

import (
	"net/http"

	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/validation"

	"github.com/gin-gonic/gin"
)

// AnalyzeSQLHandler returns rough metadata for a SQL statement
// @Summary      Analyze SQL
// @Description  Query type, number of FROM clauses and estimated rows (LIMIT or the configured default)
// @Tags         SQL
// @Accept       json
// @Produce      json
// @Param        request  body      models.SQLRequest   true  "SQL statement"
// @Success      200      {object}  models.SQLAnalysis
// @Failure      400      {object}  map[string]string   "Invalid request"
// @Router       /api/sql/analyze [post]
func (h *Handlers) AnalyzeSQLHandler(c *gin.Context) {
	var req models.SQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, service.Analyze(req.SQL, h.defaultRows))
}

// ValidateSQLHandler checks basic SQL syntax
// @Summary      Validate SQL
// @Description  The statement must contain SELECT, INSERT, UPDATE or DELETE and end with a semicolon
// @Tags         SQL
// @Accept       json
// @Produce      json
// @Param        request  body      models.SQLRequest   true  "SQL statement"
// @Success      200      {object}  models.ValidateSQLResponse
// @Failure      400      {object}  map[string]string   "Invalid request"
// @Router       /api/sql/validate [post]
func (h *Handlers) ValidateSQLHandler(c *gin.Context) {
	var req models.SQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.ValidateSQL(req.SQL); err != nil {
		c.JSON(http.StatusOK, models.ValidateSQLResponse{Valid: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ValidateSQLResponse{Valid: true})
}

// GetEditorHandler returns the SQL editor state
// @Summary      Get SQL editor state
// @Tags         SQL
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.EditorState
// @Router       /api/sql/edit [get]
func (h *Handlers) GetEditorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Editor.State())
}

// UpdateEditorHandler replaces the edited SQL
// @Summary      Edit SQL
// @Description  Enters edit mode with the given SQL. Generating new SQL discards the edit.
// @Tags         SQL
// @Accept       json
// @Produce      json
// @Param        request  body      models.SQLRequest   true  "Edited SQL"
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200      {object}  models.EditorState
// @Failure      400      {object}  map[string]string   "Invalid request"
// @Router       /api/sql/edit [put]
func (h *Handlers) UpdateEditorHandler(c *gin.Context) {
	var req models.SQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.session(c).Editor.Update(req.SQL))
}

// CancelEditHandler leaves edit mode
// @Summary      Cancel SQL edit
// @Tags         SQL
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.EditorState
// @Router       /api/sql/edit [delete]
func (h *Handlers) CancelEditHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Editor.Cancel())
}

// RunSQLHandler runs the edited SQL
// @Summary      Run edited SQL
// @Description  Validates the edited SQL and returns mocked results for it
// @Tags         SQL
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.QueryResponse
// @Failure      400  {object}  map[string]string  "Invalid SQL"
// @Failure      409  {object}  map[string]string  "SQL changed while running"
// @Failure      500  {object}  map[string]string  "Execution error"
// @Router       /api/sql/run [post]
func (h *Handlers) RunSQLHandler(c *gin.Context) {
	sess := h.session(c)

	result, err := sess.Editor.Run(c.Request.Context())
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.QueryResponse{
		SQL:      result.SQL,
		Result:   result,
		Analysis: service.Analyze(result.SQL, h.defaultRows),
		State:    sess.Processor.State(),
	})
}
