package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sqlgenie/models"
	"sqlgenie/service"

	"github.com/gin-gonic/gin"
)

// ExportResultsHandler downloads the current result as CSV
// @Summary      Export results as CSV
// @Description  Exports the manual result when SQL was edited and run, else the generated one
// @Tags         Results
// @Produce      text/csv
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {string}  string             "CSV content"
// @Failure      404  {object}  map[string]string  "No results to export"
// @Router       /api/results/export [get]
func (h *Handlers) ExportResultsHandler(c *gin.Context) {
	result := h.session(c).CurrentResult()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results to export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="query_results.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(service.ExportCSV(result)))
}

// ExportPostedResultHandler converts a result sent by the client to CSV
// @Summary      Export a posted result as CSV
// @Description  Renders the posted result in the same CSV format as GET /api/results/export
// @Tags         Results
// @Accept       json
// @Produce      text/csv
// @Param        request  body      models.QueryResult  true  "Result to export"
// @Success      200      {string}  string             "CSV content"
// @Failure      400      {object}  map[string]string  "Invalid request"
// @Router       /api/results/export [post]
func (h *Handlers) ExportPostedResultHandler(c *gin.Context) {
	var result models.QueryResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="query_results.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(service.ExportCSV(&result)))
}

// GetResultPageHandler returns one page of the current result
// @Summary      Page through results
// @Description  Rows of the current result, page_size defaults to DEFAULT_PAGE_SIZE
// @Tags         Results
// @Produce      json
// @Param        page       query     int     false  "Page number, from 1"
// @Param        page_size  query     int     false  "Rows per page"
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      200  {object}  models.ResultPage
// @Failure      400  {object}  map[string]string  "Invalid page"
// @Failure      404  {object}  map[string]string  "No results"
// @Router       /api/results [get]
func (h *Handlers) GetResultPageHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.pageSize)))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size"})
		return
	}

	result := h.session(c).CurrentResult()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results"})
		return
	}

	c.JSON(http.StatusOK, service.Paginate(result, page, pageSize))
}

// SaveResultHandler stores the current result in the results directory
// @Summary      Save results
// @Description  Saves the current result as a JSON or CSV file
// @Tags         Results
// @Accept       json
// @Produce      json
// @Param        request  body      models.SaveResultRequest  false  "Format, json by default"
// @Param        X-Session-ID  header  string  false  "Session ID"
// @Success      201      {object}  map[string]string  "Saved file name"
// @Failure      400      {object}  map[string]string  "Invalid request"
// @Failure      404      {object}  map[string]string  "No results to save"
// @Failure      500      {object}  map[string]string  "Failed to save"
// @Router       /api/results/save [post]
func (h *Handlers) SaveResultHandler(c *gin.Context) {
	// An empty body saves as JSON.
	var req models.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := h.session(c).CurrentResult()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results to save"})
		return
	}

	var filename string
	var err error
	if req.Format == "csv" {
		filename, err = h.resultsStorage.SaveResultAsCSV(result)
	} else {
		filename, err = h.resultsStorage.SaveResultAsJSON(result, result.SQL)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save result: %v", err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"filename": filename})
}

// ListResultFilesHandler lists all result files
// @Summary      List result files
// @Description  Get a list of all saved result files (JSON/CSV)
// @Tags         Results
// @Produce      json
// @Success      200  {object}  map[string][]models.ResultFileInfo  "List of result files"
// @Failure      500  {object}  map[string]string                   "Failed to list files"
// @Router       /api/results/files [get]
func (h *Handlers) ListResultFilesHandler(c *gin.Context) {
	files, err := h.resultsStorage.ListResultFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list files: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// GetResultFileHandler retrieves a specific result file
// @Summary      Get result file
// @Description  Get the complete content of a specific result file by filename
// @Tags         Results
// @Produce      json
// @Param        filename  path      string  true  "Result file name"
// @Success      200       {object}  models.ResultFile  "Result file content"
// @Failure      404       {object}  map[string]string  "File not found"
// @Router       /api/results/file/{filename} [get]
func (h *Handlers) GetResultFileHandler(c *gin.Context) {
	resultFile, err := h.resultsStorage.GetResultFile(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found: %v", err)})
		return
	}

	c.JSON(http.StatusOK, resultFile)
}
