package handlers

import (
	"net/http"

	"sqlgenie/ai"
	"sqlgenie/config"
	"sqlgenie/models"

	"github.com/gin-gonic/gin"
)

// SchemaHandler returns the sample database schema
// @Summary      Sample schema
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string][]models.DatabaseTable
// @Router       /api/schema [get]
func (h *Handlers) SchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": config.SampleSchema})
}

// SamplesHandler returns example questions
// @Summary      Sample questions
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  models.SamplesResponse
// @Router       /api/samples [get]
func (h *Handlers) SamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SamplesResponse{
		Samples:     config.SampleQueries,
		Suggestions: config.QuerySuggestions,
	})
}

// TemplatesHandler returns the SQL templates in matching order
// @Summary      SQL templates
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string][]models.TemplateInfo
// @Router       /api/templates [get]
func (h *Handlers) TemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": ai.Templates()})
}
