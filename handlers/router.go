package handlers

import (
	"time"

	_ "sqlgenie/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.Use(gin.Recovery())

	// Allow every origin, echoing it back so credentials work.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With", SessionHeader},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", h.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/query", h.QueryHandler)
		api.DELETE("/query", h.ClearQueryHandler)
		api.POST("/query/retry", h.RetryQueryHandler)
		api.GET("/query/state", h.GetQueryStateHandler)

		api.GET("/history", h.ListHistoryHandler)
		api.GET("/history/archive", h.ListArchivedHistoryHandler)
		api.POST("/history/:id/replay", h.ReplayHistoryHandler)

		api.POST("/sql/analyze", h.AnalyzeSQLHandler)
		api.POST("/sql/validate", h.ValidateSQLHandler)
		api.GET("/sql/edit", h.GetEditorHandler)
		api.PUT("/sql/edit", h.UpdateEditorHandler)
		api.DELETE("/sql/edit", h.CancelEditHandler)
		api.POST("/sql/run", h.RunSQLHandler)

		api.GET("/session", h.GetSessionHandler)
		api.DELETE("/session", h.EndSessionHandler)

		api.GET("/results", h.GetResultPageHandler)
		api.GET("/results/export", h.ExportResultsHandler)
		api.POST("/results/export", h.ExportPostedResultHandler)
		api.POST("/results/save", h.SaveResultHandler)
		api.GET("/results/files", h.ListResultFilesHandler)
		api.GET("/results/file/:filename", h.GetResultFileHandler)

		api.GET("/schema", h.SchemaHandler)
		api.GET("/samples", h.SamplesHandler)
		api.GET("/templates", h.TemplatesHandler)
	}

	return r
}
