package handlers

import (
	"errors"
	"net/http"

	"sqlgenie/config"
	"sqlgenie/db"
	"sqlgenie/logger"
	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/session"
	"sqlgenie/validation"

	"github.com/gin-gonic/gin"
)

// @title           SQL Genie API
// @version         1.0
// @description     Demo service that turns natural-language questions into SQL and returns mocked results.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

// SessionHeader selects the session a request belongs to.
const SessionHeader = "X-Session-ID"

type Handlers struct {
	sessions       *session.Manager
	archive        *db.DB
	resultsStorage *service.ResultsStorage
	maxQueryLength int
	defaultRows    int
	pageSize       int
}

// New wires the handlers. archive may be nil when history archiving is off.
func New(sessions *session.Manager, archive *db.DB, resultsStorage *service.ResultsStorage, cfg config.Config) *Handlers {
	return &Handlers{
		sessions:       sessions,
		archive:        archive,
		resultsStorage: resultsStorage,
		maxQueryLength: cfg.MaxQueryLength,
		defaultRows:    cfg.DefaultEstimatedRows,
		pageSize:       cfg.DefaultPageSize,
	}
}

func (h *Handlers) session(c *gin.Context) *session.Session {
	return h.sessions.Get(c.GetHeader(SessionHeader))
}

func (h *Handlers) queryResponse(state models.ProcessingState) models.QueryResponse {
	return models.QueryResponse{
		SQL:      state.GeneratedSQL,
		Result:   state.Result,
		Analysis: service.Analyze(state.GeneratedSQL, h.defaultRows),
		State:    state,
	}
}

func errorStatus(err error) int {
	var vErr *validation.ValidationError

	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrBusy), errors.Is(err, session.ErrEditChanged):
		return http.StatusConflict
	case errors.Is(err, session.ErrNothingToRetry):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrEntryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondCycle writes the outcome of a processing cycle.
func (h *Handlers) respondCycle(c *gin.Context, state models.ProcessingState, err error) {
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Query cycle failed", logger.Ctx{"path": c.FullPath(), "err": err})
		}
		c.JSON(status, gin.H{"error": err.Error(), "state": state})
		return
	}

	c.JSON(http.StatusOK, h.queryResponse(state))
}
