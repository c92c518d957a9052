package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgenie/ai"
	"sqlgenie/cache"
	"sqlgenie/config"
	"sqlgenie/db"
	"sqlgenie/models"
	"sqlgenie/service"
	"sqlgenie/session"
)

type testServer struct {
	router  *gin.Engine
	archive *db.DB
}

func newTestServer(t *testing.T, withArchive bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{MaxQueryLength: 500, DefaultEstimatedRows: 50, DefaultPageSize: 2}

	var archive *db.DB
	deps := session.Dependencies{Generator: ai.New(), Executor: service.NewSynthesizer()}
	if withArchive {
		var err error
		archive, err = db.NewInMemory()
		require.NoError(t, err)
		t.Cleanup(func() { _ = archive.Close() })
		deps.Archive = archive
	}

	manager := session.NewManager(cache.New(time.Minute), deps, session.Options{})
	storage, err := service.NewResultsStorage(t.TempDir())
	require.NoError(t, err)

	return &testServer{
		router:  NewRouter(New(manager, archive, storage, cfg)),
		archive: archive,
	}
}

func (s *testServer) do(t *testing.T, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestQueryCustomersChennai(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "Show me all customers from Chennai"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.QueryResponse](t, w)
	assert.Equal(t, "SELECT * FROM customers WHERE city = 'Chennai';", resp.SQL)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 3, resp.Result.RowCount)
	assert.Len(t, resp.Result.Data, 3)
	assert.Equal(t, []string{"id", "name", "email", "city", "created_at"}, resp.Result.Columns)
	assert.Equal(t, resp.Result.Columns, resp.Result.Data[0].Keys())
	assert.Equal(t, models.SQLAnalysis{QueryType: "SELECT", TableCount: 1, EstimatedRows: 50}, resp.Analysis)
	assert.False(t, resp.State.Loading)
}

func TestQueryRuleOrder(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/query", "", models.QueryRequest{Query: "Count total orders from last month"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SELECT COUNT(*) as total_orders FROM orders;", decode[models.QueryResponse](t, w).SQL)
}

func TestQueryValidation(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/query", "", models.QueryRequest{Query: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Query cannot be empty")

	w = s.do(t, http.MethodPost, "/api/query", "", models.QueryRequest{Query: strings.Repeat("a", 501)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "500 characters")

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryStateAndClear(t *testing.T) {
	s := newTestServer(t, false)

	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "top products"})

	state := decode[models.ProcessingState](t, s.do(t, http.MethodGet, "/api/query/state", "alice", nil))
	assert.Equal(t, "top products", state.CurrentQuery)
	assert.NotEmpty(t, state.GeneratedSQL)

	cleared := decode[models.ProcessingState](t, s.do(t, http.MethodDelete, "/api/query", "alice", nil))
	assert.Equal(t, models.ProcessingState{}, cleared)

	other := decode[models.ProcessingState](t, s.do(t, http.MethodGet, "/api/query/state", "bob", nil))
	assert.Empty(t, other.CurrentQuery)
}

func TestRetry(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/query/retry", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "sales from last month"})
	w = s.do(t, http.MethodPost, "/api/query/retry", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SELECT * FROM sales WHERE created_at >= DATE_SUB(NOW(), INTERVAL 1 MONTH);", decode[models.QueryResponse](t, w).SQL)
}

func TestHistoryAndReplay(t *testing.T) {
	s := newTestServer(t, false)

	for _, q := range []string{"customers in chennai", "top products"} {
		require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: q}).Code)
	}

	history := decode[map[string][]models.HistoryEntry](t, s.do(t, http.MethodGet, "/api/history", "alice", nil))["history"]
	require.Len(t, history, 2)
	assert.Equal(t, "top products", history[0].NaturalLanguage)
	assert.Equal(t, "customers in chennai", history[1].NaturalLanguage)

	w := s.do(t, http.MethodPost, "/api/history/"+history[1].ID+"/replay", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, history[1].GeneratedSQL, decode[models.QueryResponse](t, w).SQL)

	history = decode[map[string][]models.HistoryEntry](t, s.do(t, http.MethodGet, "/api/history", "alice", nil))["history"]
	require.Len(t, history, 3)
	assert.Equal(t, "customers in chennai", history[0].NaturalLanguage)

	w = s.do(t, http.MethodPost, "/api/history/nope/replay", "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArchivedHistory(t *testing.T) {
	s := newTestServer(t, false)
	assert.Equal(t, http.StatusServiceUnavailable, s.do(t, http.MethodGet, "/api/history/archive", "alice", nil).Code)

	s = newTestServer(t, true)
	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "count orders"})

	w := s.do(t, http.MethodGet, "/api/history/archive", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	archived := decode[map[string][]models.HistoryEntry](t, w)["history"]
	require.Len(t, archived, 1)
	assert.Equal(t, "count orders", archived[0].NaturalLanguage)
}

func TestAnalyzeAndValidateSQL(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/sql/analyze", "", models.SQLRequest{SQL: "SELECT * FROM customers LIMIT 10;"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SQLAnalysis{QueryType: "SELECT", TableCount: 1, EstimatedRows: 10}, decode[models.SQLAnalysis](t, w))

	w = s.do(t, http.MethodPost, "/api/sql/validate", "", models.SQLRequest{SQL: "SELECT 1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ValidateSQLResponse{Valid: false, Error: "SQL query must end with semicolon"}, decode[models.ValidateSQLResponse](t, w))

	w = s.do(t, http.MethodPost, "/api/sql/validate", "", models.SQLRequest{SQL: "SELECT 1;"})
	assert.True(t, decode[models.ValidateSQLResponse](t, w).Valid)
}

func TestEditAndRunSQL(t *testing.T) {
	s := newTestServer(t, false)

	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "top products"})
	editor := decode[models.EditorState](t, s.do(t, http.MethodGet, "/api/sql/edit", "alice", nil))
	assert.Contains(t, editor.EditableSQL, "FROM order_items")

	s.do(t, http.MethodPut, "/api/sql/edit", "alice", models.SQLRequest{SQL: "SELECT name FROM customers"})
	w := s.do(t, http.MethodPost, "/api/sql/run", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.do(t, http.MethodPut, "/api/sql/edit", "alice", models.SQLRequest{SQL: "SELECT name FROM customers LIMIT 2;"})
	w = s.do(t, http.MethodPost, "/api/sql/run", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.QueryResponse](t, w)
	assert.Equal(t, "SELECT name FROM customers LIMIT 2;", resp.SQL)
	assert.Equal(t, 2, resp.Analysis.EstimatedRows)

	editor = decode[models.EditorState](t, s.do(t, http.MethodDelete, "/api/sql/edit", "alice", nil))
	assert.False(t, editor.Editing)
	require.NotNil(t, editor.ManualResult)
}

func TestExportCSV(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/results/export", "alice", nil).Code)

	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "Show me all customers from Chennai"})
	w := s.do(t, http.MethodGet, "/api/results/export", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "query_results.csv")

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,name,email,city,created_at", lines[0])
	assert.Equal(t, `"1","Raj Kumar","raj@example.com","Chennai","2024-01-15"`, lines[1])
}

func TestSaveAndReadResults(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/results/save", "alice", nil).Code)

	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "count orders"})

	for _, format := range []string{"json", "csv"} {
		w := s.do(t, http.MethodPost, "/api/results/save", "alice", models.SaveResultRequest{Format: format})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		filename := decode[map[string]string](t, w)["filename"]
		assert.True(t, strings.HasSuffix(filename, "."+format))

		w = s.do(t, http.MethodGet, "/api/results/file/"+filename, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		file := decode[models.ResultFile](t, w)
		assert.Equal(t, 3, file.RowCount)
	}

	files := decode[map[string][]models.ResultFileInfo](t, s.do(t, http.MethodGet, "/api/results/files", "", nil))["files"]
	assert.Len(t, files, 2)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/results/file/missing.json", "", nil).Code)
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t, false)

	tables := decode[map[string][]models.DatabaseTable](t, s.do(t, http.MethodGet, "/api/schema", "", nil))["tables"]
	require.Len(t, tables, 4)
	assert.Equal(t, "customers", tables[0].Name)

	samples := decode[models.SamplesResponse](t, s.do(t, http.MethodGet, "/api/samples", "", nil))
	assert.Len(t, samples.Samples, 6)
	assert.Len(t, samples.Suggestions, 3)

	templates := decode[map[string][]models.TemplateInfo](t, s.do(t, http.MethodGet, "/api/templates", "", nil))["templates"]
	require.Len(t, templates, 5)
	assert.Equal(t, models.TemplateDefault, templates[4].Name)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, true)

	s.do(t, http.MethodGet, "/api/query/state", "alice", nil)
	health := decode[map[string]any](t, s.do(t, http.MethodGet, "/health", "", nil))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "enabled", health["archive"])
	assert.Equal(t, float64(1), health["sessions"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/query", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Session-ID")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSaveResultRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t, false)
	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "count orders"})

	req := httptest.NewRequest(http.MethodPost, "/api/results/save", strings.NewReader(`{"format":`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, "alice")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request", decode[map[string]string](t, w)["error"])

	// No body still saves as JSON.
	w = s.do(t, http.MethodPost, "/api/results/save", "alice", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, strings.HasSuffix(decode[map[string]string](t, w)["filename"], ".json"))
}

func TestExportPostedResult(t *testing.T) {
	s := newTestServer(t, false)

	body := map[string]any{
		"columns": []string{"product_name", "sold"},
		"data":    []map[string]any{{"sold": 0, "product_name": "Laptop"}},
	}
	w := s.do(t, http.MethodPost, "/api/results/export", "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "product_name,sold\n\"Laptop\",\"\"", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/results/export", "", map[string]any{"data": []int{1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultPages(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/results", "alice", nil).Code)
	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "Show me all customers from Chennai"})

	page := decode[models.ResultPage](t, s.do(t, http.MethodGet, "/api/results", "alice", nil))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalRows)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 2)

	page = decode[models.ResultPage](t, s.do(t, http.MethodGet, "/api/results?page=2", "alice", nil))
	require.Len(t, page.Data, 1)
	name, _ := page.Data[0].Get("name")
	assert.Equal(t, "Arjun Singh", name)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/results?page=0", "alice", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/results?page_size=x", "alice", nil).Code)
}

func TestSessionInfoAndEnd(t *testing.T) {
	s := newTestServer(t, false)
	s.do(t, http.MethodPost, "/api/query", "alice", models.QueryRequest{Query: "count orders"})

	info := decode[models.SessionInfo](t, s.do(t, http.MethodGet, "/api/session", "alice", nil))
	assert.Equal(t, "alice", info.ID)
	assert.Equal(t, 1, info.HistoryCount)
	assert.False(t, info.CreatedAt.IsZero())

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/session", "alice", nil).Code)

	info = decode[models.SessionInfo](t, s.do(t, http.MethodGet, "/api/session", "alice", nil))
	assert.Zero(t, info.HistoryCount)
}
