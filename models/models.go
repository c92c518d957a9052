package models

import "time"

type QueryRequest struct {
	Query string `json:"query" example:"Show me all customers from Chennai"`
}

type SQLRequest struct {
	SQL string `json:"sql" example:"SELECT * FROM customers LIMIT 10;"`
}

type SaveResultRequest struct {
	Format string `json:"format,omitempty" example:"json"` // "json" or "csv"
}

type QueryResponse struct {
	SQL      string          `json:"sql"`
	Result   *QueryResult    `json:"result"`
	Analysis SQLAnalysis     `json:"analysis"`
	State    ProcessingState `json:"state"`
}

type ValidateSQLResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// SQLTemplate names one of the fixed SQL statements the matcher can produce.
type SQLTemplate string

const (
	TemplateCustomersChennai SQLTemplate = "customers_chennai"
	TemplateSalesLastMonth   SQLTemplate = "sales_last_month"
	TemplateCountOrders      SQLTemplate = "count_orders"
	TemplateTopProducts      SQLTemplate = "top_products"
	TemplateDefault          SQLTemplate = "default"
)

type TemplateInfo struct {
	Name SQLTemplate `json:"name"`
	SQL  string      `json:"sql"`
}

type QueryResult struct {
	SQL           string   `json:"sql"`
	Data          []Row    `json:"data"`
	Columns       []string `json:"columns"`
	ExecutionTime float64  `json:"execution_time"` // milliseconds, decorative
	RowCount      int      `json:"row_count"`
}

type SQLAnalysis struct {
	QueryType     string `json:"query_type"` // SELECT, INSERT, UPDATE or DELETE
	TableCount    int    `json:"table_count"`
	EstimatedRows int    `json:"estimated_rows"`
}

type HistoryEntry struct {
	ID              string `json:"id"`
	NaturalLanguage string `json:"natural_language"`
	GeneratedSQL    string `json:"generated_sql"`
	Timestamp       int64  `json:"timestamp"` // epoch milliseconds
}

// ProcessingState is the snapshot of one session's query cycle. Values are
// never mutated in place; session.Reduce returns a new one per transition.
type ProcessingState struct {
	Loading      bool         `json:"loading"`
	Error        string       `json:"error,omitempty"`
	CurrentQuery string       `json:"current_query"`
	GeneratedSQL string       `json:"generated_sql"`
	Result       *QueryResult `json:"result,omitempty"`
}

type EditorState struct {
	Editing      bool         `json:"editing"`
	EditableSQL  string       `json:"editable_sql"`
	ManualResult *QueryResult `json:"manual_result,omitempty"`
}

// Schema models
type DatabaseColumn struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Primary bool   `json:"primary"`
}

type DatabaseTable struct {
	Name    string           `json:"name"`
	Columns []DatabaseColumn `json:"columns"`
}

type SamplesResponse struct {
	Samples     []string `json:"samples"`
	Suggestions []string `json:"suggestions"`
}

type ResultFile struct {
	Filename  string          `json:"filename"`
	Query     string          `json:"query,omitempty"`
	Timestamp string          `json:"timestamp"`
	Columns   []string        `json:"columns"`
	Rows      [][]interface{} `json:"rows"`
	RowCount  int             `json:"row_count"`
}

type ResultFileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	Format   string `json:"format"`
}

// ResultPage is one page of the rows of a result.
type ResultPage struct {
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalRows  int      `json:"total_rows"`
	TotalPages int      `json:"total_pages"`
	Columns    []string `json:"columns"`
	Data       []Row    `json:"data"`
}

type SessionInfo struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	HistoryCount int       `json:"history_count"`
}
