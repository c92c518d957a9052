package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError is returned for input that is rejected before any
// processing starts.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateQuery rejects empty and whitespace-only questions.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &ValidationError{Field: "query", Message: "Query cannot be empty"}
	}
	return nil
}

// ValidateQueryLength enforces the input cap of the calling layer, counted in
// characters. A non-positive max disables the check.
func ValidateQueryLength(query string, max int) error {
	if max > 0 && utf8.RuneCountInString(query) > max {
		return &ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("Query cannot be longer than %d characters", max),
		}
	}
	return nil
}

// ValidateSQL is a basic syntax gate for hand-edited SQL: it must name a
// command and end with a semicolon.
func ValidateSQL(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return &ValidationError{Field: "sql", Message: "SQL query cannot be empty"}
	}

	upperSQL := strings.ToUpper(sql)
	if !strings.Contains(upperSQL, "SELECT") && !strings.Contains(upperSQL, "INSERT") &&
		!strings.Contains(upperSQL, "UPDATE") && !strings.Contains(upperSQL, "DELETE") {
		return &ValidationError{Field: "sql", Message: "Query must contain a valid SQL command"}
	}

	if !strings.HasSuffix(trimmed, ";") {
		return &ValidationError{Field: "sql", Message: "SQL query must end with semicolon"}
	}

	return nil
}
