package service

import (
	"regexp"
	"strconv"
	"strings"

	"sqlgenie/models"
)

const DefaultEstimatedRows = 50

var (
	fromPattern  = regexp.MustCompile(`(?i)FROM\s+\w+`)
	limitPattern = regexp.MustCompile(`(?i)LIMIT\s+(\d+)`)
)

// Analyze derives rough metadata from SQL text. It is a keyword heuristic,
// not a parser: the table count is the number of "FROM <word>" occurrences,
// so repeated tables count every time.
//
// When LIMIT is present but not followed by a usable positive integer
// ("LIMIT ALL", "LIMIT 0", overflow) the estimate falls back to defaultRows.
// A non-positive defaultRows means DefaultEstimatedRows.
func Analyze(sql string, defaultRows int) models.SQLAnalysis {
	if defaultRows <= 0 {
		defaultRows = DefaultEstimatedRows
	}

	upperSQL := strings.ToUpper(sql)

	queryType := "SELECT"
	switch {
	case strings.Contains(upperSQL, "INSERT"):
		queryType = "INSERT"
	case strings.Contains(upperSQL, "UPDATE"):
		queryType = "UPDATE"
	case strings.Contains(upperSQL, "DELETE"):
		queryType = "DELETE"
	}

	estimatedRows := defaultRows
	if strings.Contains(upperSQL, "LIMIT") {
		if m := limitPattern.FindStringSubmatch(sql); m != nil {
			if n, err := strconv.ParseInt(m[1], 10, 32); err == nil && n > 0 {
				estimatedRows = int(n)
			}
		}
	}

	return models.SQLAnalysis{
		QueryType:     queryType,
		TableCount:    len(fromPattern.FindAllStringIndex(sql, -1)),
		EstimatedRows: estimatedRows,
	}
}
