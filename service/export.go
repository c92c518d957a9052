package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sqlgenie/models"
)

// ExportCSV renders a result in the download format of the web client: a bare
// header line, then one line per row with every value wrapped in double
// quotes. Values are not escaped. Missing, nil, false, zero and empty values
// are written as "".
func ExportCSV(result *models.QueryResult) string {
	if result == nil {
		return ""
	}

	lines := make([]string, 0, len(result.Data)+1)
	lines = append(lines, strings.Join(result.Columns, ","))

	for _, row := range result.Data {
		fields := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			value, _ := row.Get(col)
			fields[i] = `"` + exportValue(value) + `"`
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func exportValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	case int64:
		if val == 0 {
			return ""
		}
		return strconv.FormatInt(val, 10)
	case float64:
		if val == 0 || val != val {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		// Rows posted by clients decode their numbers as json.Number.
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return exportValue(f)
	default:
		return fmt.Sprintf("%v", val)
	}
}
