package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgenie/models"
)

func TestExportCSV(t *testing.T) {
	result := NewSynthesizerWithRandom(func() float64 { return 0 }).Synthesize("SELECT * FROM customers;")

	want := "id,name,email,city,created_at\n" +
		`"1","Raj Kumar","raj@example.com","Chennai","2024-01-15"` + "\n" +
		`"2","Priya Sharma","priya@example.com","Chennai","2024-02-20"` + "\n" +
		`"3","Arjun Singh","arjun@example.com","Chennai","2024-03-10"`

	assert.Equal(t, want, ExportCSV(result))
}

func TestExportCSVFalsyValues(t *testing.T) {
	result := &models.QueryResult{
		Columns: []string{"a", "b", "c", "d", "e", "f", "g"},
		Data: []models.Row{
			{{Name: "a", Value: 0}, {Name: "b", Value: nil}, {Name: "c", Value: false}, {Name: "d", Value: ""}, {Name: "e", Value: 1.5}, {Name: "f", Value: true}},
		},
	}

	assert.Equal(t, "a,b,c,d,e,f,g\n\"\",\"\",\"\",\"\",\"1.5\",\"true\",\"\"", ExportCSV(result))
}

func TestExportCSVEmpty(t *testing.T) {
	assert.Equal(t, "", ExportCSV(nil))
	assert.Equal(t, "", ExportCSV(&models.QueryResult{}))
}

func TestExportCSVDecodedRows(t *testing.T) {
	var result models.QueryResult
	err := json.Unmarshal([]byte(`{"columns":["id","total","note"],"data":[{"total":0,"id":7,"note":"x"}]}`), &result)
	require.NoError(t, err)

	assert.Equal(t, "id,total,note\n\"7\",\"\",\"x\"", ExportCSV(&result))
}
