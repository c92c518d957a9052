package service

import (
	"context"
	"math/rand"

	"sqlgenie/models"
)

// Executor runs SQL and returns tabular results.
type Executor interface {
	Execute(ctx context.Context, sql string) (*models.QueryResult, error)
}

var mockCustomers = []models.Row{
	{{Name: "id", Value: 1}, {Name: "name", Value: "Raj Kumar"}, {Name: "email", Value: "raj@example.com"}, {Name: "city", Value: "Chennai"}, {Name: "created_at", Value: "2024-01-15"}},
	{{Name: "id", Value: 2}, {Name: "name", Value: "Priya Sharma"}, {Name: "email", Value: "priya@example.com"}, {Name: "city", Value: "Chennai"}, {Name: "created_at", Value: "2024-02-20"}},
	{{Name: "id", Value: 3}, {Name: "name", Value: "Arjun Singh"}, {Name: "email", Value: "arjun@example.com"}, {Name: "city", Value: "Chennai"}, {Name: "created_at", Value: "2024-03-10"}},
}

// Synthesizer fakes query execution. Whatever the SQL says, the answer is the
// same three customers.
type Synthesizer struct {
	random func() float64 // uniform in [0, 1)
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{random: rand.Float64}
}

// NewSynthesizerWithRandom is used by tests that need a fixed execution time.
func NewSynthesizerWithRandom(random func() float64) *Synthesizer {
	return &Synthesizer{random: random}
}

// Synthesize never fails, including for empty or malformed SQL.
func (s *Synthesizer) Synthesize(sql string) *models.QueryResult {
	data := make([]models.Row, len(mockCustomers))
	for i, row := range mockCustomers {
		data[i] = row.Clone()
	}

	columns := []string{}
	if len(data) > 0 {
		columns = data[0].Keys()
	}

	return &models.QueryResult{
		SQL:           sql,
		Data:          data,
		Columns:       columns,
		ExecutionTime: s.random()*100 + 50,
		RowCount:      len(data),
	}
}

func (s *Synthesizer) Execute(ctx context.Context, sql string) (*models.QueryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Synthesize(sql), nil
}

var defaultSynthesizer = NewSynthesizer()

func Synthesize(sql string) *models.QueryResult {
	return defaultSynthesizer.Synthesize(sql)
}
