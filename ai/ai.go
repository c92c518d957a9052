package ai

import (
	"context"

	"sqlgenie/models"
)

// Generator turns a natural-language question into SQL.
type Generator interface {
	GenerateSQL(ctx context.Context, query string) (string, error)
}

// MockService stands in for a language model: it picks one of the fixed
// templates by keyword matching and never calls out.
type MockService struct{}

func New() *MockService {
	return &MockService{}
}

func (m *MockService) GenerateSQL(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return SQLFor(Match(query)), nil
}

// Templates lists every template in matching priority order, default last.
func Templates() []models.TemplateInfo {
	out := make([]models.TemplateInfo, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, models.TemplateInfo{Name: r.template, SQL: templateSQL[r.template]})
	}
	out = append(out, models.TemplateInfo{Name: models.TemplateDefault, SQL: templateSQL[models.TemplateDefault]})
	return out
}
