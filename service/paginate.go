package service

import "sqlgenie/models"

// Paginate returns page (1-based) of the rows of result. Pages past the end
// are empty. pageSize must be positive.
func Paginate(result *models.QueryResult, page, pageSize int) models.ResultPage {
	out := models.ResultPage{
		Page:     page,
		PageSize: pageSize,
		Data:     []models.Row{},
	}
	if result == nil {
		return out
	}

	out.Columns = result.Columns
	out.TotalRows = len(result.Data)
	out.TotalPages = (out.TotalRows + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= out.TotalRows {
		return out
	}
	end := min(start+pageSize, out.TotalRows)
	out.Data = result.Data[start:end]

	return out
}
