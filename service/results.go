package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sqlgenie/models"
)

type ResultsStorage struct {
	resultsDir string
}

func NewResultsStorage(resultsDir string) (*ResultsStorage, error) {
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	return &ResultsStorage{
		resultsDir: resultsDir,
	}, nil
}

// GenerateFileName creates a unique filename with timestamp and nanos
func (r *ResultsStorage) GenerateFileName(format string) string {
	now := time.Now()
	return fmt.Sprintf("result_%s_%d.%s", now.Format("20060102_150405"), now.UnixNano(), format)
}

// SaveResultAsJSON saves a query result as JSON file
func (r *ResultsStorage) SaveResultAsJSON(result *models.QueryResult, query string) (string, error) {
	filename := r.GenerateFileName("json")
	filePath := filepath.Join(r.resultsDir, filename)

	rows := make([][]interface{}, len(result.Data))
	for i, row := range result.Data {
		values := make([]interface{}, len(result.Columns))
		for j, col := range result.Columns {
			values[j], _ = row.Get(col)
		}
		rows[i] = values
	}

	resultData := models.ResultFile{
		Filename:  filename,
		Query:     query,
		Timestamp: time.Now().Format(time.RFC3339),
		Columns:   result.Columns,
		Rows:      rows,
		RowCount:  len(rows),
	}

	data, err := json.MarshalIndent(resultData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filename, nil
}

// SaveResultAsCSV saves a query result in the export CSV format
func (r *ResultsStorage) SaveResultAsCSV(result *models.QueryResult) (string, error) {
	filename := r.GenerateFileName("csv")
	filePath := filepath.Join(r.resultsDir, filename)

	if err := os.WriteFile(filePath, []byte(ExportCSV(result)), 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filename, nil
}

// GetResultFile reads a result file
func (r *ResultsStorage) GetResultFile(filename string) (*models.ResultFile, error) {
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, fmt.Errorf("invalid filename %q", filename)
	}
	filePath := filepath.Join(r.resultsDir, filename)

	switch filepath.Ext(filename) {
	case ".json":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		var result models.ResultFile
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		result.Filename = filename
		return &result, nil

	case ".csv":
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat CSV file: %w", err)
		}

		reader := csv.NewReader(file)
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		resultFile := &models.ResultFile{
			Filename:  filename,
			Columns:   []string{},
			Rows:      [][]interface{}{},
			Timestamp: info.ModTime().Format(time.RFC3339),
		}
		if len(records) == 0 {
			return resultFile, nil
		}

		// First row is header
		resultFile.Columns = records[0]
		for _, record := range records[1:] {
			row := make([]interface{}, len(record))
			for j, val := range record {
				row[j] = val
			}
			resultFile.Rows = append(resultFile.Rows, row)
		}
		resultFile.RowCount = len(resultFile.Rows)
		return resultFile, nil
	}

	return nil, fmt.Errorf("unsupported file format")
}

// ListResultFiles returns all result files
func (r *ResultsStorage) ListResultFiles() ([]models.ResultFileInfo, error) {
	files, err := os.ReadDir(r.resultsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	resultFiles := []models.ResultFileInfo{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		if ext != ".json" && ext != ".csv" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		resultFiles = append(resultFiles, models.ResultFileInfo{
			Filename: file.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Format(time.RFC3339),
			Format:   ext[1:],
		})
	}

	return resultFiles, nil
}
