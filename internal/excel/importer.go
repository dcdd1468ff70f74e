package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/bernoulli/internal/content"
	"github.com/example/bernoulli/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string   // Path to the Excel or CSV file
	PromptColumn      string   // Column with the question prompt
	OptionColumns     []string // Columns with the four answer options
	CorrectColumn     string   // Column with the correct option (1-4 or A-D)
	ExplanationColumn string   // Column with the explanation
	SheetName         string   // Name of the sheet to import
	StartRow          int      // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		PromptColumn:      "A",
		OptionColumns:     []string{"B", "C", "D", "E"},
		CorrectColumn:     "F",
		ExplanationColumn: "G",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// header is written by WriteTemplate and skipped on import
var header = []string{"Prompt", "Option 1", "Option 2", "Option 3", "Option 4", "Correct", "Explanation"}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Skipped        int
	Items          []models.QuizItem
	Errors         []string
}

// ImportQuiz imports quiz items from an Excel or CSV file. Bad rows are
// reported in the result and do not abort the import.
func ImportQuiz(config ImportConfig) (*ImportResult, error) {
	// Check the file extension
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var rows [][]string
	var err error
	if ext == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Errors: make([]string, 0),
	}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		if isBlank(row) {
			result.Skipped++
			continue
		}

		result.TotalProcessed++

		item, err := processRow(row, config)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// readExcel reads all rows of a sheet
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

// readCSV reads all records of a CSV file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// processRow turns a single row into a validated quiz item
func processRow(row []string, config ImportConfig) (models.QuizItem, error) {
	item := models.QuizItem{
		Prompt:      cell(row, config.PromptColumn),
		Explanation: cell(row, config.ExplanationColumn),
	}
	for _, col := range config.OptionColumns {
		item.Options = append(item.Options, cell(row, col))
	}

	correct, err := parseCorrect(cell(row, config.CorrectColumn), len(item.Options))
	if err != nil {
		return models.QuizItem{}, err
	}
	item.Correct = correct

	if err := content.ValidateQuizItem(item); err != nil {
		return models.QuizItem{}, err
	}
	return item, nil
}

// cell returns the trimmed value of column in row, or "" when out of bounds
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	if colIdx := columnToIndex(column); colIdx < len(row) {
		return strings.TrimSpace(row[colIdx])
	}
	return ""
}

// parseCorrect accepts a 1-based option number or an option letter and
// returns the 0-based index
func parseCorrect(s string, options int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("correct answer is empty")
	}

	if len(s) == 1 {
		if c := strings.ToUpper(s)[0]; c >= 'A' && c <= 'Z' {
			idx := int(c - 'A')
			if idx >= options {
				return 0, fmt.Errorf("correct answer %q out of range", s)
			}
			return idx, nil
		}
	}

	n, err := parseIntInRange(s, 1, options)
	if err != nil {
		return 0, fmt.Errorf("correct answer %q: %w", s, err)
	}
	return n - 1, nil
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// Helper function to parse an integer that must lie within a range
func parseIntInRange(s string, min, max int) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if val < min || val > max {
		return 0, fmt.Errorf("must be between %d and %d", min, max)
	}
	return val, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// WriteTemplate writes items to an Excel file in the layout ImportQuiz
// reads with DefaultImportConfig
func WriteTemplate(path string, items []models.QuizItem) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := DefaultImportConfig().SheetName
	write := func(row int, values []string) error {
		for i, v := range values {
			name, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(1, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, item := range items {
		values := append([]string{item.Prompt}, item.Options...)
		values = append(values, strconv.Itoa(item.Correct+1), item.Explanation)
		if err := write(i+2, values); err != nil {
			return fmt.Errorf("failed to write question %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}
