package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ImportService seeds the catalog from spreadsheet files. Each file becomes
// one test; each row one question. Expected columns:
//
//	question_text | options (pipe-separated) | correct_option (1-based index)
type ImportService interface {
	ImportTestFromFile(ctx context.Context, file multipart.File, filename, title string) (*ImportResult, error)
	ImportTestFromCSV(ctx context.Context, reader io.Reader, title string) (*ImportResult, error)
	ImportTestFromExcel(ctx context.Context, reader io.Reader, title string) (*ImportResult, error)
}

type ImportResult struct {
	TestID       uint              `json:"test_id"`
	TotalRows    int               `json:"total_rows"`
	SuccessCount int               `json:"success_count"`
	ErrorCount   int               `json:"error_count"`
	Errors       []ValidationError `json:"errors,omitempty"`
}

type importService struct {
	repo      repositories.Repository
	logger    utils.Logger
	validator *utils.Validator
}

func NewImportService(repo repositories.Repository, logger utils.Logger, validator *utils.Validator) ImportService {
	return &importService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *importService) ImportTestFromFile(ctx context.Context, file multipart.File, filename, title string) (*ImportResult, error) {
	s.logger.Info("Starting catalog import", "filename", filename, "title", title)

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return s.ImportTestFromCSV(ctx, file, title)
	case ".xlsx", ".xls":
		return s.ImportTestFromExcel(ctx, file, title)
	default:
		return nil, NewValidationError("file", "unsupported file format", ext)
	}
}

func (s *importService) ImportTestFromCSV(ctx context.Context, reader io.Reader, title string) (*ImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return s.importRows(ctx, records, title)
}

func (s *importService) ImportTestFromExcel(ctx context.Context, reader io.Reader, title string) (*ImportResult, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewValidationError("file", "workbook has no sheets", nil)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return s.importRows(ctx, rows, title)
}

func (s *importService) importRows(ctx context.Context, rows [][]string, title string) (*ImportResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "is required", title)
	}
	if len(rows) < 2 {
		return nil, NewValidationError("file", "must have a header row and at least one data row", len(rows))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range []string{"question_text", "options", "correct_option"} {
		if _, exists := headerMap[col]; !exists {
			return nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}

	result := &ImportResult{TotalRows: len(rows) - 1}

	var questions []*models.Question
	for rowIndex, record := range rows[1:] {
		question, rowErr := s.parseRow(record, headerMap, rowIndex+2)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			result.ErrorCount++
			continue
		}
		questions = append(questions, question)
		result.SuccessCount++
	}

	if len(questions) == 0 {
		return nil, NewValidationError("file", "no valid question rows", result.ErrorCount)
	}

	test := &models.Test{Title: title}
	if err := s.validator.Validate(test); err != nil {
		return nil, err
	}
	if err := s.repo.Catalog().CreateTest(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	for _, q := range questions {
		q.TestID = test.ID
	}
	if err := s.repo.Catalog().CreateQuestions(ctx, questions); err != nil {
		return nil, fmt.Errorf("failed to create questions: %w", err)
	}

	result.TestID = test.ID

	s.logger.Info("Catalog import finished",
		"test_id", test.ID,
		"questions", result.SuccessCount,
		"errors", result.ErrorCount)

	return result, nil
}

func (s *importService) parseRow(record []string, headerMap map[string]int, rowNum int) (*models.Question, *ValidationError) {
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	text := cell("question_text")
	if text == "" {
		return nil, NewValidationError("question_text", fmt.Sprintf("row %d: is required", rowNum), nil)
	}

	rawOptions := cell("options")
	parts := strings.Split(rawOptions, "|")
	options := make([]models.QuestionOption, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			options = append(options, models.QuestionOption{Text: p})
		}
	}
	if len(options) < 2 {
		return nil, NewValidationError("options", fmt.Sprintf("row %d: needs at least 2 options", rowNum), rawOptions)
	}

	correctRaw := cell("correct_option")
	correct, err := strconv.Atoi(correctRaw)
	if err != nil || correct < 1 || correct > len(options) {
		return nil, NewValidationError("correct_option",
			fmt.Sprintf("row %d: must be an option index between 1 and %d", rowNum, len(options)), correctRaw)
	}
	options[correct-1].IsCorrect = true

	return &models.Question{
		Text:    text,
		Options: options,
	}, nil
}
