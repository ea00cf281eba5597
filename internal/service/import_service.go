package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/ingest"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NameSplitter splits a free-text employee name into (first, last).
// The default keeps the source system's behavior: with fewer than two
// tokens everything lands in the first name and the last name is
// empty. Injectable so deployments with different name conventions can
// override it without touching the pipeline.
type NameSplitter func(name string) (first, last string)

// SplitNameWhitespace is the default NameSplitter: the first
// whitespace-separated token is the first name and the remaining
// tokens, joined by single spaces, are the last name.
func SplitNameWhitespace(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return strings.TrimSpace(name), ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// ImportService drives the bulk ingestion of job-sheet documents:
// upload validation, table extraction, header reconciliation, and
// per-row materialization of the project graph. Each row is one
// transaction; a failed row rolls back alone and never aborts the
// batch.
type ImportService struct {
	db           *gorm.DB
	documentRepo *repository.DocumentRepository
	fileStorage  storage.Storage
	headerMap    *ingest.HeaderMap
	pdf          ingest.TableExtractor
	csv          ingest.TableExtractor
	splitName    NameSplitter
	logger       *zap.Logger
}

// NewImportService creates an ImportService with the default
// extractors and name splitter
func NewImportService(
	db *gorm.DB,
	documentRepo *repository.DocumentRepository,
	fileStorage storage.Storage,
	headerMap *ingest.HeaderMap,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		db:           db,
		documentRepo: documentRepo,
		fileStorage:  fileStorage,
		headerMap:    headerMap,
		pdf:          ingest.NewPDFExtractor(),
		csv:          ingest.NewCSVExtractor(),
		splitName:    SplitNameWhitespace,
		logger:       logger,
	}
}

// SetNameSplitter overrides the employee-name splitting behavior
func (s *ImportService) SetNameSplitter(split NameSplitter) {
	s.splitName = split
}

// SetExtractors overrides the table extractors, mainly for tests
func (s *ImportService) SetExtractors(pdf, csv ingest.TableExtractor) {
	if pdf != nil {
		s.pdf = pdf
	}
	if csv != nil {
		s.csv = csv
	}
}

// ImportDocument runs the whole pipeline for one uploaded document:
// validate, persist the raw file and its record, extract rows,
// reconcile headers, materialize each row, mark the document
// processed, and report.
//
// The document record survives extraction failures; row failures are
// collected in the report and never abort the batch. An error return
// means the request was rejected (bad payload, unsupported extension,
// no tables) or something unexpected broke below the row level.
func (s *ImportService) ImportDocument(ctx context.Context, fileName string, file io.Reader) (*domain.BatchReport, error) {
	if fileName == "" || file == nil {
		return nil, ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	var extractor ingest.TableExtractor
	switch ext {
	case ".pdf":
		extractor = s.pdf
	case ".csv":
		extractor = s.csv
	default:
		return nil, ErrUnsupportedFileType
	}

	// The stream is needed twice: once for storage, once for extraction.
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	storagePath, _, err := s.fileStorage.Upload(ctx, fileName, contentTypeForExt(ext), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &domain.UploadedDocument{
		FileName:    fileName,
		StoragePath: storagePath,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	table, err := extractor.Extract(ctx, bytes.NewReader(data))
	if err != nil {
		// The document record stays; only processing is rejected.
		return nil, err
	}

	headers := s.headerMap.Reconcile(table.Headers)

	report := &domain.BatchReport{
		DocumentID: doc.ID,
		TotalRows:  len(table.Rows),
		Records:    []domain.ImportedRecord{},
	}

	for i, cells := range table.Rows {
		rowNum := i + 1
		record, err := s.importRow(ctx, headers, cells, rowNum)
		if err != nil {
			s.logger.Warn("row import failed",
				zap.Uint("document_id", doc.ID),
				zap.Int("row", rowNum),
				zap.Error(err),
			)
			report.FailedRecords++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Error: err.Error()})
			continue
		}
		report.SuccessfulRecords++
		report.Records = append(report.Records, *record)
	}

	// Processed means every row was attempted, not that every row
	// succeeded.
	if err := s.documentRepo.MarkProcessed(ctx, doc.ID); err != nil {
		return nil, fmt.Errorf("failed to mark document processed: %w", err)
	}

	s.logger.Info("document imported",
		zap.Uint("document_id", doc.ID),
		zap.Int("total_rows", report.TotalRows),
		zap.Int("successful", report.SuccessfulRecords),
		zap.Int("failed", report.FailedRecords),
	)

	return report, nil
}

// importRow materializes one reconciled row as a single transaction:
// client and employee resolution plus the project/cost/service/
// assignment graph either all commit or all roll back.
func (s *ImportService) importRow(ctx context.Context, headers []string, cells []string, rowNum int) (*domain.ImportedRecord, error) {
	row := ingest.NewRow(headers, cells)

	var record *domain.ImportedRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := s.resolveClient(tx, row)
		if err != nil {
			return err
		}

		employee, err := s.resolveEmployee(tx, row)
		if err != nil {
			return err
		}

		project, err := s.materializeRow(tx, row, client, employee)
		if err != nil {
			return err
		}

		record = &domain.ImportedRecord{
			Row:         rowNum,
			ProjectID:   project.ID,
			ClientEmail: client.Email,
			DateCreated: row.Text(ingest.ColDateCreated),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// resolveClient finds a client by the row's email or creates one. A
// matched client is reused as-is: name and phone are never refreshed
// from newer rows.
func (s *ImportService) resolveClient(tx *gorm.DB, row ingest.Row) (*domain.Client, error) {
	email := row.Text(ingest.ColEmail)
	if email == "" {
		return nil, fmt.Errorf("missing required cell %q", ingest.ColEmail)
	}

	var client domain.Client
	err := tx.Where("email = ?", email).First(&client).Error
	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}

	client = domain.Client{
		Name:  emailLocalPart(email),
		Email: email,
		Phone: collapseSpaces(row.Text(ingest.ColClientPhone)),
	}
	if err := tx.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// resolveEmployee finds an employee by the exact (first, last) pair
// split from the row's name cell, or creates one with wage and hours
// from the row. A matched employee keeps its original wage and hours.
func (s *ImportService) resolveEmployee(tx *gorm.DB, row ingest.Row) (*domain.Employee, error) {
	name := row.Text(ingest.ColEmployeeName)
	if name == "" {
		return nil, fmt.Errorf("missing required cell %q", ingest.ColEmployeeName)
	}

	first, last := s.splitName(name)

	var employee domain.Employee
	err := tx.Where("first_name = ? AND last_name = ?", first, last).First(&employee).Error
	if err == nil {
		return &employee, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	employee = domain.Employee{
		FirstName:   first,
		LastName:    last,
		Wage:        row.Number(ingest.ColHourlyWage),
		HoursWorked: row.Number(ingest.ColHoursWorked),
	}
	if err := tx.Create(&employee).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

// materializeRow creates the row's project, its cost record, an
// additional service when the cell is present, and the employee
// assignment, inside the caller's transaction.
func (s *ImportService) materializeRow(tx *gorm.DB, row ingest.Row, client *domain.Client, employee *domain.Employee) (*domain.Project, error) {
	startDate, err := parseRowDate(row, ingest.ColStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseRowDate(row, ingest.ColEndDate)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		ClientID:     client.ID,
		BuildingType: domain.BuildingType(row.Text(ingest.ColBuildingType)),
		Address:      row.Text(ingest.ColAddress),
		JobType:      row.Text(ingest.ColJobType),
		Description:  "Supplies Used: " + row.Text(ingest.ColSuppliesUsed),
		AreaSizeSqft: row.Number(ingest.ColAreaSize),
		StartDate:    startDate,
		EndDate:      endDate,
		TotalGain:    row.Number(ingest.ColTotalGain),
		Status:       domain.ProjectStatusPending,
	}
	if err := tx.Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	cost := &domain.Cost{
		ProjectID:             project.ID,
		BodyPaintCost:         row.Number(ingest.ColBodyPaintCost),
		TrimPaintCost:         row.Number(ingest.ColTrimPaintCost),
		OtherPaintCost:        row.Number(ingest.ColOtherPaintCost),
		SuppliesCost:          row.Number(ingest.ColSuppliesCost),
		AdditionalServiceCost: row.Number(ingest.ColAdditionalServiceCost),
	}
	if err := tx.Create(cost).Error; err != nil {
		return nil, fmt.Errorf("failed to create cost: %w", err)
	}

	// An empty cell and a missing cell both suppress the service.
	if row.Has(ingest.ColAdditionalServices) {
		service := &domain.AdditionalService{
			ProjectID:   project.ID,
			ServiceName: row.Text(ingest.ColAdditionalServices),
			ServiceCost: row.Number(ingest.ColAdditionalServiceCost),
		}
		if err := tx.Create(service).Error; err != nil {
			return nil, fmt.Errorf("failed to create additional service: %w", err)
		}
	}

	assignment := &domain.ProjectEmployee{
		ProjectID:   project.ID,
		EmployeeID:  employee.ID,
		HoursWorked: row.Number(ingest.ColHoursWorked),
	}
	if err := tx.Create(assignment).Error; err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return project, nil
}

// parseRowDate parses a date cell strictly as YYYY-MM-DD
func parseRowDate(row ingest.Row, col string) (time.Time, error) {
	raw := row.Text(col)
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", col, raw)
	}
	return t, nil
}

// emailLocalPart returns the part of an email address before the '@'
func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// collapseSpaces trims the string and collapses internal whitespace
// runs to single spaces
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
