package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/ingest"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/storage"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sheetHeader = "Email,Client Phone,Employee Name,Hourly Wage,Hours Worked," +
	"Building Type,Address,Job Type,Painting Area Size (sq ft)," +
	"Total Paint Cost (Body),Total Paint Cost (Trim),Other Paint Cost," +
	"Supplies Used,Cost of Supplies,Additional Services,Additional Service Cost," +
	"Start Date,End Date,Total Gain,Date Created"

func sheetCSV(rows ...string) string {
	return sheetHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func newTestImportService(t *testing.T) (*ImportService, *gorm.DB, *repository.DocumentRepository) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	documentRepo := repository.NewDocumentRepository(db)
	svc := NewImportService(db, documentRepo, fileStorage, ingest.HeaderMapV1(), zap.NewNop())
	return svc, db, documentRepo
}

func TestImportDocumentFullSuccess(t *testing.T) {
	svc, db, documentRepo := newTestImportService(t)
	ctx := context.Background()

	csv := sheetCSV(
		"ann@example.com,555-0101,Ann Lee,$25.50,40,Residential,1 Main St,Interior,850 sq ft,$120,$45,$10,Rollers and tape,$60,Power Washing,$150,2026-01-05,2026-01-20,$2400,2026-01-02",
		"bob@example.com,555-0102,Bob Ray,$22.00,35,Commercial,2 Oak Ave,Exterior,1200,$300,$90,$0,Drop cloths,$80,,,2026-02-01,2026-02-14,$3100,2026-01-30",
		"ann@example.com,555-0101,Ann Lee,$25.50,20,Residential,3 Pine Rd,Interior,400,$70,$20,$5,Brushes,$30,Deck Staining,$200,2026-03-01,2026-03-05,$900,2026-02-25",
	)

	report, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 3, report.SuccessfulRecords)
	assert.Equal(t, 0, report.FailedRecords)
	assert.Empty(t, report.Errors)
	assert.False(t, report.PartiallySuccessful())
	require.Len(t, report.Records, 3)
	assert.Equal(t, 1, report.Records[0].Row)
	assert.Equal(t, "ann@example.com", report.Records[0].ClientEmail)
	assert.Equal(t, "2026-01-02", report.Records[0].DateCreated)

	doc, err := documentRepo.GetByID(ctx, report.DocumentID)
	require.NoError(t, err)
	assert.True(t, doc.Processed)
	assert.Equal(t, "sheets.csv", doc.FileName)

	// Two distinct clients; the repeated email reuses the first
	var clientCount int64
	require.NoError(t, db.Model(&domain.Client{}).Count(&clientCount).Error)
	assert.EqualValues(t, 2, clientCount)

	var project domain.Project
	require.NoError(t, db.First(&project, report.Records[0].ProjectID).Error)
	assert.Equal(t, domain.ProjectStatusPending, project.Status)
	assert.Equal(t, "Supplies Used: Rollers and tape", project.Description)
	assert.Equal(t, 850.0, project.AreaSizeSqft)
	assert.Equal(t, 2400.0, project.TotalGain)

	var cost domain.Cost
	require.NoError(t, db.First(&cost, "project_id = ?", project.ID).Error)
	assert.Equal(t, 120.0, cost.BodyPaintCost)
	assert.Equal(t, 45.0, cost.TrimPaintCost)
	assert.Equal(t, 60.0, cost.SuppliesCost)

	// Row 2 carries no additional service cell, so only rows 1 and 3
	// produce one
	var serviceCount int64
	require.NoError(t, db.Model(&domain.AdditionalService{}).Count(&serviceCount).Error)
	assert.EqualValues(t, 2, serviceCount)

	var assignments int64
	require.NoError(t, db.Model(&domain.ProjectEmployee{}).Count(&assignments).Error)
	assert.EqualValues(t, 3, assignments)
}

func TestImportDocumentDerivedValues(t *testing.T) {
	svc, db, _ := newTestImportService(t)
	ctx := context.Background()

	// No Hourly Wage or Hours Worked columns: the new employee and the
	// assignment fall back to zero for both.
	csv := "Email,Client Phone,Employee Name,Building Type,Address,Job Type," +
		"Painting Area Size (sq ft),Total Paint Cost (Body),Total Paint Cost (Trim)," +
		"Other Paint Cost,Supplies Used,Cost of Supplies,Additional Services," +
		"Additional Service Cost,Start Date,End Date,Total Gain\n" +
		"jane@x.com,555-1234,John Smith,Residential,1 Main St,Repaint,1000,500,100,50,Tape,20,Deck stain,75,2025-01-01,2025-01-10,2000\n"

	report, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, report.SuccessfulRecords)

	var client domain.Client
	require.NoError(t, db.First(&client, "email = ?", "jane@x.com").Error)
	assert.Equal(t, "jane", client.Name)

	var employee domain.Employee
	require.NoError(t, db.First(&employee, "first_name = ? AND last_name = ?", "John", "Smith").Error)
	assert.Equal(t, 0.0, employee.Wage)
	assert.Equal(t, 0.0, employee.HoursWorked)

	var project domain.Project
	require.NoError(t, db.First(&project, report.Records[0].ProjectID).Error)
	assert.Equal(t, domain.ProjectStatusPending, project.Status)
	assert.Equal(t, 1000.0, project.AreaSizeSqft)
	assert.Equal(t, 2000.0, project.TotalGain)

	var cost domain.Cost
	require.NoError(t, db.First(&cost, "project_id = ?", project.ID).Error)
	assert.Equal(t, 500.0, cost.BodyPaintCost)
	assert.Equal(t, 100.0, cost.TrimPaintCost)
	assert.Equal(t, 50.0, cost.OtherPaintCost)
	assert.Equal(t, 20.0, cost.SuppliesCost)
	assert.Equal(t, 75.0, cost.AdditionalServiceCost)
	assert.Equal(t, 745.0, cost.TotalCost)

	var extra domain.AdditionalService
	require.NoError(t, db.First(&extra, "project_id = ?", project.ID).Error)
	assert.Equal(t, "Deck stain", extra.ServiceName)
	assert.Equal(t, 75.0, extra.ServiceCost)

	var assignment domain.ProjectEmployee
	require.NoError(t, db.First(&assignment, "project_id = ?", project.ID).Error)
	assert.Equal(t, employee.ID, assignment.EmployeeID)
	assert.Equal(t, 0.0, assignment.HoursWorked)
}

func TestImportDocumentPartialSuccess(t *testing.T) {
	svc, db, documentRepo := newTestImportService(t)
	ctx := context.Background()

	csv := sheetCSV(
		"ok@example.com,555-0101,Ann Lee,$25.50,40,Residential,1 Main St,Interior,850,$120,$45,$10,Tape,$60,,,2026-01-05,2026-01-20,$2400,2026-01-02",
		"ghost@example.com,555-0199,New Hire,$20.00,10,Residential,9 Elm St,Interior,300,$40,$10,$0,Tape,$20,,,2026-01-05,not-a-date,$500,2026-01-02",
		"ok2@example.com,555-0103,Cam Two,$21.00,15,Commercial,4 Birch Ln,Exterior,600,$90,$30,$5,Cloths,$40,,,2026-04-01,2026-04-10,$1200,2026-03-28",
	)

	report, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.SuccessfulRecords)
	assert.Equal(t, 1, report.FailedRecords)
	assert.True(t, report.PartiallySuccessful())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Error, "End Date")

	// The failed row rolls back alone: the client and employee it
	// created mid-transaction must not persist
	var clientCount int64
	require.NoError(t, db.Model(&domain.Client{}).Where("email = ?", "ghost@example.com").Count(&clientCount).Error)
	assert.EqualValues(t, 0, clientCount)

	var employeeCount int64
	require.NoError(t, db.Model(&domain.Employee{}).Where("first_name = ? AND last_name = ?", "New", "Hire").Count(&employeeCount).Error)
	assert.EqualValues(t, 0, employeeCount)

	// Processed means attempted, not clean
	doc, err := documentRepo.GetByID(ctx, report.DocumentID)
	require.NoError(t, err)
	assert.True(t, doc.Processed)
}

func TestImportDocumentReusesExistingEntities(t *testing.T) {
	svc, db, _ := newTestImportService(t)
	ctx := context.Background()

	existing := domain.Client{Name: "Ann from CRM", Email: "ann@example.com", Phone: "555-9999"}
	require.NoError(t, db.Create(&existing).Error)
	veteran := domain.Employee{FirstName: "Ann", LastName: "Lee", Wage: 30, HoursWorked: 500}
	require.NoError(t, db.Create(&veteran).Error)

	csv := sheetCSV(
		"ann@example.com,555-0101,Ann Lee,$25.50,40,Residential,1 Main St,Interior,850,$120,$45,$10,Tape,$60,,,2026-01-05,2026-01-20,$2400,2026-01-02",
	)

	report, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessfulRecords)

	// Matched entities are reused as-is, never refreshed from the row
	var client domain.Client
	require.NoError(t, db.First(&client, existing.ID).Error)
	assert.Equal(t, "Ann from CRM", client.Name)
	assert.Equal(t, "555-9999", client.Phone)

	var employee domain.Employee
	require.NoError(t, db.First(&employee, veteran.ID).Error)
	assert.Equal(t, 30.0, employee.Wage)
	assert.Equal(t, 500.0, employee.HoursWorked)

	var project domain.Project
	require.NoError(t, db.First(&project, report.Records[0].ProjectID).Error)
	assert.Equal(t, existing.ID, project.ClientID)
}

func TestImportDocumentReconcilesDefectiveHeaders(t *testing.T) {
	svc, db, _ := newTestImportService(t)
	ctx := context.Background()

	csv := "EmailClient,lient Phone,EEmployee Name,Hourly Wage,Hours Worked,Address,Job Type,SStart Date,EEnd Date,TTotal Gain\n" +
		"ann@example.com,555-0101,Ann Lee,$25.50,40,1 Main St,Interior,2026-01-05,2026-01-20,$2400\n"

	report, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessfulRecords)

	var client domain.Client
	require.NoError(t, db.First(&client, "email = ?", "ann@example.com").Error)
	assert.Equal(t, "555-0101", client.Phone)

	var project domain.Project
	require.NoError(t, db.First(&project, report.Records[0].ProjectID).Error)
	assert.Equal(t, 2400.0, project.TotalGain)
}

func TestImportDocumentNewClientNameFromEmail(t *testing.T) {
	svc, db, _ := newTestImportService(t)
	ctx := context.Background()

	csv := sheetCSV(
		"ann.lee@example.com,555  0101,Ann Lee,$25.50,40,Residential,1 Main St,Interior,850,$120,$45,$10,Tape,$60,,,2026-01-05,2026-01-20,$2400,2026-01-02",
	)

	_, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(csv))
	require.NoError(t, err)

	var client domain.Client
	require.NoError(t, db.First(&client, "email = ?", "ann.lee@example.com").Error)
	assert.Equal(t, "ann.lee", client.Name)
	assert.Equal(t, "555 0101", client.Phone)
}

func TestImportDocumentRejectsBadUploads(t *testing.T) {
	svc, db, _ := newTestImportService(t)
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.ImportDocument(ctx, "", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrNoFile)

		_, err = svc.ImportDocument(ctx, "sheets.csv", nil)
		assert.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.ImportDocument(ctx, "sheets.txt", strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUnsupportedFileType)

		// Rejected before the document record is written
		var docs int64
		require.NoError(t, db.Model(&domain.UploadedDocument{}).Count(&docs).Error)
		assert.EqualValues(t, 0, docs)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := svc.ImportDocument(ctx, "sheets.csv", strings.NewReader(""))
		assert.ErrorIs(t, err, ingest.ErrNoRows)

		// The document record survives the extraction failure
		var docs int64
		require.NoError(t, db.Model(&domain.UploadedDocument{}).Count(&docs).Error)
		assert.EqualValues(t, 1, docs)
	})
}

func TestSplitNameWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		first string
		last  string
	}{
		{"two tokens", "Ann Lee", "Ann", "Lee"},
		{"three tokens", "Ann van Lee", "Ann", "van Lee"},
		{"single token", "Ann", "Ann", ""},
		{"extra whitespace", "  Ann   Lee  ", "Ann", "Lee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitNameWhitespace(tt.in)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}
