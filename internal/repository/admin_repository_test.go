package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepositoryClearAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	client := seedClient(t, db, "Ann Lee", "ann@example.com")
	employee := &domain.Employee{FirstName: "Ann", LastName: "Lee", Wage: 25}
	require.NoError(t, db.Create(employee).Error)

	project := seedProject(t, db, domain.Project{
		ClientID: client.ID, StartDate: day(t, "2026-01-05"), EndDate: day(t, "2026-01-20"),
	})
	require.NoError(t, db.Create(&domain.Cost{ProjectID: project.ID, BodyPaintCost: 120}).Error)
	require.NoError(t, db.Create(&domain.AdditionalService{ProjectID: project.ID, ServiceName: "Power Washing"}).Error)
	require.NoError(t, db.Create(&domain.ProjectEmployee{ProjectID: project.ID, EmployeeID: employee.ID, HoursWorked: 40}).Error)
	require.NoError(t, db.Create(&domain.UploadedDocument{FileName: "sheets.csv", StoragePath: "x", UploadedAt: time.Now()}).Error)

	require.NoError(t, repo.ClearAll(ctx))

	for _, model := range []interface{}{
		&domain.Client{}, &domain.Employee{}, &domain.Project{}, &domain.Cost{},
		&domain.AdditionalService{}, &domain.ProjectEmployee{}, &domain.UploadedDocument{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}

	// Clearing an already empty database succeeds
	require.NoError(t, repo.ClearAll(ctx))
}
