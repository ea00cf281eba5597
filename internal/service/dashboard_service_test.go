package service

import (
	"context"
	"testing"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/repository"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func dashboardDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func seedDashboardProject(t *testing.T, db *gorm.DB, clientID uint, status domain.ProjectStatus, end string, gain float64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Project{
		ClientID:     clientID,
		BuildingType: domain.BuildingTypeResidential,
		StartDate:    dashboardDate(t, "2025-01-01"),
		EndDate:      dashboardDate(t, end),
		TotalGain:    gain,
		Status:       status,
	}).Error)
}

func TestDashboardSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(repository.NewProjectRepository(db), repository.NewClientRepository(db), zap.NewNop())
	svc.SetClock(func() time.Time { return dashboardDate(t, "2026-08-15") })

	client := domain.Client{Name: "Ann Lee", Email: "ann@example.com"}
	require.NoError(t, db.Create(&client).Error)

	seedDashboardProject(t, db, client.ID, domain.ProjectStatusCompleted, "2025-06-20", 1000)
	seedDashboardProject(t, db, client.ID, domain.ProjectStatusCompleted, "2026-01-20", 2400)
	seedDashboardProject(t, db, client.ID, domain.ProjectStatusCompleted, "2026-03-05", 600)
	seedDashboardProject(t, db, client.ID, domain.ProjectStatusInProgress, "2026-04-01", 9999)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 4, summary.TotalProjects)
	assert.EqualValues(t, 1, summary.TotalClients)
	assert.EqualValues(t, 2, summary.CompletedProjectsThisYear)
	assert.Equal(t, 3000.0, summary.CurrentYearEarnings)

	require.Len(t, summary.TotalEarningsByYear, 2)
	assert.Equal(t, domain.YearEarnings{Year: 2025, Earnings: 1000}, summary.TotalEarningsByYear[0])
	assert.Equal(t, domain.YearEarnings{Year: 2026, Earnings: 3000}, summary.TotalEarningsByYear[1])

	assert.InDelta(t, 4000.0/3.0, summary.AverageEarningsPerProject, 0.0001)
	assert.Equal(t, 75.0, summary.ProjectCompletionRate)
}

func TestDashboardSummaryEmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(repository.NewProjectRepository(db), repository.NewClientRepository(db), zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 0, summary.TotalProjects)
	assert.EqualValues(t, 0, summary.TotalClients)
	assert.Empty(t, summary.TotalEarningsByYear)
	assert.Equal(t, 0.0, summary.AverageEarningsPerProject)
	assert.Equal(t, 0.0, summary.ProjectCompletionRate)
}
