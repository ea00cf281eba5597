package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func seedClient(t *testing.T, db *gorm.DB, name, email string) *domain.Client {
	t.Helper()
	client := &domain.Client{Name: name, Email: email}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedProject(t *testing.T, db *gorm.DB, p domain.Project) *domain.Project {
	t.Helper()
	if p.BuildingType == "" {
		p.BuildingType = domain.BuildingTypeResidential
	}
	if p.Status == "" {
		p.Status = domain.ProjectStatusPending
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestProjectRepositoryList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	ann := seedClient(t, db, "Ann Lee", "ann@example.com")
	bob := seedClient(t, db, "Bob Ray", "bob@example.com")

	seedProject(t, db, domain.Project{
		ClientID: ann.ID, Address: "1 Main St", JobType: "Interior",
		AreaSizeSqft: 850, StartDate: day(t, "2026-01-05"), EndDate: day(t, "2026-01-20"),
		Status: domain.ProjectStatusCompleted,
	})
	seedProject(t, db, domain.Project{
		ClientID: ann.ID, Address: "3 Pine Rd", JobType: "Exterior",
		AreaSizeSqft: 1200, StartDate: day(t, "2026-02-01"), EndDate: day(t, "2026-02-14"),
		BuildingType: domain.BuildingTypeCommercial,
	})
	seedProject(t, db, domain.Project{
		ClientID: bob.ID, Address: "9 Elm St", JobType: "Interior",
		AreaSizeSqft: 400, StartDate: day(t, "2026-03-01"), EndDate: day(t, "2026-03-05"),
	})

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		projects, total, err := repo.List(ctx, 1, 20, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, projects, 3)
		assert.Equal(t, "9 Elm St", projects[0].Address)
		require.NotNil(t, projects[0].Client)
		assert.Equal(t, "Bob Ray", projects[0].Client.Name)
	})

	t.Run("by status", func(t *testing.T) {
		status := domain.ProjectStatusCompleted
		projects, total, err := repo.List(ctx, 1, 20, &ProjectFilters{Status: &status})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, projects, 1)
		assert.Equal(t, "1 Main St", projects[0].Address)
	})

	t.Run("by building type", func(t *testing.T) {
		bt := domain.BuildingTypeCommercial
		_, total, err := repo.List(ctx, 1, 20, &ProjectFilters{BuildingType: &bt})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("client name is case-insensitive substring", func(t *testing.T) {
		_, total, err := repo.List(ctx, 1, 20, &ProjectFilters{ClientName: "ann"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("area range", func(t *testing.T) {
		min, max := 500.0, 1000.0
		projects, total, err := repo.List(ctx, 1, 20, &ProjectFilters{MinArea: &min, MaxArea: &max})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, 850.0, projects[0].AreaSizeSqft)
	})

	t.Run("date window", func(t *testing.T) {
		start, end := day(t, "2026-02-01"), day(t, "2026-03-31")
		_, total, err := repo.List(ctx, 1, 20, &ProjectFilters{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("search spans client and project fields", func(t *testing.T) {
		_, total, err := repo.List(ctx, 1, 20, &ProjectFilters{Search: "pine"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		_, total, err = repo.List(ctx, 1, 20, &ProjectFilters{Search: "bob@example"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("pagination", func(t *testing.T) {
		projects, total, err := repo.List(ctx, 2, 2, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, projects, 1)
	})
}

func TestProjectRepositoryCalendar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	ann := seedClient(t, db, "Ann Lee", "ann@example.com")

	january := seedProject(t, db, domain.Project{
		ClientID: ann.ID, Address: "1 Main St",
		StartDate: day(t, "2026-01-05"), EndDate: day(t, "2026-01-20"),
		Status: domain.ProjectStatusCompleted,
	})
	seedProject(t, db, domain.Project{
		ClientID: ann.ID, Address: "3 Pine Rd",
		StartDate: day(t, "2026-03-01"), EndDate: day(t, "2026-03-10"),
	})

	t.Run("window includes overlapping projects", func(t *testing.T) {
		start, end := day(t, "2026-01-01"), day(t, "2026-01-10")
		projects, err := repo.Calendar(ctx, &start, &end, nil)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, january.ID, projects[0].ID)
		require.NotNil(t, projects[0].Client)
	})

	t.Run("window excludes projects outside it", func(t *testing.T) {
		start, end := day(t, "2026-02-01"), day(t, "2026-02-28")
		projects, err := repo.Calendar(ctx, &start, &end, nil)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("status filter", func(t *testing.T) {
		status := domain.ProjectStatusPending
		projects, err := repo.Calendar(ctx, nil, nil, &status)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "3 Pine Rd", projects[0].Address)
	})

	t.Run("no bounds returns everything ordered by start", func(t *testing.T) {
		projects, err := repo.Calendar(ctx, nil, nil, nil)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, january.ID, projects[0].ID)
	})
}

func TestProjectRepositoryListCompletedEarnings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	ann := seedClient(t, db, "Ann Lee", "ann@example.com")

	seedProject(t, db, domain.Project{
		ClientID: ann.ID, StartDate: day(t, "2025-06-01"), EndDate: day(t, "2025-06-20"),
		TotalGain: 1000, Status: domain.ProjectStatusCompleted,
	})
	seedProject(t, db, domain.Project{
		ClientID: ann.ID, StartDate: day(t, "2026-01-05"), EndDate: day(t, "2026-01-20"),
		TotalGain: 2400, Status: domain.ProjectStatusCompleted,
	})
	seedProject(t, db, domain.Project{
		ClientID: ann.ID, StartDate: day(t, "2026-02-01"), EndDate: day(t, "2026-02-14"),
		TotalGain: 9999, Status: domain.ProjectStatusInProgress,
	})

	earnings, err := repo.ListCompletedEarnings(ctx)
	require.NoError(t, err)
	require.Len(t, earnings, 2)

	var total float64
	for _, e := range earnings {
		total += e.TotalGain
	}
	assert.Equal(t, 3400.0, total)
}
