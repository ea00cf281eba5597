package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gradi-as/contractor-api/internal/domain"
	"github.com/gradi-as/contractor-api/internal/repository"
	"go.uber.org/zap"
)

// DashboardService computes the business summary shown on the
// dashboard. Earnings only count completed projects; the year of an
// earning is the year of the project's end date.
type DashboardService struct {
	projectRepo *repository.ProjectRepository
	clientRepo  *repository.ClientRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewDashboardService(
	projectRepo *repository.ProjectRepository,
	clientRepo *repository.ClientRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock overrides the clock, for tests
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.Summary, error) {
	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	totalClients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	earnings, err := s.projectRepo.ListCompletedEarnings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed earnings: %w", err)
	}

	currentYear := s.now().UTC().Year()
	byYear := make(map[int]float64)
	var completedThisYear int64
	var completedTotal float64

	for _, e := range earnings {
		year := e.EndDate.Year()
		byYear[year] += e.TotalGain
		completedTotal += e.TotalGain
		if year == currentYear {
			completedThisYear++
		}
	}

	years := make([]domain.YearEarnings, 0, len(byYear))
	for year, amount := range byYear {
		years = append(years, domain.YearEarnings{Year: year, Earnings: amount})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	summary := &domain.Summary{
		TotalProjects:             totalProjects,
		CompletedProjectsThisYear: completedThisYear,
		CurrentYearEarnings:       byYear[currentYear],
		TotalEarningsByYear:       years,
		TotalClients:              totalClients,
	}
	if len(earnings) > 0 {
		summary.AverageEarningsPerProject = completedTotal / float64(len(earnings))
	}
	if totalProjects > 0 {
		summary.ProjectCompletionRate = float64(len(earnings)) / float64(totalProjects) * 100
	}
	return summary, nil
}
