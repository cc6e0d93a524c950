package service

import (
	"context"
	"time"

	"github.com/spec-kit/case-service/internal/repository"
	"github.com/spec-kit/case-service/internal/triage"
)

// DashboardService derives the dashboard view from the case snapshot.
type DashboardService struct {
	cases repository.CaseRepository
	now   func() time.Time
}

// NewDashboardService constructs the service. now defaults to the wall clock
// and is injectable for tests.
func NewDashboardService(cases repository.CaseRepository, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{cases: cases, now: now}
}

// Overview aggregates the full snapshot. The clock is read once and the same
// reading feeds every classification in the pass. Safe to re-invoke on every
// store change: no state is carried between calls.
func (s *DashboardService) Overview(ctx context.Context) (triage.Summary, time.Time, error) {
	records, err := s.cases.List(ctx)
	if err != nil {
		return triage.Summary{}, time.Time{}, err
	}
	today := s.now()
	return triage.Aggregate(records, today), today, nil
}

// FilteredOverview aggregates a filtered subset with the same single clock
// reading for filter and aggregate.
func (s *DashboardService) FilteredOverview(ctx context.Context, criteria triage.Criteria) (triage.Summary, time.Time, error) {
	records, err := s.cases.List(ctx)
	if err != nil {
		return triage.Summary{}, time.Time{}, err
	}
	today := s.now()
	subset := triage.Filter(records, criteria, today)
	return triage.Aggregate(subset, today), today, nil
}
