package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
	"github.com/spec-kit/case-service/internal/triage"
)

func TestOverviewUsesSingleClockReading(t *testing.T) {
	repo := &fakeCaseRepo{}
	deadline := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &domain.CaseRecord{
		CaseNumber: "2024-0001",
		Title:      "Com prazo",
		Origin:     domain.CaseOriginSEI,
		Status:     domain.CaseStatusOpen,
		Deadline:   &deadline,
	}))

	calls := 0
	svc := NewDashboardService(repo, func() time.Time {
		calls++
		return time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	})

	summary, today, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC), today)
	assert.Equal(t, 1, summary.Total)
	require.Len(t, summary.UpcomingDeadlines, 1)
}

func TestOverviewIdempotentAcrossInvocations(t *testing.T) {
	repo := &fakeCaseRepo{}
	require.NoError(t, repo.Create(context.Background(), &domain.CaseRecord{
		CaseNumber: "2024-0001",
		Title:      "Aberta",
		Origin:     domain.CaseOriginSAT,
		Status:     domain.CaseStatusOpen,
	}))

	svc := NewDashboardService(repo, func() time.Time {
		return time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	})

	first, _, err := svc.Overview(context.Background())
	require.NoError(t, err)
	second, _, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilteredOverviewCountsSubset(t *testing.T) {
	repo := &fakeCaseRepo{}
	for _, origin := range []domain.CaseOrigin{domain.CaseOriginSEI, domain.CaseOriginSEI, domain.CaseOriginSAT} {
		require.NoError(t, repo.Create(context.Background(), &domain.CaseRecord{
			CaseNumber: "2024-000x",
			Title:      "Registro",
			Origin:     origin,
			Status:     domain.CaseStatusOpen,
		}))
	}

	svc := NewDashboardService(repo, func() time.Time {
		return time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	})

	origin := domain.CaseOriginSEI
	summary, _, err := svc.FilteredOverview(context.Background(), triage.Criteria{Origin: &origin})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.OriginCounts[string(domain.CaseOriginSEI)])
	assert.Equal(t, 0, summary.OriginCounts[string(domain.CaseOriginSAT)])
}
