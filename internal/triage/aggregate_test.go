package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
)

func TestAggregateTotalsReconcile(t *testing.T) {
	records := sampleRecords()
	// one record with a status outside the lifecycle enum
	records = append(records, domain.CaseRecord{
		ID:         "e",
		CaseNumber: "2024-0046",
		Title:      "Pendência antiga",
		Origin:     domain.CaseOrigin("EMAIL"),
		Status:     domain.CaseStatus("Pending"),
	})

	s := Aggregate(records, date(2024, time.June, 10))

	statusSum := 0
	for _, n := range s.StatusCounts {
		statusSum += n
	}
	originSum := 0
	for _, n := range s.OriginCounts {
		originSum += n
	}
	assert.Equal(t, len(records), s.Total)
	assert.Equal(t, len(records), statusSum)
	assert.Equal(t, len(records), originSum)
}

func TestAggregateUnknownValuesCountedAsOther(t *testing.T) {
	records := []domain.CaseRecord{
		{ID: "a", Status: domain.CaseStatus("Pending"), Origin: domain.CaseOrigin("EMAIL")},
		{ID: "b", Status: domain.CaseStatusOpen, Origin: domain.CaseOriginSEI},
	}

	s := Aggregate(records, date(2024, time.June, 10))
	assert.Equal(t, 1, s.StatusCounts[OtherKey])
	assert.Equal(t, 1, s.StatusCounts[string(domain.CaseStatusOpen)])
	assert.Equal(t, 1, s.OriginCounts[OtherKey])
	assert.Equal(t, 1, s.OriginCounts[string(domain.CaseOriginSEI)])
}

func TestAggregateZeroCountsPresent(t *testing.T) {
	s := Aggregate(nil, date(2024, time.June, 10))

	assert.Zero(t, s.Total)
	for _, status := range domain.KnownStatuses {
		n, ok := s.StatusCounts[string(status)]
		assert.True(t, ok)
		assert.Zero(t, n)
	}
	for _, origin := range domain.KnownOrigins {
		n, ok := s.OriginCounts[string(origin)]
		assert.True(t, ok)
		assert.Zero(t, n)
	}
	assert.Empty(t, s.UpcomingDeadlines)
}

func TestAggregateUpcomingDeadlinesSorted(t *testing.T) {
	records := []domain.CaseRecord{
		{ID: "a", CaseNumber: "A-1", Status: domain.CaseStatusOpen, Deadline: datePtr(2024, time.July, 1)},
		{ID: "b", CaseNumber: "B-1", Status: domain.CaseStatusOpen, Deadline: datePtr(2024, time.June, 15)},
		{ID: "c", CaseNumber: "C-1", Status: domain.CaseStatusOpen, Deadline: datePtr(2024, time.June, 20)},
	}

	s := Aggregate(records, date(2024, time.June, 10))
	require.Len(t, s.UpcomingDeadlines, 3)
	assert.Equal(t, "b", s.UpcomingDeadlines[0].ID)
	assert.Equal(t, "c", s.UpcomingDeadlines[1].ID)
	assert.Equal(t, "a", s.UpcomingDeadlines[2].ID)
}

func TestAggregateUpcomingExcludesClosedAndUndated(t *testing.T) {
	records := []domain.CaseRecord{
		{ID: "a", CaseNumber: "A-1", Status: domain.CaseStatusClosed, Deadline: datePtr(2024, time.June, 15)},
		{ID: "b", CaseNumber: "B-1", Status: domain.CaseStatusOpen},
		{ID: "c", CaseNumber: "C-1", Status: domain.CaseStatusInProgress, Deadline: datePtr(2024, time.June, 20)},
	}

	s := Aggregate(records, date(2024, time.June, 10))
	require.Len(t, s.UpcomingDeadlines, 1)
	assert.Equal(t, "c", s.UpcomingDeadlines[0].ID)
}

func TestAggregateDeadlineTieBrokenByCaseNumber(t *testing.T) {
	records := []domain.CaseRecord{
		{ID: "a", CaseNumber: "2024-0099", Status: domain.CaseStatusOpen, Deadline: datePtr(2024, time.June, 15)},
		{ID: "b", CaseNumber: "2024-0001", Status: domain.CaseStatusOpen, Deadline: datePtr(2024, time.June, 15)},
	}

	s := Aggregate(records, date(2024, time.June, 10))
	require.Len(t, s.UpcomingDeadlines, 2)
	assert.Equal(t, "2024-0001", s.UpcomingDeadlines[0].CaseNumber)
	assert.Equal(t, "2024-0099", s.UpcomingDeadlines[1].CaseNumber)
}

func TestAggregateAcceptsFilteredSubset(t *testing.T) {
	records := sampleRecords()
	today := date(2024, time.June, 10)

	origin := domain.CaseOriginSEI
	subset := Filter(records, Criteria{Origin: &origin}, today)
	s := Aggregate(subset, today)
	assert.Equal(t, len(subset), s.Total)
	assert.Equal(t, len(subset), s.OriginCounts[string(domain.CaseOriginSEI)])
}
