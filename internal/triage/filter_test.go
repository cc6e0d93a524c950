package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
)

func sampleRecords() []domain.CaseRecord {
	return []domain.CaseRecord{
		{
			ID:         "a",
			CaseNumber: "2024-0042",
			Title:      "Água parada na rua",
			Origin:     domain.CaseOriginSEI,
			Assignee:   "ricardo",
			Status:     domain.CaseStatusOpen,
			Deadline:   datePtr(2024, time.June, 9),
		},
		{
			ID:         "b",
			CaseNumber: "2024-0043",
			Title:      "Iluminação pública",
			Origin:     domain.CaseOriginFalaBR,
			Assignee:   "ana",
			Status:     domain.CaseStatusInProgress,
			Deadline:   datePtr(2024, time.June, 12),
		},
		{
			ID:         "c",
			CaseNumber: "2024-0044",
			Title:      "Atendimento demorado",
			Origin:     domain.CaseOriginSAT,
			Assignee:   "ricardo",
			Status:     domain.CaseStatusClosed,
			Deadline:   datePtr(2024, time.June, 1),
		},
		{
			ID:         "d",
			CaseNumber: "2024-0045",
			Title:      "Barulho noturno",
			Origin:     domain.CaseOriginSEI,
			Assignee:   "",
			Status:     domain.CaseStatusAwaitingResponse,
			Deadline:   nil,
		},
	}
}

func TestFilterIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, Criteria{}, date(2024, time.June, 10))
	assert.Equal(t, records, got)
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	records := sampleRecords()
	today := date(2024, time.June, 10)

	got := Filter(records, Criteria{Search: "água"}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = Filter(records, Criteria{Search: "0042"}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	got = Filter(records, Criteria{Search: "0047"}, today)
	assert.Empty(t, got)
}

func TestFilterByOriginAndAssignee(t *testing.T) {
	records := sampleRecords()
	today := date(2024, time.June, 10)

	origin := domain.CaseOriginSEI
	got := Filter(records, Criteria{Origin: &origin}, today)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "d", got[1].ID)

	assignee := "ricardo"
	got = Filter(records, Criteria{Origin: &origin, Assignee: &assignee}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterByUrgency(t *testing.T) {
	records := sampleRecords()
	today := date(2024, time.June, 10)

	expired := BucketExpired
	got := Filter(records, Criteria{Urgency: &expired}, today)
	// record c is past its deadline but closed, so it carries no urgency
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	warning := BucketWarning
	got = Filter(records, Criteria{Urgency: &warning}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilterMonotonicity(t *testing.T) {
	records := sampleRecords()
	today := date(2024, time.June, 10)

	base := Criteria{Search: "2024"}
	origin := domain.CaseOriginSEI
	narrower := Criteria{Search: "2024", Origin: &origin}
	assignee := "ricardo"
	narrowest := Criteria{Search: "2024", Origin: &origin, Assignee: &assignee}

	a := Filter(records, base, today)
	b := Filter(records, narrower, today)
	c := Filter(records, narrowest, today)
	assert.LessOrEqual(t, len(b), len(a))
	assert.LessOrEqual(t, len(c), len(b))
}

func TestFilterPreservesOrder(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, Criteria{Search: "a"}, date(2024, time.June, 10))

	var lastIdx = -1
	for _, rec := range got {
		idx := -1
		for i, orig := range records {
			if orig.ID == rec.ID {
				idx = i
				break
			}
		}
		require.Greater(t, idx, lastIdx)
		lastIdx = idx
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	snapshot := sampleRecords()
	origin := domain.CaseOriginSAT
	_ = Filter(records, Criteria{Origin: &origin}, date(2024, time.June, 10))
	assert.Equal(t, snapshot, records)
}
