package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
)

func TestParseDeadline(t *testing.T) {
	parsed := parseDeadline("2024-06-14")
	require.NotNil(t, parsed)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 14, parsed.Day())

	assert.Nil(t, parseDeadline(""))
	assert.Nil(t, parseDeadline("  "))
	// malformed values degrade to no deadline instead of failing the request
	assert.Nil(t, parseDeadline("14/06/2024"))
	assert.Nil(t, parseDeadline("not-a-date"))
}

func TestCaseSummaryUrgencyBadge(t *testing.T) {
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	record := domain.CaseRecord{
		ID:         "c1",
		CaseNumber: "23480.001234/2024-11",
		Title:      "Water supply complaint",
		Origin:     domain.CaseOriginSEI,
		Status:     domain.CaseStatusOpen,
		Deadline:   &deadline,
		CreatedAt:  time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
	}

	summary := caseSummary(&record, today)
	require.NotNil(t, summary.Urgency)
	assert.Equal(t, "warning", summary.Urgency.Key)
	assert.Equal(t, "At risk", summary.Urgency.Label)
	require.NotNil(t, summary.Deadline)
	assert.Equal(t, "2024-06-12", *summary.Deadline)
	assert.Equal(t, "2024-06-01", summary.CreatedDate)
}

func TestCaseSummaryClosedHasNoBadge(t *testing.T) {
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	record := domain.CaseRecord{
		ID:        "c2",
		Status:    domain.CaseStatusClosed,
		Deadline:  &deadline,
		CreatedAt: today,
	}

	summary := caseSummary(&record, today)
	assert.Nil(t, summary.Urgency)
}
