package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
)

func TestWriteReportProducesPDF(t *testing.T) {
	deadline := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
	record := &domain.CaseRecord{
		CaseNumber:  "2024-0042",
		Title:       "Água parada",
		Description: "Foco de mosquito na rua principal.",
		Origin:      domain.CaseOriginFalaBR,
		Assignee:    "ana",
		Status:      domain.CaseStatusInProgress,
		Deadline:    &deadline,
		CreatedAt:   time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
	}

	out, err := WriteReport(record, time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.NotEmpty(t, out)
}

func TestWriteReportHandlesMissingDeadline(t *testing.T) {
	record := &domain.CaseRecord{
		CaseNumber: "2024-0001",
		Title:      "Sem prazo",
		Status:     domain.CaseStatusOpen,
		Origin:     domain.CaseOriginSEI,
		CreatedAt:  time.Now(),
	}

	out, err := WriteReport(record, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
