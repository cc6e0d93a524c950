package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/case-service/internal/domain"
)

func TestWriteCSVStartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteCSVColumnOrder(t *testing.T) {
	records := []domain.CaseRecord{
		{
			CaseNumber:  "2024-0042",
			Title:       "Água parada",
			Description: "Foco de mosquito na rua principal",
			Origin:      domain.CaseOriginSEI,
			Assignee:    "ricardo",
			Status:      domain.CaseStatusOpen,
			CreatedAt:   time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF})))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"NUP", "Title", "Origin", "Status", "Assignee", "Date", "Description"}, rows[0])
	assert.Equal(t, []string{"2024-0042", "Água parada", "SEI", "OPEN", "ricardo", "2024-06-01", "Foco de mosquito na rua principal"}, rows[1])
}

func TestWriteCSVEscapesEmbeddedDelimitersAndQuotes(t *testing.T) {
	records := []domain.CaseRecord{
		{
			CaseNumber:  "2024-0001",
			Title:       `Title with "quotes", commas`,
			Description: "line one\nline two",
			Origin:      domain.CaseOriginSAT,
			Status:      domain.CaseStatusOpen,
			CreatedAt:   time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	// a standard CSV reader must round-trip the payload unchanged
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\ufeff")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `Title with "quotes", commas`, rows[1][1])
	assert.Equal(t, "line one\nline two", rows[1][6])
}

func TestWriteCSVPreservesOrder(t *testing.T) {
	records := []domain.CaseRecord{
		{CaseNumber: "C", Status: domain.CaseStatusOpen, Origin: domain.CaseOriginSEI},
		{CaseNumber: "A", Status: domain.CaseStatusOpen, Origin: domain.CaseOriginSEI},
		{CaseNumber: "B", Status: domain.CaseStatusOpen, Origin: domain.CaseOriginSEI},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\ufeff")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "C", rows[1][0])
	assert.Equal(t, "A", rows[2][0])
	assert.Equal(t, "B", rows[3][0])
}
