package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshotCopiesCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/cases", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/cases", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/dashboard", "GET", 200, 3*time.Millisecond)
	m.RecordError("/cases/missing", "GET", "NOT_FOUND")

	requests, errs := m.Snapshot()
	assert.Equal(t, int64(2), requests["/cases|GET|200"])
	assert.Equal(t, int64(1), requests["/dashboard|GET|200"])
	assert.Equal(t, int64(1), errs["/cases/missing|GET|NOT_FOUND"])

	// mutating the snapshot must not touch the live counters
	requests["/cases|GET|200"] = 99
	fresh, _ := m.Snapshot()
	assert.Equal(t, int64(2), fresh["/cases|GET|200"])
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/cases", "GET", 200, time.Millisecond)
	m.RecordError("/cases", "GET", "INTERNAL_ERROR")

	requests, errs := m.Snapshot()
	require.Nil(t, requests)
	require.Nil(t, errs)
}
