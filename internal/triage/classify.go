// Package triage derives dashboard state from an in-memory case snapshot:
// SLA urgency per record, composable list filtering, and aggregate counts.
// Every function is pure and total; "today" is always passed in so one
// clock reading covers a whole pass.
package triage

import (
	"math"
	"time"

	"github.com/spec-kit/case-service/internal/domain"
)

// Bucket is the machine-readable urgency key. It is stable across locales
// and is the value filter criteria match against.
type Bucket string

const (
	BucketExpired Bucket = "expired"
	BucketWarning Bucket = "warning"
	BucketOK      Bucket = "ok"
)

// Label returns the display name for a bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketExpired:
		return "Overdue"
	case BucketWarning:
		return "At risk"
	case BucketOK:
		return "On track"
	}
	return ""
}

// warningWindowDays is the inclusive days-remaining threshold below which an
// open case is flagged as at risk.
const warningWindowDays = 3

// Classify buckets a case's SLA urgency relative to today. The second return
// is false when the case carries no urgency: deadline absent or case closed,
// even if the deadline is already past.
func Classify(deadline *time.Time, status domain.CaseStatus, today time.Time) (Bucket, bool) {
	if deadline == nil || status == domain.CaseStatusClosed {
		return "", false
	}
	days := daysUntil(*deadline, today)
	switch {
	case days < 0:
		return BucketExpired, true
	case days <= warningWindowDays:
		return BucketWarning, true
	default:
		return BucketOK, true
	}
}

// daysUntil computes calendar days between today and the deadline. Both
// operands are anchored to midnight in today's location so a date-only
// deadline (often carried at UTC midnight) never mixes zones with the local
// clock. The ceil keeps the count whole-day accurate across daylight-saving
// transitions where a day is not exactly 24h.
func daysUntil(deadline, today time.Time) int {
	loc := today.Location()
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, loc)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	return int(math.Ceil(d.Sub(t).Hours() / 24))
}
