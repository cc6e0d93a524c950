package triage

import (
	"strings"
	"time"

	"github.com/spec-kit/case-service/internal/domain"
)

// Criteria captures the list view's filter inputs. Every field is optional;
// active fields combine with AND.
type Criteria struct {
	Search   string
	Origin   *domain.CaseOrigin
	Assignee *string
	Urgency  *Bucket
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && c.Origin == nil && c.Assignee == nil && c.Urgency == nil
}

// Filter returns the records matching every active criterion, preserving
// input order. Empty criteria return the input unchanged.
func Filter(records []domain.CaseRecord, c Criteria, today time.Time) []domain.CaseRecord {
	if c.IsZero() {
		return records
	}
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]domain.CaseRecord, 0, len(records))
	for _, rec := range records {
		if !matches(rec, c, search, today) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matches(rec domain.CaseRecord, c Criteria, search string, today time.Time) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(rec.CaseNumber), search) &&
		!strings.Contains(strings.ToLower(rec.Title), search) {
		return false
	}
	if c.Origin != nil && rec.Origin != *c.Origin {
		return false
	}
	if c.Assignee != nil && rec.Assignee != *c.Assignee {
		return false
	}
	if c.Urgency != nil {
		bucket, ok := Classify(rec.Deadline, rec.Status, today)
		if !ok || bucket != *c.Urgency {
			return false
		}
	}
	return true
}
