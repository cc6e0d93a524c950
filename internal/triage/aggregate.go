package triage

import (
	"sort"
	"time"

	"github.com/spec-kit/case-service/internal/domain"
)

// OtherKey is the catch-all count bucket for enum values outside the known
// sets. Unknown values are counted there rather than dropped so the totals
// always reconcile with the record count.
const OtherKey = "other"

// Summary holds aggregate counts derived from one record snapshot. It works
// the same over the full set or an already-filtered subset.
type Summary struct {
	Total             int
	StatusCounts      map[string]int
	OriginCounts      map[string]int
	UpcomingDeadlines []domain.CaseRecord
}

// Aggregate computes status totals, origin totals and the upcoming-deadline
// view for the given records. today feeds the deadline ordering view only;
// it is accepted here so a whole pass shares one clock reading with Filter.
func Aggregate(records []domain.CaseRecord, today time.Time) Summary {
	s := Summary{
		Total:        len(records),
		StatusCounts: make(map[string]int, len(domain.KnownStatuses)+1),
		OriginCounts: make(map[string]int, len(domain.KnownOrigins)+1),
	}
	for _, status := range domain.KnownStatuses {
		s.StatusCounts[string(status)] = 0
	}
	for _, origin := range domain.KnownOrigins {
		s.OriginCounts[string(origin)] = 0
	}

	for _, rec := range records {
		s.StatusCounts[statusKey(rec.Status)]++
		s.OriginCounts[originKey(rec.Origin)]++
		if rec.Deadline != nil && rec.Status != domain.CaseStatusClosed {
			s.UpcomingDeadlines = append(s.UpcomingDeadlines, rec)
		}
	}

	sort.SliceStable(s.UpcomingDeadlines, func(i, j int) bool {
		a, b := s.UpcomingDeadlines[i], s.UpcomingDeadlines[j]
		if !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}
		return a.CaseNumber < b.CaseNumber
	})
	return s
}

func statusKey(status domain.CaseStatus) string {
	for _, known := range domain.KnownStatuses {
		if status == known {
			return string(status)
		}
	}
	return OtherKey
}

func originKey(origin domain.CaseOrigin) string {
	for _, known := range domain.KnownOrigins {
		if origin == known {
			return string(origin)
		}
	}
	return OtherKey
}
