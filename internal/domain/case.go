package domain

import "time"

// CaseStatus enumerates lifecycle states for case records.
type CaseStatus string

const (
	CaseStatusOpen             CaseStatus = "OPEN"
	CaseStatusInProgress       CaseStatus = "IN_PROGRESS"
	CaseStatusAwaitingResponse CaseStatus = "AWAITING_RESPONSE"
	CaseStatusClosed           CaseStatus = "CLOSED"
)

// KnownStatuses lists lifecycle values in display order.
var KnownStatuses = []CaseStatus{
	CaseStatusOpen,
	CaseStatusInProgress,
	CaseStatusAwaitingResponse,
	CaseStatusClosed,
}

// CaseOrigin enumerates intake channels.
type CaseOrigin string

const (
	CaseOriginSEI    CaseOrigin = "SEI"
	CaseOriginFalaBR CaseOrigin = "FALA_BR"
	CaseOriginSAT    CaseOrigin = "SAT"
)

// KnownOrigins lists intake channels in display order.
var KnownOrigins = []CaseOrigin{
	CaseOriginSEI,
	CaseOriginFalaBR,
	CaseOriginSAT,
}

// CaseRecord is the aggregate for tracked manifestations.
type CaseRecord struct {
	ID          string
	CaseNumber  string
	Title       string
	Description string
	Origin      CaseOrigin
	Assignee    string
	Status      CaseStatus
	Deadline    *time.Time
	CreatedAt   time.Time
	ClosedAt    *time.Time
	Timeline    []TimelineEntry
}
