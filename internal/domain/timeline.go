package domain

import "time"

// TimelineEntry is an immutable audit trail record for a case.
// Entries are appended on creation and on every mutation, never edited.
type TimelineEntry struct {
	ID        string
	CaseID    string
	Action    string
	Actor     string
	Status    CaseStatus
	CreatedAt time.Time
}
