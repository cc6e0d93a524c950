package domain

import "time"

// Comment captures a discussion entry attached to a case.
// Comments are append-only and listed newest-first.
type Comment struct {
	ID        string
	CaseID    string
	Body      string
	Author    string
	CreatedAt time.Time
}
