package events

import (
	"time"

	"github.com/spec-kit/case-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCaseCreated       EventType = "case_created"
	EventCaseUpdated       EventType = "case_updated"
	EventCaseStatusChanged EventType = "case_status_changed"
	EventCaseDeleted       EventType = "case_deleted"
	EventCaseCommentAdded  EventType = "case_comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CaseID    string      `json:"case_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CaseCreatedPayload payload.
type CaseCreatedPayload struct {
	CaseNumber string            `json:"case_number"`
	Origin     domain.CaseOrigin `json:"origin"`
	Title      string            `json:"title"`
	Assignee   string            `json:"assignee,omitempty"`
}

// CaseStatusChangedPayload payload.
type CaseStatusChangedPayload struct {
	OldStatus domain.CaseStatus `json:"old_status"`
	NewStatus domain.CaseStatus `json:"new_status"`
}

// CaseUpdatedPayload payload.
type CaseUpdatedPayload struct {
	CaseNumber string `json:"case_number"`
}

// CaseDeletedPayload payload.
type CaseDeletedPayload struct {
	CaseNumber string `json:"case_number"`
}

// CaseCommentAddedPayload payload.
type CaseCommentAddedPayload struct {
	CommentID   string `json:"comment_id"`
	Author      string `json:"author"`
	BodyPreview string `json:"body_preview"`
}
