package dto

import (
	"time"

	"github.com/spec-kit/case-service/internal/domain"
)

// CreateCaseRequest payload.
type CreateCaseRequest struct {
	CaseNumber  string `json:"case_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Assignee    string `json:"assignee"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD, empty for no SLA
}

// UpdateCaseRequest payload.
type UpdateCaseRequest struct {
	CaseNumber  string `json:"case_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Assignee    string `json:"assignee"`
	Deadline    string `json:"deadline"`
}

// ChangeStatusRequest payload.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CaseSummary response.
type CaseSummary struct {
	ID          string            `json:"id"`
	CaseNumber  string            `json:"case_number"`
	Title       string            `json:"title"`
	Origin      domain.CaseOrigin `json:"origin"`
	Assignee    string            `json:"assignee"`
	Status      domain.CaseStatus `json:"status"`
	Deadline    *string           `json:"deadline,omitempty"`
	Urgency     *UrgencyBadge     `json:"urgency,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CreatedDate string            `json:"created_date"`
}

// UrgencyBadge carries both the stable filter key and the display label.
type UrgencyBadge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CaseDetailResponse provides full case info.
type CaseDetailResponse struct {
	CaseSummary
	Description string             `json:"description"`
	ClosedAt    *time.Time         `json:"closed_at,omitempty"`
	Timeline    []TimelineResponse `json:"timeline"`
	Comments    []CommentResponse  `json:"comments"`
}

// TimelineResponse represents an audit trail entry.
type TimelineResponse struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Status    domain.CaseStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// CommentResponse represents a case comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
