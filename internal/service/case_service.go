package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/case-service/internal/domain"
	"github.com/spec-kit/case-service/internal/events"
	"github.com/spec-kit/case-service/internal/repository"
	"github.com/spec-kit/case-service/internal/triage"
	apperrors "github.com/spec-kit/case-service/pkg/util/errorutil"
)

// CaseService coordinates case record workflows.
type CaseService struct {
	cases      repository.CaseRepository
	timeline   repository.TimelineRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// CaseDependencies bundles repositories for the case service.
type CaseDependencies struct {
	CaseRepo     repository.CaseRepository
	TimelineRepo repository.TimelineRepository
	CommentRepo  repository.CommentRepository
	Dispatcher   events.Dispatcher
	Now          func() time.Time
}

// CaseInput describes creation and edit payloads.
type CaseInput struct {
	CaseNumber  string
	Title       string
	Description string
	Origin      domain.CaseOrigin
	Assignee    string
	Deadline    *time.Time
}

// NewCaseService constructs the service.
func NewCaseService(deps CaseDependencies) *CaseService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &CaseService{
		cases:      deps.CaseRepo,
		timeline:   deps.TimelineRepo,
		comments:   deps.CommentRepo,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// Create registers a new case and seeds its timeline with a created entry.
func (s *CaseService) Create(ctx context.Context, actor string, input CaseInput) (*domain.CaseRecord, error) {
	if err := validateCaseInput(input); err != nil {
		return nil, err
	}

	record := &domain.CaseRecord{
		CaseNumber:  strings.TrimSpace(input.CaseNumber),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Origin:      input.Origin,
		Assignee:    strings.TrimSpace(input.Assignee),
		Status:      domain.CaseStatusOpen,
		Deadline:    input.Deadline,
	}
	if record.Origin == "" {
		record.Origin = domain.CaseOriginSEI
	}

	if err := s.cases.Create(ctx, record); err != nil {
		return nil, err
	}
	if err := s.appendTimeline(ctx, record, actor, "Case created"); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventCaseCreated,
		CaseID: record.ID,
		Actor:  actor,
		Payload: events.CaseCreatedPayload{
			CaseNumber: record.CaseNumber,
			Origin:     record.Origin,
			Title:      record.Title,
			Assignee:   record.Assignee,
		},
	})
	return record, nil
}

// List returns the current full snapshot, newest first, optionally narrowed
// by filter criteria. The snapshot order comes from the store; filtering is
// a stable in-memory selection sharing one clock reading.
func (s *CaseService) List(ctx context.Context, criteria triage.Criteria) ([]domain.CaseRecord, error) {
	records, err := s.cases.List(ctx)
	if err != nil {
		return nil, err
	}
	return triage.Filter(records, criteria, s.now()), nil
}

// Get fetches a case with its timeline and comments (comments newest-first).
func (s *CaseService) Get(ctx context.Context, id string) (*domain.CaseRecord, []domain.Comment, error) {
	record, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	timeline, err := s.timeline.ListByCase(ctx, record.ID)
	if err != nil {
		return nil, nil, err
	}
	record.Timeline = timeline
	comments, err := s.comments.ListByCase(ctx, record.ID)
	if err != nil {
		return nil, nil, err
	}
	return record, comments, nil
}

// Update edits case fields and appends one timeline entry.
func (s *CaseService) Update(ctx context.Context, actor, id string, input CaseInput) (*domain.CaseRecord, error) {
	if err := validateCaseInput(input); err != nil {
		return nil, err
	}

	record, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.CaseNumber = strings.TrimSpace(input.CaseNumber)
	record.Title = strings.TrimSpace(input.Title)
	record.Description = strings.TrimSpace(input.Description)
	if input.Origin != "" {
		record.Origin = input.Origin
	}
	record.Assignee = strings.TrimSpace(input.Assignee)
	record.Deadline = input.Deadline

	if err := s.cases.Update(ctx, record); err != nil {
		return nil, err
	}
	if err := s.appendTimeline(ctx, record, actor, "Case updated"); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventCaseUpdated,
		CaseID:  record.ID,
		Actor:   actor,
		Payload: events.CaseUpdatedPayload{CaseNumber: record.CaseNumber},
	})
	return record, nil
}

// ChangeStatus moves a case through the lifecycle, appending exactly one
// timeline entry that records the new status.
func (s *CaseService) ChangeStatus(ctx context.Context, actor, id string, newStatus domain.CaseStatus) (*domain.CaseRecord, error) {
	record, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(record.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": record.Status,
			"to":   newStatus,
		})
	}

	oldStatus := record.Status
	record.Status = newStatus
	if newStatus == domain.CaseStatusClosed {
		closedAt := s.now()
		record.ClosedAt = &closedAt
	} else if record.ClosedAt != nil {
		// reopening clears the close marker
		record.ClosedAt = nil
	}

	if err := s.cases.Update(ctx, record); err != nil {
		return nil, err
	}
	if err := s.appendTimeline(ctx, record, actor, "Status changed to "+string(newStatus)); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventCaseStatusChanged,
		CaseID: record.ID,
		Actor:  actor,
		Payload: events.CaseStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return record, nil
}

// Delete removes a case and its children. Hard delete, no tombstone; the
// privilege gate lives at the route level.
func (s *CaseService) Delete(ctx context.Context, actor, id string) error {
	record, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.cases.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventCaseDeleted,
		CaseID:  record.ID,
		Actor:   actor,
		Payload: events.CaseDeletedPayload{CaseNumber: record.CaseNumber},
	})
	return nil
}

// AddComment appends a comment to a case.
func (s *CaseService) AddComment(ctx context.Context, actor, id, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("comment body required", nil)
	}
	record, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		CaseID: record.ID,
		Body:   body,
		Author: actor,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:   events.EventCaseCommentAdded,
		CaseID: record.ID,
		Actor:  actor,
		Payload: events.CaseCommentAddedPayload{
			CommentID:   comment.ID,
			Author:      comment.Author,
			BodyPreview: stringPreview(comment.Body, 120),
		},
	})
	return comment, nil
}

func (s *CaseService) appendTimeline(ctx context.Context, record *domain.CaseRecord, actor, action string) error {
	entry := &domain.TimelineEntry{
		CaseID: record.ID,
		Action: action,
		Actor:  actor,
		Status: record.Status,
	}
	if err := s.timeline.Append(ctx, entry); err != nil {
		return err
	}
	record.Timeline = append(record.Timeline, *entry)
	return nil
}

func (s *CaseService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func validateCaseInput(input CaseInput) error {
	if strings.TrimSpace(input.CaseNumber) == "" || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return apperrors.NewValidationError("case_number, title, description required", nil)
	}
	return nil
}

// stringPreview truncates on rune boundaries; comment bodies are routinely
// accented Portuguese text and must stay valid UTF-8 in event payloads.
func stringPreview(body string, max int) string {
	runes := []rune(strings.TrimSpace(body))
	if len(runes) <= max {
		return string(runes)
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// allowedTransitions encodes the status lifecycle: the three active states
// are mutually reachable, CLOSED is reachable from any state, and a closed
// case may be explicitly reopened.
var allowedTransitions = map[domain.CaseStatus][]domain.CaseStatus{
	domain.CaseStatusOpen:             {domain.CaseStatusInProgress, domain.CaseStatusAwaitingResponse, domain.CaseStatusClosed},
	domain.CaseStatusInProgress:       {domain.CaseStatusOpen, domain.CaseStatusAwaitingResponse, domain.CaseStatusClosed},
	domain.CaseStatusAwaitingResponse: {domain.CaseStatusOpen, domain.CaseStatusInProgress, domain.CaseStatusClosed},
	domain.CaseStatusClosed:           {domain.CaseStatusOpen, domain.CaseStatusInProgress, domain.CaseStatusAwaitingResponse},
}

func isValidTransition(current, next domain.CaseStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
