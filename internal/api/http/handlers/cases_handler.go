package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/case-service/internal/api/dto"
	"github.com/spec-kit/case-service/internal/auth"
	"github.com/spec-kit/case-service/internal/domain"
	"github.com/spec-kit/case-service/internal/export"
	"github.com/spec-kit/case-service/internal/service"
	"github.com/spec-kit/case-service/internal/triage"
	apperrors "github.com/spec-kit/case-service/pkg/util/errorutil"
)

const deadlineLayout = "2006-01-02"

// CasesHandler manages case record endpoints.
type CasesHandler struct {
	service *service.CaseService
	now     func() time.Time
}

// NewCasesHandler constructs handler. now is injectable for tests and
// defaults to the wall clock.
func NewCasesHandler(caseService *service.CaseService, now func() time.Time) *CasesHandler {
	if now == nil {
		now = time.Now
	}
	return &CasesHandler{service: caseService, now: now}
}

// CreateCase POST /cases.
func (h *CasesHandler) CreateCase(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CaseInput{
		CaseNumber:  req.CaseNumber,
		Title:       req.Title,
		Description: req.Description,
		Origin:      domain.CaseOrigin(req.Origin),
		Assignee:    req.Assignee,
		Deadline:    parseDeadline(req.Deadline),
	}
	record, err := h.service.Create(c.Context(), principal.DisplayName(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": caseSummary(record, h.now())})
}

// ListCases GET /cases.
func (h *CasesHandler) ListCases(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	records, err := h.service.List(c.Context(), criteria)
	if err != nil {
		return err
	}
	today := h.now()
	items := make([]dto.CaseSummary, 0, len(records))
	for i := range records {
		items = append(items, caseSummary(&records[i], today))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetCase GET /cases/:id.
func (h *CasesHandler) GetCase(c *fiber.Ctx) error {
	record, comments, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": caseDetail(record, comments, h.now())})
}

// UpdateCase PUT /cases/:id.
func (h *CasesHandler) UpdateCase(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CaseInput{
		CaseNumber:  req.CaseNumber,
		Title:       req.Title,
		Description: req.Description,
		Origin:      domain.CaseOrigin(req.Origin),
		Assignee:    req.Assignee,
		Deadline:    parseDeadline(req.Deadline),
	}
	record, err := h.service.Update(c.Context(), principal.DisplayName(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": caseSummary(record, h.now())})
}

// ChangeStatus POST /cases/:id/status.
func (h *CasesHandler) ChangeStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Status) == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	record, err := h.service.ChangeStatus(c.Context(), principal.DisplayName(), c.Params("id"), domain.CaseStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": caseSummary(record, h.now())})
}

// DeleteCase DELETE /cases/:id. Admin only; the role gate is applied at the
// route level.
func (h *CasesHandler) DeleteCase(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.Context(), principal.DisplayName(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddComment POST /cases/:id/comments.
func (h *CasesHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comment, err := h.service.AddComment(c.Context(), principal.DisplayName(), c.Params("id"), req.Body)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// ExportCSV GET /cases/export. Streams the (optionally filtered) list as
// delimited text with a byte-order marker.
func (h *CasesHandler) ExportCSV(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	records, err := h.service.List(c.Context(), criteria)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cases.csv"`)
	return export.WriteCSV(c.Response().BodyWriter(), records)
}

// Report GET /cases/:id/report. Produces a PDF for one case.
func (h *CasesHandler) Report(c *fiber.Ctx) error {
	record, _, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	out, err := export.WriteReport(record, h.now())
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report_`+record.CaseNumber+`.pdf"`)
	return c.Send(out)
}

// parseCriteria reads list filters from the query string. Unknown urgency
// keys are ignored rather than rejected.
func parseCriteria(c *fiber.Ctx) triage.Criteria {
	criteria := triage.Criteria{Search: c.Query("search")}
	if origin := c.Query("origin"); origin != "" {
		val := domain.CaseOrigin(origin)
		criteria.Origin = &val
	}
	if assignee := c.Query("assignee"); assignee != "" {
		criteria.Assignee = &assignee
	}
	switch bucket := triage.Bucket(c.Query("urgency")); bucket {
	case triage.BucketExpired, triage.BucketWarning, triage.BucketOK:
		criteria.Urgency = &bucket
	}
	return criteria
}

// parseDeadline parses a calendar date, treating anything unparseable as
// absent so a malformed value never fails the request or the triage pass.
func parseDeadline(val string) *time.Time {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	t, err := time.ParseInLocation(deadlineLayout, val, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

func caseSummary(record *domain.CaseRecord, today time.Time) dto.CaseSummary {
	summary := dto.CaseSummary{
		ID:          record.ID,
		CaseNumber:  record.CaseNumber,
		Title:       record.Title,
		Origin:      record.Origin,
		Assignee:    record.Assignee,
		Status:      record.Status,
		CreatedAt:   record.CreatedAt,
		CreatedDate: record.CreatedAt.Format(deadlineLayout),
	}
	if record.Deadline != nil {
		formatted := record.Deadline.Format(deadlineLayout)
		summary.Deadline = &formatted
	}
	if bucket, ok := triage.Classify(record.Deadline, record.Status, today); ok {
		summary.Urgency = &dto.UrgencyBadge{Key: string(bucket), Label: bucket.Label()}
	}
	return summary
}

func caseDetail(record *domain.CaseRecord, comments []domain.Comment, today time.Time) dto.CaseDetailResponse {
	timeline := make([]dto.TimelineResponse, 0, len(record.Timeline))
	for _, entry := range record.Timeline {
		timeline = append(timeline, dto.TimelineResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			Actor:     entry.Actor,
			Status:    entry.Status,
			CreatedAt: entry.CreatedAt,
		})
	}
	commentItems := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentItems = append(commentItems, commentResponse(&comments[i]))
	}
	return dto.CaseDetailResponse{
		CaseSummary: caseSummary(record, today),
		Description: record.Description,
		ClosedAt:    record.ClosedAt,
		Timeline:    timeline,
		Comments:    commentItems,
	}
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        comment.ID,
		Body:      comment.Body,
		Author:    comment.Author,
		CreatedAt: comment.CreatedAt,
	}
}
