package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/case-service/internal/api/dto"
	"github.com/spec-kit/case-service/internal/service"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Overview handles GET /dashboard. Filters from the query string narrow the
// population before aggregation; status and origin totals always reconcile
// with the filtered total.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	criteria := parseCriteria(c)

	summary, today, err := h.service.FilteredOverview(c.Context(), criteria)
	if err != nil {
		return err
	}

	upcoming := make([]dto.CaseSummary, 0, len(summary.UpcomingDeadlines))
	for i := range summary.UpcomingDeadlines {
		upcoming = append(upcoming, caseSummary(&summary.UpcomingDeadlines[i], today))
	}

	return c.JSON(fiber.Map{"data": dto.DashboardResponse{
		Total:             summary.Total,
		StatusCounts:      summary.StatusCounts,
		OriginCounts:      summary.OriginCounts,
		UpcomingDeadlines: upcoming,
		Today:             today.Format(deadlineLayout),
	}})
}
