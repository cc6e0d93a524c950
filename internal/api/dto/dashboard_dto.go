package dto

// DashboardResponse carries derived dashboard state.
type DashboardResponse struct {
	Total             int            `json:"total"`
	StatusCounts      map[string]int `json:"status_counts"`
	OriginCounts      map[string]int `json:"origin_counts"`
	UpcomingDeadlines []CaseSummary  `json:"upcoming_deadlines"`
	Today             string         `json:"today"`
}
