package http

import (
	"net/http"
	"time"

	"github.com/peopledesk/hr-backend-go/internal/domain/analytics"
	"github.com/peopledesk/hr-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsRepo analytics.Repository
}

func NewAnalyticsHandler(analyticsRepo analytics.Repository) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsRepo: analyticsRepo}
}

// Dashboard implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := queryParamInt(r, "month"); v != nil && *v >= 1 && *v <= 12 {
		month = *v
	}
	if v := queryParamInt(r, "year"); v != nil && *v > 0 {
		year = *v
	}

	stats, err := h.analyticsRepo.DashboardStats(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
