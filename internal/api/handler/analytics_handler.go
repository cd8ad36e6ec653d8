package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northwestmeats/storefront/internal/api/respond"
	"github.com/northwestmeats/storefront/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.IAnalyticsService
}

func NewAnalyticsHandler(analyticsService service.IAnalyticsService) *AnalyticsHandler {
	if analyticsService == nil {
		panic("analyticsService cannot be nil")
	}
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, overview, "")
}

func (h *AnalyticsHandler) ProductAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.ProductAnalyticsByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, stats, "")
}
