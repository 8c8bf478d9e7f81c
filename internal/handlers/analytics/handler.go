package analytics

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/services/analytics"
	"gitlab.com/codelens-2025.net/internal/handlers"
	"gitlab.com/codelens-2025.net/internal/handlers/response"
)

// AnalyticsHandler handles analytics API requests
type AnalyticsHandler struct {
	analyticsService analytics.IAnalyticsService
	logger           primary.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(analyticsService analytics.IAnalyticsService, logger primary.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for AnalyticsHandler
func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/analytics/summary", h.GetSummary).Methods("GET")
}

// GetSummary handles analytics summary requests
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := handlers.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("Failed to compute analytics summary", "error", err)
		http.Error(w, "Failed to compute analytics summary", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, summary)
}
