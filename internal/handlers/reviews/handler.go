package reviews

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/services/review"
	"gitlab.com/codelens-2025.net/internal/handlers"
	"gitlab.com/codelens-2025.net/internal/handlers/response"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// ReviewHandler handles review API requests
type ReviewHandler struct {
	reviewService review.IReviewService
	logger        primary.Logger
}

// NewHandler creates a new review handler
func NewHandler(reviewService review.IReviewService, logger primary.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for ReviewHandler
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/review/{submissionId}", h.GenerateReview).Methods("POST")
	router.HandleFunc("/review/{submissionId}", h.GetReview).Methods("GET")
	router.HandleFunc("/review/{submissionId}/status", h.GetGenerationStatus).Methods("GET")
}

// GenerateReviewResponse represents a response to a generate request
type GenerateReviewResponse struct {
	ReviewID uuid.UUID `json:"reviewId"`
}

// GenerateReview handles review generation requests
func (h *ReviewHandler) GenerateReview(w http.ResponseWriter, r *http.Request) {
	ownerID, submissionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	reviewID, err := h.reviewService.GenerateReview(r.Context(), ownerID, submissionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(GenerateReviewResponse{ReviewID: reviewID})
}

// GetReview handles review retrieval requests
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	ownerID, submissionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	bundle, err := h.reviewService.GetReview(r.Context(), ownerID, submissionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, bundle)
}

// GetGenerationStatus handles generation status polling requests
func (h *ReviewHandler) GetGenerationStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, submissionID, ok := h.identify(w, r)
	if !ok {
		return
	}

	status, err := h.reviewService.GetGenerationStatus(r.Context(), ownerID, submissionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if status == nil {
		response.WriteSuccess(w, map[string]interface{}{"state": nil})
		return
	}
	response.WriteSuccess(w, status)
}

func (h *ReviewHandler) identify(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := handlers.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", vars["submissionId"])
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, submissionID, true
}

func (h *ReviewHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrSubmissionNotFound):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Submission not found",
			StatusCode: http.StatusNotFound,
		})
	case errors.Is(err, errs.ErrAccessDenied):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Access denied",
			StatusCode: http.StatusForbidden,
		})
	case errors.Is(err, errs.ErrAnalysisParse):
		// Distinct from transient failures so operators can spot capability drift
		response.WriteError(w, response.ErrorMessage{
			Message:    "Review generation failed: analysis response unusable",
			StatusCode: http.StatusBadGateway,
		})
	case errors.Is(err, errs.ErrAnalysisRequest):
		response.WriteError(w, response.ErrorMessage{
			Message:    "Review generation failed: analysis unavailable, please retry",
			StatusCode: http.StatusServiceUnavailable,
		})
	default:
		h.logger.Error("Review operation failed", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
