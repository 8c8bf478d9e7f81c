package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/services/submission"
	"gitlab.com/codelens-2025.net/internal/handlers"
	"gitlab.com/codelens-2025.net/internal/handlers/response"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// SubmissionHandler handles code submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewHandler creates a new submission handler
func NewHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/code/submit", h.SubmitCode).Methods("POST")
	router.HandleFunc("/code/history", h.GetHistory).Methods("GET")
}

// SubmitCode handles code submission requests
func (h *SubmissionHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := handlers.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	submissionID, err := h.submissionService.Submit(r.Context(), ownerID, submission.SubmitInput{
		Language:           req.Language,
		Category:           req.Category,
		ProblemDescription: req.ProblemDescription,
		Code:               req.Code,
	})
	if err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			response.WriteError(w, response.ErrorMessage{
				Message:    ve.Error(),
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		h.logger.Error("Failed to create submission", "error", err)
		http.Error(w, "Failed to create submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SubmitCodeResponse{SubmissionID: submissionID})
}

// GetHistory handles submission history requests
func (h *SubmissionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := handlers.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.submissionService.ListHistory(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("Failed to list history", "error", err)
		http.Error(w, "Failed to list history", http.StatusInternalServerError)
		return
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, entry := range entries {
		item := HistoryItem{
			ID:                 entry.Submission.ID,
			Language:           string(entry.Submission.Language),
			Category:           string(entry.Submission.Category),
			ProblemDescription: entry.Submission.ProblemDescription,
			CreatedAt:          entry.Submission.CreatedAt,
		}
		if entry.Rating != nil {
			rating := string(*entry.Rating)
			item.Rating = &rating
		}
		item.ReviewedAt = entry.ReviewedAt
		items = append(items, item)
	}

	response.WriteSuccess(w, map[string][]HistoryItem{"submissions": items})
}
