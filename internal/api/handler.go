package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RichardoC/senior-care/internal/llm"
	"github.com/RichardoC/senior-care/internal/models"
	"github.com/RichardoC/senior-care/internal/render"
	"github.com/RichardoC/senior-care/internal/session"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Consultant answers welfare consultations.
type Consultant interface {
	Consult(ctx context.Context, situation string) (*llm.Result, error)
}

// ConsultationLog is the read side of the consultation log.
type ConsultationLog interface {
	ListConsultations(limit int) ([]models.Consultation, error)
	SearchConsultations(query string) ([]models.Consultation, error)
	ClearConsultations() error
}

type Handler struct {
	consultant Consultant
	log        ConsultationLog
	sessions   *session.Manager
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewHandler(consultant Consultant, log ConsultationLog, sessions *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		consultant: consultant,
		log:        log,
		sessions:   sessions,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// Register mounts every endpoint on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/api/consult", h.Consult)
	mux.HandleFunc("/api/consultations", h.Consultations)
	mux.HandleFunc("/api/consultations/search", h.SearchConsultations)
	mux.HandleFunc("/api/readings", h.Readings)
	mux.HandleFunc("/api/classify", h.Classify)
}

type ConsultRequest struct {
	Situation string `json:"situation"`
}

type ConsultResponse struct {
	Content    string `json:"content"`
	HTML       string `json:"html"`
	Model      string `json:"model"`
	Disclaimer string `json:"disclaimer"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) Consult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ConsultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	result, err := h.consultant.Consult(r.Context(), req.Situation)
	switch {
	case errors.Is(err, llm.ErrEmptyInput):
		h.writeError(w, http.StatusBadRequest, "Please describe your situation.", "")
		return
	case errors.Is(err, llm.ErrMissingCredential):
		h.writeError(w, http.StatusServiceUnavailable, "OPENROUTER_API_KEY is not configured.",
			"Set it in .streamlit/secrets.toml or the environment.")
		return
	case errors.Is(err, llm.ErrAllModelsFailed):
		h.writeError(w, http.StatusBadGateway, "No model could answer the consultation.",
			"All models are unavailable. Please try again later.")
		return
	case err != nil:
		h.logger.Error("Failed to consult", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Consultation failed.", "")
		return
	}

	html, err := render.Markdown(result.Content)
	if err != nil {
		h.logger.Warn("Failed to render answer", zap.Error(err))
	}

	h.writeJSON(w, http.StatusOK, ConsultResponse{
		Content:    result.Content,
		HTML:       html,
		Model:      result.Model,
		Disclaimer: llm.Disclaimer,
	})
}

// Consultations lists (GET) or clears (DELETE) the consultation log.
func (h *Handler) Consultations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				h.writeError(w, http.StatusBadRequest, "Invalid limit", "")
				return
			}
			limit = n
		}

		consultations, err := h.log.ListConsultations(limit)
		if err != nil {
			h.logger.Error("Failed to list consultations",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			h.writeError(w, http.StatusInternalServerError, "Internal server error", "")
			return
		}

		h.logger.Debug("Retrieved consultations", zap.Int("count", len(consultations)))
		h.writeJSON(w, http.StatusOK, consultations)

	case http.MethodDelete:
		if err := h.log.ClearConsultations(); err != nil {
			h.logger.Error("Failed to clear consultations", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "Internal server error", "")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) SearchConsultations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "Query parameter 'q' is required", "")
		return
	}

	results, err := h.log.SearchConsultations(query)
	if err != nil {
		h.logger.Error("Failed to search consultations", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, hint string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg, Hint: hint})
}
