package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RichardoC/senior-care/internal/models"
	"github.com/RichardoC/senior-care/internal/vitals"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const sessionCookie = "session_id"

// ReadingRequest is a manually entered blood-pressure reading.
type ReadingRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Systolic  *int   `json:"systolic" validate:"required,min=0,max=300"`
	Diastolic *int   `json:"diastolic" validate:"required,min=0,max=300"`
}

type LatestReading struct {
	Reading        models.Reading        `json:"reading"`
	Classification vitals.Classification `json:"classification"`
}

type ReadingsResponse struct {
	Readings []models.Reading `json:"readings"`
	Latest   *LatestReading   `json:"latest"`
	Chart    vitals.Series    `json:"chart"`
}

// Readings lists (GET), adds (POST) or clears (DELETE) the session's readings.
func (h *Handler) Readings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	readings := h.sessionReadings(w, r)

	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, dashboard(readings))

	case http.MethodPost:
		var req ReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid request body", "")
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.writeError(w, http.StatusBadRequest, "Validation failed: "+formatValidationError(err), "")
			return
		}

		date, _ := time.Parse(models.DateLayout, req.Date)
		readings.Add(models.Reading{Date: date, Systolic: *req.Systolic, Diastolic: *req.Diastolic})
		h.logger.Debug("Added reading", zap.String("date", req.Date), zap.Int("count", readings.Len()))
		h.writeJSON(w, http.StatusCreated, dashboard(readings))

	case http.MethodDelete:
		readings.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}

// Classify reports the band for a single systolic/diastolic pair.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	systolic, err := h.pressureParam(r, "systolic")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	diastolic, err := h.pressureParam(r, "diastolic")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	h.writeJSON(w, http.StatusOK, vitals.Classify(systolic, diastolic))
}

func (h *Handler) pressureParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	if err := h.validate.Var(v, "min=0,max=300"); err != nil {
		return 0, fmt.Errorf("%s must be between 0 and 300", name)
	}
	return v, nil
}

// sessionReadings resolves the caller's session from its cookie and refreshes
// the cookie so a new session sticks.
func (h *Handler) sessionReadings(w http.ResponseWriter, r *http.Request) *vitals.Readings {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	id, readings := h.sessions.Get(id)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return readings
}

func dashboard(readings *vitals.Readings) ReadingsResponse {
	resp := ReadingsResponse{
		Readings: readings.Sorted(),
		Chart:    readings.Chart(),
	}
	if latest, ok := readings.Latest(); ok {
		resp.Latest = &LatestReading{
			Reading:        latest,
			Classification: vitals.Classify(latest.Systolic, latest.Diastolic),
		}
	}
	return resp
}

func formatValidationError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", e.Field(), e.Tag()))
	}
	return strings.Join(msgs, ", ")
}
