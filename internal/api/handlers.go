package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pulsecheck/pulsecheck/internal/observation"
	"github.com/pulsecheck/pulsecheck/internal/rules"
	"github.com/pulsecheck/pulsecheck/pkg/models"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	ruleset []rules.Rule
}

// NewHandlers creates new handlers sharing the given rule corpus
func NewHandlers(ruleset []rules.Rule) *Handlers {
	return &Handlers{ruleset: ruleset}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pulsecheck",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// ShowForm renders the empty self-check form
func (h *Handlers) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, pageData{})
}

// SubmitForm handles a form submission. A validation failure re-renders
// the form with the message; the rule engine only sees valid observations.
func (h *Handlers) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, pageData{ValidationError: "The submitted form could not be read."})
		return
	}

	obs, err := observation.Normalize(
		r.PostFormValue("blood_pressure"),
		r.PostFormValue("weight"),
		r.PostFormValue("symptoms"),
	)
	if err != nil {
		renderPage(w, pageData{
			ValidationError: validationMessage(err),
			BloodPressure:   r.PostFormValue("blood_pressure"),
			Weight:          r.PostFormValue("weight"),
			Symptoms:        r.PostFormValue("symptoms"),
		})
		return
	}

	result := rules.Evaluate(obs, h.ruleset)
	renderPage(w, pageData{
		Diagnosis:     result.SummaryText,
		BloodPressure: r.PostFormValue("blood_pressure"),
		Weight:        r.PostFormValue("weight"),
		Symptoms:      r.PostFormValue("symptoms"),
	})
}

// diagnoseRequest is the JSON body for the diagnose endpoint. Weight is
// accepted as a JSON number or string, matching what browser clients send.
type diagnoseRequest struct {
	BloodPressure string     `json:"blood_pressure"`
	Weight        flexString `json:"weight"`
	Symptoms      string     `json:"symptoms"`
}

// diagnoseResponse wraps the evaluation outcome for API clients
type diagnoseResponse struct {
	ReportID    string             `json:"report_id"`
	Observation models.Observation `json:"observation"`
	Findings    []models.Finding   `json:"findings"`
	SummaryText string             `json:"summary_text"`
}

// Diagnose handles a JSON diagnosis request
func (h *Handlers) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	obs, err := observation.Normalize(req.BloodPressure, string(req.Weight), req.Symptoms)
	if err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := rules.Evaluate(obs, h.ruleset)
	respond(w, http.StatusOK, diagnoseResponse{
		ReportID:    uuid.NewString(),
		Observation: obs,
		Findings:    result.Findings,
		SummaryText: result.SummaryText,
	})
}

// ListRules returns the metadata of the active rule corpus
func (h *Handlers) ListRules(w http.ResponseWriter, r *http.Request) {
	infos := make([]models.RuleInfo, 0, len(h.ruleset))
	for _, rule := range h.ruleset {
		infos = append(infos, rule.Info())
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"count": len(infos),
		"rules": infos,
	})
}

// validationMessage turns a normalizer error into a user-facing message
func validationMessage(err error) string {
	switch {
	case errors.Is(err, observation.ErrOutOfRange):
		return fmt.Sprintf("A value is outside the accepted range: %v", err)
	case errors.Is(err, observation.ErrMalformedInput):
		return fmt.Sprintf("A field could not be understood: %v", err)
	default:
		return "The submission could not be processed."
	}
}

// flexString decodes from either a JSON string or a JSON number
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}
