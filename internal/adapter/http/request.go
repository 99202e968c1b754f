package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"log/slog"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// Session headers. The role is client-asserted; an absent or unknown role
// fails closed to an empty access set.
const (
	headerRole         = "X-Role"
	headerRoleCampuses = "X-Role-Campuses"
)

const dateLayout = "2006-01-02"

// sessionFrom builds the request's session from the role headers.
func sessionFrom(r *http.Request) domain.Session {
	s := domain.Session{Role: domain.Role(strings.TrimSpace(r.Header.Get(headerRole)))}
	raw := r.Header.Get(headerRoleCampuses)
	if raw == "" {
		return s
	}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			s.CampusIDs = append(s.CampusIDs, id)
		}
	}
	return s
}

// parseDate parses an optional yyyy-mm-dd value. Empty input yields the
// zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func parseDatePtr(s string) (*time.Time, error) {
	t, err := parseDate(s)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// existingPledgeResponse is the 409 payload carrying the pledge the
// duplicate check found, so the caller can offer an update instead.
type existingPledgeResponse struct {
	Error          string        `json:"error"`
	ExistingPledge pledgePayload `json:"existingPledge"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps domain and port errors onto status codes. Unknown
// errors are logged and reported as a generic 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var dup *port.DuplicatePledgeError
	var verr domain.ValidationError
	switch {
	case errors.As(err, &dup):
		h.respond(w, http.StatusConflict, existingPledgeResponse{
			Error:          "An existing pledge was found for this campaign and campus.",
			ExistingPledge: pledgeJSON(dup.Existing),
		})
	case errors.Is(err, port.ErrNotFound):
		h.respond(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, port.ErrCampaignClosed):
		h.respond(w, http.StatusConflict, errorResponse{Error: "This campaign is closed and no longer accepts pledges or gifts."})
	case errors.Is(err, port.ErrCampusNotInCampaign):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "This campus is not part of this campaign. Please contact the organization."})
	case errors.Is(err, port.ErrListingNotAtCampus):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "This giving method is not available at this campus. Please contact the organization."})
	case errors.As(err, &verr):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		h.respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// validateLinkParams checks donor-facing link parameters before any fetch.
// Each named parameter must look like a record id; problems are collected
// into one user-facing message.
func validateLinkParams(params map[string]string) error {
	var bad []string
	for name, value := range params {
		if value == "" || !domain.ValidRecordID(value) {
			bad = append(bad, name)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return domain.ValidationError("Invalid link: missing or malformed " + strings.Join(bad, ", ") + ". Please contact the organization.")
}
