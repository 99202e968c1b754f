package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

type pledgePayload struct {
	ID         string           `json:"id"`
	DonorID    string           `json:"donorId"`
	CampaignID string           `json:"campaignId"`
	CampusID   string           `json:"campusId"`
	Amount     decimal.Decimal  `json:"amount"`
	PledgeDate string           `json:"pledgeDate"`
	Notes      string           `json:"notes,omitempty"`
	Type       string           `json:"type"`
	Frequency  domain.Frequency `json:"frequency,omitempty"`
	EndDate    *string          `json:"endDate"`
}

type giftPayload struct {
	ID         string           `json:"id"`
	DonorID    string           `json:"donorId"`
	CampaignID string           `json:"campaignId"`
	CampusID   string           `json:"campusId"`
	Amount     decimal.Decimal  `json:"amount"`
	GiftDate   string           `json:"giftDate"`
	Type       string           `json:"type"`
	Frequency  domain.Frequency `json:"frequency,omitempty"`
}

type donorPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	HomeCampusID string `json:"homeCampusId,omitempty"`
}

func pledgeJSON(p domain.Pledge) pledgePayload {
	return pledgePayload{
		ID:         p.ID,
		DonorID:    p.DonorID,
		CampaignID: p.CampaignID,
		CampusID:   p.CampusID,
		Amount:     p.TotalCommitment,
		PledgeDate: p.PledgeDate.Format(dateLayout),
		Notes:      p.Notes,
		Type:       p.Type,
		Frequency:  p.Frequency,
		EndDate:    formatDate(p.EndDate),
	}
}

func giftJSON(g domain.Gift) giftPayload {
	return giftPayload{
		ID:         g.ID,
		DonorID:    g.DonorID,
		CampaignID: g.CampaignID,
		CampusID:   g.CampusID,
		Amount:     g.PerPeriodAmount,
		GiftDate:   g.GiftDate.Format(dateLayout),
		Type:       g.Type,
		Frequency:  g.Frequency,
	}
}

type receiptPayload struct {
	Pledge  pledgePayload `json:"pledge"`
	Gift    *giftPayload  `json:"gift,omitempty"`
	Updated bool          `json:"updated"`
}

func receiptJSON(rec *port.PledgeReceipt) receiptPayload {
	out := receiptPayload{Pledge: pledgeJSON(rec.Pledge), Updated: rec.Updated}
	if rec.Gift != nil {
		g := giftJSON(*rec.Gift)
		out.Gift = &g
	}
	return out
}

// handleListPledges pages the admin pledge list.
func (h *Handler) handleListPledges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	result, err := h.pledges.ListPledges(r.Context(), page, perPage)
	if err != nil {
		h.respondError(w, err)
		return
	}
	pledges := make([]pledgePayload, 0, len(result.Pledges))
	for _, p := range result.Pledges {
		pledges = append(pledges, pledgeJSON(p))
	}
	h.respond(w, http.StatusOK, struct {
		Pledges    []pledgePayload `json:"pledges"`
		Total      int             `json:"total"`
		Page       int             `json:"page"`
		PerPage    int             `json:"perPage"`
		TotalPages int             `json:"totalPages"`
	}{pledges, result.Total, result.Page, result.PerPage, result.TotalPages})
}

type addPledgeRequest struct {
	DonorID        string          `json:"donorId"`
	CampaignID     string          `json:"campaignId"`
	CampusID       string          `json:"campusId"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Frequency      string          `json:"frequency"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Notes          string          `json:"notes"`
	UpdateExisting bool            `json:"updateExisting"`
}

// handleAddPledge runs the admin entry flow. A duplicate without the
// update flag comes back as 409 with the existing pledge attached.
func (h *Handler) handleAddPledge(w http.ResponseWriter, r *http.Request) {
	var req addPledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		h.respondError(w, domain.ValidationError("startDate must be yyyy-mm-dd"))
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		h.respondError(w, domain.ValidationError("endDate must be yyyy-mm-dd"))
		return
	}
	receipt, err := h.pledges.AddPledge(r.Context(), port.AdminPledgeEntry{
		DonorID:         req.DonorID,
		CampaignID:      req.CampaignID,
		CampusID:        req.CampusID,
		PerPeriodAmount: req.Amount,
		Type:            req.Type,
		Frequency:       domain.Frequency(req.Frequency),
		StartDate:       start,
		EndDate:         end,
		Notes:           req.Notes,
		UpdateExisting:  req.UpdateExisting,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	status := http.StatusCreated
	if receipt.Updated {
		status = http.StatusOK
	}
	h.respond(w, status, receiptJSON(receipt))
}

// handleCheckExistingPledge backs the pre-submission duplicate probe.
func (h *Handler) handleCheckExistingPledge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	existing, err := h.pledges.CheckExistingPledge(r.Context(), q.Get("email"), q.Get("campaign"), q.Get("campus"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if existing == nil {
		h.respond(w, http.StatusOK, struct {
			Exists bool `json:"exists"`
		}{false})
		return
	}
	h.respond(w, http.StatusOK, struct {
		Exists   bool            `json:"exists"`
		PledgeID string          `json:"pledgeId"`
		Amount   decimal.Decimal `json:"amount"`
		Type     string          `json:"type"`
		Date     string          `json:"date"`
	}{true, existing.PledgeID, existing.Amount, existing.Type, existing.Date.Format(dateLayout)})
}

// handleSearchDonors backs the admin donor picker.
func (h *Handler) handleSearchDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.pledges.SearchDonors(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]donorPayload, 0, len(donors))
	for _, d := range donors {
		out = append(out, donorPayload{ID: d.ID, Name: d.Name, Email: d.Email, HomeCampusID: d.HomeCampusID})
	}
	h.respond(w, http.StatusOK, out)
}

type updatePledgeRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	PledgeDate string          `json:"pledgeDate"`
	CampusID   string          `json:"campusId"`
	Type       string          `json:"type"`
	Frequency  string          `json:"frequency"`
	EndDate    string          `json:"endDate"`
}

// handleUpdatePledge overwrites an existing pledge.
func (h *Handler) handleUpdatePledge(w http.ResponseWriter, r *http.Request) {
	var req updatePledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	pledgeDate, err := parseDate(req.PledgeDate)
	if err != nil {
		h.respondError(w, domain.ValidationError("pledgeDate must be yyyy-mm-dd"))
		return
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		h.respondError(w, domain.ValidationError("endDate must be yyyy-mm-dd"))
		return
	}
	updated, err := h.pledges.UpdatePledge(r.Context(), chi.URLParam(r, "id"), port.PledgeUpdate{
		Amount:     req.Amount,
		PledgeDate: pledgeDate,
		CampusID:   req.CampusID,
		Type:       req.Type,
		Frequency:  domain.Frequency(req.Frequency),
		EndDate:    endDate,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, pledgeJSON(*updated))
}

// handleDeletePledge removes a pledge.
func (h *Handler) handleDeletePledge(w http.ResponseWriter, r *http.Request) {
	if err := h.pledges.DeletePledge(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
