package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// handlePledgePage loads the public pledge page. Link parameters are
// validated for shape before any lookup; an absent campus switches the
// payload to the in-page campus picker.
func (h *Handler) handlePledgePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaignID := q.Get("campaign")
	campusID := q.Get("campus")

	params := map[string]string{"campaign": campaignID}
	if campusID != "" {
		params["campus"] = campusID
	}
	if err := validateLinkParams(params); err != nil {
		h.respondError(w, err)
		return
	}

	data, err := h.campaigns.PledgePageData(r.Context(), campaignID, campusID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var campus *campusPayload
	if data.Campus != nil {
		campus = &campusPayload{ID: data.Campus.ID, Name: data.Campus.Name, Address: data.Campus.Address, Status: data.Campus.Status}
	}
	choices := make([]campusPayload, 0, len(data.CampusChoices))
	for _, c := range data.CampusChoices {
		choices = append(choices, campusPayload{ID: c.ID, Name: c.Name, Address: c.Address, Status: c.Status})
	}
	h.respond(w, http.StatusOK, struct {
		Campaign      campaignPayload `json:"campaign"`
		Stats         statsPayload    `json:"stats"`
		Campus        *campusPayload  `json:"campus,omitempty"`
		CampusChoices []campusPayload `json:"campusChoices,omitempty"`
	}{campaignJSON(data.Campaign), statsJSON(data.Stats), campus, choices})
}

type publicPledgeRequest struct {
	CampaignID string          `json:"campaignId"`
	CampusID   string          `json:"campusId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Frequency  string          `json:"frequency"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Notes      string          `json:"notes"`
	PayNow     bool            `json:"payNow"`
}

// handleSubmitPledge runs the public pledge flow. Duplicates always block
// here; there is no update-instead option outside the admin screen.
func (h *Handler) handleSubmitPledge(w http.ResponseWriter, r *http.Request) {
	var req publicPledgeRequest
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
	receipt, err := h.pledges.SubmitPublicPledge(r.Context(), port.PledgeEntry{
		CampaignID:      req.CampaignID,
		CampusID:        req.CampusID,
		DonorName:       req.Name,
		DonorEmail:      req.Email,
		PerPeriodAmount: req.Amount,
		Type:            req.Type,
		Frequency:       domain.Frequency(req.Frequency),
		StartDate:       start,
		EndDate:         end,
		Notes:           req.Notes,
		PayNow:          req.PayNow,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, receiptJSON(receipt))
}

// handleGivingPage loads the public giving page. Campaign, campus and
// listing parameters are all required and validated for shape first.
func (h *Handler) handleGivingPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaignID := q.Get("campaign")
	campusID := q.Get("campus")
	listingID := q.Get("listing")

	if err := validateLinkParams(map[string]string{
		"campaign": campaignID,
		"campus":   campusID,
		"listing":  listingID,
	}); err != nil {
		h.respondError(w, err)
		return
	}

	data, err := h.campaigns.GivingPageData(r.Context(), campaignID, campusID, listingID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, struct {
		Campaign campaignPayload `json:"campaign"`
		Campus   campusPayload   `json:"campus"`
		Listing  listingPayload  `json:"listing"`
	}{
		campaignJSON(data.Campaign),
		campusPayload{ID: data.Campus.ID, Name: data.Campus.Name, Address: data.Campus.Address, Status: data.Campus.Status},
		listingPayload{ID: data.Listing.ID, Name: data.Listing.Name, Type: data.Listing.Type, Status: data.Listing.Status, CampusIDs: data.Listing.CampusIDs},
	})
}

type publicGiftRequest struct {
	CampaignID string          `json:"campaignId"`
	CampusID   string          `json:"campusId"`
	ListingID  string          `json:"listingId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Frequency  string          `json:"frequency"`
}

// handleSubmitGift records a gift from the public giving page.
func (h *Handler) handleSubmitGift(w http.ResponseWriter, r *http.Request) {
	var req publicGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	gift, err := h.pledges.SubmitPublicGift(r.Context(), port.GiftEntry{
		CampaignID: req.CampaignID,
		CampusID:   req.CampusID,
		ListingID:  req.ListingID,
		DonorName:  req.Name,
		DonorEmail: req.Email,
		Amount:     req.Amount,
		Type:       req.Type,
		Frequency:  domain.Frequency(req.Frequency),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, giftJSON(*gift))
}
