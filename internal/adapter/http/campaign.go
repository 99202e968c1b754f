package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

type campaignPayload struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	FinancialGoal       decimal.Decimal `json:"financialGoal"`
	StartDate           *string         `json:"startDate"`
	EndDate             *string         `json:"endDate"`
	Status              string          `json:"status"`
	Scope               string          `json:"scope"`
	DonationDestination string          `json:"donationDestination"`
	OrgFundListingID    string          `json:"orgFundListingId,omitempty"`
	CampusIDs           []string        `json:"campusIds"`
	FundID              string          `json:"fundId,omitempty"`
	PhoneNumber         string          `json:"phoneNumber,omitempty"`
	EmailAddress        string          `json:"emailAddress,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type statsPayload struct {
	TotalPledged decimal.Decimal `json:"totalPledged"`
	TotalRaised  decimal.Decimal `json:"totalRaised"`
	PledgeCount  int             `json:"pledgeCount"`
	GiftCount    int             `json:"giftCount"`
}

type breakdownPayload struct {
	CampusID    string          `json:"campusId"`
	CampusName  string          `json:"campusName"`
	Pledged     decimal.Decimal `json:"pledged"`
	Raised      decimal.Decimal `json:"raised"`
	PledgeCount int             `json:"pledgeCount"`
	GiftCount   int             `json:"giftCount"`
}

type campaignSummaryPayload struct {
	Campaign  campaignPayload    `json:"campaign"`
	Stats     statsPayload       `json:"stats"`
	Breakdown []breakdownPayload `json:"breakdown"`
}

type campaignDetailPayload struct {
	campaignSummaryPayload
	Goal decimal.Decimal `json:"goal"`
}

type donorRollupPayload struct {
	DonorID      string          `json:"donorId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	HomeCampusID string          `json:"homeCampusId,omitempty"`
	DatePledged  *string         `json:"datePledged"`
	Pledged      decimal.Decimal `json:"pledged"`
	Given        decimal.Decimal `json:"given"`
	Remaining    decimal.Decimal `json:"remaining"`
	Progress     float64         `json:"progress"`
	PledgeCount  int             `json:"pledgeCount"`
	GiftCount    int             `json:"giftCount"`
	CampusIDs    []string        `json:"campusIds"`
}

type campusPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status"`
}

type listingPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	CampusIDs []string `json:"campusIds"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func campaignJSON(c domain.Campaign) campaignPayload {
	return campaignPayload{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		FinancialGoal:       c.FinancialGoal,
		StartDate:           formatDate(c.StartDate),
		EndDate:             formatDate(c.EndDate),
		Status:              c.Status,
		Scope:               c.Scope,
		DonationDestination: c.DonationDestination,
		OrgFundListingID:    c.OrgFundListingID,
		CampusIDs:           c.AssignedCampusIDs,
		FundID:              c.FundID,
		PhoneNumber:         c.PhoneNumber,
		EmailAddress:        c.EmailAddress,
		CreatedAt:           c.CreatedAt,
	}
}

func statsJSON(s domain.Stats) statsPayload {
	return statsPayload{
		TotalPledged: s.TotalPledged,
		TotalRaised:  s.TotalRaised,
		PledgeCount:  s.PledgeCount,
		GiftCount:    s.GiftCount,
	}
}

func breakdownJSON(rows []port.CampusBreakdown) []breakdownPayload {
	out := make([]breakdownPayload, 0, len(rows))
	for _, b := range rows {
		out = append(out, breakdownPayload{
			CampusID:    b.CampusID,
			CampusName:  b.CampusName,
			Pledged:     b.Pledged,
			Raised:      b.Raised,
			PledgeCount: b.PledgeCount,
			GiftCount:   b.GiftCount,
		})
	}
	return out
}

// handleListCampaigns returns the campaigns accessible to the session,
// optionally narrowed by a comma-separated status query parameter.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var statuses []string
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	summaries, err := h.campaigns.ListCampaigns(r.Context(), sessionFrom(r), statuses)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]campaignSummaryPayload, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, campaignSummaryPayload{
			Campaign:  campaignJSON(s.Campaign),
			Stats:     statsJSON(s.Stats),
			Breakdown: breakdownJSON(s.Breakdown),
		})
	}
	h.respond(w, http.StatusOK, out)
}

// handleGetCampaign returns the detail view with the goal resolved for the
// session and the optional campus query parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	detail, err := h.campaigns.GetCampaign(r.Context(), sessionFrom(r), chi.URLParam(r, "id"), r.URL.Query().Get("campus"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, campaignDetailPayload{
		campaignSummaryPayload: campaignSummaryPayload{
			Campaign:  campaignJSON(detail.Campaign),
			Stats:     statsJSON(detail.Stats),
			Breakdown: breakdownJSON(detail.Breakdown),
		},
		Goal: detail.Goal,
	})
}

// handleCloseCampaign moves a published campaign to Closed.
func (h *Handler) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.CloseCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignDonors returns per-donor rollups scoped to the session.
func (h *Handler) handleCampaignDonors(w http.ResponseWriter, r *http.Request) {
	rollups, err := h.campaigns.CampaignDonors(r.Context(), sessionFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]donorRollupPayload, 0, len(rollups))
	for _, d := range rollups {
		out = append(out, donorRollupPayload{
			DonorID:      d.DonorID,
			Name:         d.Name,
			Email:        d.Email,
			HomeCampusID: d.HomeCampusID,
			DatePledged:  formatDate(d.DatePledged),
			Pledged:      d.Pledged,
			Given:        d.Given,
			Remaining:    d.Remaining,
			Progress:     d.Progress,
			PledgeCount:  d.PledgeCount,
			GiftCount:    d.GiftCount,
			CampusIDs:    d.CampusIDs,
		})
	}
	h.respond(w, http.StatusOK, out)
}

// handleCampaignLinks builds donor-facing share URLs for the campaign.
func (h *Handler) handleCampaignLinks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	links, err := h.campaigns.ShareLinks(r.Context(), chi.URLParam(r, "id"), q.Get("campus"), q.Get("listing"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, struct {
		PledgeURL string `json:"pledgeUrl"`
		GivingURL string `json:"givingUrl,omitempty"`
	}{PledgeURL: links.PledgeURL, GivingURL: links.GivingURL})
}

type campusAssignmentRequest struct {
	CampusID   string          `json:"campusId"`
	ListingIDs []string        `json:"listingIds"`
	Goal       decimal.Decimal `json:"goal"`
}

type fundRequest struct {
	Name              string `json:"name"`
	Code              string `json:"code"`
	TaxDeductible     *bool  `json:"taxDeductible"`
	ThankYouMessage   string `json:"thankYouMessage"`
	ThankYouAnimation string `json:"thankYouAnimation"`
}

type createCampaignRequest struct {
	Name             string                    `json:"name"`
	Description      string                    `json:"description"`
	FinancialGoal    decimal.Decimal           `json:"financialGoal"`
	StartDate        string                    `json:"startDate"`
	EndDate          string                    `json:"endDate"`
	PhoneNumber      string                    `json:"phoneNumber"`
	EmailAddress     string                    `json:"emailAddress"`
	Destination      string                    `json:"destination"`
	OrgFundListingID string                    `json:"orgFundListingId"`
	Campuses         []campusAssignmentRequest `json:"campuses"`
	SplitEvenly      bool                      `json:"splitEvenly"`
	Fund             fundRequest               `json:"fund"`
}

// buildWizard drives the creation wizard through its steps from a decoded
// request, so every request passes the same gating as interactive entry.
func buildWizard(req createCampaignRequest) (domain.CampaignWizard, error) {
	start, err := parseDatePtr(req.StartDate)
	if err != nil {
		return domain.CampaignWizard{}, domain.ValidationError("startDate must be yyyy-mm-dd")
	}
	end, err := parseDatePtr(req.EndDate)
	if err != nil {
		return domain.CampaignWizard{}, domain.ValidationError("endDate must be yyyy-mm-dd")
	}

	w := domain.NewCampaignWizard()
	w, err = w.WithDetails(domain.CampaignDetails{
		Name:          req.Name,
		Description:   req.Description,
		FinancialGoal: req.FinancialGoal,
		StartDate:     start,
		EndDate:       end,
		PhoneNumber:   req.PhoneNumber,
		EmailAddress:  req.EmailAddress,
	})
	if err != nil {
		return w, err
	}

	for _, a := range req.Campuses {
		w = w.SelectCampus(a.CampusID)
		if len(a.ListingIDs) > 0 {
			w = w.SetCampusListings(a.CampusID, a.ListingIDs)
		}
	}
	if req.SplitEvenly {
		w = w.SetSplitEvenly(true)
	} else {
		for _, a := range req.Campuses {
			w = w.SetCampusGoal(a.CampusID, a.Goal)
		}
	}

	w, err = w.WithDestination(req.Destination, req.OrgFundListingID)
	if err != nil {
		return w, err
	}

	return w.WithFund(domain.FundDetails{
		Name:              req.Fund.Name,
		Code:              req.Fund.Code,
		TaxDeductible:     req.Fund.TaxDeductible,
		ThankYouMessage:   req.Fund.ThankYouMessage,
		ThankYouAnimation: req.Fund.ThankYouAnimation,
	})
}

// handleCreateCampaign submits the creation wizard.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	wizard, err := buildWizard(req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.campaigns.CreateCampaign(r.Context(), wizard)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, struct {
		Campaign campaignPayload `json:"campaign"`
		FundID   string          `json:"fundId"`
	}{Campaign: campaignJSON(created.Campaign), FundID: created.Fund.ID})
}

// handleListCampuses returns the active campuses for pickers.
func (h *Handler) handleListCampuses(w http.ResponseWriter, r *http.Request) {
	campuses, err := h.campaigns.ListCampuses(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]campusPayload, 0, len(campuses))
	for _, c := range campuses {
		out = append(out, campusPayload{ID: c.ID, Name: c.Name, Address: c.Address, Status: c.Status})
	}
	h.respond(w, http.StatusOK, out)
}

// handleListListings returns active listings; ?type=organization keeps only
// org-wide ones.
func (h *Handler) handleListListings(w http.ResponseWriter, r *http.Request) {
	orgOnly := strings.EqualFold(r.URL.Query().Get("type"), "organization")
	listings, err := h.campaigns.ListListings(r.Context(), orgOnly)
	if err != nil {
		h.respondError(w, err)
		return
	}
	out := make([]listingPayload, 0, len(listings))
	for _, l := range listings {
		out = append(out, listingPayload{ID: l.ID, Name: l.Name, Type: l.Type, Status: l.Status, CampusIDs: l.CampusIDs})
	}
	h.respond(w, http.StatusOK, out)
}
