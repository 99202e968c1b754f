package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WizardStep identifies the current step of the campaign creation wizard.
type WizardStep int

const (
	WizardDetails WizardStep = iota
	WizardCampuses
	WizardFund
	WizardReady
)

// CampaignDetails is the data collected by step one of the wizard. Name and
// Description are required; the rest is optional.
type CampaignDetails struct {
	Name          string
	Description   string
	FinancialGoal decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	PhoneNumber   string
	EmailAddress  string
}

// CampusAssignment is one selected campus with its listing choices and its
// slice of the campaign goal.
type CampusAssignment struct {
	CampusID   string
	ListingIDs []string
	Goal       decimal.Decimal
}

// FundDetails is the data collected by step three of the wizard. A nil
// TaxDeductible keeps the default (deductible).
type FundDetails struct {
	Name              string
	Code              string
	TaxDeductible     *bool
	ThankYouMessage   string
	ThankYouAnimation string
}

// CampaignWizard is the three-step creation workflow: campaign details,
// campus/destination assignment, fund details. Each advance validates the
// step's required fields first.
type CampaignWizard struct {
	Step        WizardStep
	Details     CampaignDetails
	Destination string
	// OrgFundListingID is the selected org-level listing, required iff
	// Destination is DestinationOrgFund.
	OrgFundListingID string
	Campuses         []CampusAssignment
	// SplitEvenly recomputes every selected campus's goal as
	// total/count whenever the total or the selection changes. A manual
	// edit of any campus goal disengages it; manual edits always win.
	SplitEvenly bool
	Fund        FundDetails
}

// NewCampaignWizard starts a wizard at the details step. Tax deductibility
// defaults to true unless step three turns it off.
func NewCampaignWizard() CampaignWizard {
	return CampaignWizard{
		Step: WizardDetails,
		Fund: FundDetails{ThankYouAnimation: "none"},
	}
}

// WithDetails records step one and advances. Name and description must be
// non-empty after trimming.
func (w CampaignWizard) WithDetails(d CampaignDetails) (CampaignWizard, error) {
	if w.Step != WizardDetails {
		return w, ErrInvalidTransition
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	if d.Name == "" || d.Description == "" {
		return w, ValidationError("campaign name and description are required")
	}
	w.Details = d
	w.Step = WizardCampuses
	return w, nil
}

// SelectCampus adds a campus to the assignment. While the even split is
// engaged all goals are recomputed over the new selection.
func (w CampaignWizard) SelectCampus(campusID string) CampaignWizard {
	for _, a := range w.Campuses {
		if a.CampusID == campusID {
			return w
		}
	}
	w.Campuses = append(append([]CampusAssignment(nil), w.Campuses...), CampusAssignment{CampusID: campusID, Goal: decimal.Zero})
	return w.resplit()
}

// DeselectCampus removes a campus, dropping its listings and goal. While
// the even split is engaged the remaining goals are recomputed.
func (w CampaignWizard) DeselectCampus(campusID string) CampaignWizard {
	out := make([]CampusAssignment, 0, len(w.Campuses))
	for _, a := range w.Campuses {
		if a.CampusID != campusID {
			out = append(out, a)
		}
	}
	w.Campuses = out
	return w.resplit()
}

// SetCampusListings replaces the listing selection for a campus.
func (w CampaignWizard) SetCampusListings(campusID string, listingIDs []string) CampaignWizard {
	campuses := append([]CampusAssignment(nil), w.Campuses...)
	for i := range campuses {
		if campuses[i].CampusID == campusID {
			campuses[i].ListingIDs = listingIDs
		}
	}
	w.Campuses = campuses
	return w
}

// SetTotalGoal updates the campaign's overall goal, recomputing campus
// goals while the even split is engaged.
func (w CampaignWizard) SetTotalGoal(goal decimal.Decimal) CampaignWizard {
	w.Details.FinancialGoal = goal
	return w.resplit()
}

// SetSplitEvenly toggles the even split. Engaging it recomputes all
// selected campus goals immediately.
func (w CampaignWizard) SetSplitEvenly(on bool) CampaignWizard {
	w.SplitEvenly = on
	return w.resplit()
}

// SetCampusGoal is a manual edit of one campus goal. It disengages the
// even split; the edited value is kept as entered.
func (w CampaignWizard) SetCampusGoal(campusID string, goal decimal.Decimal) CampaignWizard {
	w.SplitEvenly = false
	campuses := append([]CampusAssignment(nil), w.Campuses...)
	for i := range campuses {
		if campuses[i].CampusID == campusID {
			campuses[i].Goal = goal
		}
	}
	w.Campuses = campuses
	return w
}

func (w CampaignWizard) resplit() CampaignWizard {
	if !w.SplitEvenly || len(w.Campuses) == 0 {
		return w
	}
	share := w.Details.FinancialGoal.DivRound(decimal.NewFromInt(int64(len(w.Campuses))), 2)
	campuses := append([]CampusAssignment(nil), w.Campuses...)
	for i := range campuses {
		campuses[i].Goal = share
	}
	w.Campuses = campuses
	return w
}

// WithDestination records the donation destination and advances to the
// fund step. An org-fund destination requires a selected org listing.
func (w CampaignWizard) WithDestination(destination, orgFundListingID string) (CampaignWizard, error) {
	if w.Step != WizardCampuses {
		return w, ErrInvalidTransition
	}
	switch destination {
	case DestinationOrgFund:
		if orgFundListingID == "" {
			return w, ValidationError("an org fund listing must be selected")
		}
	case DestinationCampus:
		// zero or more selected campuses, each with optional listings
	default:
		return w, ValidationError("unknown donation destination")
	}
	w.Destination = destination
	w.OrgFundListingID = orgFundListingID
	if destination == DestinationCampus {
		w.OrgFundListingID = ""
	}
	w.Step = WizardFund
	return w, nil
}

// WithFund records step three and readies the wizard for submission. Fund
// name and thank-you message are required.
func (w CampaignWizard) WithFund(f FundDetails) (CampaignWizard, error) {
	if w.Step != WizardFund {
		return w, ErrInvalidTransition
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" || strings.TrimSpace(f.ThankYouMessage) == "" {
		return w, ValidationError("fund name and thank-you message are required")
	}
	if f.ThankYouAnimation == "" {
		f.ThankYouAnimation = "none"
	}
	w.Fund = f
	w.Step = WizardReady
	return w, nil
}

// FundRecord materializes the fund to create. Only valid once ready.
func (w CampaignWizard) FundRecord() (Fund, error) {
	if w.Step != WizardReady {
		return Fund{}, ErrInvalidTransition
	}
	return Fund{
		Name:              w.Fund.Name,
		Code:              w.Fund.Code,
		TaxDeductible:     w.Fund.TaxDeductible == nil || *w.Fund.TaxDeductible,
		ThankYouMessage:   w.Fund.ThankYouMessage,
		ThankYouAnimation: w.Fund.ThankYouAnimation,
	}, nil
}

// CampaignRecord materializes the campaign to create, linked to the fund.
// New campaigns are published immediately.
func (w CampaignWizard) CampaignRecord(fundID string) (Campaign, error) {
	if w.Step != WizardReady {
		return Campaign{}, ErrInvalidTransition
	}
	campusIDs := make([]string, 0, len(w.Campuses))
	for _, a := range w.Campuses {
		campusIDs = append(campusIDs, a.CampusID)
	}
	scope := ScopeOrg
	if w.Destination == DestinationCampus {
		scope = ScopeCampus
	}
	return Campaign{
		Name:                w.Details.Name,
		Description:         w.Details.Description,
		FinancialGoal:       w.Details.FinancialGoal,
		StartDate:           w.Details.StartDate,
		EndDate:             w.Details.EndDate,
		PhoneNumber:         w.Details.PhoneNumber,
		EmailAddress:        w.Details.EmailAddress,
		Status:              CampaignPublished,
		Scope:               scope,
		DonationDestination: w.Destination,
		OrgFundListingID:    w.OrgFundListingID,
		AssignedCampusIDs:   campusIDs,
		FundID:              fundID,
	}, nil
}

// CampusGoalRecords materializes one goal row per selected campus.
func (w CampaignWizard) CampusGoalRecords(campaignID string) ([]CampusGoal, error) {
	if w.Step != WizardReady {
		return nil, ErrInvalidTransition
	}
	goals := make([]CampusGoal, 0, len(w.Campuses))
	for _, a := range w.Campuses {
		goals = append(goals, CampusGoal{
			CampaignID: campaignID,
			CampusID:   a.CampusID,
			Goal:       a.Goal,
		})
	}
	return goals, nil
}
