package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign lifecycle statuses. Closed is terminal; a closed campaign
// cannot be reopened.
const (
	CampaignDraft     = "Draft"
	CampaignPublished = "Published"
	CampaignClosed    = "Closed"
)

// Campaign scope values.
const (
	ScopeOrg    = "Org"
	ScopeCampus = "Campus"
)

// Donation destination values. DestinationOrgFund implies an org-fund
// listing is selected; DestinationCampus implies the assigned campuses
// carry their own listing selections.
const (
	DestinationOrgFund = "Org Fund"
	DestinationCampus  = "Campus"
)

// Campaign is a fundraising drive with a linked fund, an optional financial
// goal and a set of assigned campuses.
type Campaign struct {
	ID                  string
	Name                string
	Description         string
	FinancialGoal       decimal.Decimal
	StartDate           *time.Time
	EndDate             *time.Time
	Status              string
	Scope               string
	DonationDestination string
	OrgFundListingID    string
	AssignedCampusIDs   []string
	FundID              string
	PhoneNumber         string
	EmailAddress        string
	CreatedAt           time.Time
}

// AssignedTo reports whether the campus participates in the campaign.
func (c Campaign) AssignedTo(campusID string) bool {
	for _, id := range c.AssignedCampusIDs {
		if id == campusID {
			return true
		}
	}
	return false
}

// CampusGoal is the per-campus slice of a campaign's financial goal,
// created once per selected campus at campaign-creation time.
type CampusGoal struct {
	CampaignID string
	CampusID   string
	Goal       decimal.Decimal
}
