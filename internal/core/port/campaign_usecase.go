package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
)

// CampusBreakdown is one campus row of a campaign's stats with the campus
// name resolved ("Unknown Campus" when the campus record is gone).
type CampusBreakdown struct {
	CampusID    string
	CampusName  string
	Pledged     decimal.Decimal
	Raised      decimal.Decimal
	PledgeCount int
	GiftCount   int
}

// CampaignSummary is a dashboard row: the campaign with its aggregate
// stats.
type CampaignSummary struct {
	Campaign  domain.Campaign
	Stats     domain.Stats
	Breakdown []CampusBreakdown
}

// CampaignDetail is the full campaign view. Goal is resolved for the
// caller's session and campus selection per the goal table.
type CampaignDetail struct {
	Campaign  domain.Campaign
	Stats     domain.Stats
	Breakdown []CampusBreakdown
	Goal      decimal.Decimal
}

// CreatedCampaign reports a completed wizard submission.
type CreatedCampaign struct {
	Campaign domain.Campaign
	Fund     domain.Fund
}

// ShareLinks are the donor-facing URLs for a campaign/campus pair.
type ShareLinks struct {
	PledgeURL string
	GivingURL string
}

// PledgePageData backs the public pledge page. With no campus in the link,
// Campus is nil and CampusChoices carries the in-page picker options.
type PledgePageData struct {
	Campaign      domain.Campaign
	Stats         domain.Stats
	Campus        *domain.Campus
	CampusChoices []domain.Campus
}

// GivingPageData backs the public giving page.
type GivingPageData struct {
	Campaign domain.Campaign
	Campus   domain.Campus
	Listing  domain.Listing
}

// CampaignUseCase is the inbound port for campaign administration and the
// public donor-facing pages.
type CampaignUseCase interface {
	// ListCampaigns returns the campaigns the session may see, newest
	// first, optionally narrowed to a status set.
	ListCampaigns(ctx context.Context, s domain.Session, statuses []string) ([]CampaignSummary, error)

	// GetCampaign returns the detail view with the goal resolved for the
	// session and optional selected campus.
	GetCampaign(ctx context.Context, s domain.Session, id, selectedCampusID string) (*CampaignDetail, error)

	// CampaignDonors returns per-donor rollups scoped to donors visible to
	// the session.
	CampaignDonors(ctx context.Context, s domain.Session, id string) ([]domain.DonorRollup, error)

	// CreateCampaign submits a ready wizard: fund, then campaign, then one
	// goal row per selected campus, in that order. Earlier writes are not
	// rolled back if a later one fails.
	CreateCampaign(ctx context.Context, w domain.CampaignWizard) (*CreatedCampaign, error)

	// CloseCampaign moves Published to Closed. One-way; a closed campaign
	// stays closed.
	CloseCampaign(ctx context.Context, id string) error

	// ShareLinks builds donor-facing URLs, validating that the campus and
	// listing actually belong where the link says they do.
	ShareLinks(ctx context.Context, campaignID, campusID, listingID string) (*ShareLinks, error)

	ListCampuses(ctx context.Context) ([]domain.Campus, error)
	ListListings(ctx context.Context, orgOnly bool) ([]domain.Listing, error)

	// PledgePageData loads and validates everything the public pledge page
	// needs. ErrNotFound / ErrCampusNotInCampaign are user-facing.
	PledgePageData(ctx context.Context, campaignID, campusID string) (*PledgePageData, error)

	// GivingPageData additionally checks the listing against the campus.
	GivingPageData(ctx context.Context, campaignID, campusID, listingID string) (*GivingPageData, error)
}
