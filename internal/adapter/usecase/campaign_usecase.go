package usecase

import (
	"context"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// unknownCampusName labels breakdown rows whose campus record is gone.
const unknownCampusName = "Unknown Campus"

// CampaignService implements port.CampaignUseCase. It applies the session's
// access filter to everything it returns and builds the donor-facing share
// links from the configured base URL.
type CampaignService struct {
	repo    port.RecordRepository
	baseURL string
}

// NewCampaignService creates a new usecase with the provided repository.
// baseURL is the public origin share links are built against.
func NewCampaignService(repo port.RecordRepository, baseURL string) *CampaignService {
	return &CampaignService{repo: repo, baseURL: baseURL}
}

// campusNames loads the campus id to name map used by breakdown rows.
func (s *CampaignService) campusNames(ctx context.Context) (map[string]string, error) {
	campuses, err := s.repo.ListCampuses(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(campuses))
	for _, c := range campuses {
		names[c.ID] = c.Name
	}
	return names, nil
}

// breakdown resolves campus names onto the per-campus stat rows, keeping
// only campuses the session can access.
func breakdown(stats domain.Stats, names map[string]string, sess domain.Session) []port.CampusBreakdown {
	rows := make([]port.CampusBreakdown, 0, len(stats.ByCampus))
	for _, cs := range stats.ByCampus {
		if !sess.CanAccessCampus(cs.CampusID) {
			continue
		}
		name, ok := names[cs.CampusID]
		if !ok {
			name = unknownCampusName
		}
		rows = append(rows, port.CampusBreakdown{
			CampusID:    cs.CampusID,
			CampusName:  name,
			Pledged:     cs.Pledged,
			Raised:      cs.Raised,
			PledgeCount: cs.PledgeCount,
			GiftCount:   cs.GiftCount,
		})
	}
	return rows
}

// ListCampaigns returns the campaigns visible to the session with their
// aggregate stats, optionally narrowed to a status set.
func (s *CampaignService) ListCampaigns(ctx context.Context, sess domain.Session, statuses []string) ([]port.CampaignSummary, error) {
	all, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	visible := domain.AccessibleCampaigns(all, sess)
	if len(statuses) > 0 {
		visible = domain.FilterByStatus(visible, statuses...)
	}

	names, err := s.campusNames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]port.CampaignSummary, 0, len(visible))
	for _, c := range visible {
		pledges, err := s.repo.ListPledges(ctx, port.PledgeQuery{CampaignID: c.ID})
		if err != nil {
			return nil, err
		}
		gifts, err := s.repo.ListGifts(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		stats := domain.CampaignStats(c.ID, pledges, gifts)
		summaries = append(summaries, port.CampaignSummary{
			Campaign:  c,
			Stats:     stats,
			Breakdown: breakdown(stats, names, sess),
		})
	}
	return summaries, nil
}

// GetCampaign returns the detail view. The goal is resolved against the
// campus goal table for the session and optional selected campus.
func (s *CampaignService) GetCampaign(ctx context.Context, sess domain.Session, id, selectedCampusID string) (*port.CampaignDetail, error) {
	campaign, err := s.repo.FindCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	if len(domain.AccessibleCampaigns([]domain.Campaign{*campaign}, sess)) == 0 {
		return nil, port.ErrNotFound
	}

	pledges, err := s.repo.ListPledges(ctx, port.PledgeQuery{CampaignID: id})
	if err != nil {
		return nil, err
	}
	gifts, err := s.repo.ListGifts(ctx, id)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListCampusGoals(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.campusNames(ctx)
	if err != nil {
		return nil, err
	}

	stats := domain.CampaignStats(id, pledges, gifts)
	return &port.CampaignDetail{
		Campaign:  *campaign,
		Stats:     stats,
		Breakdown: breakdown(stats, names, sess),
		Goal:      domain.ResolveGoal(*campaign, goals, sess, selectedCampusID),
	}, nil
}

// CampaignDonors returns per-donor rollups for the campaign, restricted to
// donors whose activity touches a campus the session can access.
func (s *CampaignService) CampaignDonors(ctx context.Context, sess domain.Session, id string) ([]domain.DonorRollup, error) {
	campaign, err := s.repo.FindCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	if len(domain.AccessibleCampaigns([]domain.Campaign{*campaign}, sess)) == 0 {
		return nil, port.ErrNotFound
	}

	pledges, err := s.repo.ListPledges(ctx, port.PledgeQuery{CampaignID: id})
	if err != nil {
		return nil, err
	}
	gifts, err := s.repo.ListGifts(ctx, id)
	if err != nil {
		return nil, err
	}
	donors, err := s.repo.ListDonors(ctx)
	if err != nil {
		return nil, err
	}

	rollups := domain.DonorRollups(id, pledges, gifts, donors)
	visible := make([]domain.DonorRollup, 0, len(rollups))
	for _, r := range rollups {
		if domain.DonorVisible(r.CampusIDs, sess) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// CreateCampaign submits a ready wizard. The fund is created first, then
// the campaign linked to it, then one goal row per selected campus. Writes
// are sequential; a failure partway leaves the earlier records in place.
func (s *CampaignService) CreateCampaign(ctx context.Context, w domain.CampaignWizard) (*port.CreatedCampaign, error) {
	fundRecord, err := w.FundRecord()
	if err != nil {
		return nil, err
	}
	fund, err := s.repo.CreateFund(ctx, fundRecord)
	if err != nil {
		return nil, err
	}

	campaignRecord, err := w.CampaignRecord(fund.ID)
	if err != nil {
		return nil, err
	}
	campaign, err := s.repo.CreateCampaign(ctx, campaignRecord)
	if err != nil {
		return nil, err
	}

	goals, err := w.CampusGoalRecords(campaign.ID)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if err := s.repo.CreateCampusGoal(ctx, g); err != nil {
			return nil, err
		}
	}
	return &port.CreatedCampaign{Campaign: *campaign, Fund: *fund}, nil
}

// CloseCampaign moves a Published campaign to Closed. Closed is terminal.
func (s *CampaignService) CloseCampaign(ctx context.Context, id string) error {
	campaign, err := s.repo.FindCampaign(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return port.ErrNotFound
	}
	if campaign.Status != domain.CampaignPublished {
		return port.ErrCampaignClosed
	}
	return s.repo.UpdateCampaignStatus(ctx, id, domain.CampaignClosed)
}

// ShareLinks builds the donor-facing URLs for a campaign, checking that the
// campus participates and, for the giving link, that the listing is offered
// at the campus.
func (s *CampaignService) ShareLinks(ctx context.Context, campaignID, campusID, listingID string) (*port.ShareLinks, error) {
	campaign, err := s.repo.FindCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	if campusID != "" && !campaign.AssignedTo(campusID) {
		return nil, port.ErrCampusNotInCampaign
	}

	links := &port.ShareLinks{
		PledgeURL: domain.PledgeLink(s.baseURL, campaignID, campusID),
	}
	if listingID != "" {
		listing, err := s.repo.FindListing(ctx, listingID)
		if err != nil {
			return nil, err
		}
		if listing == nil {
			return nil, port.ErrNotFound
		}
		if campusID != "" && listing.Type != domain.ListingTypeOrganization && !listing.AvailableAt(campusID) {
			return nil, port.ErrListingNotAtCampus
		}
		links.GivingURL = domain.GivingLink(s.baseURL, campaignID, campusID, listingID)
	}
	return links, nil
}

// ListCampuses returns the active campuses.
func (s *CampaignService) ListCampuses(ctx context.Context) ([]domain.Campus, error) {
	return s.repo.ListCampuses(ctx, true)
}

// ListListings returns active listings, optionally org-wide ones only.
func (s *CampaignService) ListListings(ctx context.Context, orgOnly bool) ([]domain.Listing, error) {
	return s.repo.ListListings(ctx, port.ListingFilter{ActiveOnly: true, OrgOnly: orgOnly})
}

// PledgePageData loads everything the public pledge page renders. A link
// without a campus yields the in-page campus picker instead.
func (s *CampaignService) PledgePageData(ctx context.Context, campaignID, campusID string) (*port.PledgePageData, error) {
	campaign, err := s.repo.FindCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	if campaign.Status == domain.CampaignClosed {
		return nil, port.ErrCampaignClosed
	}

	pledges, err := s.repo.ListPledges(ctx, port.PledgeQuery{CampaignID: campaignID})
	if err != nil {
		return nil, err
	}
	gifts, err := s.repo.ListGifts(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	data := &port.PledgePageData{
		Campaign: *campaign,
		Stats:    domain.CampaignStats(campaignID, pledges, gifts),
	}

	if campusID != "" {
		if !campaign.AssignedTo(campusID) {
			return nil, port.ErrCampusNotInCampaign
		}
		campus, err := s.repo.FindCampus(ctx, campusID)
		if err != nil {
			return nil, err
		}
		if campus == nil {
			return nil, port.ErrNotFound
		}
		data.Campus = campus
		return data, nil
	}

	campuses, err := s.repo.ListCampuses(ctx, true)
	if err != nil {
		return nil, err
	}
	choices := make([]domain.Campus, 0, len(campuses))
	for _, c := range campuses {
		if campaign.AssignedTo(c.ID) {
			choices = append(choices, c)
		}
	}
	data.CampusChoices = choices
	return data, nil
}

// GivingPageData loads the public giving page, additionally validating the
// listing against the campus.
func (s *CampaignService) GivingPageData(ctx context.Context, campaignID, campusID, listingID string) (*port.GivingPageData, error) {
	campaign, err := s.repo.FindCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	if campaign.Status == domain.CampaignClosed {
		return nil, port.ErrCampaignClosed
	}
	if !campaign.AssignedTo(campusID) {
		return nil, port.ErrCampusNotInCampaign
	}
	campus, err := s.repo.FindCampus(ctx, campusID)
	if err != nil {
		return nil, err
	}
	if campus == nil {
		return nil, port.ErrNotFound
	}
	listing, err := s.repo.FindListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, port.ErrNotFound
	}
	if listing.Type != domain.ListingTypeOrganization && !listing.AvailableAt(campusID) {
		return nil, port.ErrListingNotAtCampus
	}
	return &port.GivingPageData{
		Campaign: *campaign,
		Campus:   *campus,
		Listing:  *listing,
	}, nil
}
