package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port/mocks"
)

const (
	northCampusID = "recnorth000000001"
	southCampusID = "recsouth000000001"
)

func orgSession() domain.Session {
	return domain.Session{Role: domain.RoleOrgAdmin}
}

func northSession() domain.Session {
	return domain.Session{Role: domain.RoleSingleCampus, CampusIDs: []string{northCampusID}}
}

// TestListCampaignsAccessFilter checks a campus-scoped session only sees
// campaigns assigned to its campus, while an unknown role sees nothing.
func TestListCampaignsAccessFilter(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	northOnly := domain.Campaign{
		ID:                "reccampaign000001",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{northCampusID},
	}
	southOnly := domain.Campaign{
		ID:                "reccampaign000002",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{southCampusID},
	}

	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{northOnly, southOnly}, nil)
	repo.EXPECT().ListCampuses(mock.Anything, false).Return(nil, nil)
	repo.EXPECT().ListPledges(mock.Anything, port.PledgeQuery{CampaignID: northOnly.ID}).Return(nil, nil)
	repo.EXPECT().ListGifts(mock.Anything, northOnly.ID).Return(nil, nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	summaries, err := svc.ListCampaigns(context.Background(), northSession(), []string{domain.CampaignPublished})
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Campaign.ID != northOnly.ID {
		t.Fatalf("expected only the north campaign, got %+v", summaries)
	}

	// A role outside the known set gets an empty list, not everything.
	empty, err := svc.ListCampaigns(context.Background(), domain.Session{Role: "super-admin"}, nil)
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unknown role saw %d campaigns", len(empty))
	}
}

// TestGetCampaignGoalResolution checks the campus-scoped goal sum excludes
// campuses outside the session's scope.
func TestGetCampaignGoalResolution(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	campaign := &domain.Campaign{
		ID:                "reccampaign000001",
		FinancialGoal:     decimal.NewFromInt(10000),
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{northCampusID, southCampusID},
	}
	goals := []domain.CampusGoal{
		{CampaignID: campaign.ID, CampusID: northCampusID, Goal: decimal.NewFromInt(4000)},
		{CampaignID: campaign.ID, CampusID: southCampusID, Goal: decimal.NewFromInt(6000)},
	}

	repo.EXPECT().FindCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	repo.EXPECT().ListPledges(mock.Anything, port.PledgeQuery{CampaignID: campaign.ID}).Return(nil, nil)
	repo.EXPECT().ListGifts(mock.Anything, campaign.ID).Return(nil, nil)
	repo.EXPECT().ListCampusGoals(mock.Anything, campaign.ID).Return(goals, nil)
	repo.EXPECT().ListCampuses(mock.Anything, false).Return(nil, nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	detail, err := svc.GetCampaign(context.Background(), northSession(), campaign.ID, "")
	if err != nil {
		t.Fatalf("GetCampaign error: %v", err)
	}
	if !detail.Goal.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("goal = %s, want the north slice 4000", detail.Goal)
	}
}

// TestCreateCampaignWritesInOrder checks the fund is created before the
// campaign referencing it, then one goal row per selected campus.
func TestCreateCampaignWritesInOrder(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	w := domain.NewCampaignWizard()
	w, err := w.WithDetails(domain.CampaignDetails{
		Name:          "Roof Repair",
		Description:   "Fix the roof",
		FinancialGoal: decimal.NewFromInt(10000),
	})
	if err != nil {
		t.Fatalf("WithDetails: %v", err)
	}
	w = w.SelectCampus(northCampusID)
	w = w.SelectCampus(southCampusID)
	w = w.SetTotalGoal(decimal.NewFromInt(10000))
	w = w.SetSplitEvenly(true)
	w, err = w.WithDestination(domain.DestinationCampus, "")
	if err != nil {
		t.Fatalf("WithDestination: %v", err)
	}
	w, err = w.WithFund(domain.FundDetails{
		Name:            "Roof Repair Fund",
		ThankYouMessage: "Thank you!",
	})
	if err != nil {
		t.Fatalf("WithFund: %v", err)
	}

	repo.EXPECT().CreateFund(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, f domain.Fund) (*domain.Fund, error) {
			f.ID = "recfund0000000001"
			return &f, nil
		})

	var createdCampaign domain.Campaign
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
			createdCampaign = c
			c.ID = "reccampaign000001"
			return &c, nil
		})

	var goals []domain.CampusGoal
	repo.EXPECT().CreateCampusGoal(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, g domain.CampusGoal) error {
			goals = append(goals, g)
			return nil
		})

	svc := NewCampaignService(repo, "http://give.example.com")
	created, err := svc.CreateCampaign(context.Background(), w)
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if createdCampaign.FundID != "recfund0000000001" {
		t.Fatalf("campaign not linked to created fund, got %q", createdCampaign.FundID)
	}
	if created.Campaign.Status != domain.CampaignPublished {
		t.Fatalf("new campaign status = %q, want Published", created.Campaign.Status)
	}
	if len(goals) != 2 {
		t.Fatalf("goal rows = %d, want 2", len(goals))
	}
	for _, g := range goals {
		if !g.Goal.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("even split goal = %s, want 5000", g.Goal)
		}
		if g.CampaignID != created.Campaign.ID {
			t.Fatalf("goal row campaign = %q, want %q", g.CampaignID, created.Campaign.ID)
		}
	}
}

// TestCloseCampaignIsOneWay checks only Published campaigns close, and a
// closed one stays closed.
func TestCloseCampaignIsOneWay(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	published := &domain.Campaign{ID: "reccampaign000001", Status: domain.CampaignPublished}
	closed := &domain.Campaign{ID: "reccampaign000002", Status: domain.CampaignClosed}

	repo.EXPECT().FindCampaign(mock.Anything, published.ID).Return(published, nil)
	repo.EXPECT().FindCampaign(mock.Anything, closed.ID).Return(closed, nil)
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, published.ID, domain.CampaignClosed).Return(nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	if err := svc.CloseCampaign(context.Background(), published.ID); err != nil {
		t.Fatalf("CloseCampaign error: %v", err)
	}
	if err := svc.CloseCampaign(context.Background(), closed.ID); !errors.Is(err, port.ErrCampaignClosed) {
		t.Fatalf("expected ErrCampaignClosed, got %v", err)
	}
}

// TestShareLinks checks link construction and the campus membership check.
func TestShareLinks(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	campaign := &domain.Campaign{
		ID:                "reccampaign000001",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{northCampusID},
	}
	listing := &domain.Listing{
		ID:        "reclisting0000001",
		Type:      domain.ListingTypeCampus,
		CampusIDs: []string{northCampusID},
	}

	repo.EXPECT().FindCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	repo.EXPECT().FindListing(mock.Anything, listing.ID).Return(listing, nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	links, err := svc.ShareLinks(context.Background(), campaign.ID, northCampusID, listing.ID)
	if err != nil {
		t.Fatalf("ShareLinks error: %v", err)
	}
	wantPledge := "http://give.example.com/pledge?campaign=reccampaign000001&campus=recnorth000000001"
	if links.PledgeURL != wantPledge {
		t.Fatalf("pledge url = %q, want %q", links.PledgeURL, wantPledge)
	}
	if links.GivingURL == "" {
		t.Fatalf("giving url missing")
	}

	if _, err := svc.ShareLinks(context.Background(), campaign.ID, southCampusID, ""); !errors.Is(err, port.ErrCampusNotInCampaign) {
		t.Fatalf("expected ErrCampusNotInCampaign, got %v", err)
	}
}

// TestPledgePageDataCampusPicker checks a link without a campus yields the
// in-page picker restricted to assigned campuses.
func TestPledgePageDataCampusPicker(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	campaign := &domain.Campaign{
		ID:                "reccampaign000001",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{northCampusID},
	}
	campuses := []domain.Campus{
		{ID: northCampusID, Name: "North", Status: domain.StatusActive},
		{ID: southCampusID, Name: "South", Status: domain.StatusActive},
	}

	repo.EXPECT().FindCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	repo.EXPECT().ListPledges(mock.Anything, port.PledgeQuery{CampaignID: campaign.ID}).Return(nil, nil)
	repo.EXPECT().ListGifts(mock.Anything, campaign.ID).Return(nil, nil)
	repo.EXPECT().ListCampuses(mock.Anything, true).Return(campuses, nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	data, err := svc.PledgePageData(context.Background(), campaign.ID, "")
	if err != nil {
		t.Fatalf("PledgePageData error: %v", err)
	}
	if data.Campus != nil {
		t.Fatalf("expected no preselected campus")
	}
	if len(data.CampusChoices) != 1 || data.CampusChoices[0].ID != northCampusID {
		t.Fatalf("picker choices = %+v, want just north", data.CampusChoices)
	}
}

// TestCampaignDonorsVisibility checks donor rollups are scoped to donors
// whose activity touches an accessible campus.
func TestCampaignDonorsVisibility(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	campaign := &domain.Campaign{
		ID:                "reccampaign000001",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{northCampusID, southCampusID},
	}
	donors := []domain.Donor{
		{ID: "recdonor000000001", Name: "North Donor", Email: "n@example.com"},
		{ID: "recdonor000000002", Name: "South Donor", Email: "s@example.com"},
	}
	pledges := []domain.Pledge{
		{ID: "recpledge00000001", DonorID: donors[0].ID, CampaignID: campaign.ID, CampusID: northCampusID, TotalCommitment: decimal.NewFromInt(100), Type: domain.TypeOneTime},
		{ID: "recpledge00000002", DonorID: donors[1].ID, CampaignID: campaign.ID, CampusID: southCampusID, TotalCommitment: decimal.NewFromInt(200), Type: domain.TypeOneTime},
	}

	repo.EXPECT().FindCampaign(mock.Anything, campaign.ID).Return(campaign, nil)
	repo.EXPECT().ListPledges(mock.Anything, port.PledgeQuery{CampaignID: campaign.ID}).Return(pledges, nil)
	repo.EXPECT().ListGifts(mock.Anything, campaign.ID).Return(nil, nil)
	repo.EXPECT().ListDonors(mock.Anything).Return(donors, nil)

	svc := NewCampaignService(repo, "http://give.example.com")
	rollups, err := svc.CampaignDonors(context.Background(), northSession(), campaign.ID)
	if err != nil {
		t.Fatalf("CampaignDonors error: %v", err)
	}
	if len(rollups) != 1 || rollups[0].DonorID != donors[0].ID {
		t.Fatalf("expected only the north donor, got %+v", rollups)
	}
}
