package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port/mocks"
)

const (
	testCampaignID = "reccampaign000001"
	testCampusID   = "reccampus00000001"
	testDonorID    = "recdonor000000001"
)

func openCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                testCampaignID,
		Name:              "Building Fund",
		Status:            domain.CampaignPublished,
		AssignedCampusIDs: []string{testCampusID},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestSubmitPublicPledgeOneTime checks a one-time pledge stores the entered
// amount as-is and records no gift on the pledge-only path.
func TestSubmitPublicPledgeOneTime(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindDonorByEmail(mock.Anything, "sam@example.com").Return(nil, nil)
	repo.EXPECT().CreateDonor(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d domain.Donor) (*domain.Donor, error) {
			d.ID = testDonorID
			return &d, nil
		})
	repo.EXPECT().FindCampus(mock.Anything, testCampusID).
		Return(&domain.Campus{ID: testCampusID, Name: "North Campus"}, nil)

	var stored domain.Pledge
	repo.EXPECT().CreatePledge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, p domain.Pledge) (*domain.Pledge, error) {
			stored = p
			p.ID = "recpledge00000001"
			return &p, nil
		})

	svc := NewPledgeService(repo)
	receipt, err := svc.SubmitPublicPledge(context.Background(), port.PledgeEntry{
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		DonorName:       "Sam Jones",
		DonorEmail:      "sam@example.com",
		PerPeriodAmount: decimal.NewFromInt(250),
		Type:            domain.TypeOneTime,
	})
	if err != nil {
		t.Fatalf("SubmitPublicPledge error: %v", err)
	}
	if receipt.Gift != nil {
		t.Fatalf("pledge-only path recorded a gift")
	}
	if !stored.TotalCommitment.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("stored amount = %s, want 250", stored.TotalCommitment)
	}
	if stored.DonorID != testDonorID {
		t.Fatalf("stored donor = %q, want %q", stored.DonorID, testDonorID)
	}
	if stored.Notes != "Pledge created via donor portal for Building Fund at North Campus" {
		t.Fatalf("unexpected notes %q", stored.Notes)
	}
}

// TestSubmitPublicPledgeRecurringTotal checks a recurring pledge stores the
// computed total while the first gift carries the per-period amount.
func TestSubmitPublicPledgeRecurringTotal(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	donor := &domain.Donor{ID: testDonorID, Name: "Sam Jones", Email: "sam@example.com"}

	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindDonorByEmail(mock.Anything, "sam@example.com").Return(donor, nil)
	repo.EXPECT().FindPledgeFor(mock.Anything, testDonorID, testCampaignID, testCampusID).Return(nil, nil)
	repo.EXPECT().FindCampus(mock.Anything, testCampusID).
		Return(&domain.Campus{ID: testCampusID, Name: "North Campus"}, nil)

	var stored domain.Pledge
	repo.EXPECT().CreatePledge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, p domain.Pledge) (*domain.Pledge, error) {
			stored = p
			p.ID = "recpledge00000001"
			return &p, nil
		})

	var storedGift domain.Gift
	repo.EXPECT().CreateGift(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, g domain.Gift) (*domain.Gift, error) {
			storedGift = g
			g.ID = "recgift0000000001"
			return &g, nil
		})

	svc := NewPledgeService(repo)
	receipt, err := svc.SubmitPublicPledge(context.Background(), port.PledgeEntry{
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		DonorName:       "Sam Jones",
		DonorEmail:      "sam@example.com",
		PerPeriodAmount: decimal.NewFromInt(50),
		Type:            domain.TypeRecurring,
		Frequency:       domain.Monthly,
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2024, time.July, 1),
		PayNow:          true,
	})
	if err != nil {
		t.Fatalf("SubmitPublicPledge error: %v", err)
	}
	// six monthly periods of $50
	if !stored.TotalCommitment.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("stored total = %s, want 300", stored.TotalCommitment)
	}
	if receipt.Gift == nil {
		t.Fatalf("pay-now path recorded no gift")
	}
	if !storedGift.PerPeriodAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("gift amount = %s, want 50", storedGift.PerPeriodAmount)
	}
	if storedGift.Frequency != domain.Monthly {
		t.Fatalf("gift frequency = %q, want Monthly", storedGift.Frequency)
	}
}

// TestSubmitPublicPledgeDuplicateBlocks checks an existing pledge by the
// same donor for the same campaign and campus blocks before any write.
func TestSubmitPublicPledgeDuplicateBlocks(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	donor := &domain.Donor{ID: testDonorID, Name: "Sam Jones", Email: "sam@example.com"}
	existing := &domain.Pledge{
		ID:              "recpledge00000001",
		DonorID:         testDonorID,
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		TotalCommitment: decimal.NewFromInt(100),
		Type:            domain.TypeOneTime,
	}

	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindDonorByEmail(mock.Anything, "sam@example.com").Return(donor, nil)
	repo.EXPECT().FindPledgeFor(mock.Anything, testDonorID, testCampaignID, testCampusID).Return(existing, nil)

	svc := NewPledgeService(repo)
	_, err := svc.SubmitPublicPledge(context.Background(), port.PledgeEntry{
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		DonorName:       "Sam Jones",
		DonorEmail:      "sam@example.com",
		PerPeriodAmount: decimal.NewFromInt(75),
		Type:            domain.TypeOneTime,
	})
	if !errors.Is(err, port.ErrDuplicatePledge) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	var dup *port.DuplicatePledgeError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicatePledgeError, got %T", err)
	}
	if dup.Existing.ID != existing.ID {
		t.Fatalf("duplicate payload carries %q, want %q", dup.Existing.ID, existing.ID)
	}
}

// TestSubmitPublicPledgeClosedCampaign checks entry against a closed
// campaign is rejected outright.
func TestSubmitPublicPledgeClosedCampaign(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	closed := openCampaign()
	closed.Status = domain.CampaignClosed
	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(closed, nil)

	svc := NewPledgeService(repo)
	_, err := svc.SubmitPublicPledge(context.Background(), port.PledgeEntry{
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		DonorName:       "Sam Jones",
		DonorEmail:      "sam@example.com",
		PerPeriodAmount: decimal.NewFromInt(10),
		Type:            domain.TypeOneTime,
	})
	if !errors.Is(err, port.ErrCampaignClosed) {
		t.Fatalf("expected ErrCampaignClosed, got %v", err)
	}
}

// TestSubmitPublicPledgeWrongCampus checks a campus outside the campaign's
// assignment is rejected.
func TestSubmitPublicPledgeWrongCampus(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)

	svc := NewPledgeService(repo)
	_, err := svc.SubmitPublicPledge(context.Background(), port.PledgeEntry{
		CampaignID:      testCampaignID,
		CampusID:        "recothercampus001",
		DonorName:       "Sam Jones",
		DonorEmail:      "sam@example.com",
		PerPeriodAmount: decimal.NewFromInt(10),
		Type:            domain.TypeOneTime,
	})
	if !errors.Is(err, port.ErrCampusNotInCampaign) {
		t.Fatalf("expected ErrCampusNotInCampaign, got %v", err)
	}
}

// TestAddPledgeUpdateExisting checks the admin flow overwrites the existing
// pledge in place when asked to.
func TestAddPledgeUpdateExisting(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	donor := &domain.Donor{ID: testDonorID, Name: "Sam Jones", Email: "sam@example.com"}
	existing := &domain.Pledge{
		ID:              "recpledge00000001",
		DonorID:         testDonorID,
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		TotalCommitment: decimal.NewFromInt(100),
		Type:            domain.TypeOneTime,
		Notes:           "original note",
	}

	repo.EXPECT().FindDonor(mock.Anything, testDonorID).Return(donor, nil)
	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindPledgeFor(mock.Anything, testDonorID, testCampaignID, testCampusID).Return(existing, nil)

	var updated domain.Pledge
	repo.EXPECT().UpdatePledge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, p domain.Pledge) (*domain.Pledge, error) {
			updated = p
			return &p, nil
		})

	svc := NewPledgeService(repo)
	receipt, err := svc.AddPledge(context.Background(), port.AdminPledgeEntry{
		DonorID:         testDonorID,
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		PerPeriodAmount: decimal.NewFromInt(500),
		Type:            domain.TypeOneTime,
		UpdateExisting:  true,
	})
	if err != nil {
		t.Fatalf("AddPledge error: %v", err)
	}
	if !receipt.Updated {
		t.Fatalf("receipt not marked updated")
	}
	if updated.ID != existing.ID {
		t.Fatalf("updated id = %q, want existing %q", updated.ID, existing.ID)
	}
	if !updated.TotalCommitment.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("updated amount = %s, want 500", updated.TotalCommitment)
	}
	if updated.Notes != "original note" {
		t.Fatalf("existing notes lost, got %q", updated.Notes)
	}
}

// TestAddPledgeDuplicateWithoutOverride checks the admin flow surfaces the
// duplicate instead of silently overwriting.
func TestAddPledgeDuplicateWithoutOverride(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	donor := &domain.Donor{ID: testDonorID, Name: "Sam Jones", Email: "sam@example.com"}
	existing := &domain.Pledge{ID: "recpledge00000001", DonorID: testDonorID, CampaignID: testCampaignID, CampusID: testCampusID}

	repo.EXPECT().FindDonor(mock.Anything, testDonorID).Return(donor, nil)
	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindPledgeFor(mock.Anything, testDonorID, testCampaignID, testCampusID).Return(existing, nil)

	svc := NewPledgeService(repo)
	_, err := svc.AddPledge(context.Background(), port.AdminPledgeEntry{
		DonorID:         testDonorID,
		CampaignID:      testCampaignID,
		CampusID:        testCampusID,
		PerPeriodAmount: decimal.NewFromInt(500),
		Type:            domain.TypeOneTime,
	})
	if !errors.Is(err, port.ErrDuplicatePledge) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

// TestCheckExistingPledgeUnknownDonor checks a donor not on file reports no
// existing pledge.
func TestCheckExistingPledgeUnknownDonor(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().FindDonorByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewPledgeService(repo)
	existing, err := svc.CheckExistingPledge(context.Background(), "nobody@example.com", testCampaignID, testCampusID)
	if err != nil {
		t.Fatalf("CheckExistingPledge error: %v", err)
	}
	if existing != nil {
		t.Fatalf("expected nil, got %+v", existing)
	}
}

// TestListPledgesPaging checks the admin list counts and pages the same
// thirty-day window, with page arithmetic against that count.
func TestListPledgesPaging(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	since := date(2024, time.May, 16)
	repo.EXPECT().CountPledges(mock.Anything, port.PledgeQuery{Since: since}).Return(41, nil)
	repo.EXPECT().ListPledges(mock.Anything, port.PledgeQuery{Since: since, Limit: 20, Offset: 20}).
		Return(make([]domain.Pledge, 20), nil)

	svc := NewPledgeService(repo)
	svc.now = func() time.Time { return date(2024, time.June, 15).Add(10 * time.Hour) }
	page, err := svc.ListPledges(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("ListPledges error: %v", err)
	}
	if page.Total != 41 || page.TotalPages != 3 {
		t.Fatalf("total=%d pages=%d, want 41 and 3", page.Total, page.TotalPages)
	}
	if len(page.Pledges) != 20 {
		t.Fatalf("page size = %d, want 20", len(page.Pledges))
	}
}

// TestSearchDonorsBlankQuery checks blank queries short-circuit without
// touching the repository.
func TestSearchDonorsBlankQuery(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	svc := NewPledgeService(repo)
	donors, err := svc.SearchDonors(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchDonors error: %v", err)
	}
	if donors != nil {
		t.Fatalf("expected nil result, got %v", donors)
	}
}

// TestSubmitPublicGiftListingCheck checks a campus-scoped listing not
// offered at the campus is rejected.
func TestSubmitPublicGiftListingCheck(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)

	repo.EXPECT().FindCampaign(mock.Anything, testCampaignID).Return(openCampaign(), nil)
	repo.EXPECT().FindListing(mock.Anything, "reclisting0000001").
		Return(&domain.Listing{
			ID:        "reclisting0000001",
			Type:      domain.ListingTypeCampus,
			CampusIDs: []string{"recothercampus001"},
		}, nil)

	svc := NewPledgeService(repo)
	_, err := svc.SubmitPublicGift(context.Background(), port.GiftEntry{
		CampaignID: testCampaignID,
		CampusID:   testCampusID,
		ListingID:  "reclisting0000001",
		DonorName:  "Sam Jones",
		DonorEmail: "sam@example.com",
		Amount:     decimal.NewFromInt(25),
		Type:       domain.TypeOneTime,
	})
	if !errors.Is(err, port.ErrListingNotAtCampus) {
		t.Fatalf("expected ErrListingNotAtCampus, got %v", err)
	}
}
