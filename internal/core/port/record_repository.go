package port

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrListingNotAtCampus is returned when a giving link names a listing that
// does not belong to the chosen campus.
var ErrListingNotAtCampus = errors.New("listing is not offered at this campus")

// ErrCampusNotInCampaign is returned when a link names a campus that is not
// assigned to the campaign.
var ErrCampusNotInCampaign = errors.New("campus is not participating in this campaign")

// ErrCampaignClosed is returned when a status transition is attempted on a
// closed campaign. Closed is terminal.
var ErrCampaignClosed = errors.New("campaign is closed")

// ErrDuplicatePledge marks the recoverable duplicate-pledge condition.
// Match with errors.Is; the concrete *DuplicatePledgeError carries the
// existing record for update-instead flows.
var ErrDuplicatePledge = errors.New("pledge already exists")

// DuplicatePledgeError reports that a pledge already exists for the same
// donor, campaign and campus. It satisfies errors.Is(err,
// ErrDuplicatePledge).
type DuplicatePledgeError struct {
	Existing domain.Pledge
}

func (e *DuplicatePledgeError) Error() string {
	return fmt.Sprintf("a pledge already exists for this donor and campaign (pledge %s)", e.Existing.ID)
}

func (e *DuplicatePledgeError) Is(target error) bool { return target == ErrDuplicatePledge }

// ListingFilter narrows listing queries.
type ListingFilter struct {
	// ActiveOnly keeps listings with Active status.
	ActiveOnly bool
	// OrgOnly keeps Organization-type listings (org fund destinations).
	OrgOnly bool
}

// PledgeQuery narrows and pages pledge queries. A zero Limit means no
// paging; an empty CampaignID means all campaigns; a zero Since means no
// recency cutoff.
type PledgeQuery struct {
	CampaignID string
	Since      time.Time
	Limit      int
	Offset     int
}

// RecordRepository is the outbound port over the hosted record store. Every
// call is an independent round trip; lookups return (nil, nil) when the
// record is absent so callers can distinguish missing data from failures.
type RecordRepository interface {
	// ListCampuses returns campuses sorted by name, optionally Active only.
	ListCampuses(ctx context.Context, activeOnly bool) ([]domain.Campus, error)
	FindCampus(ctx context.Context, id string) (*domain.Campus, error)

	// ListListings returns listings sorted by name with their campus links.
	ListListings(ctx context.Context, f ListingFilter) ([]domain.Listing, error)
	FindListing(ctx context.Context, id string) (*domain.Listing, error)

	CreateFund(ctx context.Context, fund domain.Fund) (*domain.Fund, error)

	// ListCampaigns returns campaigns newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	FindCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id, status string) error

	CreateCampusGoal(ctx context.Context, g domain.CampusGoal) error
	ListCampusGoals(ctx context.Context, campaignID string) ([]domain.CampusGoal, error)

	ListDonors(ctx context.Context) ([]domain.Donor, error)
	FindDonor(ctx context.Context, id string) (*domain.Donor, error)
	// FindDonorByEmail matches the email exactly, case-sensitively.
	FindDonorByEmail(ctx context.Context, email string) (*domain.Donor, error)
	// SearchDonors substring-matches name or email, at most limit results.
	SearchDonors(ctx context.Context, query string, limit int) ([]domain.Donor, error)
	CreateDonor(ctx context.Context, d domain.Donor) (*domain.Donor, error)

	// ListPledges returns pledges by pledge date, newest first, narrowed
	// and paged by q.
	ListPledges(ctx context.Context, q PledgeQuery) ([]domain.Pledge, error)
	// CountPledges counts the pledges matching q, ignoring its paging
	// fields. It backs pledge-list pagination.
	CountPledges(ctx context.Context, q PledgeQuery) (int, error)
	FindPledge(ctx context.Context, id string) (*domain.Pledge, error)
	// FindPledgeFor looks up the pledge for a (donor, campaign, campus)
	// triple, the existence check behind duplicate detection.
	FindPledgeFor(ctx context.Context, donorID, campaignID, campusID string) (*domain.Pledge, error)
	CreatePledge(ctx context.Context, p domain.Pledge) (*domain.Pledge, error)
	UpdatePledge(ctx context.Context, p domain.Pledge) (*domain.Pledge, error)
	DeletePledge(ctx context.Context, id string) error

	// ListGifts returns gifts newest first; empty campaignID means all.
	ListGifts(ctx context.Context, campaignID string) ([]domain.Gift, error)
	CreateGift(ctx context.Context, g domain.Gift) (*domain.Gift, error)
}
