package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
)

// PledgeEntry is the payload of the public pledge flow. PerPeriodAmount is
// the entered amount: per billing period for recurring pledges, the full
// amount for one-time ones. The stored pledge carries the computed total.
type PledgeEntry struct {
	CampaignID      string
	CampusID        string
	DonorName       string
	DonorEmail      string
	PerPeriodAmount decimal.Decimal
	Type            string
	Frequency       domain.Frequency
	StartDate       time.Time
	EndDate         time.Time
	Notes           string
	// PayNow additionally records the first gift (per-period amount).
	PayNow bool
}

// AdminPledgeEntry is the admin "Add Pledge" payload. The donor is an
// existing People record selected via search. UpdateExisting resolves a
// detected duplicate by overwriting the existing pledge instead of
// failing, the admin-only variation of the flow.
type AdminPledgeEntry struct {
	DonorID         string
	CampaignID      string
	CampusID        string
	PerPeriodAmount decimal.Decimal
	Type            string
	Frequency       domain.Frequency
	StartDate       time.Time
	EndDate         time.Time
	Notes           string
	UpdateExisting  bool
}

// PledgeUpdate carries the fields an admin may overwrite on an existing
// pledge.
type PledgeUpdate struct {
	Amount     decimal.Decimal
	PledgeDate time.Time
	CampusID   string
	Type       string
	Frequency  domain.Frequency
	EndDate    *time.Time
}

// GiftEntry is the payload of the public giving flow. Amount is the
// per-period amount for recurring gifts.
type GiftEntry struct {
	CampaignID string
	CampusID   string
	ListingID  string
	DonorName  string
	DonorEmail string
	Amount     decimal.Decimal
	Type       string
	Frequency  domain.Frequency
}

// PledgeReceipt reports a completed entry: the created (or updated) pledge
// and, on the pay-now branch, the first gift.
type PledgeReceipt struct {
	Pledge  domain.Pledge
	Gift    *domain.Gift
	Updated bool
}

// ExistingPledge is the result of a duplicate check.
type ExistingPledge struct {
	PledgeID string
	Amount   decimal.Decimal
	Type     string
	Date     time.Time
}

// PledgePage is one page of the admin pledge list.
type PledgePage struct {
	Pledges    []domain.Pledge
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// PledgeUseCase is the inbound port for pledge and gift entry.
type PledgeUseCase interface {
	// SubmitPublicPledge runs the donor-facing flow: validates the steps,
	// checks for a duplicate before any write, finds-or-creates the donor
	// and creates the pledge. A duplicate blocks with ErrDuplicatePledge.
	SubmitPublicPledge(ctx context.Context, e PledgeEntry) (*PledgeReceipt, error)

	// SubmitPublicGift records a gift from the public giving page.
	SubmitPublicGift(ctx context.Context, e GiftEntry) (*domain.Gift, error)

	// AddPledge runs the admin flow. On a duplicate it either returns
	// *DuplicatePledgeError or, when e.UpdateExisting is set, overwrites
	// the existing pledge.
	AddPledge(ctx context.Context, e AdminPledgeEntry) (*PledgeReceipt, error)

	// CheckExistingPledge reports the existing pledge for (donor email,
	// campaign, campus), nil when there is none. Donors not on file never
	// have pledges.
	CheckExistingPledge(ctx context.Context, donorEmail, campaignID, campusID string) (*ExistingPledge, error)

	UpdatePledge(ctx context.Context, id string, u PledgeUpdate) (*domain.Pledge, error)
	DeletePledge(ctx context.Context, id string) error

	// ListPledges pages the admin pledge list, counting total pages with a
	// separate unbounded count.
	ListPledges(ctx context.Context, page, perPage int) (*PledgePage, error)

	// SearchDonors backs the admin donor picker.
	SearchDonors(ctx context.Context, query string) ([]domain.Donor, error)
}
