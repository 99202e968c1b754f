package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/domain"
	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// donorSearchLimit caps the admin donor picker result set.
const donorSearchLimit = 10

const defaultPerPage = 25

// recentPledgeDays is the window of the admin pledge list; older pledges
// are reachable through their campaign instead.
const recentPledgeDays = 30

// PledgeService implements port.PledgeUseCase. It orchestrates the entry
// workflow, the duplicate check and the donor find-or-create against the
// repository.
type PledgeService struct {
	repo port.RecordRepository

	// now is the clock used for default pledge and gift dates.
	now func() time.Time
}

// NewPledgeService creates a new usecase with the provided repository.
func NewPledgeService(repo port.RecordRepository) *PledgeService {
	return &PledgeService{repo: repo, now: time.Now}
}

// campaignOpenForEntry loads the campaign and rejects entry against absent
// or closed ones, then checks the campus actually participates.
func (s *PledgeService) campaignOpenForEntry(ctx context.Context, campaignID, campusID string) (*domain.Campaign, error) {
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
	if campusID == "" || !campaign.AssignedTo(campusID) {
		return nil, port.ErrCampusNotInCampaign
	}
	return campaign, nil
}

// findOrCreateDonor resolves the donor by exact email match, creating a
// People record when none exists. The home campus of a created donor is
// the campus the entry came through.
func (s *PledgeService) findOrCreateDonor(ctx context.Context, name, email, campusID string) (*domain.Donor, error) {
	donor, err := s.repo.FindDonorByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if donor != nil {
		return donor, nil
	}
	return s.repo.CreateDonor(ctx, domain.Donor{
		Name:         name,
		Email:        email,
		HomeCampusID: campusID,
	})
}

// SubmitPublicPledge runs the donor-facing pledge flow end to end.
func (s *PledgeService) SubmitPublicPledge(ctx context.Context, e port.PledgeEntry) (*port.PledgeReceipt, error) {
	campaign, err := s.campaignOpenForEntry(ctx, e.CampaignID, e.CampusID)
	if err != nil {
		return nil, err
	}

	flow := domain.NewPledgeFlow(e.CampaignID, e.CampusID, s.today())
	flow, err = flow.WithAmount(e.PerPeriodAmount, e.Type, e.Frequency, e.StartDate, e.EndDate)
	if err != nil {
		return nil, err
	}
	flow, err = flow.WithIdentity(e.DonorName, e.DonorEmail)
	if err != nil {
		return nil, err
	}

	// Check for an existing pledge before writing anything. Donors not on
	// file cannot have pledges, so a missing donor skips straight through.
	existingDonor, err := s.repo.FindDonorByEmail(ctx, flow.DonorEmail)
	if err != nil {
		return nil, err
	}
	if existingDonor != nil {
		existing, err := s.repo.FindPledgeFor(ctx, existingDonor.ID, e.CampaignID, e.CampusID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &port.DuplicatePledgeError{Existing: *existing}
		}
	}

	if e.PayNow {
		if flow, err = flow.ProceedToPayment(); err != nil {
			return nil, err
		}
		if flow, err = flow.ChoosePaymentMethod(); err != nil {
			return nil, err
		}
		if flow, err = flow.CompleteGift(); err != nil {
			return nil, err
		}
	} else {
		if flow, err = flow.ConfirmPledgeOnly(); err != nil {
			return nil, err
		}
	}

	donor, err := s.findOrCreateDonor(ctx, flow.DonorName, flow.DonorEmail, e.CampusID)
	if err != nil {
		return nil, err
	}

	pledge, err := flow.PledgeRecord(donor.ID)
	if err != nil {
		return nil, err
	}
	pledge.Notes = e.Notes
	if pledge.Notes == "" {
		pledge.Notes = s.portalNote(ctx, campaign, e.CampusID)
	}

	created, err := s.repo.CreatePledge(ctx, pledge)
	if err != nil {
		return nil, err
	}

	receipt := &port.PledgeReceipt{Pledge: *created}
	if e.PayNow {
		gift, err := flow.GiftRecord(donor.ID, s.today())
		if err != nil {
			return nil, err
		}
		createdGift, err := s.repo.CreateGift(ctx, gift)
		if err != nil {
			return nil, err
		}
		receipt.Gift = createdGift
	}
	return receipt, nil
}

// portalNote builds the default notes line for pledges entered through the
// donor portal.
func (s *PledgeService) portalNote(ctx context.Context, campaign *domain.Campaign, campusID string) string {
	campusName := campusID
	if campus, err := s.repo.FindCampus(ctx, campusID); err == nil && campus != nil {
		campusName = campus.Name
	}
	return fmt.Sprintf("Pledge created via donor portal for %s at %s", campaign.Name, campusName)
}

// SubmitPublicGift records a gift from the public giving page. The listing
// must be offered at the campus unless it is an org-wide one.
func (s *PledgeService) SubmitPublicGift(ctx context.Context, e port.GiftEntry) (*domain.Gift, error) {
	if _, err := s.campaignOpenForEntry(ctx, e.CampaignID, e.CampusID); err != nil {
		return nil, err
	}
	listing, err := s.repo.FindListing(ctx, e.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, port.ErrNotFound
	}
	if listing.Type != domain.ListingTypeOrganization && !listing.AvailableAt(e.CampusID) {
		return nil, port.ErrListingNotAtCampus
	}

	// The giving page reuses the entry workflow's payment branch so gifts
	// pass through the same amount and identity validation as pledges.
	flow := domain.NewPledgeFlow(e.CampaignID, e.CampusID, s.today())
	flow, err = flow.WithAmount(e.Amount, e.Type, e.Frequency, time.Time{}, farFuture(e.Type, s.today()))
	if err != nil {
		return nil, err
	}
	flow, err = flow.WithIdentity(e.DonorName, e.DonorEmail)
	if err != nil {
		return nil, err
	}
	if flow, err = flow.ProceedToPayment(); err != nil {
		return nil, err
	}
	if flow, err = flow.ChoosePaymentMethod(); err != nil {
		return nil, err
	}
	if flow, err = flow.CompleteGift(); err != nil {
		return nil, err
	}

	donor, err := s.findOrCreateDonor(ctx, flow.DonorName, flow.DonorEmail, e.CampusID)
	if err != nil {
		return nil, err
	}
	gift, err := flow.GiftRecord(donor.ID, s.today())
	if err != nil {
		return nil, err
	}
	return s.repo.CreateGift(ctx, gift)
}

// AddPledge runs the admin flow for an existing People record. A detected
// duplicate either blocks or, when requested, overwrites the existing
// pledge in place.
func (s *PledgeService) AddPledge(ctx context.Context, e port.AdminPledgeEntry) (*port.PledgeReceipt, error) {
	donor, err := s.repo.FindDonor(ctx, e.DonorID)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, port.ErrNotFound
	}
	if _, err = s.campaignOpenForEntry(ctx, e.CampaignID, e.CampusID); err != nil {
		return nil, err
	}

	flow := domain.NewPledgeFlow(e.CampaignID, e.CampusID, s.today())
	flow, err = flow.WithAmount(e.PerPeriodAmount, e.Type, e.Frequency, e.StartDate, e.EndDate)
	if err != nil {
		return nil, err
	}
	flow, err = flow.WithIdentity(donor.Name, donor.Email)
	if err != nil {
		return nil, err
	}
	flow, err = flow.ConfirmPledgeOnly()
	if err != nil {
		return nil, err
	}

	pledge, err := flow.PledgeRecord(donor.ID)
	if err != nil {
		return nil, err
	}
	pledge.Notes = e.Notes

	existing, err := s.repo.FindPledgeFor(ctx, donor.ID, e.CampaignID, e.CampusID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !e.UpdateExisting {
			return nil, &port.DuplicatePledgeError{Existing: *existing}
		}
		pledge.ID = existing.ID
		if pledge.Notes == "" {
			pledge.Notes = existing.Notes
		}
		updated, err := s.repo.UpdatePledge(ctx, pledge)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, port.ErrNotFound
		}
		return &port.PledgeReceipt{Pledge: *updated, Updated: true}, nil
	}

	created, err := s.repo.CreatePledge(ctx, pledge)
	if err != nil {
		return nil, err
	}
	return &port.PledgeReceipt{Pledge: *created}, nil
}

// CheckExistingPledge reports the donor's existing pledge for the campaign
// and campus, nil when the donor is unknown or has none.
func (s *PledgeService) CheckExistingPledge(ctx context.Context, donorEmail, campaignID, campusID string) (*port.ExistingPledge, error) {
	donor, err := s.repo.FindDonorByEmail(ctx, donorEmail)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, nil
	}
	existing, err := s.repo.FindPledgeFor(ctx, donor.ID, campaignID, campusID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return &port.ExistingPledge{
		PledgeID: existing.ID,
		Amount:   existing.TotalCommitment,
		Type:     existing.Type,
		Date:     existing.PledgeDate,
	}, nil
}

// UpdatePledge overwrites an existing pledge's amount, date, campus and
// cadence.
func (s *PledgeService) UpdatePledge(ctx context.Context, id string, u port.PledgeUpdate) (*domain.Pledge, error) {
	existing, err := s.repo.FindPledge(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, port.ErrNotFound
	}
	if !u.Amount.IsPositive() {
		return nil, domain.ValidationError("pledge amount must be greater than zero")
	}
	if u.Type != domain.TypeOneTime && u.Type != domain.TypeRecurring {
		return nil, domain.ValidationError("unknown pledge type")
	}
	if u.Type == domain.TypeRecurring && (u.Frequency == "" || u.EndDate == nil) {
		return nil, domain.ValidationError("recurring pledges need a frequency and an ending date")
	}

	p := *existing
	p.TotalCommitment = u.Amount
	p.PledgeDate = u.PledgeDate
	if u.CampusID != "" {
		p.CampusID = u.CampusID
	}
	p.Type = u.Type
	if u.Type == domain.TypeRecurring {
		p.Frequency = u.Frequency
		p.EndDate = u.EndDate
	} else {
		p.Frequency = ""
		p.EndDate = nil
	}

	updated, err := s.repo.UpdatePledge(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, port.ErrNotFound
	}
	return updated, nil
}

// DeletePledge removes a pledge by id.
func (s *PledgeService) DeletePledge(ctx context.Context, id string) error {
	return s.repo.DeletePledge(ctx, id)
}

// ListPledges pages the admin list: pledges dated within the last thirty
// days, newest first.
func (s *PledgeService) ListPledges(ctx context.Context, page, perPage int) (*port.PledgePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	since := s.today().AddDate(0, 0, -recentPledgeDays)
	total, err := s.repo.CountPledges(ctx, port.PledgeQuery{Since: since})
	if err != nil {
		return nil, err
	}
	pledges, err := s.repo.ListPledges(ctx, port.PledgeQuery{
		Since:  since,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, err
	}
	totalPages := (total + perPage - 1) / perPage
	return &port.PledgePage{
		Pledges:    pledges,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// SearchDonors backs the admin donor picker. Blank queries return nothing.
func (s *PledgeService) SearchDonors(ctx context.Context, query string) ([]domain.Donor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.repo.SearchDonors(ctx, query, donorSearchLimit)
}

func (s *PledgeService) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// farFuture supplies the end-date placeholder for open-ended recurring
// gifts, which carry no commitment horizon of their own.
func farFuture(typ string, today time.Time) time.Time {
	if typ != domain.TypeRecurring {
		return time.Time{}
	}
	return today.AddDate(1, 0, 0)
}
