package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FlowStep identifies the current step of the pledge/gift entry workflow.
// Each step carries only the data collected up to that point; transitions
// validate before advancing, so a later step can never render with partial
// data from a skipped one.
type FlowStep int

const (
	StepAmountAndFrequency FlowStep = iota
	StepIdentity
	StepConfirm
	StepPaymentMethod
	StepFinalConfirm
	StepSubmitted
)

// ErrInvalidTransition is returned when a transition is attempted from the
// wrong step.
var ErrInvalidTransition = errors.New("invalid workflow transition")

// PledgeFlow is the multi-step entry workflow shared by the admin "Add
// Pledge" screen and the public pledge/giving pages. The payment branch
// (StepPaymentMethod, StepFinalConfirm) is only reached via "pledge and pay
// now"; "pledge only" moves from StepConfirm straight to StepSubmitted.
type PledgeFlow struct {
	Step FlowStep

	CampaignID string
	CampusID   string

	// Collected at StepAmountAndFrequency. PerPeriodAmount is the entered
	// amount: per billing period for recurring commitments, the full amount
	// for one-time ones.
	PerPeriodAmount decimal.Decimal
	Type            string
	Frequency       Frequency
	StartDate       time.Time
	EndDate         time.Time

	// Collected at StepIdentity.
	DonorName  string
	DonorEmail string
}

// NewPledgeFlow starts a workflow for the given campaign and campus.
func NewPledgeFlow(campaignID, campusID string, today time.Time) PledgeFlow {
	return PledgeFlow{
		Step:       StepAmountAndFrequency,
		CampaignID: campaignID,
		CampusID:   campusID,
		Type:       TypeOneTime,
		StartDate:  today,
	}
}

// WithAmount records the amount and cadence and advances to StepIdentity.
// The amount must be positive; recurring commitments additionally need a
// frequency and an end date.
func (f PledgeFlow) WithAmount(amount decimal.Decimal, typ string, freq Frequency, start, end time.Time) (PledgeFlow, error) {
	if f.Step != StepAmountAndFrequency {
		return f, ErrInvalidTransition
	}
	if !amount.IsPositive() {
		return f, ValidationError("pledge amount must be greater than zero")
	}
	if typ != TypeOneTime && typ != TypeRecurring {
		return f, ValidationError("unknown pledge type")
	}
	if typ == TypeRecurring && (freq == "" || end.IsZero()) {
		return f, ValidationError("recurring pledges need a frequency and an ending date")
	}

	f.PerPeriodAmount = amount
	f.Type = typ
	if !start.IsZero() {
		f.StartDate = start
	}
	if typ == TypeRecurring {
		f.Frequency = freq
		f.EndDate = end
	} else {
		f.Frequency = ""
		f.EndDate = time.Time{}
	}
	f.Step = StepIdentity
	return f, nil
}

// WithIdentity records the donor's name and email and advances to
// StepConfirm. Both fields must be non-empty after trimming.
func (f PledgeFlow) WithIdentity(name, email string) (PledgeFlow, error) {
	if f.Step != StepIdentity {
		return f, ErrInvalidTransition
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return f, ValidationError("donor name and email are required")
	}
	f.DonorName = name
	f.DonorEmail = email
	f.Step = StepConfirm
	return f, nil
}

// Total is the amount the pledge record will carry: the computed total
// across all periods for recurring commitments, the raw amount otherwise.
// ok is false when a recurring total cannot be computed yet.
func (f PledgeFlow) Total() (decimal.Decimal, bool) {
	if f.Type != TypeRecurring {
		return f.PerPeriodAmount, true
	}
	return TotalCommitment(f.PerPeriodAmount, f.StartDate, f.EndDate, f.Frequency)
}

// ConfirmPledgeOnly completes the "pledge only" path from StepConfirm.
func (f PledgeFlow) ConfirmPledgeOnly() (PledgeFlow, error) {
	if f.Step != StepConfirm {
		return f, ErrInvalidTransition
	}
	f.Step = StepSubmitted
	return f, nil
}

// ProceedToPayment takes the "pledge and pay now" branch from StepConfirm.
func (f PledgeFlow) ProceedToPayment() (PledgeFlow, error) {
	if f.Step != StepConfirm {
		return f, ErrInvalidTransition
	}
	f.Step = StepPaymentMethod
	return f, nil
}

// ChoosePaymentMethod advances from StepPaymentMethod to StepFinalConfirm.
func (f PledgeFlow) ChoosePaymentMethod() (PledgeFlow, error) {
	if f.Step != StepPaymentMethod {
		return f, ErrInvalidTransition
	}
	f.Step = StepFinalConfirm
	return f, nil
}

// CompleteGift finishes the payment branch. The first gift recorded carries
// the per-period amount, not the total.
func (f PledgeFlow) CompleteGift() (PledgeFlow, error) {
	if f.Step != StepFinalConfirm {
		return f, ErrInvalidTransition
	}
	f.Step = StepSubmitted
	return f, nil
}

// PledgeRecord materializes the pledge this flow describes. It is only
// valid from StepConfirm onward.
func (f PledgeFlow) PledgeRecord(donorID string) (Pledge, error) {
	if f.Step < StepConfirm {
		return Pledge{}, ErrInvalidTransition
	}
	total, ok := f.Total()
	if !ok {
		return Pledge{}, ValidationError("recurring total is unavailable")
	}
	p := Pledge{
		DonorID:         donorID,
		CampaignID:      f.CampaignID,
		CampusID:        f.CampusID,
		TotalCommitment: total,
		PledgeDate:      f.StartDate,
		Type:            f.Type,
	}
	if f.Type == TypeRecurring {
		p.Frequency = f.Frequency
		end := f.EndDate
		p.EndDate = &end
	}
	return p, nil
}

// GiftRecord materializes the first gift of the payment branch, valid from
// StepPaymentMethod onward.
func (f PledgeFlow) GiftRecord(donorID string, giftDate time.Time) (Gift, error) {
	if f.Step < StepPaymentMethod {
		return Gift{}, ErrInvalidTransition
	}
	g := Gift{
		DonorID:         donorID,
		CampaignID:      f.CampaignID,
		CampusID:        f.CampusID,
		PerPeriodAmount: f.PerPeriodAmount,
		GiftDate:        giftDate,
		Type:            f.Type,
	}
	if f.Type == TypeRecurring {
		g.Frequency = f.Frequency
	}
	return g, nil
}
