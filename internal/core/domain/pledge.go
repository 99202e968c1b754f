package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commitment types shared by pledges and gifts.
const (
	TypeOneTime   = "One-time"
	TypeRecurring = "Recurring"
)

// Frequency is the billing cadence of a recurring commitment.
type Frequency string

const (
	Monthly   Frequency = "Monthly"
	Quarterly Frequency = "Quarterly"
	Annually  Frequency = "Annually"
)

// Pledge is a donor's commitment to a campaign at a campus.
//
// TotalCommitment is the full committed amount: for recurring pledges it is
// the pre-computed total across all billing periods, not the per-period
// amount. Frequency and EndDate are set iff Type is Recurring.
type Pledge struct {
	ID              string
	DonorID         string
	CampaignID      string
	CampusID        string
	TotalCommitment decimal.Decimal
	PledgeDate      time.Time
	Notes           string
	Type            string
	Frequency       Frequency
	EndDate         *time.Time
}

// Recurring reports whether the pledge is a recurring commitment.
func (p Pledge) Recurring() bool { return p.Type == TypeRecurring }

// Gift is a single realized payment. PerPeriodAmount is the amount of this
// one payment: for a recurring commitment that is the per-period amount,
// never the total. Frequency is set iff Type is Recurring.
type Gift struct {
	ID              string
	DonorID         string
	CampaignID      string
	CampusID        string
	PerPeriodAmount decimal.Decimal
	GiftDate        time.Time
	Type            string
	Frequency       Frequency
}
