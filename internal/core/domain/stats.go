package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CampusStat accumulates pledge and gift activity for one campus within a
// campaign. A campus can carry pledge activity with no gift activity or
// vice versa.
type CampusStat struct {
	CampusID    string
	Pledged     decimal.Decimal
	Raised      decimal.Decimal
	PledgeCount int
	GiftCount   int
}

// Stats is the aggregate of a single campaign's pledges and gifts.
type Stats struct {
	TotalPledged decimal.Decimal
	TotalRaised  decimal.Decimal
	PledgeCount  int
	GiftCount    int
	ByCampus     []CampusStat
}

// CampaignStats joins pledges and gifts against the campaign by exact id
// match and sums totals plus a per-campus breakdown. The breakdown is
// ordered by campus id.
func CampaignStats(campaignID string, pledges []Pledge, gifts []Gift) Stats {
	stats := Stats{
		TotalPledged: decimal.Zero,
		TotalRaised:  decimal.Zero,
	}
	byCampus := make(map[string]*CampusStat)

	campusStat := func(campusID string) *CampusStat {
		cs, ok := byCampus[campusID]
		if !ok {
			cs = &CampusStat{CampusID: campusID, Pledged: decimal.Zero, Raised: decimal.Zero}
			byCampus[campusID] = cs
		}
		return cs
	}

	for _, p := range pledges {
		if p.CampaignID != campaignID {
			continue
		}
		stats.TotalPledged = stats.TotalPledged.Add(p.TotalCommitment)
		stats.PledgeCount++
		if p.CampusID != "" {
			cs := campusStat(p.CampusID)
			cs.Pledged = cs.Pledged.Add(p.TotalCommitment)
			cs.PledgeCount++
		}
	}
	for _, g := range gifts {
		if g.CampaignID != campaignID {
			continue
		}
		stats.TotalRaised = stats.TotalRaised.Add(g.PerPeriodAmount)
		stats.GiftCount++
		if g.CampusID != "" {
			cs := campusStat(g.CampusID)
			cs.Raised = cs.Raised.Add(g.PerPeriodAmount)
			cs.GiftCount++
		}
	}

	stats.ByCampus = make([]CampusStat, 0, len(byCampus))
	for _, cs := range byCampus {
		stats.ByCampus = append(stats.ByCampus, *cs)
	}
	sort.Slice(stats.ByCampus, func(i, j int) bool {
		return stats.ByCampus[i].CampusID < stats.ByCampus[j].CampusID
	})
	return stats
}

// DonorRollup summarizes one donor's activity within a campaign. Remaining
// never goes negative; a donor who has only given shows zero progress since
// there is no pledge to progress against.
type DonorRollup struct {
	DonorID      string
	Name         string
	Email        string
	HomeCampusID string
	DatePledged  *time.Time
	Pledged      decimal.Decimal
	Given        decimal.Decimal
	Remaining    decimal.Decimal
	Progress     float64
	PledgeCount  int
	GiftCount    int
	CampusIDs    []string
	LastActivity time.Time
}

// DonorRollups computes per-donor summaries for every donor id appearing in
// the campaign's pledges or gifts. Donors without a People record are
// skipped. The result is ordered by amount given, highest first.
func DonorRollups(campaignID string, pledges []Pledge, gifts []Gift, donors []Donor) []DonorRollup {
	byID := make(map[string]Donor, len(donors))
	for _, d := range donors {
		byID[d.ID] = d
	}

	rollups := make(map[string]*DonorRollup)
	order := make([]string, 0)

	rollup := func(donorID string) *DonorRollup {
		r, ok := rollups[donorID]
		if !ok {
			r = &DonorRollup{
				DonorID:   donorID,
				Pledged:   decimal.Zero,
				Given:     decimal.Zero,
				Remaining: decimal.Zero,
			}
			rollups[donorID] = r
			order = append(order, donorID)
		}
		return r
	}

	addCampus := func(r *DonorRollup, campusID string) {
		if campusID == "" {
			return
		}
		for _, id := range r.CampusIDs {
			if id == campusID {
				return
			}
		}
		r.CampusIDs = append(r.CampusIDs, campusID)
	}

	for _, p := range pledges {
		if p.CampaignID != campaignID || p.DonorID == "" {
			continue
		}
		r := rollup(p.DonorID)
		r.Pledged = r.Pledged.Add(p.TotalCommitment)
		r.PledgeCount++
		addCampus(r, p.CampusID)
		if !p.PledgeDate.IsZero() {
			if r.DatePledged == nil || p.PledgeDate.After(*r.DatePledged) {
				d := p.PledgeDate
				r.DatePledged = &d
			}
			if p.PledgeDate.After(r.LastActivity) {
				r.LastActivity = p.PledgeDate
			}
		}
	}
	for _, g := range gifts {
		if g.CampaignID != campaignID || g.DonorID == "" {
			continue
		}
		r := rollup(g.DonorID)
		r.Given = r.Given.Add(g.PerPeriodAmount)
		r.GiftCount++
		addCampus(r, g.CampusID)
		if g.GiftDate.After(r.LastActivity) {
			r.LastActivity = g.GiftDate
		}
	}

	out := make([]DonorRollup, 0, len(order))
	for _, donorID := range order {
		r := rollups[donorID]
		donor, ok := byID[donorID]
		if !ok {
			continue
		}
		r.Name = donor.Name
		r.Email = donor.Email
		r.HomeCampusID = donor.HomeCampusID
		r.Remaining = r.Pledged.Sub(r.Given)
		if r.Remaining.IsNegative() {
			r.Remaining = decimal.Zero
		}
		if r.Pledged.IsPositive() {
			progress, _ := r.Given.Div(r.Pledged).Mul(decimal.NewFromInt(100)).Float64()
			r.Progress = progress
		}
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Given.GreaterThan(out[j].Given)
	})
	return out
}

// ResolveGoal returns the financial goal to display for a campaign.
//
// For a selected campus the goal is that campus's row in the goal table,
// zero if absent. Across all campuses, org admins see the campaign's own
// top-level goal while campus-scoped admins see the sum of goals for the
// campuses they can access, so their totals are never inflated by campuses
// outside their scope. When no goal table exists the top-level goal is used.
func ResolveGoal(c Campaign, goals []CampusGoal, s Session, selectedCampusID string) decimal.Decimal {
	if selectedCampusID != "" {
		for _, g := range goals {
			if g.CampusID == selectedCampusID {
				return g.Goal
			}
		}
		return decimal.Zero
	}

	if s.Role == RoleOrgAdmin || len(goals) == 0 {
		return c.FinancialGoal
	}

	sum := decimal.Zero
	for _, g := range goals {
		if s.CanAccessCampus(g.CampusID) {
			sum = sum.Add(g.Goal)
		}
	}
	return sum
}
