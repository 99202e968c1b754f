package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func detailedWizard(t *testing.T, goal int64) CampaignWizard {
	t.Helper()
	w, err := NewCampaignWizard().WithDetails(CampaignDetails{
		Name:          "Building Fund",
		Description:   "New sanctuary",
		FinancialGoal: decimal.NewFromInt(goal),
	})
	if err != nil {
		t.Fatalf("WithDetails: %v", err)
	}
	return w
}

func TestWizardStepGating(t *testing.T) {
	w := NewCampaignWizard()

	if _, err := w.WithDestination(DestinationCampus, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := w.WithFund(FundDetails{Name: "General", ThankYouMessage: "Thanks"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := w.FundRecord(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("FundRecord before ready: %v", err)
	}

	if _, err := w.WithDetails(CampaignDetails{Name: " ", Description: "x"}); err == nil {
		t.Fatalf("blank name accepted")
	}
}

// TestWizardFundTaxDeductibility checks the fund is deductible unless step
// three explicitly turns it off.
func TestWizardFundTaxDeductibility(t *testing.T) {
	readyWith := func(t *testing.T, d FundDetails) Fund {
		t.Helper()
		w := detailedWizard(t, 5000)
		w, err := w.WithDestination(DestinationCampus, "")
		if err != nil {
			t.Fatalf("WithDestination: %v", err)
		}
		d.Name = "General"
		d.ThankYouMessage = "Thanks"
		w, err = w.WithFund(d)
		if err != nil {
			t.Fatalf("WithFund: %v", err)
		}
		fund, err := w.FundRecord()
		if err != nil {
			t.Fatalf("FundRecord: %v", err)
		}
		return fund
	}

	if fund := readyWith(t, FundDetails{}); !fund.TaxDeductible {
		t.Fatalf("unset deductibility lost the default")
	}
	no := false
	if fund := readyWith(t, FundDetails{TaxDeductible: &no}); fund.TaxDeductible {
		t.Fatalf("explicit false overridden")
	}
	yes := true
	if fund := readyWith(t, FundDetails{TaxDeductible: &yes}); !fund.TaxDeductible {
		t.Fatalf("explicit true lost")
	}
}

func TestWizardSplitEvenly(t *testing.T) {
	w := detailedWizard(t, 9000)
	w = w.SelectCampus("reccampusnorth001")
	w = w.SelectCampus("reccampussouth001")
	w = w.SelectCampus("reccampuseast0001")
	w = w.SetSplitEvenly(true)

	for _, a := range w.Campuses {
		if !a.Goal.Equal(decimal.NewFromInt(3000)) {
			t.Fatalf("campus %s goal = %s, want 3000", a.CampusID, a.Goal)
		}
	}

	// selection changes recompute while the split is engaged
	w = w.DeselectCampus("reccampuseast0001")
	for _, a := range w.Campuses {
		if !a.Goal.Equal(decimal.NewFromInt(4500)) {
			t.Fatalf("campus %s goal = %s after deselect, want 4500", a.CampusID, a.Goal)
		}
	}
	w = w.SetTotalGoal(decimal.NewFromInt(10000))
	for _, a := range w.Campuses {
		if !a.Goal.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("campus %s goal = %s after total change, want 5000", a.CampusID, a.Goal)
		}
	}
}

func TestWizardManualGoalDisengagesSplit(t *testing.T) {
	w := detailedWizard(t, 8000)
	w = w.SelectCampus("reccampusnorth001")
	w = w.SelectCampus("reccampussouth001")
	w = w.SetSplitEvenly(true)

	w = w.SetCampusGoal("reccampusnorth001", decimal.NewFromInt(6000))
	if w.SplitEvenly {
		t.Fatalf("manual edit left the even split engaged")
	}

	// later changes must not overwrite the manual value
	w = w.SetTotalGoal(decimal.NewFromInt(20000))
	w = w.SelectCampus("reccampuswest0001")
	for _, a := range w.Campuses {
		switch a.CampusID {
		case "reccampusnorth001":
			if !a.Goal.Equal(decimal.NewFromInt(6000)) {
				t.Fatalf("manual goal overwritten: %s", a.Goal)
			}
		case "reccampussouth001":
			if !a.Goal.Equal(decimal.NewFromInt(4000)) {
				t.Fatalf("south goal = %s, want the last split value 4000", a.Goal)
			}
		}
	}
}

func TestWizardDestinationValidation(t *testing.T) {
	w := detailedWizard(t, 5000)

	if _, err := w.WithDestination(DestinationOrgFund, ""); err == nil {
		t.Fatalf("org-fund destination without a listing accepted")
	}
	if _, err := w.WithDestination("somewhere", ""); err == nil {
		t.Fatalf("unknown destination accepted")
	}

	// a campus destination clears any stale org listing
	w.OrgFundListingID = "reclisting0000001"
	w, err := w.WithDestination(DestinationCampus, "")
	if err != nil {
		t.Fatalf("WithDestination: %v", err)
	}
	if w.OrgFundListingID != "" {
		t.Fatalf("campus destination kept an org listing: %q", w.OrgFundListingID)
	}
}

func TestWizardMaterialization(t *testing.T) {
	w := detailedWizard(t, 9000)
	w = w.SelectCampus("reccampusnorth001")
	w = w.SetCampusListings("reccampusnorth001", []string{"reclisting0000001"})
	w = w.SelectCampus("reccampussouth001")
	w = w.SetSplitEvenly(true)
	w, err := w.WithDestination(DestinationCampus, "")
	if err != nil {
		t.Fatalf("WithDestination: %v", err)
	}
	w, err = w.WithFund(FundDetails{Name: "Building Fund", ThankYouMessage: "Thank you!"})
	if err != nil {
		t.Fatalf("WithFund: %v", err)
	}

	fund, err := w.FundRecord()
	if err != nil {
		t.Fatalf("FundRecord: %v", err)
	}
	if !fund.TaxDeductible || fund.ThankYouAnimation != "none" {
		t.Fatalf("fund defaults lost: %+v", fund)
	}

	c, err := w.CampaignRecord("recfund0000000001")
	if err != nil {
		t.Fatalf("CampaignRecord: %v", err)
	}
	if c.Status != CampaignPublished {
		t.Fatalf("status = %s, want published", c.Status)
	}
	if c.Scope != ScopeCampus || c.FundID != "recfund0000000001" {
		t.Fatalf("scope/fund wiring wrong: %+v", c)
	}
	if len(c.AssignedCampusIDs) != 2 {
		t.Fatalf("assigned campuses = %v", c.AssignedCampusIDs)
	}

	goals, err := w.CampusGoalRecords("reccampaign000001")
	if err != nil {
		t.Fatalf("CampusGoalRecords: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("goal rows = %d, want 2", len(goals))
	}
	for _, g := range goals {
		if g.CampaignID != "reccampaign000001" || !g.Goal.Equal(decimal.NewFromInt(4500)) {
			t.Fatalf("goal row %+v", g)
		}
	}
}
