package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func confirmedFlow(t *testing.T) PledgeFlow {
	t.Helper()
	f := NewPledgeFlow("reccampaign000001", "reccampus00000001", day(2024, 1, 1))
	f, err := f.WithAmount(decimal.NewFromInt(50), TypeRecurring, Monthly, day(2024, 1, 1), day(2024, 7, 1))
	if err != nil {
		t.Fatalf("WithAmount: %v", err)
	}
	f, err = f.WithIdentity("Avery Smith", "avery@example.com")
	if err != nil {
		t.Fatalf("WithIdentity: %v", err)
	}
	return f
}

func TestFlowGuardsTransitions(t *testing.T) {
	f := NewPledgeFlow("reccampaign000001", "reccampus00000001", day(2024, 1, 1))

	// identity before amount is rejected and leaves the flow unchanged
	if _, err := f.WithIdentity("Avery", "avery@example.com"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.ConfirmPledgeOnly(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if f.Step != StepAmountAndFrequency {
		t.Fatalf("failed transition moved the flow to %v", f.Step)
	}

	// the payment branch cannot be skipped into
	c := confirmedFlow(t)
	if _, err := c.ChoosePaymentMethod(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestFlowAmountValidation(t *testing.T) {
	f := NewPledgeFlow("reccampaign000001", "reccampus00000001", day(2024, 1, 1))

	if _, err := f.WithAmount(decimal.Zero, TypeOneTime, "", time.Time{}, time.Time{}); err == nil {
		t.Fatalf("zero amount accepted")
	}
	if _, err := f.WithAmount(decimal.NewFromInt(-5), TypeOneTime, "", time.Time{}, time.Time{}); err == nil {
		t.Fatalf("negative amount accepted")
	}
	if _, err := f.WithAmount(decimal.NewFromInt(50), TypeRecurring, "", time.Time{}, day(2024, 7, 1)); err == nil {
		t.Fatalf("recurring without frequency accepted")
	}
	if _, err := f.WithAmount(decimal.NewFromInt(50), TypeRecurring, Monthly, time.Time{}, time.Time{}); err == nil {
		t.Fatalf("recurring without end date accepted")
	}
	if _, err := f.WithIdentity(" ", "avery@example.com"); !errors.Is(err, ErrInvalidTransition) {
		// still at the amount step, so it is a transition error, not a field one
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestFlowPledgeOnlyPath(t *testing.T) {
	f := confirmedFlow(t)
	f, err := f.ConfirmPledgeOnly()
	if err != nil {
		t.Fatalf("ConfirmPledgeOnly: %v", err)
	}
	if f.Step != StepSubmitted {
		t.Fatalf("step = %v, want submitted", f.Step)
	}

	p, err := f.PledgeRecord("recdonor000000001")
	if err != nil {
		t.Fatalf("PledgeRecord: %v", err)
	}
	// six monthly periods of 50
	if !p.TotalCommitment.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("total = %s, want 300", p.TotalCommitment)
	}
	if p.Frequency != Monthly || p.EndDate == nil {
		t.Fatalf("recurring fields missing: %+v", p)
	}
}

func TestFlowGiftNeedsPaymentBranch(t *testing.T) {
	f := confirmedFlow(t)
	if _, err := f.GiftRecord("recdonor000000001", day(2024, 1, 1)); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition before the payment branch, got %v", err)
	}
}

func TestFlowPaymentPath(t *testing.T) {
	f := confirmedFlow(t)
	f, err := f.ProceedToPayment()
	if err != nil {
		t.Fatalf("ProceedToPayment: %v", err)
	}
	f, err = f.ChoosePaymentMethod()
	if err != nil {
		t.Fatalf("ChoosePaymentMethod: %v", err)
	}
	f, err = f.CompleteGift()
	if err != nil {
		t.Fatalf("CompleteGift: %v", err)
	}

	g, err := f.GiftRecord("recdonor000000001", day(2024, 1, 2))
	if err != nil {
		t.Fatalf("GiftRecord: %v", err)
	}
	if !g.PerPeriodAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("gift carries %s, want the per-period 50", g.PerPeriodAmount)
	}

	p, err := f.PledgeRecord("recdonor000000001")
	if err != nil {
		t.Fatalf("PledgeRecord: %v", err)
	}
	if !p.TotalCommitment.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("pledge carries %s, want the total 300", p.TotalCommitment)
	}
}

func TestFlowOneTimeClearsRecurringFields(t *testing.T) {
	f := NewPledgeFlow("reccampaign000001", "reccampus00000001", day(2024, 1, 1))
	f, err := f.WithAmount(decimal.NewFromInt(250), TypeOneTime, Monthly, day(2024, 1, 1), day(2024, 7, 1))
	if err != nil {
		t.Fatalf("WithAmount: %v", err)
	}
	if f.Frequency != "" || !f.EndDate.IsZero() {
		t.Fatalf("one-time kept recurring fields: %+v", f)
	}
	f, err = f.WithIdentity("Avery", "avery@example.com")
	if err != nil {
		t.Fatalf("WithIdentity: %v", err)
	}
	p, err := f.PledgeRecord("recdonor000000001")
	if err != nil {
		t.Fatalf("PledgeRecord: %v", err)
	}
	if !p.TotalCommitment.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("one-time total = %s, want the raw 250", p.TotalCommitment)
	}
	if p.EndDate != nil || p.Frequency != "" {
		t.Fatalf("one-time pledge carries recurring fields: %+v", p)
	}
}
