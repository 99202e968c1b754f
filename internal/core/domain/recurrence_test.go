package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriods(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		freq  Frequency
		want  int
	}{
		{"zero start", time.Time{}, day(2024, 7, 1), Monthly, 0},
		{"zero end", day(2024, 1, 1), time.Time{}, Monthly, 0},
		{"empty frequency", day(2024, 1, 1), day(2024, 7, 1), "", 0},
		{"unknown frequency", day(2024, 1, 1), day(2024, 7, 1), "Weekly", 0},
		{"end equals start", day(2024, 1, 1), day(2024, 1, 1), Monthly, 1},
		{"end before start", day(2024, 7, 1), day(2024, 1, 1), Monthly, 1},
		{"six months", day(2024, 1, 1), day(2024, 7, 1), Monthly, 6},
		{"partial month ignored", day(2024, 1, 15), day(2024, 7, 1), Monthly, 6},
		{"under one month floors to 1", day(2024, 1, 1), day(2024, 1, 20), Monthly, 1},
		{"two quarters", day(2024, 1, 1), day(2024, 7, 1), Quarterly, 2},
		{"under one quarter floors to 1", day(2024, 1, 1), day(2024, 3, 1), Quarterly, 1},
		{"two years", day(2024, 1, 1), day(2026, 1, 1), Annually, 2},
		{"under one year floors to 1", day(2024, 1, 1), day(2024, 7, 1), Annually, 1},
		{"year boundary month math", day(2023, 11, 1), day(2024, 2, 1), Monthly, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Periods(tt.start, tt.end, tt.freq); got != tt.want {
				t.Fatalf("Periods() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalCommitment(t *testing.T) {
	total, ok := TotalCommitment(decimal.NewFromInt(50), day(2024, 1, 1), day(2024, 7, 1), Monthly)
	if !ok {
		t.Fatalf("expected a computable total")
	}
	if !total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("total = %s, want 300", total)
	}

	if _, ok := TotalCommitment(decimal.NewFromInt(50), time.Time{}, day(2024, 7, 1), Monthly); ok {
		t.Fatalf("expected unavailable total on absent start")
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("$1,250.50")
	if err != nil {
		t.Fatalf("ParseAmount error: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("1250.50")) {
		t.Fatalf("parsed %s, want 1250.50", got)
	}
	if _, err := ParseAmount("not money"); err == nil {
		t.Fatalf("expected error for junk input")
	}
}
