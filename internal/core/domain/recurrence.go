package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Periods returns the number of billing periods between start and end at the
// given frequency. Absent inputs (zero dates, empty or unknown frequency)
// yield 0. Once all inputs are present the result is floored at 1, so a
// confirmed recurring commitment always bills at least once, even when end
// is not after start.
func Periods(start, end time.Time, freq Frequency) int {
	if start.IsZero() || end.IsZero() || freq == "" {
		return 0
	}
	if !end.After(start) {
		return 1
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())

	var periods int
	switch freq {
	case Monthly:
		periods = months
	case Quarterly:
		periods = months / 3
	case Annually:
		periods = end.Year() - start.Year()
	default:
		return 0
	}

	if periods < 1 {
		periods = 1
	}
	return periods
}

// TotalCommitment multiplies the per-period amount by the period count. The
// second return value is false when any input is absent, meaning no total
// can be shown yet.
func TotalCommitment(perPeriod decimal.Decimal, start, end time.Time, freq Frequency) (decimal.Decimal, bool) {
	periods := Periods(start, end, freq)
	if periods == 0 {
		return decimal.Zero, false
	}
	return perPeriod.Mul(decimal.NewFromInt(int64(periods))), true
}

// ParseAmount parses a user-entered currency amount, tolerating dollar signs
// and thousands separators ("$1,250.50").
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	return decimal.NewFromString(cleaned)
}
