package models

import (
	"fmt"
)

// LeaveLimit is a tagged union over the limited/unlimited leave contract:
// either unlimited (no cap) or limited to a positive number of days per
// YEAR/QUARTER/MONTH. Constructing it through the two constructors makes the
// invalid column combinations (limited without days, unlimited with a type)
// unrepresentable outside the database layer.
type LeaveLimit struct {
	limited   bool
	limitType LimitType
	days      float64
}

// UnlimitedLeave returns the unlimited variant
func UnlimitedLeave() LeaveLimit {
	return LeaveLimit{}
}

// LimitedLeave returns the limited variant, rejecting non-positive days and
// unknown granularities
func LimitedLeave(limitType LimitType, days float64) (LeaveLimit, error) {
	if !limitType.IsValid() {
		return LeaveLimit{}, fmt.Errorf("invalid limit type %q", limitType)
	}
	if days <= 0 {
		return LeaveLimit{}, fmt.Errorf("limit days must be positive, got %v", days)
	}
	return LeaveLimit{limited: true, limitType: limitType, days: days}, nil
}

// IsLimited reports whether the limit caps allocation
func (l LeaveLimit) IsLimited() bool {
	return l.limited
}

// Columns returns the nullable database representation. Both values are nil
// for the unlimited variant regardless of how the limit was built.
func (l LeaveLimit) Columns() (*LimitType, *float64) {
	if !l.limited {
		return nil, nil
	}
	t, d := l.limitType, l.days
	return &t, &d
}

// BaseQuota returns the per-period allocation: limit days divided by the
// number of periods the granularity spans in a year. Nil means no cap.
func (l LeaveLimit) BaseQuota() *float64 {
	if !l.limited {
		return nil
	}
	q := l.days / l.limitType.PeriodsPerYear()
	return &q
}
