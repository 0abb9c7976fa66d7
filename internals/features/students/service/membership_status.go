package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MembershipActive  = "active"
	MembershipExpired = "expired"
)

// Status is the derived membership/financial annotation. It is recomputed at
// read time on every list, detail and report view and never persisted, so it
// can never drift from the current date.
type Status struct {
	MembershipStatus string          `json:"membership_status"`
	HasDueAmount     bool            `json:"has_due_amount"`
	DueAmount        decimal.Decimal `json:"due_amount"`
}

// DeriveStatus computes the status for one student. Comparison is date-only
// and strict: a membership ending exactly today is still active; nil
// membershipEnd means no expiry is set.
func DeriveStatus(membershipEnd *time.Time, due decimal.Decimal, today time.Time) Status {
	st := Status{
		MembershipStatus: MembershipActive,
		HasDueAmount:     due.GreaterThan(decimal.Zero),
		DueAmount:        due,
	}
	if membershipEnd != nil {
		endDay := dateOnly(*membershipEnd)
		if endDay.Before(dateOnly(today)) {
			st.MembershipStatus = MembershipExpired
		}
	}
	return st
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
