package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDeriveStatusMembershipBoundary(t *testing.T) {
	today := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want string
	}{
		{"ends exactly today is still active", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), MembershipActive},
		{"ends today late evening is active", time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), MembershipActive},
		{"ended yesterday is expired", time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), MembershipExpired},
		{"ends tomorrow is active", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), MembershipActive},
		{"ended long ago is expired", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), MembershipExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			end := tc.end
			st := DeriveStatus(&end, decimal.Zero, today)
			if st.MembershipStatus != tc.want {
				t.Fatalf("got %s, want %s", st.MembershipStatus, tc.want)
			}
		})
	}
}

func TestDeriveStatusNilEndIsActive(t *testing.T) {
	st := DeriveStatus(nil, decimal.Zero, time.Now())
	if st.MembershipStatus != MembershipActive {
		t.Fatalf("nil membership end should be active, got %s", st.MembershipStatus)
	}
}

func TestDeriveStatusDueFlag(t *testing.T) {
	now := time.Now()
	cases := []struct {
		due  string
		want bool
	}{
		{"0", false},
		{"600", true},
		{"0.01", true},
		{"-50", false},
	}
	for _, tc := range cases {
		due, _ := decimal.NewFromString(tc.due)
		st := DeriveStatus(nil, due, now)
		if st.HasDueAmount != tc.want {
			t.Errorf("due=%s: HasDueAmount=%v, want %v", tc.due, st.HasDueAmount, tc.want)
		}
		if !st.DueAmount.Equal(due) {
			t.Errorf("due=%s: DueAmount=%s not echoed back", tc.due, st.DueAmount)
		}
	}
}
