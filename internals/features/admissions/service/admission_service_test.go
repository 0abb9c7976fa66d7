package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"studyhall_backend/internals/features/admissions/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeDue(t *testing.T) {
	cases := []struct {
		name                      string
		total, discount, paid, want string
	}{
		{"plain", "1000", "0", "400", "600"},
		{"with discount", "1000", "100", "400", "500"},
		{"fully paid", "1000", "0", "1000", "0"},
		{"overpaid goes negative", "500", "0", "600", "-100"},
		{"all zero", "0", "0", "0", "0"},
		{"paise precision", "999.50", "0.50", "499", "500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDue(d(tc.total), d(tc.discount), d(tc.paid))
			if !got.Equal(d(tc.want)) {
				t.Fatalf("ComputeDue(%s,%s,%s) = %s, want %s", tc.total, tc.discount, tc.paid, got, tc.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{model.StatusPending, model.StatusApproved},
		{model.StatusPending, model.StatusRejected},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{model.StatusApproved, model.StatusRejected},
		{model.StatusApproved, model.StatusApproved},
		{model.StatusRejected, model.StatusApproved},
		{model.StatusRejected, model.StatusPending},
		{model.StatusApproved, model.StatusPending},
		{model.StatusPending, model.StatusPending},
		{model.StatusPending, "archived"},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}
