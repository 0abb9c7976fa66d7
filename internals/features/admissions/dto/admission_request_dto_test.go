package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"studyhall_backend/internals/features/admissions/model"
	helper "studyhall_backend/internals/helpers"
)

func money(s string) helper.Money {
	d, _ := decimal.NewFromString(s)
	return helper.Money{Decimal: d}
}

func TestToModelRecomputesDue(t *testing.T) {
	req := RegisterRequest{
		Name:     "Ravi Kumar",
		Phone:    "9876543210",
		BranchID: uuid.NewString(),
		TotalFee: money("1000"), Discount: money("0"), AmountPaid: money("400"),
	}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if !m.AdmissionRequestDueAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("due = %s, want 600", m.AdmissionRequestDueAmount)
	}
	if m.AdmissionRequestStatus != model.StatusPending {
		t.Errorf("status = %s, want pending", m.AdmissionRequestStatus)
	}
}

func TestToModelShiftIDsBecomeJSONArray(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	req := RegisterRequest{
		Name:     "Ravi Kumar",
		Phone:    "9876543210",
		BranchID: uuid.NewString(),
		ShiftIDs: []string{a.String(), " " + b.String() + " "},
	}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	var got []uuid.UUID
	if err := json.Unmarshal(m.AdmissionRequestShiftIDs, &got); err != nil {
		t.Fatalf("stored shift_ids is not a JSON uuid array: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("shift ids = %v, want [%s %s]", got, a, b)
	}
}

func TestToModelRejectsBadInputs(t *testing.T) {
	base := func() RegisterRequest {
		return RegisterRequest{Name: "X", Phone: "123456", BranchID: uuid.NewString()}
	}

	bad := base()
	bad.BranchID = "nope"
	if _, err := bad.ToModel(uuid.New()); err == nil {
		t.Error("bad branch_id accepted")
	}

	bad = base()
	s := "not-a-uuid"
	bad.SeatID = &s
	if _, err := bad.ToModel(uuid.New()); err == nil {
		t.Error("bad seat_id accepted")
	}

	bad = base()
	d := "31-08-2026"
	bad.MembershipEnd = &d
	if _, err := bad.ToModel(uuid.New()); err == nil {
		t.Error("bad membership_end accepted")
	}
}

func TestToModelTrimsAndDropsEmptyOptionals(t *testing.T) {
	empty := "   "
	email := "  x@y.in  "
	req := RegisterRequest{
		Name:     "  Ravi  ",
		Phone:    " 9876543210 ",
		BranchID: uuid.NewString(),
		Email:    &email,
		Remark:   &empty,
	}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.AdmissionRequestName != "Ravi" || m.AdmissionRequestPhone != "9876543210" {
		t.Errorf("name/phone not trimmed: %q %q", m.AdmissionRequestName, m.AdmissionRequestPhone)
	}
	if m.AdmissionRequestEmail == nil || *m.AdmissionRequestEmail != "x@y.in" {
		t.Errorf("email not trimmed")
	}
	if m.AdmissionRequestRemark != nil {
		t.Errorf("whitespace-only remark should become nil")
	}
}
