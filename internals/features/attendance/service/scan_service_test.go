package service

import (
	"testing"
	"time"

	"studyhall_backend/internals/features/attendance/model"
)

func TestDayKeyUsesLibraryLocalDay(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	// 19:00 UTC on the 30th is 00:30 IST on the 31st: the scan belongs to
	// the new local day.
	at := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)
	if got := DayKey(at, ist); got != "2026-08-31" {
		t.Fatalf("IST day key = %s, want 2026-08-31", got)
	}
	if got := DayKey(at, time.UTC); got != "2026-08-30" {
		t.Fatalf("UTC day key = %s, want 2026-08-30", got)
	}
	if got := DayKey(at, nil); got != "2026-08-30" {
		t.Fatalf("nil location should fall back to UTC, got %s", got)
	}
}

func TestNextDirectionParity(t *testing.T) {
	cases := map[int]Direction{
		0: DirectionIn,
		1: DirectionOut,
		2: DirectionIn,
		3: DirectionOut,
		7: DirectionOut,
		8: DirectionIn,
	}
	for count, want := range cases {
		if got := NextDirection(count); got != want {
			t.Errorf("NextDirection(%d) = %s, want %s", count, got, want)
		}
	}
}

func TestApplyScanToggleAndFirstInPreserved(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	sum := &model.DailyAttendanceModel{}

	// First scan: check-in, FirstIn set.
	dir, session := ApplyScan(sum, base, time.Time{})
	if dir != DirectionIn {
		t.Fatalf("scan 1 direction = %s, want in", dir)
	}
	if !sum.DailyAttendanceFirstIn.Equal(base) {
		t.Fatalf("FirstIn not set to first scan time")
	}
	if sum.DailyAttendanceLastOut != nil {
		t.Fatalf("LastOut must stay nil after a lone check-in")
	}
	if !sum.DailyAttendanceCheckedIn {
		t.Fatalf("expected checked-in after first scan")
	}

	// Second scan: check-out 90 minutes later.
	out1 := base.Add(90 * time.Minute)
	dir, session = ApplyScan(sum, out1, session)
	if dir != DirectionOut {
		t.Fatalf("scan 2 direction = %s, want out", dir)
	}
	if sum.DailyAttendanceLastOut == nil || !sum.DailyAttendanceLastOut.Equal(out1) {
		t.Fatalf("LastOut not updated by check-out")
	}
	if sum.DailyAttendanceTotalMinutes != 90 {
		t.Fatalf("TotalMinutes = %d, want 90", sum.DailyAttendanceTotalMinutes)
	}

	// Third scan: new session; FirstIn must not move.
	in2 := base.Add(4 * time.Hour)
	dir, session = ApplyScan(sum, in2, session)
	if dir != DirectionIn {
		t.Fatalf("scan 3 direction = %s, want in", dir)
	}
	if !sum.DailyAttendanceFirstIn.Equal(base) {
		t.Fatalf("FirstIn moved on third scan; day's first check-in was lost")
	}

	// Fourth scan: close second session, LastOut moves forward.
	out2 := in2.Add(30 * time.Minute)
	dir, _ = ApplyScan(sum, out2, session)
	if dir != DirectionOut {
		t.Fatalf("scan 4 direction = %s, want out", dir)
	}
	if !sum.DailyAttendanceLastOut.Equal(out2) {
		t.Fatalf("LastOut should follow the latest check-out")
	}
	if sum.DailyAttendanceTotalMinutes != 120 {
		t.Fatalf("TotalMinutes = %d, want 120", sum.DailyAttendanceTotalMinutes)
	}
	if sum.DailyAttendanceScanCount != 4 {
		t.Fatalf("ScanCount = %d, want 4", sum.DailyAttendanceScanCount)
	}
}
