package service

import (
	"time"

	"studyhall_backend/internals/features/attendance/model"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// DayKey buckets an instant into the library's local calendar day. A scan at
// 00:30 IST belongs to the new IST day even though UTC is still on the
// previous one.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}

// NextDirection derives what this scan means from the count of prior scans
// on the same day: even (including zero) → check-in, odd → check-out.
func NextDirection(priorCount int) Direction {
	if priorCount%2 == 0 {
		return DirectionIn
	}
	return DirectionOut
}

// ApplyScan folds one scan into the day summary and returns its direction.
// The first scan of the day pins FirstIn permanently; later check-ins start a
// new session without touching it, and each check-out moves LastOut forward
// and adds the completed session's minutes. sessionStart carries the time of
// the in-scan that opened the current session (zero when checked out).
func ApplyScan(sum *model.DailyAttendanceModel, at time.Time, sessionStart time.Time) (Direction, time.Time) {
	dir := NextDirection(sum.DailyAttendanceScanCount)
	sum.DailyAttendanceScanCount++

	switch dir {
	case DirectionIn:
		if sum.DailyAttendanceFirstIn.IsZero() {
			sum.DailyAttendanceFirstIn = at
		}
		sum.DailyAttendanceCheckedIn = true
		return dir, at
	default:
		out := at
		sum.DailyAttendanceLastOut = &out
		sum.DailyAttendanceCheckedIn = false
		if !sessionStart.IsZero() && at.After(sessionStart) {
			sum.DailyAttendanceTotalMinutes += int(at.Sub(sessionStart).Minutes())
		}
		return dir, time.Time{}
	}
}
