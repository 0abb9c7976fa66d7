package dto

import (
	facilityModel "studyhall_backend/internals/features/libraries/facilities/model"
	"studyhall_backend/internals/features/libraries/library/model"
)

type CreateLibraryRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	OwnerName string `json:"owner_name" validate:"omitempty,max=100"`
	Code      string `json:"code" validate:"required,min=3,max=20"`
	Timezone  string `json:"timezone" validate:"omitempty,max=40"`
	Address   string `json:"address"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateLibraryRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	OwnerName *string `json:"owner_name,omitempty" validate:"omitempty,max=100"`
	Timezone  *string `json:"timezone,omitempty" validate:"omitempty,max=40"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

/* =========================================================
   Public landing payload — GET /library/:libraryCode
   Only what the registration form needs; lockers are
   filtered to unassigned ones.
========================================================= */

type PublicLibrary struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

type PublicBranch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type PublicShift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type PublicSeat struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	BranchID *string `json:"branch_id,omitempty"`
}

type PublicLocker struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type PublicLibraryResponse struct {
	Library  PublicLibrary  `json:"library"`
	Branches []PublicBranch `json:"branches"`
	Shifts   []PublicShift  `json:"shifts"`
	Seats    []PublicSeat   `json:"seats"`
	Lockers  []PublicLocker `json:"lockers"`
}

func ToPublicLibraryResponse(
	lib model.LibraryModel,
	branches []facilityModel.BranchModel,
	shifts []facilityModel.ShiftModel,
	seats []facilityModel.SeatModel,
	lockers []facilityModel.LockerModel,
) PublicLibraryResponse {
	out := PublicLibraryResponse{
		Library: PublicLibrary{
			Name:     lib.LibraryName,
			Code:     lib.LibraryCode,
			Address:  lib.LibraryAddress,
			Phone:    lib.LibraryPhone,
			Timezone: lib.LibraryTimezone,
		},
		Branches: make([]PublicBranch, 0, len(branches)),
		Shifts:   make([]PublicShift, 0, len(shifts)),
		Seats:    make([]PublicSeat, 0, len(seats)),
		Lockers:  make([]PublicLocker, 0, len(lockers)),
	}
	for _, b := range branches {
		out.Branches = append(out.Branches, PublicBranch{
			ID:      b.BranchID.String(),
			Name:    b.BranchName,
			Address: b.BranchAddress,
		})
	}
	for _, s := range shifts {
		out.Shifts = append(out.Shifts, PublicShift{
			ID:        s.ShiftID.String(),
			Name:      s.ShiftName,
			StartTime: s.ShiftStartTime,
			EndTime:   s.ShiftEndTime,
		})
	}
	for _, s := range seats {
		seat := PublicSeat{ID: s.SeatID.String(), Number: s.SeatNumber}
		if s.SeatBranchID != nil {
			id := s.SeatBranchID.String()
			seat.BranchID = &id
		}
		out.Seats = append(out.Seats, seat)
	}
	for _, l := range lockers {
		out.Lockers = append(out.Lockers, PublicLocker{
			ID:     l.LockerID.String(),
			Number: l.LockerNumber,
		})
	}
	return out
}
