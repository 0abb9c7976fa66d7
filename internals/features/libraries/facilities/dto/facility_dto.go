package dto

type BranchRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address"`
}

type ShiftRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartTime string `json:"start_time" validate:"required,len=5"` // "06:00"
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

type SeatRequest struct {
	Number   string  `json:"number" validate:"required,max=20"`
	BranchID *string `json:"branch_id,omitempty" validate:"omitempty,uuid4"`
}

type LockerRequest struct {
	Number string `json:"number" validate:"required,max=20"`
}
