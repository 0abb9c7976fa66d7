package dto

type AnnouncementRequest struct {
	Title    string  `json:"title" validate:"required,max=150"`
	Body     string  `json:"body" validate:"required"`
	StartsAt *string `json:"starts_at,omitempty"` // "2006-01-02"
	EndsAt   *string `json:"ends_at,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
