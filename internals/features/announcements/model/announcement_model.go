package model

import (
	"time"

	"github.com/google/uuid"
)

type AnnouncementModel struct {
	AnnouncementID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementLibraryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"announcement_library_id"`
	AnnouncementTitle     string     `gorm:"type:varchar(150);not null" json:"announcement_title"`
	AnnouncementBody      string     `gorm:"type:text;not null" json:"announcement_body"`
	AnnouncementStartsAt  *time.Time `json:"announcement_starts_at,omitempty"`
	AnnouncementEndsAt    *time.Time `json:"announcement_ends_at,omitempty"`
	AnnouncementIsActive  bool       `gorm:"not null;default:true" json:"announcement_is_active"`
	AnnouncementCreatedAt time.Time  `gorm:"autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time  `gorm:"autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
