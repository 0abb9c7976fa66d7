package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is a staff account. Admins belong to one library; the platform
// owner has a nil library id and passes every scope check explicitly.
type UserModel struct {
	UserID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserLibraryID *uuid.UUID `gorm:"type:uuid;index" json:"user_library_id,omitempty"`
	UserName      string     `gorm:"type:varchar(100);not null" json:"user_name"`
	UserEmail     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"user_email"`
	UserPassword  string     `gorm:"type:varchar(100);not null" json:"-"`
	UserRole      string     `gorm:"type:varchar(10);not null;default:'admin'" json:"user_role"`
	UserIsActive  bool       `gorm:"not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time  `gorm:"autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time  `gorm:"autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
