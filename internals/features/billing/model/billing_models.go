package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SubscriptionPending = "pending"
	SubscriptionPaid    = "paid"
	SubscriptionExpired = "expired"
)

// SubscriptionPlanModel is platform-level (not tenant-scoped): the SaaS
// plans a library can subscribe to.
type SubscriptionPlanModel struct {
	SubscriptionPlanID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_plan_id"`
	SubscriptionPlanName         string          `gorm:"type:varchar(100);not null" json:"subscription_plan_name"`
	SubscriptionPlanPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subscription_plan_price"`
	SubscriptionPlanDurationDays int             `gorm:"not null" json:"subscription_plan_duration_days"`
	SubscriptionPlanIsActive     bool            `gorm:"not null;default:true" json:"subscription_plan_is_active"`
	SubscriptionPlanCreatedAt    time.Time       `gorm:"autoCreateTime" json:"subscription_plan_created_at"`
	SubscriptionPlanUpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"subscription_plan_updated_at"`
}

func (SubscriptionPlanModel) TableName() string { return "subscription_plans" }

// LibrarySubscriptionModel is one checkout of a plan by a library. OrderID is
// the gateway order id and stays unique so a gateway callback can be matched
// back to exactly one row.
type LibrarySubscriptionModel struct {
	LibrarySubscriptionID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"library_subscription_id"`
	LibrarySubscriptionLibraryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"library_subscription_library_id"`
	LibrarySubscriptionPlanID    uuid.UUID  `gorm:"type:uuid;not null" json:"library_subscription_plan_id"`
	LibrarySubscriptionOrderID   string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"library_subscription_order_id"`
	LibrarySubscriptionStatus    string     `gorm:"type:varchar(10);not null;default:'pending'" json:"library_subscription_status"`
	LibrarySubscriptionSnapToken *string    `gorm:"type:text" json:"library_subscription_snap_token,omitempty"`
	LibrarySubscriptionStartsAt  *time.Time `json:"library_subscription_starts_at,omitempty"`
	LibrarySubscriptionEndsAt    *time.Time `json:"library_subscription_ends_at,omitempty"`
	LibrarySubscriptionCreatedAt time.Time  `gorm:"autoCreateTime" json:"library_subscription_created_at"`
	LibrarySubscriptionUpdatedAt time.Time  `gorm:"autoUpdateTime" json:"library_subscription_updated_at"`
}

func (LibrarySubscriptionModel) TableName() string { return "library_subscriptions" }
