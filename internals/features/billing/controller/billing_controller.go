package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall_backend/internals/features/billing/dto"
	"studyhall_backend/internals/features/billing/model"
	"studyhall_backend/internals/features/billing/service"
	libraryModel "studyhall_backend/internals/features/libraries/library/model"
	helper "studyhall_backend/internals/helpers"
)

// BillingController covers the SaaS side: the owner defines plans, a library
// admin checks out through the payment gateway, and the gateway's callback
// confirms and opens the subscription window.
type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

/* =========================================================
   Plans (owner)
========================================================= */

func (ctl *BillingController) CreatePlan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !req.Price.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "price must be greater than zero")
	}

	row := model.SubscriptionPlanModel{
		SubscriptionPlanName:         strings.TrimSpace(req.Name),
		SubscriptionPlanPrice:        req.Price.Decimal,
		SubscriptionPlanDurationDays: req.DurationDays,
		SubscriptionPlanIsActive:     true,
	}
	if req.IsActive != nil {
		row.SubscriptionPlanIsActive = *req.IsActive
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "plan created", row)
}

// ListPlans is shared: owners see every plan, admins only active ones.
func (ctl *BillingController) ListPlans(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SubscriptionPlanModel{})
	if c.Query("all") != "true" {
		q = q.Where("subscription_plan_is_active = TRUE")
	}
	var rows []model.SubscriptionPlanModel
	if err := q.Order("subscription_plan_price ASC").Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "plans", rows)
}

func (ctl *BillingController) UpdatePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid plan id")
	}
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]any{
		"subscription_plan_name":          strings.TrimSpace(req.Name),
		"subscription_plan_price":         req.Price.Decimal,
		"subscription_plan_duration_days": req.DurationDays,
	}
	if req.IsActive != nil {
		updates["subscription_plan_is_active"] = *req.IsActive
	}

	res := ctl.DB.Model(&model.SubscriptionPlanModel{}).
		Where("subscription_plan_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "plan not found")
	}
	return helper.JsonUpdated(c, "plan updated", fiber.Map{"subscription_plan_id": id})
}

/* =========================================================
   Checkout + confirmation
========================================================= */

// Checkout handles POST /api/a/billing/checkout: creates a pending
// subscription with a fresh order id and asks the gateway for a snap token.
func (ctl *BillingController) Checkout(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid plan_id")
	}

	var plan model.SubscriptionPlanModel
	err = ctl.DB.
		Where("subscription_plan_id = ? AND subscription_plan_is_active = TRUE", planID).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "plan not found")
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	var lib libraryModel.LibraryModel
	if err := ctl.DB.Where("library_id = ?", tenant.LibraryID()).
		First(&lib).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	orderID := fmt.Sprintf("SUB-%s-%d", lib.LibraryCode, time.Now().Unix())

	token, redirectURL, err := service.GenerateSnapToken(
		orderID, plan.SubscriptionPlanPrice, plan.SubscriptionPlanName,
		service.CustomerInput{
			Name:  lib.LibraryOwnerName,
			Phone: lib.LibraryPhone,
		})
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	sub := model.LibrarySubscriptionModel{
		LibrarySubscriptionLibraryID: tenant.LibraryID(),
		LibrarySubscriptionPlanID:    plan.SubscriptionPlanID,
		LibrarySubscriptionOrderID:   orderID,
		LibrarySubscriptionStatus:    model.SubscriptionPending,
		LibrarySubscriptionSnapToken: &token,
	}
	if err := ctl.DB.Create(&sub).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonCreated(c, "checkout created", dto.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// Confirm handles POST /billing/confirm — the gateway notification. Matching
// is by unique order id; settlement opens the subscription window from the
// later of now and the current window's end, so renewing early never burns
// paid days.
func (ctl *BillingController) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	settled := req.TransactionStatus == "settlement" || req.TransactionStatus == "capture"

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var sub model.LibrarySubscriptionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("library_subscription_order_id = ?", req.OrderID).
			First(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		if err != nil {
			return err
		}
		if sub.LibrarySubscriptionStatus == model.SubscriptionPaid {
			return nil // idempotent: replayed notifications are fine
		}
		if !settled {
			return tx.Model(&model.LibrarySubscriptionModel{}).
				Where("library_subscription_id = ?", sub.LibrarySubscriptionID).
				Update("library_subscription_status", model.SubscriptionExpired).Error
		}

		var plan model.SubscriptionPlanModel
		if err := tx.Where("subscription_plan_id = ?", sub.LibrarySubscriptionPlanID).
			First(&plan).Error; err != nil {
			return err
		}

		starts := time.Now()
		var last model.LibrarySubscriptionModel
		err = tx.Where("library_subscription_library_id = ? AND library_subscription_status = ?",
			sub.LibrarySubscriptionLibraryID, model.SubscriptionPaid).
			Order("library_subscription_ends_at DESC").
			First(&last).Error
		if err == nil && last.LibrarySubscriptionEndsAt != nil && last.LibrarySubscriptionEndsAt.After(starts) {
			starts = *last.LibrarySubscriptionEndsAt
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		ends := starts.AddDate(0, 0, plan.SubscriptionPlanDurationDays)

		return tx.Model(&model.LibrarySubscriptionModel{}).
			Where("library_subscription_id = ?", sub.LibrarySubscriptionID).
			Updates(map[string]any{
				"library_subscription_status":    model.SubscriptionPaid,
				"library_subscription_starts_at": starts,
				"library_subscription_ends_at":   ends,
			}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "subscription updated", fiber.Map{"order_id": req.OrderID})
}

// MySubscription handles GET /api/a/billing/subscription — the library's
// current paid window, if any.
func (ctl *BillingController) MySubscription(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var sub model.LibrarySubscriptionModel
	err = ctl.DB.
		Where("library_subscription_library_id = ? AND library_subscription_status = ?",
			tenant.LibraryID(), model.SubscriptionPaid).
		Order("library_subscription_ends_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "ok", nil)
	}
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "ok", sub)
}
