package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"studyhall_backend/internals/features/finance/expenses/dto"
	"studyhall_backend/internals/features/finance/expenses/model"
	paymentModel "studyhall_backend/internals/features/finance/payments/model"
	helper "studyhall_backend/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// Create handles POST /api/a/expenses
func (ctl *ExpenseController) Create(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !req.Amount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be greater than zero")
	}
	spentAt, err := time.Parse("2006-01-02", strings.TrimSpace(req.SpentAt))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid spent_at (expected YYYY-MM-DD)")
	}

	row := model.ExpenseModel{
		ExpenseLibraryID: tenant.LibraryID(),
		ExpenseTitle:     strings.TrimSpace(req.Title),
		ExpenseCategory:  strings.TrimSpace(req.Category),
		ExpenseAmount:    req.Amount.Decimal,
		ExpenseSpentAt:   spentAt,
		ExpenseNote:      req.Note,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "expense recorded", row)
}

// List handles GET /api/a/expenses?month=&category=
func (ctl *ExpenseController) List(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "spent_at", "desc", helper.AdminOpts)
	q := ctl.DB.Model(&model.ExpenseModel{}).
		Scopes(tenant.Scope("expense_library_id"))

	if month := strings.TrimSpace(c.Query("month")); month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid month (expected YYYY-MM)")
		}
		q = q.Where("expense_spent_at >= ? AND expense_spent_at < ?", start, start.AddDate(0, 1, 0))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("expense_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	var rows []model.ExpenseModel
	if err := q.Order("expense_spent_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var sum decimal.Decimal
	for _, r := range rows {
		sum = sum.Add(r.ExpenseAmount)
	}

	return helper.JsonList(c, "expenses", fiber.Map{
		"records": rows,
		"total":   sum,
	}, helper.BuildMeta(total, p))
}

// Delete handles DELETE /api/a/expenses/:id
func (ctl *ExpenseController) Delete(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid expense id")
	}
	res := ctl.DB.Scopes(tenant.Scope("expense_library_id")).
		Where("expense_id = ?", id).
		Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
	}
	return helper.JsonDeleted(c, "expense deleted", fiber.Map{"expense_id": id})
}

// MonthlySummary handles GET /api/a/finance/summary?month=2026-08: fee
// collections vs expenses for the month, and the net.
func (ctl *ExpenseController) MonthlySummary(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid month (expected YYYY-MM)")
	}
	end := start.AddDate(0, 1, 0)

	type sumRow struct {
		Total decimal.Decimal
	}

	var collected sumRow
	if err := ctl.DB.Model(&paymentModel.PaymentRecordModel{}).
		Scopes(tenant.Scope("payment_record_library_id")).
		Where("payment_record_created_at >= ? AND payment_record_created_at < ?", start, end).
		Select("COALESCE(SUM(payment_record_amount), 0) AS total").
		Scan(&collected).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var spent sumRow
	if err := ctl.DB.Model(&model.ExpenseModel{}).
		Scopes(tenant.Scope("expense_library_id")).
		Where("expense_spent_at >= ? AND expense_spent_at < ?", start, end).
		Select("COALESCE(SUM(expense_amount), 0) AS total").
		Scan(&spent).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	return helper.JsonOK(c, "monthly summary", fiber.Map{
		"month":     month,
		"collected": collected.Total,
		"expenses":  spent.Total,
		"net":       collected.Total.Sub(spent.Total),
	})
}
