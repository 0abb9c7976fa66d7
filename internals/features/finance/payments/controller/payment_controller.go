package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall_backend/internals/features/finance/payments/dto"
	"studyhall_backend/internals/features/finance/payments/model"
	studentModel "studyhall_backend/internals/features/students/model"
	helper "studyhall_backend/internals/helpers"
)

// PaymentController owns the fee ledger. Student balances only ever move
// through here or through admission approval — both append a ledger row, so
// the ledger total always explains the balance.
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// Collect handles POST /api/a/payments.
//
// In one transaction: append the ledger row, then move the student's balance
// (amount_paid up, due_amount down). Due may go negative on overpayment;
// that is an advance, not an error.
func (ctl *PaymentController) Collect(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CollectFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !req.Amount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be greater than zero")
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
	}

	monthTag := strings.TrimSpace(req.MonthTag)
	if monthTag == "" {
		monthTag = time.Now().Format("2006-01")
	} else if _, err := time.Parse("2006-01", monthTag); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid month_tag (expected YYYY-MM)")
	}

	var record model.PaymentRecordModel

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(tenant.Scope("student_library_id")).
			Where("student_id = ?", studentID).
			First(&student).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		if err != nil {
			return err
		}

		record = model.PaymentRecordModel{
			PaymentRecordLibraryID: tenant.LibraryID(),
			PaymentRecordStudentID: student.StudentID,
			PaymentRecordAmount:    req.Amount.Decimal,
			PaymentRecordCash:      req.Cash.Decimal,
			PaymentRecordOnline:    req.Online.Decimal,
			PaymentRecordSource:    model.SourceCollection,
			PaymentRecordMonthTag:  monthTag,
			PaymentRecordNote:      req.Note,
			PaymentRecordCreatedBy: &adminID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", student.StudentID).
			Updates(map[string]any{
				"student_amount_paid": student.StudentAmountPaid.Add(req.Amount.Decimal),
				"student_due_amount":  student.StudentDueAmount.Sub(req.Amount.Decimal),
			}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "payment recorded", record)
}

// List handles GET /api/a/payments?student_id=&month=&from=&to= with running
// totals for the filtered window.
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	tenant, err := helper.GetTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctl.DB.Model(&model.PaymentRecordModel{}).
		Scopes(tenant.Scope("payment_record_library_id"))

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("payment_record_student_id = ?", id)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid month (expected YYYY-MM)")
		}
		q = q.Where("payment_record_month_tag = ?", month)
	}
	for param, op := range map[string]string{"from": ">=", "to": "<"} {
		if v := strings.TrimSpace(c.Query(param)); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid "+param+" date (expected YYYY-MM-DD)")
			}
			if op == "<" {
				t = t.AddDate(0, 0, 1)
			}
			q = q.Where("payment_record_created_at "+op+" ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var rows []model.PaymentRecordModel
	if err := q.Order("payment_record_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var sumAmount, sumCash, sumOnline decimal.Decimal
	for _, r := range rows {
		sumAmount = sumAmount.Add(r.PaymentRecordAmount)
		sumCash = sumCash.Add(r.PaymentRecordCash)
		sumOnline = sumOnline.Add(r.PaymentRecordOnline)
	}

	return helper.JsonList(c, "payments", fiber.Map{
		"records": rows,
		"totals": fiber.Map{
			"amount": sumAmount,
			"cash":   sumCash,
			"online": sumOnline,
		},
	}, helper.BuildMeta(total, p))
}

// StudentHistory handles GET /api/s/payments — the logged-in student's own
// ledger entries.
func (ctl *PaymentController) StudentHistory(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.PaymentRecordModel
	if err := ctl.DB.
		Where("payment_record_student_id = ?", studentID).
		Order("payment_record_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "payments", rows)
}
