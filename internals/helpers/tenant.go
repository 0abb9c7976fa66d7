package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhall_backend/internals/constants"
)

// Tenant is the scoping key every domain query must carry. It can only be
// built from a non-nil library id, so an unscoped query cannot be expressed
// through it.
type Tenant struct {
	libraryID uuid.UUID
}

func NewTenant(libraryID uuid.UUID) (Tenant, error) {
	if libraryID == uuid.Nil {
		return Tenant{}, fiber.NewError(fiber.StatusUnauthorized, "missing library scope")
	}
	return Tenant{libraryID: libraryID}, nil
}

func (t Tenant) LibraryID() uuid.UUID { return t.libraryID }

// Scope returns a GORM scope filtering on the table's library column
// (columns are prefixed per table, so the caller names it).
func (t Tenant) Scope(column string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(column+" = ?", t.libraryID)
	}
}

/* ===============================
   Token locals → tenant
=================================*/

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetLibraryIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, constants.LocLibraryID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "library id not found in token")
	}
	return id, nil
}

func GetTenant(c *fiber.Ctx) (Tenant, error) {
	id, err := GetLibraryIDFromToken(c)
	if err != nil {
		return Tenant{}, err
	}
	return NewTenant(id)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, constants.LocUserID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user not logged in")
	}
	return id, nil
}

func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localUUID(c, constants.LocStudentID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "student not logged in")
	}
	return id, nil
}
