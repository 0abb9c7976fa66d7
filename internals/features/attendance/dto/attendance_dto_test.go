package dto

import (
	"testing"

	"github.com/google/uuid"

	helper "studyhall_backend/internals/helpers"
)

func TestQRPayloadValidation(t *testing.T) {
	valid := QRPayload{
		Type:        "attendance",
		LibraryID:   uuid.NewString(),
		LibraryCode: "DEMO",
		LibraryName: "Demo Study Hall",
	}
	if errs := helper.ValidateStruct(valid); errs != nil {
		t.Fatalf("valid payload rejected: %v", errs)
	}

	wrongType := valid
	wrongType.Type = "menu"
	if errs := helper.ValidateStruct(wrongType); errs == nil {
		t.Error("payload with type != attendance accepted")
	}

	badID := valid
	badID.LibraryID = "42"
	if errs := helper.ValidateStruct(badID); errs == nil {
		t.Error("payload with non-uuid library_id accepted")
	}

	missing := QRPayload{Type: "attendance"}
	if errs := helper.ValidateStruct(missing); errs == nil {
		t.Error("payload without library_id accepted")
	}
}
