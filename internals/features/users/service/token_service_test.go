package service

import (
	"testing"

	"github.com/google/uuid"

	"studyhall_backend/internals/configs"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"

	studentID := uuid.New()
	libraryID := uuid.New()
	sub := TokenSubject{
		StudentID: &studentID,
		LibraryID: &libraryID,
		Role:      "student",
	}

	raw, err := CreateRefreshToken(sub)
	if err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}

	got, err := ParseRefreshToken(raw)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if got.Role != "student" {
		t.Errorf("role = %q, want student", got.Role)
	}
	if got.StudentID == nil || *got.StudentID != studentID {
		t.Errorf("student id lost in round trip")
	}
	if got.LibraryID == nil || *got.LibraryID != libraryID {
		t.Errorf("library id lost in round trip")
	}
	if got.UserID != nil {
		t.Errorf("user id should stay nil for a student token")
	}
}

func TestParseRefreshRejectsAccessToken(t *testing.T) {
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	userID := uuid.New()
	sub := TokenSubject{UserID: &userID, Role: "admin"}

	access, err := CreateAccessToken(sub)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if _, err := ParseRefreshToken(access); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
}

func TestParseRefreshRejectsGarbage(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"
	if _, err := ParseRefreshToken("not-a-jwt"); err == nil {
		t.Fatal("garbage accepted as refresh token")
	}
}
