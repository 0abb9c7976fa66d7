package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"studyhall_backend/internals/configs"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// TokenSubject carries everything a token encodes. Exactly one of UserID or
// StudentID is set depending on who logged in.
type TokenSubject struct {
	UserID    *uuid.UUID
	StudentID *uuid.UUID
	LibraryID *uuid.UUID
	Role      string
}

func claimsFor(sub TokenSubject, typ string, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	claims := jwt.MapClaims{
		"typ":  typ,
		"role": sub.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if sub.UserID != nil {
		claims["user_id"] = sub.UserID.String()
	}
	if sub.StudentID != nil {
		claims["student_id"] = sub.StudentID.String()
	}
	if sub.LibraryID != nil {
		claims["library_id"] = sub.LibraryID.String()
	}
	return claims
}

func CreateAccessToken(sub TokenSubject) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsFor(sub, "access", AccessTokenTTL))
	return t.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(sub TokenSubject) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsFor(sub, "refresh", RefreshTokenTTL))
	return t.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken validates a refresh token and rebuilds its subject so a
// new access token can be minted without touching the database.
func ParseRefreshToken(raw string) (TokenSubject, error) {
	var sub TokenSubject

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return sub, fiber.NewError(fiber.StatusUnauthorized, "invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return sub, fiber.NewError(fiber.StatusUnauthorized, "invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return sub, fiber.NewError(fiber.StatusUnauthorized, "not a refresh token")
	}

	sub.Role, _ = claims["role"].(string)
	for key, target := range map[string]**uuid.UUID{
		"user_id":    &sub.UserID,
		"student_id": &sub.StudentID,
		"library_id": &sub.LibraryID,
	} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				*target = &id
			}
		}
	}
	return sub, nil
}
