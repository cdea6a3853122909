package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Определяем константы для имен JWT claims
const (
	jwtClaimSubject = "sub"
	jwtClaimRole    = "role"

	RoleAdmin = "admin"
)

// NewAdminToken signs an HS256 admin token valid for ttl.
func NewAdminToken(secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		jwtClaimSubject: RoleAdmin,
		jwtClaimRole:    RoleAdmin,
		"iat":           now.Unix(),
		"exp":           now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func GetRoleFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("user claims not found in context or invalid type")
	}

	roleClaim, ok := claims[jwtClaimRole]
	if !ok {
		return "", fmt.Errorf("missing '%s' claim in token", jwtClaimRole)
	}
	role, ok := roleClaim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for '%s' claim: expected string, got %T", jwtClaimRole, roleClaim)
	}
	return role, nil
}
