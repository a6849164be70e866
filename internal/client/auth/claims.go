package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mhofer/farmfinder/internal/common"
)

// claimsParser skips claim validation on purpose: freshness is checked
// explicitly in validClaims so that "exp == now" counts as expired.
var claimsParser = jwt.NewParser(jwt.WithoutClaimsValidation())

// ParseClaims decodes the claims segment of a raw token without verifying
// the signature. It fails on a wrong segment count, broken base64url or
// broken JSON; callers treat any failure the same as "no valid session".
func ParseClaims(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := claimsParser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// validClaims reports whether claims carry an expiry still in the future,
// compared at millisecond resolution. No exp claim means invalid, and a
// token expiring exactly now is already expired (strict <).
func validClaims(claims *jwt.RegisteredClaims, now time.Time) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return now.UnixMilli() < claims.ExpiresAt.Time.UnixMilli()
}
