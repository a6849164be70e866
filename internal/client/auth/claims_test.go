package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mhofer/farmfinder/internal/common"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("testsecret"))
	require.NoError(t, err)
	return token
}

func b64(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestParseClaims_DecodesSubjectAndExpiry(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "lena",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := ParseClaims(raw)
	require.NoError(t, err)
	require.Equal(t, "lena", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	require.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestParseClaims_DoesNotNeedTheSigningKey(t *testing.T) {
	// any signature passes, only the claims segment is read
	raw := signedToken(t, jwt.RegisteredClaims{Subject: "lena"})
	tampered := raw[:len(raw)-2] + "xx"

	claims, err := ParseClaims(tampered)
	require.NoError(t, err)
	require.Equal(t, "lena", claims.Subject)
}

func TestParseClaims_Malformed(t *testing.T) {
	header := b64(`{"alg":"HS256","typ":"JWT"}`)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", header + "." + b64(`{}`)},
		{"four segments", header + "." + b64(`{}`) + ".sig.extra"},
		{"claims not base64", header + ".%%%%.sig"},
		{"claims not json", header + "." + b64("not json") + ".sig"},
		{"header not json", b64("nope") + "." + b64(`{}`) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseClaims(tt.raw)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidToken)
			require.Nil(t, claims)
		})
	}
}

func TestValidClaims(t *testing.T) {
	now := time.Unix(1_000_000, 0)

	tests := []struct {
		name  string
		exp   *jwt.NumericDate
		valid bool
	}{
		{"no exp claim", nil, false},
		{"exp in the past", jwt.NewNumericDate(now.Add(-time.Second)), false},
		{"exp exactly now", jwt.NewNumericDate(now), false},
		{"exp in the future", jwt.NewNumericDate(now.Add(time.Second)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &jwt.RegisteredClaims{ExpiresAt: tt.exp}
			require.Equal(t, tt.valid, validClaims(claims, now))
		})
	}
}

func TestValidClaims_MillisecondResolution(t *testing.T) {
	// exp on a full second is still ahead of a now within the previous second
	exp := time.Unix(1_000_000, 0)
	now := time.Unix(999_999, 500_000_000)

	claims := &jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}
	require.True(t, validClaims(claims, now))
	require.False(t, validClaims(claims, exp))
}
