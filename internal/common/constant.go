// Package common contains shared constants and sentinel errors used across
// farmfinder components.
package common

// AuthHeaderName is the HTTP header carrying the bearer token, on outbound
// requests as well as on responses that echo a renewed token. The value is
// the raw token string, no scheme prefix.
const AuthHeaderName = "Authorization"

// TokenStorageKey is the fixed key of the single credential slot in the
// client database.
const TokenStorageKey = "token"

// RequestIDHeaderName correlates client log lines with server logs.
const RequestIDHeaderName = "X-Request-Id"
