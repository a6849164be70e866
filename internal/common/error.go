package common

import "errors"

var (
	// Token lifecycle errors. Both are recovered locally by the session
	// gate; callers only ever observe "not logged in".
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
