package auth

import (
	"context"
	"time"

	"github.com/mhofer/farmfinder/internal/common"
	"github.com/mhofer/farmfinder/internal/logging"
)

// Gate answers "is there a currently valid session?". Validity is
// recomputed from the slot on every call: the transport may rewrite the
// slot between any two calls, so nothing is cached.
type Gate struct {
	store TokenStore
	log   logging.Logger
	now   func() time.Time
}

func NewGate(store TokenStore, log logging.Logger) *Gate {
	return &Gate{store: store, log: log, now: time.Now}
}

// CurrentToken returns the raw stored token if it decodes and has not
// expired; callers put that exact string on the wire. An undecodable,
// exp-less or expired token is cleared from the slot as a side effect and
// "" is returned. Store failures degrade to "not logged in".
func (g *Gate) CurrentToken(ctx context.Context) string {
	token, err := g.store.Get(ctx)
	if err != nil {
		g.log.Warn(ctx, "failed to read token slot", "error", err)
		return ""
	}
	if token == "" {
		return ""
	}

	claims, err := ParseClaims(token)
	if err == nil && !validClaims(claims, g.now()) {
		err = common.ErrTokenExpired
	}
	if err != nil {
		g.evict(ctx, err)
		return ""
	}
	return token
}

// IsLoggedIn reports whether a valid session exists right now.
func (g *Gate) IsLoggedIn(ctx context.Context) bool {
	return g.CurrentToken(ctx) != ""
}

// Logout unconditionally clears the slot. Calling it without a session is
// a no-op, not an error.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Clear(ctx)
}

func (g *Gate) evict(ctx context.Context, cause error) {
	g.log.Debug(ctx, "evicting dead token", "error", cause)
	if err := g.store.Clear(ctx); err != nil {
		g.log.Warn(ctx, "failed to clear token slot", "error", err)
	}
}
