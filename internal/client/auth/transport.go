package auth

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mhofer/farmfinder/internal/common"
	"github.com/mhofer/farmfinder/internal/logging"
)

// Transport decorates every outgoing request with the current token and
// captures renewed tokens the server echoes on responses. Call sites stay
// unaware of authentication entirely.
type Transport struct {
	base  http.RoundTripper
	gate  *Gate
	store TokenStore
	log   logging.Logger
}

func NewTransport(base http.RoundTripper, gate *Gate, store TokenStore, log logging.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, gate: gate, store: store, log: log}
}

// RoundTrip attaches the token strictly before dispatch and persists a
// renewed one strictly before the response reaches the caller, so an
// immediate follow-up request always sees the fresh token. Bookkeeping
// failures are logged and never surfaced as request failures; transport
// errors pass through untouched.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(ctx)
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token := t.gate.CurrentToken(ctx); token != "" {
		// the stored string goes on the wire verbatim, no scheme prefix
		req.Header.Set(common.AuthHeaderName, token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// A renewed token may ride on any response, error statuses included.
	if renewed := resp.Header.Get(common.AuthHeaderName); renewed != "" {
		if err := t.store.Set(ctx, renewed); err != nil {
			t.log.Warn(ctx, "failed to persist renewed token", "error", err)
		}
	}

	return resp, nil
}
