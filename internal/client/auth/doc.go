// Package auth implements the client-side credential lifecycle.
//
// # Overview
//
// The package provides:
//  1. Claims decoding (ParseClaims): extracting the claims segment of a
//     bearer token without verifying the signature. Signature trust stays
//     with the server; the client only protects itself from reusing an
//     expired or malformed token.
//  2. The token slot (TokenStore with sqlite and in-memory implementations):
//     a single persisted entry holding the current token, surviving
//     restarts the way browser localStorage survives reloads.
//  3. The session gate (Gate): answers "is there a valid session?" by
//     recomputing validity from the slot on every call, lazily evicting
//     dead tokens on access.
//  4. The HTTP interceptor (Transport): attaches the current token to every
//     outgoing request and persists renewed tokens the server echoes in
//     response headers, before the response reaches the caller.
//
// # Concurrency
//
// The slot is the only shared mutable state. Implementations serialize
// access; across concurrent in-flight requests, the last-resolving response
// wins. That can replace a marginally newer token with an older still-valid
// one, which is accepted: any unexpired token suffices.
package auth
