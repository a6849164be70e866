// Package services contains application services for the farmfinder CLI.
// This file defines the authentication service: login, registration, logout
// and the session query every protected command branches on.
package services

import (
	"context"
	"fmt"

	"github.com/mhofer/farmfinder/internal/client/api"
	"github.com/mhofer/farmfinder/internal/client/auth"
	"github.com/mhofer/farmfinder/internal/client/models"
)

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the issued token.
//   - Register: create an account; never establishes a session.
//   - Logout: erase the local session. Idempotent.
//   - IsLoggedIn: whether a valid session exists right now.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, identity string, password []byte) error
	Register(ctx context.Context, user models.NewUser) (*models.User, error)
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote Client and
// the local token slot.
type authService struct {
	client api.Client
	store  auth.TokenStore
	gate   *auth.Gate
}

// NewAuthService constructs an AuthService bound to the given API client,
// token store and session gate.
func NewAuthService(client api.Client, store auth.TokenStore, gate *auth.Gate) AuthService {
	return &authService{client: client, store: store, gate: gate}
}

// Login exchanges the credentials for a token and persists it, establishing
// the session. A rejected login leaves the slot untouched; the caller can
// match api.ErrWrongCredentials on the returned error.
func (a *authService) Login(ctx context.Context, identity string, password []byte) error {
	token, err := a.client.Login(ctx, identity, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Register creates the account server-side. Registration issues no token,
// so the caller still has to log in afterwards.
func (a *authService) Register(ctx context.Context, user models.NewUser) (*models.User, error) {
	created, err := a.client.Register(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("registration error: %w", err)
	}
	return created, nil
}

// Logout erases the local session.
func (a *authService) Logout(ctx context.Context) error {
	return a.gate.Logout(ctx)
}

// IsLoggedIn reports whether the slot holds a token that is still valid.
func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.gate.IsLoggedIn(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
