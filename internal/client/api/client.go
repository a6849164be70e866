package api

import (
	"context"

	"github.com/mhofer/farmfinder/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the farmfinder
// backend. The concrete implementation is HTTPClient.
type Client interface {
	Close() error

	// Login exchanges credentials for a freshly issued token. It does not
	// store the token; that is the auth service's job.
	Login(ctx context.Context, identity, password string) (string, error)

	// Register creates an account. No token is issued; the caller has to
	// log in separately.
	Register(ctx context.Context, user models.NewUser) (*models.User, error)

	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, user models.NewUser) error
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	ListFarms(ctx context.Context) ([]models.Farm, error)
	FindFarmsNear(ctx context.Context, lat, lon, radius float64) ([]models.Farm, error)
	GetFarm(ctx context.Context, id int) (*models.FullFarm, error)
	CreateFarm(ctx context.Context, farm models.NewFarm) (*models.Farm, error)
	DeleteFarm(ctx context.Context, id int) error
}
