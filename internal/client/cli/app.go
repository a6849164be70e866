// Package cli implements the interactive farmfinder command-line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mhofer/farmfinder/internal/client/api"
	"github.com/mhofer/farmfinder/internal/client/auth"
	"github.com/mhofer/farmfinder/internal/client/config"
	"github.com/mhofer/farmfinder/internal/client/services"
	"github.com/mhofer/farmfinder/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	client      api.Client
	userName    string
	reader      *bufio.Reader
	log         logging.Logger
}

// NewApp wires the client database, token slot, API client and services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := auth.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "error", err)
		return nil, err
	}

	store := auth.NewSQLiteTokenStore(db)
	gate := auth.NewGate(store, log)
	apiClient := api.NewHTTPClient(c.BaseURL, store, c.RequestTimeout, log)
	as := services.NewAuthService(apiClient, store, gate)

	return &App{
		config:      c,
		authService: as,
		client:      apiClient,
		reader:      bufio.NewReader(os.Stdin),
		log:         log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn(context.Background())
}

// getStatus renders the prompt suffix: the user name while a session is
// alive. The name is forgotten once the session expires under us.
func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	if !a.isLoggedIn() {
		a.userName = ""
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
