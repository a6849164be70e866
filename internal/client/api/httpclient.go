// Package api talks to the farmfinder backend over HTTP.
//
// HTTPClient wires the auth transport into its http.Client, so every call
// made through it is transparently authenticated and benefits from
// sliding-expiration renewal. Server statuses map to sentinel errors the
// way the rest of the client expects them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mhofer/farmfinder/internal/client/auth"
	"github.com/mhofer/farmfinder/internal/client/models"
	"github.com/mhofer/farmfinder/internal/logging"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// loginCredentials is the login-jwt request body.
type loginCredentials struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// NewHTTPClient builds a client for the API at baseURL. All requests run
// through the auth transport backed by the given store.
func NewHTTPClient(baseURL string, store auth.TokenStore, timeout time.Duration, log logging.Logger) *HTTPClient {
	gate := auth.NewGate(store, log)
	transport := auth.NewTransport(http.DefaultTransport, gate, store, log)

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Login posts the credentials and reads the response body as plain text:
// the endpoint answers with the raw token string, not a JSON wrapper. A
// 401 or 404 means the credentials were rejected.
func (c *HTTPClient) Login(ctx context.Context, identity, password string) (string, error) {
	payload, err := json.Marshal(loginCredentials{Identity: identity, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/users/login-jwt", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound:
		return "", ErrWrongCredentials
	case resp.StatusCode != http.StatusOK:
		return "", c.mapStatus(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}
	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", ErrWrongCredentials
	}
	return token, nil
}

func (c *HTTPClient) Register(ctx context.Context, user models.NewUser) (*models.User, error) {
	created := &models.User{}
	if err := c.do(ctx, http.MethodPost, "/users/create", user, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, "/users/current-user", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, user models.NewUser) error {
	return c.do(ctx, http.MethodPost, "/users/change", user, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/users/change-password", change, nil)
}

func (c *HTTPClient) ListFarms(ctx context.Context) ([]models.Farm, error) {
	var farms []models.Farm
	if err := c.do(ctx, http.MethodGet, "/farms", nil, &farms); err != nil {
		return nil, err
	}
	return farms, nil
}

func (c *HTTPClient) FindFarmsNear(ctx context.Context, lat, lon, radius float64) ([]models.Farm, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))

	var farms []models.Farm
	if err := c.do(ctx, http.MethodGet, "/farms/find_near?"+q.Encode(), nil, &farms); err != nil {
		return nil, err
	}
	return farms, nil
}

func (c *HTTPClient) GetFarm(ctx context.Context, id int) (*models.FullFarm, error) {
	farm := &models.FullFarm{}
	if err := c.do(ctx, http.MethodGet, "/farms/"+strconv.Itoa(id), nil, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

func (c *HTTPClient) CreateFarm(ctx context.Context, farm models.NewFarm) (*models.Farm, error) {
	created := &models.Farm{}
	if err := c.do(ctx, http.MethodPost, "/farms/create", farm, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) DeleteFarm(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/farms/"+strconv.Itoa(id), nil, nil)
}

// do performs a JSON request/response exchange against path. in and out may
// be nil for bodyless requests and empty responses.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.mapStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// mapStatus converts a non-success response to a sentinel error. A 400 may
// carry a field validation body, which is surfaced as *ValidationError.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusBadRequest:
		var v ValidationError
		if err := json.NewDecoder(resp.Body).Decode(&v); err == nil && v.Message != "" {
			return &v
		}
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
}
