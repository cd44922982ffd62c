// Package client holds thin HTTP clients for the external collaborators of
// this service. The identity service is the sole source of truth for user
// records; this service only ever holds a user id foreign key.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// UserInfo is the subset of the identity service's user record this service
// consumes.
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type identityResponse struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

// IdentityClient resolves user identity against the identity service
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIdentityClient creates a new IdentityClient
func NewIdentityClient(baseURL string, logger *zap.Logger) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// FindUserByEmail fetches a user record by email from the identity service
func (c *IdentityClient) FindUserByEmail(ctx context.Context, email string) (*UserInfo, error) {
	endpoint := fmt.Sprintf("%s/api/users/email/%s", c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("identity service returned unexpected status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var body identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if !body.Success || body.Data == nil {
		return nil, ErrUserNotFound
	}

	user := &UserInfo{}
	if err := json.Unmarshal(body.Data, user); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return user, nil
}
