// Package httpapi implements the verification and profile collaborators
// against a JSON HTTP API. Classified API failures carry a {code, message}
// payload which is normalized into authstate service errors.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	authstate "github.com/goliatone/go-authstate"
)

const (
	defaultTokenInfoPath = "/oauth/token_info"
	defaultProfilePath   = "/users"
)

// Config holds the API client configuration.
type Config struct {
	// BaseURL is the API root, e.g. https://api.example.com.
	BaseURL string

	// TokenInfoPath overrides the token introspection endpoint.
	TokenInfoPath string

	// ProfilePath overrides the profile endpoint prefix; the username is
	// appended as a path segment.
	ProfilePath string

	HTTPClient *http.Client
}

// Client implements authstate.VerificationClient and authstate.ProfileFetcher.
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates a new API client.
func New(cfg Config) *Client {
	if cfg.TokenInfoPath == "" {
		cfg.TokenInfoPath = defaultTokenInfoPath
	}
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = defaultProfilePath
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		config:     cfg,
		httpClient: client,
	}
}

// GetTokenInfo implements authstate.VerificationClient. A nil, nil return
// means the service recognized the token but produced no validation
// metadata.
func (c *Client) GetTokenInfo(ctx context.Context, token string) (*authstate.TokenInfo, error) {
	body, status, err := c.get(ctx, token, c.config.BaseURL+c.config.TokenInfoPath)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNoContent {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, c.apiError(status, body)
	}

	payload := map[string]any{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("httpapi: failed to decode token info response: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	user, _ := payload["user"].(string)
	if user == "" {
		// Token accepted but no usable subject, same as "no metadata".
		return nil, nil
	}
	delete(payload, "user")

	return &authstate.TokenInfo{User: user, Fields: payload}, nil
}

// FetchProfile implements authstate.ProfileFetcher. A nil, nil return means
// the profile record does not exist.
func (c *Client) FetchProfile(ctx context.Context, token, username string) (*authstate.Profile, error) {
	endpoint := c.config.BaseURL + c.config.ProfilePath + "/" + url.PathEscape(username)
	body, status, err := c.get(ctx, token, endpoint)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, c.apiError(status, body)
	}

	var payload profileResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("httpapi: failed to decode profile response: %w", err)
	}

	return payload.toProfile(username), nil
}

func (c *Client) get(ctx context.Context, token, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}

// apiError converts a non-2xx response into a classified service error when
// the payload carries the {code, message} shape, otherwise into a plain
// error with the best message available.
func (c *Client) apiError(status int, body []byte) error {
	var payload apiErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Code != 0 {
		return authstate.NewServiceError(payload.Code, payload.Message)
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}

	return fmt.Errorf("httpapi: request failed: %s", msg)
}

type apiErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type profileResponse struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	AvatarURL string         `json:"avatar_url"`
	Metadata  map[string]any `json:"metadata"`
}

func (r profileResponse) toProfile(fallbackUsername string) *authstate.Profile {
	username := r.Username
	if username == "" {
		username = fallbackUsername
	}

	return &authstate.Profile{
		Username:  username,
		Name:      r.Name,
		Email:     r.Email,
		AvatarURL: r.AvatarURL,
		Metadata:  r.Metadata,
	}
}

var (
	_ authstate.VerificationClient = (*Client)(nil)
	_ authstate.ProfileFetcher     = (*Client)(nil)
)
