// internal/auth/auth.go
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// Token is an access token issued by the game server, with the claims the
// bot reads from it. The signature is not checked; only the server can.
type Token struct {
	Raw     string
	Subject string
	Expires time.Time // zero when the token carries no expiry
	// Opaque is set when the token is not a JWT. It is still usable as is.
	Opaque bool
}

// Expired reports whether the token's expiry has passed at now.
func (t Token) Expired(now time.Time) bool {
	return !t.Expires.IsZero() && now.After(t.Expires)
}

// ParseToken reads the claims of an access token without verifying it.
func ParseToken(raw string) (Token, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return Token{}, fmt.Errorf("malformed access token: %w", err)
	}
	t := Token{Raw: raw, Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		t.Expires = claims.ExpiresAt.Time
	}
	return t, nil
}

// Client calls the game server's HTTP endpoints.
type Client struct {
	BaseURL        string // http(s)://host
	LoginPath      string
	CreateGamePath string
	HTTP           *http.Client
}

// NewClient returns a client with a bounded request timeout.
func NewClient(baseURL, loginPath, createGamePath string) *Client {
	return &Client{
		BaseURL:        baseURL,
		LoginPath:      loginPath,
		CreateGamePath: createGamePath,
		HTTP:           &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges robot credentials for an access token. Claims are read
// when the token is a JWT; any other token comes back Opaque.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	body, err := json.Marshal(models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return Token{}, err
	}
	resp, err := c.post(ctx, c.LoginPath, body, "")
	if err != nil {
		return Token{}, fmt.Errorf("login for %s failed: %w", username, err)
	}
	var lr models.LoginResponse
	if err := json.Unmarshal(resp, &lr); err != nil {
		return Token{}, fmt.Errorf("login for %s returned an unreadable body: %w", username, err)
	}
	if lr.AccessToken == "" {
		return Token{}, fmt.Errorf("login for %s returned no access token", username)
	}
	tok, err := ParseToken(lr.AccessToken)
	if err != nil {
		return Token{Raw: lr.AccessToken, Opaque: true}, nil
	}
	return tok, nil
}

// CreateGame opens a new game lobby and returns its id.
func (c *Client) CreateGame(ctx context.Context, token Token) (string, error) {
	resp, err := c.post(ctx, c.CreateGamePath, []byte("{}"), token.Raw)
	if err != nil {
		return "", fmt.Errorf("create game failed: %w", err)
	}
	id := strings.Trim(strings.TrimSpace(string(resp)), `"`)
	if id == "" {
		return "", errors.New("create game returned an empty game id")
	}
	return id, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, authorization string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d: %s", req.Method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}
