// internal/transport/client.go
package transport

import (
	"context"
	"fmt"
	"net/url"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// readLimit bounds a single notification. Game data for ten seats with
// history stays well below it.
const readLimit = 1 << 20

// Client opens the websocket sessions of one robot account.
type Client struct {
	BaseURL      string // ws://host or wss://host
	SetupPath    string
	GameplayPath string
	Token        string

	// Limiter paces outgoing moves. Nil sends them immediately.
	Limiter *rate.Limiter
	Log     *logrus.Entry
}

// NewClient returns a client that sends at most one move per moveDelay.
func NewClient(baseURL, setupPath, gameplayPath, token string, moveDelay rate.Limit, log *logrus.Entry) *Client {
	return &Client{
		BaseURL:      baseURL,
		SetupPath:    setupPath,
		GameplayPath: gameplayPath,
		Token:        token,
		Limiter:      rate.NewLimiter(moveDelay, 1),
		Log:          log,
	}
}

// endpoint builds <base><path>?gameId=<id>&auth=<token>.
func (c *Client) endpoint(path, gameID string) (string, error) {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.BaseURL+path, err)
	}
	q := u.Query()
	q.Set("gameId", gameID)
	q.Set("auth", c.Token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) dial(ctx context.Context, path, gameID string) (*websocket.Conn, error) {
	endpoint, err := c.endpoint(path, gameID)
	if err != nil {
		return nil, err
	}
	conn, _, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s for game %s: %w", path, gameID, err)
	}
	conn.SetReadLimit(readLimit)
	return conn, nil
}

func (c *Client) pace(ctx context.Context) error {
	if c.Limiter == nil {
		return nil
	}
	return c.Limiter.Wait(ctx)
}

// closedNormally reports whether err is the peer ending the session cleanly.
func closedNormally(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}
