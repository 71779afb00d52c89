// internal/transport/setup.go
package transport

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

const (
	setupJoin  = "JOIN"
	setupStart = "START"
)

// Setup joins the lobby of gameID and returns once the server reports the
// game as started. A host does not join; it sends START when start fires.
func (c *Client) Setup(ctx context.Context, gameID string, host bool, start <-chan struct{}) error {
	conn, err := c.dial(ctx, c.SetupPath, gameID)
	if err != nil {
		return err
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if host {
		go func() {
			select {
			case <-start:
			case <-ctx.Done():
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, []byte(setupStart)); err != nil {
				c.Log.Errorf("Game %s: failed to start the game: %v", gameID, err)
				return
			}
			c.Log.Infof("Game %s: game has been initiated by the host.", gameID)
		}()
	} else {
		if err := conn.Write(ctx, websocket.MessageText, []byte(setupJoin)); err != nil {
			return fmt.Errorf("failed to join game %s: %w", gameID, err)
		}
		c.Log.Infof("Game %s: joined the game session.", gameID)
	}

	for {
		var req models.GameRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			return fmt.Errorf("setup session for game %s ended before start: %w", gameID, err)
		}
		c.Log.Debugf("Game %s: lobby has %d participants (ready: %v).", gameID, len(req.Participants), req.ReadyToStart)
		if req.Started {
			c.Log.Infof("Game %s: game is starting.", gameID)
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		}
	}
}
