// internal/transport/gameplay.go
package transport

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	engine "github.com/jason-s-yu/shbot/engine"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

// Handler answers gameplay notifications. *game.Bot satisfies it.
type Handler interface {
	HandleNotification(n models.ParticipantGameNotification) (*models.GameplayAction, error)
}

// Play runs the gameplay session of gameID, feeding every notification to h
// and sending back the moves it returns. It returns the id of the next game
// when the server announces one, or "" when the server closes the session.
// A host arms newGame at game over and requests another game when it fires.
func (c *Client) Play(ctx context.Context, gameID string, h Handler, newGame <-chan struct{}) (string, error) {
	conn, err := c.dial(ctx, c.GameplayPath, gameID)
	if err != nil {
		return "", err
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	armed := false
	for {
		var n models.ParticipantGameNotification
		if err := wsjson.Read(ctx, conn, &n); err != nil {
			if closedNormally(err) {
				return "", nil
			}
			return "", fmt.Errorf("gameplay session for game %s failed: %w", gameID, err)
		}

		if next := n.GameData.NextGameID; next != "" {
			c.Log.Infof("Game %s: joining the next game with id %s.", gameID, next)
			conn.Close(websocket.StatusNormalClosure, "")
			return next, nil
		}

		if n.GameData.Phase == engine.PhaseGameOver.String() && n.GameData.MyPlayer.Host && !armed {
			armed = true
			go c.requestNewGame(ctx, conn, gameID, newGame)
		}

		action, err := h.HandleNotification(n)
		if err != nil {
			c.Log.Errorf("Game %s: failed to handle notification: %v", gameID, err)
			continue
		}
		if action == nil {
			continue
		}
		if err := c.pace(ctx); err != nil {
			return "", err
		}
		c.Log.Debugf("Game %s: sending %s %v.", gameID, action.Action, action.Args)
		if err := wsjson.Write(ctx, conn, action); err != nil {
			return "", fmt.Errorf("failed to send %s in game %s: %w", action.Action, gameID, err)
		}
	}
}

func (c *Client) requestNewGame(ctx context.Context, conn *websocket.Conn, gameID string, newGame <-chan struct{}) {
	c.Log.Infof("Game %s: waiting for the host to start a new game.", gameID)
	select {
	case <-newGame:
	case <-ctx.Done():
		return
	}
	action := models.GameplayAction{Action: string(engine.ActionNewGame), Args: []string{}}
	if err := wsjson.Write(ctx, conn, action); err != nil {
		c.Log.Errorf("Game %s: failed to request a new game: %v", gameID, err)
		return
	}
	c.Log.Infof("Game %s: new game has been initiated by the host.", gameID)
}
