// internal/transport/transport_test.go
package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/jason-s-yu/shbot/service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script runs fn against every accepted connection and reports the request
// query it saw.
func script(t *testing.T, fn func(ctx context.Context, conn *websocket.Conn)) (*httptest.Server, chan string) {
	t.Helper()
	queries := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Path + "?" + r.URL.RawQuery
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer conn.CloseNow()
		fn(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return srv, queries
}

func testClient(srv *httptest.Server) *Client {
	logger, _ := test.NewNullLogger()
	return &Client{
		BaseURL:      "ws" + strings.TrimPrefix(srv.URL, "http"),
		SetupPath:    "/gamesetup",
		GameplayPath: "/gameplay",
		Token:        "tok",
		Log:          logrus.NewEntry(logger),
	}
}

func readText(ctx context.Context, t *testing.T, conn *websocket.Conn) string {
	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Errorf("read: %v", err)
		return ""
	}
	if typ != websocket.MessageText {
		t.Errorf("expected a text message, got %v", typ)
	}
	return string(data)
}

func TestEndpoint(t *testing.T) {
	c := &Client{BaseURL: "wss://example.com", Token: "a b"}
	got, err := c.endpoint("/gameplay", "g-1")
	require.NoError(t, err)
	assert.Equal(t, "wss://example.com/gameplay?auth=a+b&gameId=g-1", got)
}

func TestSetupJoinsUntilStarted(t *testing.T) {
	received := make(chan string, 1)
	srv, queries := script(t, func(ctx context.Context, conn *websocket.Conn) {
		received <- readText(ctx, t, conn)
		_ = wsjson.Write(ctx, conn, models.GameRequest{ID: "g-1", Participants: []models.GameParticipant{{Username: "Robot 2"}}})
		_ = wsjson.Write(ctx, conn, models.GameRequest{ID: "g-1", Started: true})
		_, _, _ = conn.Read(ctx)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := testClient(srv).Setup(ctx, "g-1", false, nil)
	require.NoError(t, err)
	assert.Equal(t, "JOIN", <-received)
	assert.Equal(t, "/gamesetup?auth=tok&gameId=g-1", <-queries)
}

func TestSetupHostStartsOnTrigger(t *testing.T) {
	srv, _ := script(t, func(ctx context.Context, conn *websocket.Conn) {
		if msg := readText(ctx, t, conn); msg != "START" {
			t.Errorf("expected START, got %q", msg)
		}
		_ = wsjson.Write(ctx, conn, models.GameRequest{ID: "g-1", Started: true})
		_, _, _ = conn.Read(ctx)
	})

	start := make(chan struct{})
	close(start)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, testClient(srv).Setup(ctx, "g-1", true, start))
}

// stubHandler answers every notification with the same action, or fails.
type stubHandler struct {
	mu     sync.Mutex
	seen   []models.ParticipantGameNotification
	action *models.GameplayAction
	err    error
}

func (h *stubHandler) HandleNotification(n models.ParticipantGameNotification) (*models.GameplayAction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, n)
	return h.action, h.err
}

func TestPlaySendsMovesAndFollowsNextGame(t *testing.T) {
	moves := make(chan models.GameplayAction, 1)
	srv, queries := script(t, func(ctx context.Context, conn *websocket.Conn) {
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: models.GameData{Phase: "ELECTION"}})
		var move models.GameplayAction
		if err := wsjson.Read(ctx, conn, &move); err != nil {
			t.Errorf("read move: %v", err)
			return
		}
		moves <- move
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: models.GameData{Phase: "GAME_OVER", NextGameID: "g-2"}})
		_, _, _ = conn.Read(ctx)
	})

	h := &stubHandler{action: &models.GameplayAction{Action: "VOTE", Args: []string{"JA"}}}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	next, err := testClient(srv).Play(ctx, "g-1", h, nil)
	require.NoError(t, err)
	assert.Equal(t, "g-2", next)
	assert.Equal(t, models.GameplayAction{Action: "VOTE", Args: []string{"JA"}}, <-moves)
	assert.Len(t, h.seen, 1)
	assert.Equal(t, "/gameplay?auth=tok&gameId=g-1", <-queries)
}

func TestPlayKeepsGoingAfterHandlerError(t *testing.T) {
	srv, _ := script(t, func(ctx context.Context, conn *websocket.Conn) {
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: models.GameData{Phase: "ELECTION"}})
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: models.GameData{Phase: "KILL"}})
		conn.Close(websocket.StatusNormalClosure, "")
	})

	h := &stubHandler{err: errors.New("boom")}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	next, err := testClient(srv).Play(ctx, "g-1", h, nil)
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Len(t, h.seen, 2)
}

func TestPlayHostRequestsNewGame(t *testing.T) {
	requests := make(chan models.GameplayAction, 1)
	srv, _ := script(t, func(ctx context.Context, conn *websocket.Conn) {
		over := models.GameData{Phase: "GAME_OVER", MyPlayer: models.PlayerData{Username: "Robot 1", Host: true}}
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: over})
		var request models.GameplayAction
		if err := wsjson.Read(ctx, conn, &request); err != nil {
			t.Errorf("read request: %v", err)
			return
		}
		requests <- request
		_ = wsjson.Write(ctx, conn, models.ParticipantGameNotification{GameData: models.GameData{NextGameID: "g-2"}})
		_, _, _ = conn.Read(ctx)
	})

	newGame := make(chan struct{})
	close(newGame)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	next, err := testClient(srv).Play(ctx, "g-1", &stubHandler{}, newGame)
	require.NoError(t, err)
	assert.Equal(t, "g-2", next)
	request := <-requests
	assert.Equal(t, "NEW_GAME", request.Action)
	assert.Empty(t, request.Args)
}

func TestPlayDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := testClient(srv).Play(ctx, "g-1", &stubHandler{}, nil)
	assert.Error(t, err)
}
