package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
	"github.com/dmitrijs2005/marketplac/internal/common"
	"github.com/dmitrijs2005/marketplac/internal/logging"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// chatServer is a minimal live-channel peer: it records inbound frames and
// can push events to the connected client.
type chatServer struct {
	t        *testing.T
	srv      *httptest.Server
	upgrades atomic.Int32
	conns    chan *websocket.Conn
	inbound  chan envelope
}

func newChatServer(t *testing.T) *chatServer {
	t.Helper()
	cs := &chatServer{
		t:       t,
		conns:   make(chan *websocket.Conn, 4),
		inbound: make(chan envelope, 16),
	}

	upgrader := websocket.Upgrader{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cs.upgrades.Add(1)
		cs.conns <- conn

		go func() {
			for {
				var env envelope
				if err := conn.ReadJSON(&env); err != nil {
					return
				}
				cs.inbound <- env
			}
		}()
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *chatServer) url() string {
	return "ws" + strings.TrimPrefix(cs.srv.URL, "http")
}

func (cs *chatServer) waitConn() *websocket.Conn {
	cs.t.Helper()
	select {
	case conn := <-cs.conns:
		return conn
	case <-time.After(2 * time.Second):
		cs.t.Fatal("no websocket connection")
		return nil
	}
}

func (cs *chatServer) push(conn *websocket.Conn, msg models.ChatMessage) {
	cs.t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(cs.t, err)
	require.NoError(cs.t, conn.WriteJSON(envelope{Event: "receiveMessage", Data: data}))
}

func TestChannel_InboundMessagesKeptInArrivalOrder(t *testing.T) {
	cs := newChatServer(t)
	c := NewChannel(cs.url(), "general", testLogger())
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Open(context.Background()))
	conn := cs.waitConn()

	cs.push(conn, models.ChatMessage{Sender: "ann", Message: "m1"})
	cs.push(conn, models.ChatMessage{Sender: "bob", Message: "m2"})

	require.Eventually(t, func() bool {
		return len(c.Messages()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.Equal(t, []models.ChatMessage{
		{Sender: "ann", Message: "m1"},
		{Sender: "bob", Message: "m2"},
	}, c.Messages())
}

func TestChannel_OpenTwiceKeepsSingleSubscription(t *testing.T) {
	cs := newChatServer(t)
	c := NewChannel(cs.url(), "general", testLogger())
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Open(ctx))
	require.NoError(t, c.Open(ctx))

	// give a second dial a moment to show up if one were made
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), cs.upgrades.Load())
}

func TestChannel_SendEmitsRoomMessageSender(t *testing.T) {
	cs := newChatServer(t)
	c := NewChannel(cs.url(), "general", testLogger())
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Open(context.Background()))
	cs.waitConn()

	require.NoError(t, c.Send("hello", "ann"))

	select {
	case env := <-cs.inbound:
		require.Equal(t, "sendMessage", env.Event)
		var out outboundMessage
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Equal(t, outboundMessage{Room: "general", Message: "hello", Sender: "ann"}, out)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
	}
}

func TestChannel_SendWithoutSenderIsChannelError(t *testing.T) {
	cs := newChatServer(t)
	c := NewChannel(cs.url(), "general", testLogger())
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Open(context.Background()))
	cs.waitConn()

	err := c.Send("hello", "")
	require.True(t, errors.Is(err, common.ErrChannel))

	select {
	case <-cs.inbound:
		t.Fatal("frame written despite missing sender")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestChannel_SendBeforeOpenIsChannelError(t *testing.T) {
	c := NewChannel("ws://127.0.0.1:1/ws", "general", testLogger())

	err := c.Send("hello", "ann")
	require.True(t, errors.Is(err, common.ErrChannel))
}

func TestChannel_OpenUnreachableIsNetworkError(t *testing.T) {
	c := NewChannel("ws://127.0.0.1:1/ws", "general", testLogger())

	err := c.Open(context.Background())
	require.True(t, errors.Is(err, common.ErrNetwork))
}

func TestChannel_CloseDiscardsLateEvents(t *testing.T) {
	cs := newChatServer(t)
	c := NewChannel(cs.url(), "general", testLogger())

	require.NoError(t, c.Open(context.Background()))
	conn := cs.waitConn()

	cs.push(conn, models.ChatMessage{Sender: "ann", Message: "m1"})
	require.Eventually(t, func() bool {
		return len(c.Messages()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, c.Close())
	require.Len(t, c.Messages(), 1)

	err := c.Send("hello", "ann")
	require.True(t, errors.Is(err, common.ErrChannel))
}
