// Package chat maintains the single live-channel subscription of a session:
// one websocket connection, one read pump appending inbound messages to an
// ordered log, and a fire-and-forget send.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/marketplac/internal/client/models"
	"github.com/dmitrijs2005/marketplac/internal/common"
	"github.com/dmitrijs2005/marketplac/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	eventSend    = "sendMessage"
	eventReceive = "receiveMessage"

	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second
)

// envelope is the wire frame of the channel.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outboundMessage struct {
	Room    string `json:"room"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Channel is a lifecycle-scoped handle on the live event stream. It is
// constructed at session start, opened exactly once, and released at session
// end; credential changes never cause a re-subscription.
type Channel struct {
	url  string
	room string
	id   string // connection id, for logs only
	log  logging.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	messages []models.ChatMessage
	closed   bool
}

func NewChannel(url, room string, log logging.Logger) *Channel {
	id := uuid.New().String()
	return &Channel{
		url:  url,
		room: room,
		id:   id,
		log:  log.With("component", "chat", "connectionID", id),
	}
}

// Open dials the channel and starts the read pump. Calling Open on an
// already-open channel is a no-op: the session holds exactly one
// subscription for its lifetime.
func (c *Channel) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil || c.closed {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("%w: dial chat channel: %v", common.ErrNetwork, err)
	}
	c.conn = conn

	go c.readPump(conn)
	return nil
}

// readPump appends inbound chat events to the log in arrival order. It exits
// when the connection errors out or is closed.
func (c *Channel) readPump(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
		c.log.Debug(context.Background(), "read pump stopped")
	}()

	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Error(context.Background(), "chat read error", "error", err)
			}
			return
		}

		if env.Event != eventReceive {
			continue
		}

		var msg models.ChatMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			c.log.Warn(context.Background(), "malformed chat event", "error", err)
			continue
		}

		c.mu.Lock()
		if !c.closed {
			c.messages = append(c.messages, msg)
		}
		c.mu.Unlock()
	}
}

// Send emits {room, message, sender} on the channel. No acknowledgment is
// awaited. A missing sender means there is no identity to speak as and is a
// channel error; no frame is written.
func (c *Channel) Send(message, sender string) error {
	if strings.TrimSpace(sender) == "" {
		return fmt.Errorf("%w: sender required", common.ErrChannel)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return fmt.Errorf("%w: channel not open", common.ErrChannel)
	}

	data, err := json.Marshal(outboundMessage{Room: c.room, Message: message, Sender: sender})
	if err != nil {
		return fmt.Errorf("%w: encode message: %v", common.ErrChannel, err)
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(envelope{Event: eventSend, Data: data}); err != nil {
		return fmt.Errorf("%w: send: %v", common.ErrChannel, err)
	}
	return nil
}

// Messages returns a copy of the chat log in arrival order.
func (c *Channel) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

// Close tears the subscription down. Events still in flight when Close is
// called are discarded, not appended.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
