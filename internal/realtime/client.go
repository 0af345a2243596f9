// Package realtime wraps the persistent websocket connection to the
// messaging server: chat, typing indicators, presence and call signaling.
// It is a pass-through — no message history, no ordering guarantee beyond
// the transport's.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tutorlink/client/internal/logger"
)

// Handler consumes an inbound event payload.
type Handler func(data json.RawMessage)

// Client maintains one websocket connection per signed-in identity and fans
// inbound events out to subscribers.
type Client struct {
	url               string
	reconnectAttempts uint64
	reconnectDelay    time.Duration
	dialer            *websocket.Dialer
	logger            *logger.Logger

	mu        sync.RWMutex
	conn      *websocket.Conn
	connected bool
	userID    string
	done      chan struct{}
	handlers  map[Event]map[string]Handler
}

func NewClient(url string, reconnectAttempts uint64, reconnectDelay time.Duration, logger *logger.Logger) *Client {
	return &Client{
		url:               url,
		reconnectAttempts: reconnectAttempts,
		reconnectDelay:    reconnectDelay,
		dialer:            websocket.DefaultDialer,
		logger:            logger.With("component", "realtime"),
		handlers:          make(map[Event]map[string]Handler),
	}
}

// Connect dials the realtime server and announces the signed-in identity
// with a join action. Calling Connect while already connected returns the
// existing connection instead of opening a second one.
func (c *Client) Connect(ctx context.Context, userID string) (*websocket.Conn, error) {
	c.mu.Lock()
	if c.connected && c.conn != nil {
		conn := c.conn
		c.mu.Unlock()
		return conn, nil
	}
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial realtime server: %w", err)
	}

	done := make(chan struct{})

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.userID = userID
	c.done = done
	c.mu.Unlock()

	c.logger.Info("connected", "user_id", userID)
	c.emit(ActionJoin, userID)

	go c.readLoop(conn, done)

	return conn, nil
}

// Connected reports whether the connection is currently up.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Disconnect releases the connection and resets the connected flag. Safe to
// call when not connected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		close(c.done)
		c.done = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connected = false

	c.logger.Info("disconnected")
}

// Subscribe registers a handler for an inbound event kind and returns its
// unsubscribe handle. Subscriptions survive reconnects.
func (c *Client) Subscribe(event Event, handler Handler) (unsubscribe func()) {
	id := uuid.NewString()

	c.mu.Lock()
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[string]Handler)
	}
	c.handlers[event][id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers[event], id)
		c.mu.Unlock()
	}
}

// Send emits an outbound action. Actions sent while disconnected are
// dropped, not queued.
func (c *Client) Send(action Action, data any) {
	c.emit(action, data)
}

// Chat and call-signaling shorthands.

func (c *Client) SendChatMessage(msg ChatMessage) {
	c.Send(ActionSendMessage, msg)
}

func (c *Client) SendTyping(receiverID string) {
	c.Send(ActionTyping, TypingNotice{ReceiverID: receiverID})
}

func (c *Client) StopTyping(receiverID string) {
	c.Send(ActionStopTyping, TypingNotice{ReceiverID: receiverID})
}

func (c *Client) SendReadReceipt(messageID, senderID string) {
	c.Send(ActionReadReceipt, ReadReceipt{MessageID: messageID, SenderID: senderID})
}

func (c *Client) CallUser(sig CallSignal) {
	c.Send(ActionCallUser, sig)
}

func (c *Client) AcceptCall(sig CallSignal) {
	c.Send(ActionAcceptCall, sig)
}

func (c *Client) RejectCall(sig CallSignal) {
	c.Send(ActionRejectCall, sig)
}

func (c *Client) SendIceCandidate(sig CallSignal) {
	c.Send(ActionIceCandidate, sig)
}

func (c *Client) EndCall(sig CallSignal) {
	c.Send(ActionEndCall, sig)
}

func (c *Client) emit(action Action, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		c.logger.Debug("dropping action while disconnected", "action", string(action))
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		c.logger.Error("failed to encode action payload",
			"action", string(action),
			"error", err.Error())
		return
	}

	if err := c.conn.WriteJSON(frame{Event: string(action), Data: raw}); err != nil {
		c.logger.Error("failed to send action",
			"action", string(action),
			"error", err.Error())
	}
}

func (c *Client) readLoop(conn *websocket.Conn, done chan struct{}) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-done:
				// Deliberate disconnect.
				return
			default:
			}

			c.mu.Lock()
			c.connected = false
			c.mu.Unlock()

			c.logger.Info("connection lost, reconnecting", "error", err.Error())
			c.reconnect(done)
			return
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			c.logger.Debug("dropping malformed frame", "error", err.Error())
			continue
		}

		c.dispatch(Event(f.Event), f.Data)
	}
}

// reconnect re-dials with a fixed delay and a bounded attempt count, then
// re-announces the identity with a join action.
func (c *Client) reconnect(done chan struct{}) {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.reconnectDelay), c.reconnectAttempts)

	var conn *websocket.Conn
	dial := func() error {
		select {
		case <-done:
			return backoff.Permanent(errors.New("client disconnected"))
		default:
		}

		var err error
		conn, _, err = c.dialer.Dial(c.url, nil)
		return err
	}

	if err := backoff.Retry(dial, policy); err != nil {
		c.logger.Error("reconnect failed, giving up", "error", err.Error())
		return
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	userID := c.userID
	c.mu.Unlock()

	c.logger.Info("reconnected", "user_id", userID)
	c.emit(ActionJoin, userID)

	go c.readLoop(conn, done)
}

func (c *Client) dispatch(event Event, data json.RawMessage) {
	c.mu.RLock()
	handlers := make([]Handler, 0, len(c.handlers[event]))
	for _, h := range c.handlers[event] {
		handlers = append(handlers, h)
	}
	c.mu.RUnlock()

	for _, h := range handlers {
		h(data)
	}
}
