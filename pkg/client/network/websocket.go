// Package network connects a game client to the shaft server.
package network

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/queue"
	"nhooyr.io/websocket"
)

// WSClient represents a WebSocket client.
type WSClient struct {
	serverURL    string
	token        string
	messageQueue queue.Queue
	conn         *websocket.Conn

	rttLock  sync.Mutex
	rtt      time.Duration
	lastPong time.Time
}

type NewWSClientOptions struct {
	ServerURL string
	// Token is passed to servers that require authentication.
	Token string
	// MessageQueue receives every server message except pongs.
	MessageQueue queue.Queue
}

// NewWSClient creates a new WebSocket client.
func NewWSClient(opts NewWSClientOptions) *WSClient {
	return &WSClient{
		serverURL:    opts.ServerURL,
		token:        opts.Token,
		messageQueue: opts.MessageQueue,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect(ctx context.Context) error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("failed to parse server url: %v", err)
	}
	if c.token != "" {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}

	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := websocket.Dial(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)
	c.conn = conn
	return nil
}

// HandleMessages reads server messages until the connection or ctx ends.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	for {
		_, b, err := c.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				log.Trace("Connection closed: %v", err)
				return nil
			}
			return fmt.Errorf("failed to read message: %v", err)
		}

		if err := c.handleMessage(b); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *WSClient) handleMessage(b []byte) error {
	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerPong:
		pong := &messages.ServerPong{}
		if err := messages.DecodePayload(msg, pong); err != nil {
			return err
		}
		c.rttLock.Lock()
		c.lastPong = time.Now()
		c.rtt = c.lastPong.Sub(time.UnixMilli(pong.ClientTimestamp))
		c.rttLock.Unlock()
	default:
		if err := c.messageQueue.Enqueue(msg); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	}

	return nil
}

// RTT is the round trip time measured by the last ping.
func (c *WSClient) RTT() time.Duration {
	c.rttLock.Lock()
	defer c.rttLock.Unlock()
	return c.rtt
}

// LastPong is when the server last answered a ping.
func (c *WSClient) LastPong() time.Time {
	c.rttLock.Lock()
	defer c.rttLock.Unlock()
	return c.lastPong
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	if c.conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	return c.conn.Close(websocket.StatusNormalClosure, "bye")
}

// SendMessage sends a message to the WebSocket server.
func (c *WSClient) SendMessage(ctx context.Context, msg *messages.Message) error {
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := c.conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

func (c *WSClient) send(ctx context.Context, t messages.MessageType, payload interface{}) error {
	msg, err := messages.NewMessage(0, t, payload)
	if err != nil {
		return err
	}
	return c.SendMessage(ctx, msg)
}

func (c *WSClient) Ping(ctx context.Context) error {
	return c.send(ctx, messages.MessageTypeClientPing, &messages.ClientPing{Timestamp: time.Now().UnixMilli()})
}

func (c *WSClient) StartGame(ctx context.Context, start *messages.ClientStartGame) error {
	return c.send(ctx, messages.MessageTypeClientStartGame, start)
}

func (c *WSClient) Move(ctx context.Context, direction string) error {
	return c.send(ctx, messages.MessageTypeClientMove, &messages.ClientMove{Direction: direction})
}

func (c *WSClient) Rotate(ctx context.Context, rotation string) error {
	return c.send(ctx, messages.MessageTypeClientRotate, &messages.ClientRotate{Rotation: rotation})
}

func (c *WSClient) SetPractice(ctx context.Context, practice bool) error {
	return c.send(ctx, messages.MessageTypeClientSetPractice, &messages.ClientSetPractice{Practice: practice})
}

func (c *WSClient) Pause(ctx context.Context, paused bool) error {
	return c.send(ctx, messages.MessageTypeClientPause, &messages.ClientPause{Paused: paused})
}

func (c *WSClient) SetName(ctx context.Context, name string) error {
	return c.send(ctx, messages.MessageTypeClientSetName, &messages.ClientSetName{Name: name})
}
