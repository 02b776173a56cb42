package network

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/gorilla/websocket"
	"github.com/kamstrup/intmap"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// WriteTimeout bounds a single websocket write
	WriteTimeout = 5 * time.Second
)

// Client represents a connected client
type Client struct {
	ID     uint32
	UserID string
	conn   *websocket.Conn
	// gorilla connections support one concurrent writer
	writeLock sync.Mutex
}

// WriteBinary writes one binary frame to the client.
func (c *Client) WriteBinary(b []byte) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if c.conn == nil {
		return fmt.Errorf("client %d has no connection", c.ID)
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %v", err)
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, b)
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     *intmap.Map[uint32, *Client]
	clientsLock sync.RWMutex
	maxClients  int
	// connection events for the game loop
	connectionEventQueue queue.Queue
}

type NewClientManagerOptions struct {
	// MaxClients bounds concurrent clients, 0 means unlimited.
	MaxClients           int
	ConnectionEventQueue queue.Queue
}

// NewClientManager creates a new ClientManager
func NewClientManager(opts NewClientManagerOptions) *ClientManager {
	return &ClientManager{
		clients:              intmap.New[uint32, *Client](64),
		maxClients:           opts.MaxClients,
		connectionEventQueue: opts.ConnectionEventQueue,
	}
}

// ConnectClient registers a connection and returns its ID. The game loop is
// told through a ConnectClientEvent.
func (cm *ClientManager) ConnectClient(conn *websocket.Conn, userID string) (uint32, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	if cm.maxClients > 0 && cm.clients.Len() >= cm.maxClients {
		return 0, fmt.Errorf("server is full (%d clients)", cm.maxClients)
	}

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	if err := cm.connectionEventQueue.Enqueue(&types.ConnectClientEvent{ClientID: clientID, UserID: userID}); err != nil {
		return 0, fmt.Errorf("failed to enqueue connect event: %v", err)
	}

	cm.clients.Put(clientID, &Client{
		ID:     clientID,
		UserID: userID,
		conn:   conn,
	})

	return clientID, nil
}

// DisconnectClient removes a client from the manager
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	if !cm.clients.Del(clientID) {
		return
	}

	if err := cm.connectionEventQueue.Enqueue(&types.DisconnectClientEvent{ClientID: clientID}); err != nil {
		log.Error("Failed to enqueue disconnect event for client %d: %v", clientID, err)
	}
}

// GetClient returns the client with the given ID.
func (cm *ClientManager) GetClient(clientID uint32) (*Client, error) {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	client, ok := cm.clients.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("client %d not found", clientID)
	}
	return client, nil
}

// GetClients returns all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, cm.clients.Len())
	cm.clients.ForEach(func(_ uint32, client *Client) bool {
		clients = append(clients, client)
		return true
	})
	return clients
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return cm.clients.Has(clientID)
}

func (cm *ClientManager) Len() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return cm.clients.Len()
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if !cm.clients.Has(id) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
