package network

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	authproviders "github.com/cbodonnell/shaft/pkg/auth/providers"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/gorilla/websocket"
)

type NetworkManager struct {
	// AuthProvider is optional. Without it every connection is anonymous.
	AuthProvider  authproviders.AuthProvider
	ClientManager *ClientManager
	MessageQueue  queue.Queue
	WSServer      *WSServer
}

type NewNetworkManagerOptions struct {
	AuthProvider  authproviders.AuthProvider
	ClientManager *ClientManager
	MessageQueue  queue.Queue
	WSPort        int
	WSServerTLS   *TLSConfig
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	return &NetworkManager{
		AuthProvider:  options.AuthProvider,
		ClientManager: options.ClientManager,
		MessageQueue:  options.MessageQueue,
		WSServer: NewWSServer(NewWSServerOptions{
			Port: options.WSPort,
			TLS:  options.WSServerTLS,
		}),
	}
}

func (n *NetworkManager) Start(ctx context.Context) {
	go n.WSServer.Start(ctx, n.handleConnect, n.handleDisconnect, n.handleMessage)
}

// Handler serves the websocket endpoint without starting a listener.
func (n *NetworkManager) Handler(ctx context.Context) http.Handler {
	return n.WSServer.Handler(ctx, n.handleConnect, n.handleDisconnect, n.handleMessage)
}

// handleConnect verifies the token passed as a query parameter or bearer
// header when an auth provider is configured.
func (n *NetworkManager) handleConnect(r *http.Request, conn *websocket.Conn) (uint32, error) {
	userID := ""
	if n.AuthProvider != nil {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		claims, err := n.AuthProvider.VerifyToken(r.Context(), token)
		if err != nil {
			return 0, fmt.Errorf("failed to verify token: %v", err)
		}
		userID = claims.UID
	}

	clientID, err := n.ClientManager.ConnectClient(conn, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to connect client: %v", err)
	}
	log.Info("Client %d connected", clientID)
	return clientID, nil
}

func (n *NetworkManager) handleDisconnect(clientID uint32) {
	n.ClientManager.DisconnectClient(clientID)
	log.Info("Client %d disconnected", clientID)
}

func (n *NetworkManager) handleMessage(ctx context.Context, clientID uint32, message *messages.Message) {
	switch message.Type {
	case messages.MessageTypeClientPing:
		if err := n.handleClientPing(ctx, message); err != nil {
			log.Error("Failed to handle client ping: %v", err)
		}
	default:
		if err := n.MessageQueue.Enqueue(message); err != nil {
			log.Error("Failed to enqueue message from client %d: %v", clientID, err)
		}
	}
}

func (n *NetworkManager) handleClientPing(ctx context.Context, message *messages.Message) error {
	ping := &messages.ClientPing{}
	if err := messages.DecodePayload(message, ping); err != nil {
		return err
	}

	pong, err := messages.NewMessage(0, messages.MessageTypeServerPong, &messages.ServerPong{
		ClientID:        message.ClientID,
		ClientTimestamp: ping.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	return n.SendMessageToClient(ctx, message.ClientID, pong)
}

// SendMessageToClient serializes msg and writes it to one client.
func (n *NetworkManager) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %d: %v", clientID, err)
	}

	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := client.WriteBinary(b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection for client %d: %v", clientID, err)
	}

	return nil
}

// SendMessageToAll writes msg to every connected client.
func (n *NetworkManager) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		log.Error("Failed to serialize message: %v", err)
		return
	}
	for _, client := range n.ClientManager.GetClients() {
		if err := client.WriteBinary(b); err != nil {
			log.Error("Failed to send message to client %d: %v", client.ID, err)
		}
	}
}
