package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/gorilla/websocket"
)

// WSServer represents a WebSocket server.
type WSServer struct {
	port int
	tls  *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	Port int
	TLS  *TLSConfig
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	return &WSServer{
		port: opts.Port,
		tls:  opts.TLS,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  messages.MessageBufferSize,
	WriteBufferSize: messages.MessageBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ConnectHandler registers a new connection and returns its client ID.
type ConnectHandler func(r *http.Request, conn *websocket.Conn) (uint32, error)

// DisconnectHandler is called once the connection of a client is gone.
type DisconnectHandler func(clientID uint32)

// MessageHandler receives every message read from a client, stamped with
// the client's ID.
type MessageHandler func(ctx context.Context, clientID uint32, message *messages.Message)

// Handler upgrades requests to websocket connections. Messages of one
// connection are handled sequentially in the order they were read.
func (s *WSServer) Handler(ctx context.Context, connectHandler ConnectHandler, disconnectHandler DisconnectHandler, messageHandler MessageHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		conn.SetReadLimit(messages.MessageBufferSize)
		log.Debug("New WebSocket connection from %s", conn.RemoteAddr().String())

		clientID, err := connectHandler(r, conn)
		if err != nil {
			log.Warn("Rejected connection from %s: %v", conn.RemoteAddr().String(), err)
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
			conn.WriteMessage(websocket.CloseMessage, msg)
			conn.Close()
			return
		}

		go s.handleWSConnection(ctx, clientID, conn, disconnectHandler, messageHandler)
	})
}

// Start starts the WebSocket server.
func (s *WSServer) Start(ctx context.Context, connectHandler ConnectHandler, disconnectHandler DisconnectHandler, messageHandler MessageHandler) {
	addr := fmt.Sprintf(":%d", s.port)
	server := &http.Server{Addr: addr, Handler: s.Handler(ctx, connectHandler, disconnectHandler, messageHandler)}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", addr)
		listenAndServe = func() error {
			return server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", addr)
		listenAndServe = server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return
		}
		log.Error("WebSocket server error: %v", err)
	}
}

// handleWSConnection handles a WebSocket connection.
func (s *WSServer) handleWSConnection(ctx context.Context, clientID uint32, conn *websocket.Conn, disconnectHandler DisconnectHandler, messageHandler MessageHandler) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		disconnectHandler(clientID)
		conn.Close()
	}()

	for {
		message, err := ReadMessageFromWS(conn)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("Error reading WebSocket message from client %d: %v", clientID, err)
			}
			log.Trace("Connection closed for client %d", clientID)
			return
		}

		message.ClientID = clientID
		messageHandler(ctx, clientID, message)
	}
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
