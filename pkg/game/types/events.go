package types

// ConnectClientEvent is queued for the game loop when a websocket client connects.
type ConnectClientEvent struct {
	ClientID uint32
	// UserID is empty for anonymous connections
	UserID string
}

// DisconnectClientEvent is queued for the game loop when a client goes away.
type DisconnectClientEvent struct {
	ClientID uint32
}
