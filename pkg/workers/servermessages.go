package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
)

// MessageSender delivers serialized messages to connected clients.
type MessageSender interface {
	SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error
	SendMessageToAll(ctx context.Context, msg *messages.Message)
}

type ServerMessageWorker struct {
	sender            MessageSender
	serverMessageChan <-chan ServerMessage
}

// ServerMessage is produced by the game loop. A ClientID of 0 is sent to
// every client.
type ServerMessage struct {
	ClientID uint32
	Type     messages.MessageType
	Message  interface{}
}

type NewServerMessageWorkerOptions struct {
	Sender            MessageSender
	ServerMessageChan <-chan ServerMessage
}

// NewServerMessageWorker creates a new ServerMessageWorker.
// The worker serializes messages from the game loop off the tick
// and writes them to the network.
func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	return &ServerMessageWorker{
		sender:            opts.Sender,
		serverMessageChan: opts.ServerMessageChan,
	}
}

func (w *ServerMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.serverMessageChan:
			if err := w.handleServerMessage(ctx, msg); err != nil {
				log.Error("Failed to handle server %s message: %v", msg.Type, err)
			}
		}
	}
}

func (w *ServerMessageWorker) handleServerMessage(ctx context.Context, msg ServerMessage) error {
	payload, err := encodePayload(msg)
	if err != nil {
		return err
	}

	message := &messages.Message{
		ClientID: msg.ClientID,
		Type:     msg.Type,
		Payload:  payload,
	}

	if msg.ClientID == 0 {
		w.sender.SendMessageToAll(ctx, message)
		return nil
	}
	return w.sender.SendMessageToClient(ctx, msg.ClientID, message)
}

func encodePayload(msg ServerMessage) ([]byte, error) {
	switch msg.Type {
	case messages.MessageTypeServerShaftUpdate:
		update, ok := msg.Message.(*messages.ServerShaftUpdate)
		if !ok {
			return nil, fmt.Errorf("failed to cast server shaft update message")
		}
		payload, err := messages.SerializeShaftUpdate(update)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize shaft update: %v", err)
		}
		return payload, nil
	case messages.MessageTypeServerSound,
		messages.MessageTypeServerNewBlock,
		messages.MessageTypeServerRotation,
		messages.MessageTypeServerGameOver,
		messages.MessageTypeServerError:
		payload, err := json.Marshal(msg.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s message: %v", msg.Type, err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown server message type: %v", msg.Type)
	}
}
