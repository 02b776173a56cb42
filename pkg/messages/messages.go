package messages

import (
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/scores"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 64 * 1024
)

// MessageType identifies the payload of a Message.
type MessageType byte

// Message types
const (
	MessageTypeClientPing MessageType = iota
	MessageTypeServerPong
	MessageTypeClientStartGame
	MessageTypeClientMove
	MessageTypeClientRotate
	MessageTypeClientSetPractice
	MessageTypeClientPause
	MessageTypeClientSetName
	MessageTypeServerShaftUpdate
	MessageTypeServerSound
	MessageTypeServerNewBlock
	MessageTypeServerRotation
	MessageTypeServerGameOver
	MessageTypeServerError
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ping"
	case MessageTypeServerPong:
		return "pong"
	case MessageTypeClientStartGame:
		return "start"
	case MessageTypeClientMove:
		return "move"
	case MessageTypeClientRotate:
		return "rotate"
	case MessageTypeClientSetPractice:
		return "practice"
	case MessageTypeClientPause:
		return "pause"
	case MessageTypeClientSetName:
		return "name"
	case MessageTypeServerShaftUpdate:
		return "shaft"
	case MessageTypeServerSound:
		return "sound"
	case MessageTypeServerNewBlock:
		return "newblock"
	case MessageTypeServerRotation:
		return "rotation"
	case MessageTypeServerGameOver:
		return "gameover"
	case MessageTypeServerError:
		return "error"
	default:
		return "unknown"
	}
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	ClientID uint32
	Type     MessageType
	Payload  []byte
}

// ClientPing is echoed back in a ServerPong to measure latency.
type ClientPing struct {
	ClientID  uint32 `json:"clientID"`
	Timestamp int64  `json:"timestamp"`
}

type ServerPong struct {
	ClientID        uint32 `json:"clientID"`
	ClientTimestamp int64  `json:"clientTimestamp"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// ClientStartGame starts a new game, replacing any game in progress.
// Zero values fall back to the server defaults.
type ClientStartGame struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Depth    int    `json:"depth"`
	Level    int    `json:"level"`
	Blockset string `json:"blockset"`
	Practice bool   `json:"practice"`
	Name     string `json:"name"`
}

// ClientMove moves the piece, see sim.ParseDirection for the names.
type ClientMove struct {
	Direction string `json:"direction"`
}

// ClientRotate turns the piece by one of the q, a, w, s, e, d rotations.
type ClientRotate struct {
	Rotation string `json:"rotation"`
}

type ClientSetPractice struct {
	Practice bool `json:"practice"`
}

type ClientPause struct {
	Paused bool `json:"paused"`
}

type ClientSetName struct {
	Name string `json:"name"`
}

// ServerShaftUpdate is the state of one game sent after every tick.
type ServerShaftUpdate struct {
	Timestamp    int64
	Width        int
	Height       int
	Depth        int
	Level        int
	ElementCount int
	Score        int
	HighScore    int

	Offset      types.Point3
	Orientation types.Point3
	Elements    []types.Point3
	Reference   []types.Point3
	Hint        []types.Point3
	Next        []types.Point3
	Locked      []types.Point3
	PlaneCounts []int

	BonusSecondsLeft float32
	BonusDuration    float32
	SecondsPlayed    float32

	FreeFall bool
	Practice bool
	Alive    bool
	Paused   bool
}

type ServerSound struct {
	Sample string `json:"sample"`
}

// ServerNewBlock announces a spawn with the offsets of the new piece.
type ServerNewBlock struct {
	Elements []types.Point3 `json:"elements"`
}

type ServerRotation struct {
	Rotation types.Quaternion `json:"rotation"`
}

// ServerGameOver carries the final entry and the board it landed on.
type ServerGameOver struct {
	Board       string         `json:"board"`
	Entry       scores.Entry   `json:"entry"`
	Rank        int            `json:"rank"`
	TopTen      bool           `json:"topTen"`
	Leaderboard []scores.Entry `json:"leaderboard"`
}

type ServerError struct {
	Message string `json:"message"`
}
