package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/shaft/flatbuffers/message"
	shaftstatefb "github.com/cbodonnell/shaft/flatbuffers/shaftstate"
	"github.com/cbodonnell/shaft/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// NewMessage builds a message with a JSON encoded payload.
func NewMessage(clientID uint32, t MessageType, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", t, err)
	}
	return &Message{ClientID: clientID, Type: t, Payload: b}, nil
}

// DecodePayload unmarshals the JSON payload of m into v.
func DecodePayload(m *Message, v interface{}) error {
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %v", m.Type, err)
	}
	return nil
}

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(len(m.Payload) + 32)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

// DeserializeMessageFlatbuffer reads a message table. Truncated buffers make
// the generated accessors panic, which is reported as an error.
func DeserializeMessageFlatbuffer(b []byte) (message *Message, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("message too short: %d bytes", len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			message = nil
			err = fmt.Errorf("malformed message: %v", r)
		}
	}()

	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	payload := messageFlatbuffer.PayloadBytes()
	message = &Message{
		ClientID: messageFlatbuffer.ClientId(),
		Type:     MessageType(messageFlatbuffer.Type()),
		Payload:  append([]byte(nil), payload...),
	}

	return message, nil
}

func SerializeShaftUpdate(update *ServerShaftUpdate) ([]byte, error) {
	builder := flatbuffers.NewBuilder(1024)
	shaftUpdate := SerializeShaftUpdateFlatbuffer(builder, update)
	builder.Finish(shaftUpdate)
	return builder.FinishedBytes(), nil
}

func DeserializeShaftUpdate(b []byte) (update *ServerShaftUpdate, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("shaft update too short: %d bytes", len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			update = nil
			err = fmt.Errorf("failed to deserialize shaft update: %v", r)
		}
	}()
	return DeserializeShaftUpdateFlatbuffer(b), nil
}

func serializePoints(builder *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, points []types.Point3) flatbuffers.UOffsetT {
	start(builder, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		shaftstatefb.CreatePoint(builder, int16(p.X), int16(p.Y), int16(p.Z))
	}
	return builder.EndVector(len(points))
}

func SerializeShaftUpdateFlatbuffer(builder *flatbuffers.Builder, update *ServerShaftUpdate) flatbuffers.UOffsetT {
	elements := serializePoints(builder, shaftstatefb.ShaftUpdateStartElementsVector, update.Elements)
	reference := serializePoints(builder, shaftstatefb.ShaftUpdateStartReferenceVector, update.Reference)
	hint := serializePoints(builder, shaftstatefb.ShaftUpdateStartHintVector, update.Hint)
	next := serializePoints(builder, shaftstatefb.ShaftUpdateStartNextVector, update.Next)
	locked := serializePoints(builder, shaftstatefb.ShaftUpdateStartLockedVector, update.Locked)

	shaftstatefb.ShaftUpdateStartPlaneCountsVector(builder, len(update.PlaneCounts))
	for i := len(update.PlaneCounts) - 1; i >= 0; i-- {
		builder.PrependInt32(int32(update.PlaneCounts[i]))
	}
	planeCounts := builder.EndVector(len(update.PlaneCounts))

	shaftstatefb.ShaftUpdateStart(builder)
	shaftstatefb.ShaftUpdateAddTimestamp(builder, update.Timestamp)
	shaftstatefb.ShaftUpdateAddWidth(builder, byte(update.Width))
	shaftstatefb.ShaftUpdateAddHeight(builder, byte(update.Height))
	shaftstatefb.ShaftUpdateAddDepth(builder, byte(update.Depth))
	shaftstatefb.ShaftUpdateAddLevel(builder, byte(update.Level))
	shaftstatefb.ShaftUpdateAddElementCount(builder, int32(update.ElementCount))
	shaftstatefb.ShaftUpdateAddScore(builder, int32(update.Score))
	shaftstatefb.ShaftUpdateAddHighScore(builder, int32(update.HighScore))
	shaftstatefb.ShaftUpdateAddPieceOffset(builder, shaftstatefb.CreatePoint(builder, int16(update.Offset.X), int16(update.Offset.Y), int16(update.Offset.Z)))
	shaftstatefb.ShaftUpdateAddOrientation(builder, shaftstatefb.CreatePoint(builder, int16(update.Orientation.X), int16(update.Orientation.Y), int16(update.Orientation.Z)))
	shaftstatefb.ShaftUpdateAddElements(builder, elements)
	shaftstatefb.ShaftUpdateAddReference(builder, reference)
	shaftstatefb.ShaftUpdateAddHint(builder, hint)
	shaftstatefb.ShaftUpdateAddNext(builder, next)
	shaftstatefb.ShaftUpdateAddLocked(builder, locked)
	shaftstatefb.ShaftUpdateAddPlaneCounts(builder, planeCounts)
	shaftstatefb.ShaftUpdateAddBonusSecondsLeft(builder, update.BonusSecondsLeft)
	shaftstatefb.ShaftUpdateAddBonusDuration(builder, update.BonusDuration)
	shaftstatefb.ShaftUpdateAddSecondsPlayed(builder, update.SecondsPlayed)
	shaftstatefb.ShaftUpdateAddFreeFall(builder, update.FreeFall)
	shaftstatefb.ShaftUpdateAddPractice(builder, update.Practice)
	shaftstatefb.ShaftUpdateAddAlive(builder, update.Alive)
	shaftstatefb.ShaftUpdateAddPaused(builder, update.Paused)
	return shaftstatefb.ShaftUpdateEnd(builder)
}

func pointFromFlatbuffer(fb *shaftstatefb.Point) types.Point3 {
	if fb == nil {
		return types.Point3{}
	}
	return types.Point3{X: int(fb.X()), Y: int(fb.Y()), Z: int(fb.Z())}
}

func deserializePoints(n int, at func(*shaftstatefb.Point, int) bool) []types.Point3 {
	points := make([]types.Point3, 0, n)
	p := &shaftstatefb.Point{}
	for i := 0; i < n; i++ {
		if at(p, i) {
			points = append(points, pointFromFlatbuffer(p))
		}
	}
	return points
}

func DeserializeShaftUpdateFlatbuffer(b []byte) *ServerShaftUpdate {
	fb := shaftstatefb.GetRootAsShaftUpdate(b, 0)

	planeCounts := make([]int, fb.PlaneCountsLength())
	for i := range planeCounts {
		planeCounts[i] = int(fb.PlaneCounts(i))
	}

	return &ServerShaftUpdate{
		Timestamp:        fb.Timestamp(),
		Width:            int(fb.Width()),
		Height:           int(fb.Height()),
		Depth:            int(fb.Depth()),
		Level:            int(fb.Level()),
		ElementCount:     int(fb.ElementCount()),
		Score:            int(fb.Score()),
		HighScore:        int(fb.HighScore()),
		Offset:           pointFromFlatbuffer(fb.PieceOffset(nil)),
		Orientation:      pointFromFlatbuffer(fb.Orientation(nil)),
		Elements:         deserializePoints(fb.ElementsLength(), fb.Elements),
		Reference:        deserializePoints(fb.ReferenceLength(), fb.Reference),
		Hint:             deserializePoints(fb.HintLength(), fb.Hint),
		Next:             deserializePoints(fb.NextLength(), fb.Next),
		Locked:           deserializePoints(fb.LockedLength(), fb.Locked),
		PlaneCounts:      planeCounts,
		BonusSecondsLeft: fb.BonusSecondsLeft(),
		BonusDuration:    fb.BonusDuration(),
		SecondsPlayed:    fb.SecondsPlayed(),
		FreeFall:         fb.FreeFall(),
		Practice:         fb.Practice(),
		Alive:            fb.Alive(),
		Paused:           fb.Paused(),
	}
}
