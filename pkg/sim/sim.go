// Package sim runs a single game of shaft: the falling piece, its
// validation against the grid, gravity, locking, scoring and levels.
//
// A Model is not safe for concurrent use. It only advances when Update is
// called and never blocks.
package sim

import (
	"fmt"

	"github.com/cbodonnell/shaft/pkg/game/types"
)

// AudioPlayer receives fire and forget sample triggers.
type AudioPlayer interface {
	PlaySample(name string)
}

// ScoreSink accumulates the score of the running game.
type ScoreSink interface {
	// AddToCurrentScore adds score and cubes to the current entry and records
	// secs as the time played when secs is not 0. It returns the amount added.
	AddToCurrentScore(score, cubes, secs int) int
	// Finalize is called once when the game is over.
	Finalize()
}

// Listener is notified about piece events for animation purposes.
type Listener interface {
	NotifyNewBlock()
	NotifyRotation(q types.Quaternion)
}

// Direction is a player move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
	DirUp
	DirOut
	// DirIn arms free fall instead of moving the piece
	DirIn
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirOut:
		return "out"
	case DirIn:
		return "in"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	for d := DirLeft; d <= DirIn; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction: %s", s)
}

func (d Direction) delta() types.Point3 {
	switch d {
	case DirLeft:
		return types.Point3{X: -1}
	case DirRight:
		return types.Point3{X: 1}
	case DirDown:
		return types.Point3{Y: -1}
	case DirUp:
		return types.Point3{Y: 1}
	case DirOut:
		return types.Point3{Z: 1}
	default:
		return types.Point3{}
	}
}

// Rotation is a 90 degree turn given as the rows of an integer rotation
// matrix. Axis is only used to build the quaternion handed to listeners.
type Rotation struct {
	Rows [3]types.Point3
	Axis types.Point3
}

// Apply rotates the local offset p.
func (r Rotation) Apply(p types.Point3) types.Point3 {
	return types.Point3{
		X: p.Dot(r.Rows[0]),
		Y: p.Dot(r.Rows[1]),
		Z: p.Dot(r.Rows[2]),
	}
}

// Quaternion returns the 90 degree turn about Axis.
func (r Rotation) Quaternion() types.Quaternion {
	return types.QuaternionFromAxisAngle(90, r.Axis.Vec3())
}

var (
	px = types.Point3{X: 1}
	mx = types.Point3{X: -1}
	py = types.Point3{Y: 1}
	my = types.Point3{Y: -1}
	pz = types.Point3{Z: 1}
	mz = types.Point3{Z: -1}
)

// The six keyboard rotations, two opposite turns per axis.
var (
	RotateQ = Rotation{Rows: [3]types.Point3{px, mz, py}, Axis: px}
	RotateA = Rotation{Rows: [3]types.Point3{px, pz, my}, Axis: mx}
	RotateW = Rotation{Rows: [3]types.Point3{pz, py, mx}, Axis: py}
	RotateS = Rotation{Rows: [3]types.Point3{mz, py, px}, Axis: my}
	RotateE = Rotation{Rows: [3]types.Point3{my, px, pz}, Axis: pz}
	RotateD = Rotation{Rows: [3]types.Point3{py, mx, pz}, Axis: mz}
)

// Rotations maps rotation names as sent by clients to their matrices.
var Rotations = map[string]Rotation{
	"q": RotateQ,
	"a": RotateA,
	"w": RotateW,
	"s": RotateS,
	"e": RotateE,
	"d": RotateD,
}
