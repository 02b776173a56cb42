package sim

import (
	"github.com/cbodonnell/shaft/pkg/game/types"
)

func (m *Model) Width() int {
	return m.width
}

func (m *Model) Height() int {
	return m.height
}

func (m *Model) Depth() int {
	return m.depth
}

func (m *Model) Level() int {
	return m.level
}

// ElementCount is the number of elements locked this game.
func (m *Model) ElementCount() int {
	return m.elementCount
}

// DropDelay is the gravity delay of the current level.
func (m *Model) DropDelay() float64 {
	return m.dropDelay
}

func (m *Model) Alive() bool {
	return m.alive
}

func (m *Model) PracticeMode() bool {
	return m.practice
}

func (m *Model) FreeFall() bool {
	return m.freeFall
}

// Offset is the position of the piece origin in the shaft.
func (m *Model) Offset() types.Point3 {
	return m.offset
}

// Orientation tracks where the piece's original +z axis points.
func (m *Model) Orientation() types.Point3 {
	return m.orientation
}

// Elements returns the absolute positions of the current piece.
func (m *Model) Elements() []types.Point3 {
	out := make([]types.Point3, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.Add(m.offset)
	}
	return out
}

// LocalElements returns the rotated offsets of the current piece.
func (m *Model) LocalElements() []types.Point3 {
	return types.CopyPoints(m.elements)
}

// ReferenceElements returns the offsets of the piece as spawned. They do not
// change when the piece rotates.
func (m *Model) ReferenceElements() []types.Point3 {
	return types.CopyPoints(m.reference)
}

// HintElements returns the absolute landing positions of the current piece.
func (m *Model) HintElements() []types.Point3 {
	return types.CopyPoints(m.hint)
}

// NextElements returns the offsets of the piece that spawns next.
func (m *Model) NextElements() []types.Point3 {
	return types.CopyPoints(m.catalog[m.next].Elements)
}

// Locked returns the locked elements of the shaft.
func (m *Model) Locked() []types.Point3 {
	return m.grid.Locked()
}

// PlaneCounts returns the number of locked elements per plane, floor first.
func (m *Model) PlaneCounts() []int {
	return m.grid.PlaneCounts()
}

// Snapshot is a copy of everything a renderer or a remote client needs.
type Snapshot struct {
	Width        int
	Height       int
	Depth        int
	Level        int
	ElementCount int

	Offset      types.Point3
	Orientation types.Point3
	Multiplier  int
	Center      types.Vec3
	FreeFall    bool

	Elements  []types.Point3
	Reference []types.Point3
	Hint      []types.Point3
	Next      []types.Point3

	Locked      []types.Point3
	PlaneCounts []int

	BonusSecondsLeft float64
	BonusDuration    float64
	Practice         bool
	Alive            bool
}

// Snapshot copies the current state of the game.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Width:            m.width,
		Height:           m.height,
		Depth:            m.depth,
		Level:            m.level,
		ElementCount:     m.elementCount,
		Offset:           m.offset,
		Orientation:      m.orientation,
		Multiplier:       m.multiplier,
		Center:           m.catalog[m.current].Center,
		FreeFall:         m.freeFall,
		Elements:         m.Elements(),
		Reference:        m.ReferenceElements(),
		Hint:             m.HintElements(),
		Next:             m.NextElements(),
		Locked:           m.Locked(),
		PlaneCounts:      m.PlaneCounts(),
		BonusSecondsLeft: m.BonusSecondsLeft(),
		BonusDuration:    m.BonusDuration(),
		Practice:         m.practice,
		Alive:            m.alive,
	}
}
