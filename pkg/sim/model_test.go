package sim

import (
	"math"
	"math/rand"
	"testing"

	mocks "github.com/cbodonnell/shaft/mocks/github.com/cbodonnell/shaft/pkg/sim"
	"github.com/cbodonnell/shaft/pkg/blocks"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constRand always picks the same index.
type constRand int

func (c constRand) Intn(n int) int {
	return int(c) % n
}

// scoreRecorder is a ScoreSink that keeps every call.
type scoreRecorder struct {
	adds      [][3]int
	finalized int
}

func (r *scoreRecorder) AddToCurrentScore(score, cubes, secs int) int {
	r.adds = append(r.adds, [3]int{score, cubes, secs})
	return score
}

func (r *scoreRecorder) Finalize() {
	r.finalized++
}

func shape(t *testing.T, elements ...types.Point3) blocks.Shape {
	t.Helper()
	s, err := blocks.NewShape(elements)
	require.NoError(t, err)
	return s
}

func cube(t *testing.T) blocks.Shape {
	return shape(t, types.Point3{})
}

func tromino(t *testing.T) blocks.Shape {
	return shape(t, types.Point3{X: -1}, types.Point3{}, types.Point3{X: 1})
}

func tripod(t *testing.T) blocks.Shape {
	return shape(t, types.Point3{}, types.Point3{X: 1}, types.Point3{Y: 1}, types.Point3{Z: 1})
}

func newModel(t *testing.T, opts NewModelOptions) *Model {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = constRand(0)
	}
	if opts.Level == 0 {
		opts.Level = 1
	}
	m, err := NewModel(opts)
	require.NoError(t, err)
	return m
}

func disableBonus(m *Model) {
	m.nextBonus = math.MaxFloat64
}

func assertRigidHint(t *testing.T, m *Model) {
	t.Helper()
	elements := m.Elements()
	hint := m.HintElements()
	require.Len(t, hint, len(elements))

	drop := elements[0].Z - hint[0].Z
	assert.GreaterOrEqual(t, drop, 0)
	for i := range elements {
		assert.Equal(t, elements[i].X, hint[i].X)
		assert.Equal(t, elements[i].Y, hint[i].Y)
		assert.Equal(t, drop, elements[i].Z-hint[i].Z, "hint must keep the piece shape")
		assert.GreaterOrEqual(t, hint[i].Z, 0)
		assert.False(t, m.grid.IsOccupied(hint[i]))
	}

	// one plane lower the piece would collide
	blocked := false
	for _, h := range hint {
		h.Z--
		if h.Z < 0 || m.grid.IsOccupied(h) {
			blocked = true
		}
	}
	assert.True(t, blocked, "hint must be the lowest position")
}

func TestNewModel(t *testing.T) {
	listener := mocks.NewListener(t)
	listener.EXPECT().NotifyNewBlock().Once()

	m := newModel(t, NewModelOptions{
		Width:    5,
		Height:   5,
		Depth:    12,
		Catalog:  []blocks.Shape{tromino(t)},
		Listener: listener,
	})

	assert.True(t, m.Alive())
	assert.Equal(t, 1, m.Level())
	assert.Equal(t, 6.0, m.DropDelay())
	assert.Equal(t, types.Point3{X: 2, Y: 2, Z: 11}, m.Offset())
	assert.Equal(t, types.Point3{Z: 1}, m.Orientation())
	assert.Equal(t, []types.Point3{{X: 1, Y: 2, Z: 11}, {X: 2, Y: 2, Z: 11}, {X: 3, Y: 2, Z: 11}}, m.Elements())
	assert.Equal(t, tromino(t).Elements, m.ReferenceElements())
	assert.Equal(t, tromino(t).Elements, m.NextElements())
	assertRigidHint(t, m)
	for _, h := range m.HintElements() {
		assert.Equal(t, 0, h.Z)
	}
}

func TestNewModelErrors(t *testing.T) {
	_, err := NewModel(NewModelOptions{Width: 5, Height: 5, Depth: 12, Rand: constRand(0)})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewModel(NewModelOptions{Width: 0, Height: 5, Depth: 12, Rand: constRand(0), Catalog: []blocks.Shape{cube(t)}})
	assert.Error(t, err)

	_, err = NewModel(NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
	assert.Error(t, err)
}

func TestModel_SingleCubeLocksOnFloor(t *testing.T) {
	scores := mocks.NewScoreSink(t)
	audio := mocks.NewAudioPlayer(t)
	listener := mocks.NewListener(t)
	listener.EXPECT().NotifyNewBlock().Twice()

	m := newModel(t, NewModelOptions{
		Width:    5,
		Height:   5,
		Depth:    12,
		Catalog:  []blocks.Shape{cube(t)},
		Scores:   scores,
		Audio:    audio,
		Listener: listener,
	})
	disableBonus(m)

	now := 0.0
	for m.CanDrop() {
		now += m.DropDelay()
		require.True(t, m.Update(now))
	}
	assert.Equal(t, types.Point3{X: 2, Y: 2, Z: 0}, m.Offset())
	assert.Empty(t, m.Locked())

	now += m.DropDelay()
	scores.EXPECT().AddToCurrentScore(2, 1, int(now)).Return(2).Once()
	audio.EXPECT().PlaySample(constants.SampleLock).Once()
	require.True(t, m.Update(now))

	assert.Equal(t, []types.Point3{{X: 2, Y: 2, Z: 0}}, m.Locked())
	assert.Equal(t, 1, m.PlaneCounts()[0])
	assert.Equal(t, 1, m.ElementCount())
	assert.Equal(t, types.Point3{X: 2, Y: 2, Z: 11}, m.Offset(), "next piece spawns at the top")
	assert.True(t, m.Alive())
}

func TestModel_GravityWaitsForDropDelay(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
	disableBonus(m)

	require.True(t, m.Update(5.9))
	assert.Equal(t, 11, m.Offset().Z)
	require.True(t, m.Update(6.0))
	assert.Equal(t, 10, m.Offset().Z)
	require.True(t, m.Update(6.1))
	assert.Equal(t, 10, m.Offset().Z)
	require.True(t, m.Update(12.0))
	assert.Equal(t, 9, m.Offset().Z)
}

func TestModel_AttemptMove(t *testing.T) {
	tests := []struct {
		name       string
		dir        Direction
		want       bool
		wantOffset types.Point3
	}{
		{name: "left", dir: DirLeft, want: true, wantOffset: types.Point3{X: 1, Y: 2, Z: 11}},
		{name: "right", dir: DirRight, want: true, wantOffset: types.Point3{X: 3, Y: 2, Z: 11}},
		{name: "down", dir: DirDown, want: true, wantOffset: types.Point3{X: 2, Y: 1, Z: 11}},
		{name: "up", dir: DirUp, want: true, wantOffset: types.Point3{X: 2, Y: 3, Z: 11}},
		{name: "out", dir: DirOut, want: true, wantOffset: types.Point3{X: 2, Y: 2, Z: 12}},
		{name: "in arms free fall", dir: DirIn, want: true, wantOffset: types.Point3{X: 2, Y: 2, Z: 11}},
		{name: "unknown", dir: Direction(42), want: false, wantOffset: types.Point3{X: 2, Y: 2, Z: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
			assert.Equal(t, tt.want, m.AttemptMove(tt.dir))
			assert.Equal(t, tt.wantOffset, m.Offset())
			assert.Equal(t, tt.dir == DirIn, m.FreeFall())
			assertRigidHint(t, m)
		})
	}
}

func TestModel_MoveAgainstWall(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{tromino(t)}})

	assert.True(t, m.AttemptMove(DirLeft))
	assert.Equal(t, 1, m.Offset().X, "tromino is flush against x=0")

	before := m.Offset()
	assert.False(t, m.AttemptMove(DirLeft))
	assert.Equal(t, before, m.Offset())
	assert.Equal(t, 0, m.Elements()[0].X)

	for m.AttemptMove(DirDown) {
	}
	assert.Equal(t, 0, m.Offset().Y)
	assert.False(t, m.AttemptMove(DirDown))
	assert.Equal(t, 0, m.Offset().Y)
}

func TestModel_MoveIntoLockedCell(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
	require.NoError(t, m.grid.Lock(types.Point3{X: 3, Y: 2, Z: 11}))

	before := m.Offset()
	assert.False(t, m.AttemptMove(DirRight))
	assert.Equal(t, before, m.Offset())
}

func TestModel_RotateFourTimesIsIdentity(t *testing.T) {
	for name, rot := range Rotations {
		t.Run(name, func(t *testing.T) {
			listener := mocks.NewListener(t)
			listener.EXPECT().NotifyNewBlock().Once()
			listener.EXPECT().NotifyRotation(rot.Quaternion()).Times(4)

			m := newModel(t, NewModelOptions{
				Width:    7,
				Height:   7,
				Depth:    12,
				Catalog:  []blocks.Shape{tripod(t)},
				Listener: listener,
			})
			original := m.LocalElements()
			offset := m.Offset()

			for i := 0; i < 4; i++ {
				require.True(t, m.AttemptRotate(rot))
				assertRigidHint(t, m)
				if i < 3 {
					assert.NotEqual(t, original, m.LocalElements())
				}
			}

			assert.Equal(t, original, m.LocalElements())
			assert.Equal(t, offset, m.Offset())
			assert.Equal(t, types.Point3{Z: 1}, m.Orientation())
			assert.Equal(t, original, m.ReferenceElements(), "rotation never touches the reference view")
		})
	}
}

func TestRotationsTurnNinetyDegrees(t *testing.T) {
	for name, rot := range Rotations {
		t.Run(name, func(t *testing.T) {
			// the turn leaves its axis in place
			assert.Equal(t, rot.Axis, rot.Apply(rot.Axis))

			q := rot.Quaternion()
			for _, p := range []types.Point3{px, py, pz} {
				want := rot.Apply(p).Vec3()
				got := q.Rotate(p.Vec3())
				assert.InDelta(t, want.X, got.X, 1e-5)
				assert.InDelta(t, want.Y, got.Y, 1e-5)
				assert.InDelta(t, want.Z, got.Z, 1e-5)
			}
		})
	}
}

func TestModel_RotateKicksOffWall(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{tromino(t)}})

	// stand the tromino along y and push it against x=0
	require.True(t, m.AttemptRotate(RotateE))
	for m.AttemptMove(DirLeft) {
	}
	require.Equal(t, 0, m.Offset().X)

	require.True(t, m.AttemptRotate(RotateD))
	assert.Equal(t, 1, m.Offset().X)
	for _, e := range m.Elements() {
		assert.GreaterOrEqual(t, e.X, 0)
	}
}

func TestModel_RotateBlocked(t *testing.T) {
	listener := mocks.NewListener(t)
	listener.EXPECT().NotifyNewBlock().Once()

	m := newModel(t, NewModelOptions{
		Width:    5,
		Height:   5,
		Depth:    12,
		Catalog:  []blocks.Shape{tromino(t)},
		Listener: listener,
	})
	require.NoError(t, m.grid.Lock(types.Point3{X: 2, Y: 3, Z: 11}))
	before := m.LocalElements()
	offset := m.Offset()

	assert.False(t, m.AttemptRotate(RotateE))
	assert.Equal(t, before, m.LocalElements())
	assert.Equal(t, offset, m.Offset())
	assert.Equal(t, types.Point3{Z: 1}, m.Orientation())
}

func TestModel_RotateBelowFloor(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{tromino(t)}})
	m.offset.Z = 0
	before := m.LocalElements()

	assert.False(t, m.AttemptRotate(RotateW))
	assert.Equal(t, before, m.LocalElements())
	assert.Equal(t, 0, m.Offset().Z)
}

func TestVerifyAndAdjustRejectsUnresolvableNudge(t *testing.T) {
	// a shape wider than the shaft cannot be kicked back inside
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
	m.elements = []types.Point3{{X: -3}, {X: 3}}
	m.scratch = make([]types.Point3, 2)
	m.hint = make([]types.Point3, 2)
	before := m.Offset()

	assert.False(t, m.verifyAndAdjust())
	assert.Equal(t, before, m.Offset())
}

func TestModel_Hint(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{tripod(t)}})
	// uneven floor under the piece
	require.NoError(t, m.grid.Lock(types.Point3{X: 3, Y: 2, Z: 0}))
	require.NoError(t, m.grid.Lock(types.Point3{X: 3, Y: 2, Z: 1}))
	require.NoError(t, m.grid.Lock(types.Point3{X: 2, Y: 3, Z: 0}))
	m.updateHintList()

	assertRigidHint(t, m)
	// the x=3 column is two high, the tripod rests on it
	assert.Contains(t, m.HintElements(), types.Point3{X: 3, Y: 2, Z: 2})
}

func TestModel_FreeFall(t *testing.T) {
	scores := &scoreRecorder{}
	m := newModel(t, NewModelOptions{Width: 3, Height: 3, Depth: 4, Catalog: []blocks.Shape{cube(t)}, Scores: scores})
	disableBonus(m)

	require.True(t, m.AttemptMove(DirIn))
	assert.True(t, m.AttemptMove(DirIn), "arming twice is harmless")

	now := 0.0
	for i := 0; i < 3; i++ {
		now += constants.GameStepSize
		require.True(t, m.Update(now))
		assert.Equal(t, 2-i, m.Offset().Z)
	}
	assert.True(t, m.FreeFall())

	// landing ends free fall, the lock waits for the free fall delay
	now += constants.GameStepSize
	require.True(t, m.Update(now))
	assert.False(t, m.FreeFall())
	assert.Empty(t, m.Locked())

	now += constants.FreeFallDelay
	require.True(t, m.Update(now))
	assert.Equal(t, []types.Point3{{X: 1, Y: 1, Z: 0}}, m.Locked())
	require.Len(t, scores.adds, 1)
	// (1 element + multiplier 1 + 3 planes / 2) * level 1
	assert.Equal(t, [3]int{3, 1, int(now)}, scores.adds[0])
}

// dropAt moves the current cube over (x, y) and drops it.
func dropAt(t *testing.T, m *Model, now *float64, x, y int) {
	t.Helper()
	for m.Offset().X > x && m.AttemptMove(DirLeft) {
	}
	for m.Offset().X < x && m.AttemptMove(DirRight) {
	}
	for m.Offset().Y > y && m.AttemptMove(DirDown) {
	}
	for m.Offset().Y < y && m.AttemptMove(DirUp) {
	}
	require.Equal(t, x, m.Offset().X)
	require.Equal(t, y, m.Offset().Y)

	locked := m.ElementCount()
	require.True(t, m.AttemptMove(DirIn))
	for i := 0; m.ElementCount() == locked; i++ {
		require.Less(t, i, 100, "cube never locked")
		*now += constants.FreeFallDelay
		require.True(t, m.Update(*now))
	}
}

func TestModel_ClearBottomPlane(t *testing.T) {
	scores := &scoreRecorder{}
	audio := mocks.NewAudioPlayer(t)
	audio.EXPECT().PlaySample(constants.SampleLock).Times(10)
	audio.EXPECT().PlaySample(constants.SampleClearSingle).Once()

	m := newModel(t, NewModelOptions{
		Width:   3,
		Height:  3,
		Depth:   4,
		Catalog: []blocks.Shape{cube(t)},
		Scores:  scores,
		Audio:   audio,
	})
	disableBonus(m)

	now := 0.0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 2 {
				continue
			}
			dropAt(t, m, &now, x, y)
		}
	}
	dropAt(t, m, &now, 0, 0)
	assert.Equal(t, []int{8, 1, 0, 0}, m.PlaneCounts())

	dropAt(t, m, &now, 2, 2)

	assert.Equal(t, []int{1, 0, 0, 0}, m.PlaneCounts())
	assert.Equal(t, []types.Point3{{X: 0, Y: 0, Z: 0}}, m.Locked())
	last := scores.adds[len(scores.adds)-1]
	assert.Equal(t, [3]int{50, 0, 0}, last, "1 plane * 1 plane * level 1 * 50")
	assert.Equal(t, 0, scores.finalized)
}

// column returns an upright piece of n elements hanging below its offset.
func column(t *testing.T, n int) blocks.Shape {
	elements := make([]types.Point3, n)
	for i := range elements {
		elements[i].Z = -i
	}
	return shape(t, elements...)
}

func TestModel_ClearManyPlanes(t *testing.T) {
	tests := []struct {
		name   string
		planes int
		level  int
		bonus  bool
		at     float64
		cue    string
		lock   [3]int
		clear  int
	}{
		{name: "double", planes: 2, level: 1, at: 6, cue: constants.SampleClearDouble, lock: [3]int{4, 2, 6}, clear: 200},
		{name: "triple", planes: 3, level: 1, at: 6, cue: constants.SampleClearTriple, lock: [3]int{6, 3, 6}, clear: 450},
		{name: "quad at level 2", planes: 4, level: 2, at: 6, cue: constants.SampleClearQuad, lock: [3]int{16, 4, 6}, clear: 1600},
		{name: "five", planes: 5, level: 1, at: 6, cue: constants.SampleClearMany, lock: [3]int{10, 5, 6}, clear: 1250},
		{name: "six", planes: 6, level: 1, at: 6, cue: constants.SampleClearMany, lock: [3]int{12, 6, 6}, clear: 1800},
		{name: "double inside bonus window", planes: 2, level: 1, bonus: true, at: 1, cue: constants.SampleClearDouble, lock: [3]int{8, 2, 1}, clear: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := &scoreRecorder{}
			audio := mocks.NewAudioPlayer(t)
			audio.EXPECT().PlaySample(constants.SampleLock).Once()
			audio.EXPECT().PlaySample(tt.cue).Once()
			if tt.bonus {
				audio.EXPECT().PlaySample(constants.SampleBonus).Once()
			}

			// a 2x1 shaft: the left cells are filled, the column drops into the right ones
			m := newModel(t, NewModelOptions{
				Width:   2,
				Height:  1,
				Depth:   10,
				Level:   tt.level,
				Catalog: []blocks.Shape{column(t, tt.planes)},
				Scores:  scores,
				Audio:   audio,
			})
			if !tt.bonus {
				disableBonus(m)
			}
			for z := 0; z < tt.planes; z++ {
				require.NoError(t, m.grid.Lock(types.Point3{Z: z}))
			}
			require.Equal(t, 1, m.Offset().X)
			m.offset.Z = tt.planes - 1
			m.nextDrop = tt.at

			require.True(t, m.Update(tt.at))

			assert.Empty(t, m.Locked())
			require.Len(t, scores.adds, 2)
			assert.Equal(t, tt.lock, scores.adds[0])
			assert.Equal(t, [3]int{tt.clear, 0, 0}, scores.adds[1], "planes * planes * level * 50, doubled in a bonus window")
			assert.Equal(t, 0, scores.finalized)
			assert.True(t, m.Alive())
		})
	}
}

func TestModel_FirstPieceDoesNotFit(t *testing.T) {
	scores := mocks.NewScoreSink(t)
	scores.EXPECT().AddToCurrentScore(0, 0, 0).Return(0).Once()
	scores.EXPECT().Finalize().Once()

	m := newModel(t, NewModelOptions{Width: 2, Height: 2, Depth: 5, Catalog: []blocks.Shape{tromino(t)}, Scores: scores})

	assert.False(t, m.Alive())
	assert.False(t, m.Update(6))
}

func TestModel_GameOverWhenSpawnBlocked(t *testing.T) {
	scores := mocks.NewScoreSink(t)
	scores.EXPECT().AddToCurrentScore(2, 1, 6).Return(2).Once()
	scores.EXPECT().AddToCurrentScore(0, 0, 6).Return(0).Once()
	scores.EXPECT().Finalize().Once()

	m := newModel(t, NewModelOptions{Width: 3, Height: 3, Depth: 1, Catalog: []blocks.Shape{cube(t)}, Scores: scores})
	disableBonus(m)

	assert.False(t, m.Update(6))
	assert.False(t, m.Alive())
	assert.False(t, m.Update(12), "a finished game stays finished")
	assert.False(t, m.AttemptMove(DirLeft))
	assert.False(t, m.AttemptRotate(RotateQ))
}

func TestModel_GameOverOnLockConflict(t *testing.T) {
	scores := mocks.NewScoreSink(t)
	scores.EXPECT().AddToCurrentScore(0, 0, 6).Return(0).Once()
	scores.EXPECT().Finalize().Once()

	m := newModel(t, NewModelOptions{Width: 3, Height: 3, Depth: 2, Catalog: []blocks.Shape{cube(t)}, Scores: scores})
	disableBonus(m)
	m.offset.Z = 0
	// corrupt the grid under the piece
	require.NoError(t, m.grid.Lock(types.Point3{X: 1, Y: 1, Z: 0}))

	assert.False(t, m.Update(6))
	assert.False(t, m.Alive())
}

func TestModel_LevelUp(t *testing.T) {
	scores := &scoreRecorder{}
	audio := mocks.NewAudioPlayer(t)
	audio.EXPECT().PlaySample(constants.SampleLevelUp).Once()
	audio.EXPECT().PlaySample(constants.SampleLock).Once()

	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}, Scores: scores, Audio: audio})
	disableBonus(m)
	m.elementCount = constants.ElementsPerLevel
	m.offset.Z = 0

	require.True(t, m.Update(6))

	assert.Equal(t, 2, m.Level())
	assert.Equal(t, constants.DropDelays[2], m.DropDelay())
	assert.Equal(t, constants.ElementsPerLevel+1, m.ElementCount())
	require.Len(t, scores.adds, 1)
	assert.Equal(t, [3]int{4, 1, 6}, scores.adds[0], "scored at the new level")
}

func TestModel_LevelIsCapped(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Level: 20, Catalog: []blocks.Shape{cube(t)}})
	disableBonus(m)
	assert.Equal(t, constants.MaxLevel, m.Level())

	m.elementCount = 100 * constants.ElementsPerLevel
	m.offset.Z = 0
	require.True(t, m.Update(1))
	assert.Equal(t, constants.MaxLevel, m.Level())
}

func TestModel_Bonus(t *testing.T) {
	audio := mocks.NewAudioPlayer(t)
	audio.EXPECT().PlaySample(constants.SampleBonus).Twice()

	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}, Audio: audio})
	duration := 25 * 20.0 / 12.0
	assert.InDelta(t, duration, m.BonusDuration(), 1e-9)
	assert.Equal(t, 0.0, m.BonusSecondsLeft())

	// the first window opens at the start of the game
	require.True(t, m.Update(0.1))
	assert.InDelta(t, duration-0.1, m.BonusSecondsLeft(), 1e-9)
	assert.Equal(t, 2, m.scoreMultiplier())

	// the cue does not repeat inside the same window
	require.True(t, m.Update(0.5))
	require.True(t, m.Update(0.8))
	assert.InDelta(t, 60.8, m.nextBonus, 1e-9)

	require.True(t, m.Update(30))
	assert.Equal(t, 2, m.scoreMultiplier())
	require.True(t, m.Update(45))
	assert.Equal(t, 1, m.scoreMultiplier())
	assert.Equal(t, 0.0, m.BonusSecondsLeft())

	require.True(t, m.Update(61))
	assert.Equal(t, 2, m.scoreMultiplier())
	assert.InDelta(t, 60.8+duration-61, m.BonusSecondsLeft(), 1e-9)
}

func TestModel_BonusDoublesScore(t *testing.T) {
	scores := mocks.NewScoreSink(t)
	scores.EXPECT().AddToCurrentScore(4, 1, 6).Return(4).Once()
	scores.EXPECT().AddToCurrentScore(0, 0, 6).Return(0).Once()
	scores.EXPECT().Finalize().Once()

	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 1, Catalog: []blocks.Shape{cube(t)}, Scores: scores})

	// the cube locks at once and the next one has no room
	assert.False(t, m.Update(6))
}

func TestModel_PracticeMode(t *testing.T) {
	// any score call fails the test
	scores := mocks.NewScoreSink(t)

	m := newModel(t, NewModelOptions{
		Width:    3,
		Height:   3,
		Depth:    4,
		Catalog:  []blocks.Shape{cube(t)},
		Scores:   scores,
		Practice: true,
	})
	disableBonus(m)
	assert.True(t, m.PracticeMode())

	require.True(t, m.Update(1000))
	assert.Equal(t, 3, m.Offset().Z, "no gravity in practice mode")

	require.True(t, m.AttemptMove(DirIn))
	now := 1000.0
	for m.FreeFall() {
		now += constants.GameStepSize
		require.True(t, m.Update(now))
	}
	assert.Empty(t, m.Locked())

	now += constants.FreeFallDelay
	require.True(t, m.Update(now))
	assert.Len(t, m.Locked(), 1)

	require.True(t, m.Update(now+1000))
	assert.Equal(t, 3, m.Offset().Z)

	// leaving practice mode brings gravity back
	m.SetPracticeMode(false)
	assert.False(t, m.PracticeMode())
	require.True(t, m.Update(now+1000+m.DropDelay()))
	assert.Equal(t, 2, m.Offset().Z)
}

func TestModel_Reset(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{cube(t)}})
	disableBonus(m)
	m.offset.Z = 0
	require.True(t, m.Update(6))
	require.Len(t, m.Locked(), 1)

	require.NoError(t, m.Reset(ResetOptions{Width: 4, Height: 3, Depth: 8, Level: 3, Catalog: []blocks.Shape{tromino(t)}}, 100))

	assert.Empty(t, m.Locked())
	assert.Equal(t, 0, m.ElementCount())
	assert.Equal(t, 3, m.Level())
	assert.Equal(t, constants.DropDelays[3], m.DropDelay())
	assert.Equal(t, types.Point3{X: 2, Y: 1, Z: 7}, m.Offset())
	assert.True(t, m.Alive())

	assert.ErrorIs(t, m.Reset(ResetOptions{Width: 4, Height: 3, Depth: 8}, 0), ErrEmptyCatalog)
}

func TestModel_Snapshot(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 5, Height: 5, Depth: 12, Catalog: []blocks.Shape{tripod(t)}})

	s := m.Snapshot()
	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 5, s.Height)
	assert.Equal(t, 12, s.Depth)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 8, s.Multiplier)
	assert.Equal(t, types.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, s.Center)
	assert.Equal(t, m.Elements(), s.Elements)
	assert.Equal(t, m.HintElements(), s.Hint)
	assert.Equal(t, tripod(t).Elements, s.Next)
	assert.Equal(t, make([]int, 12), s.PlaneCounts)
	assert.True(t, s.Alive)
	assert.False(t, s.Practice)

	// the snapshot does not alias model state
	s.Elements[0].X = 99
	assert.NotEqual(t, 99, m.Elements()[0].X)
}

func TestModel_Invariants(t *testing.T) {
	bs, err := blocks.LoadBuiltin("Shaaft")
	require.NoError(t, err)
	catalog, err := bs.Catalog(5, 5, 12)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	m := newModel(t, NewModelOptions{
		Width:   5,
		Height:  5,
		Depth:   12,
		Catalog: catalog,
		Rand:    rand.New(rand.NewSource(1)),
		Scores:  &scoreRecorder{},
	})

	rotations := []Rotation{RotateQ, RotateA, RotateW, RotateS, RotateE, RotateD}
	now := 0.0
	for step := 0; step < 5000 && m.Alive(); step++ {
		switch rng.Intn(4) {
		case 0:
			m.AttemptMove(Direction(rng.Intn(int(DirIn) + 1)))
		case 1:
			m.AttemptRotate(rotations[rng.Intn(len(rotations))])
		default:
			now += 0.25
			m.Update(now)
		}
		if !m.Alive() {
			break
		}

		for _, e := range m.Elements() {
			require.GreaterOrEqual(t, e.Z, 0)
			require.True(t, m.inPlane(e), "element %s outside the shaft", e)
			require.False(t, m.grid.IsOccupied(e), "element %s overlaps the grid", e)
		}
		assertRigidHint(t, m)

		total := 0
		for _, c := range m.PlaneCounts() {
			total += c
		}
		require.Equal(t, len(m.Locked()), total)
	}
}

func TestParseDirection(t *testing.T) {
	for d := DirLeft; d <= DirIn; d++ {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestNilCollaborators(t *testing.T) {
	m := newModel(t, NewModelOptions{Width: 3, Height: 3, Depth: 1, Catalog: []blocks.Shape{cube(t)}})
	assert.NotPanics(t, func() {
		m.AttemptRotate(RotateE)
		m.Update(0.5)
		m.Update(6)
	})
	assert.False(t, m.Alive())
}
