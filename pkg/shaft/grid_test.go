package shaft

import (
	"sort"
	"testing"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillPlane(t *testing.T, g *Grid, z int) {
	t.Helper()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			require.NoError(t, g.Lock(types.Point3{X: x, Y: y, Z: z}))
		}
	}
}

func sortedPoints(points []types.Point3) []types.Point3 {
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return points
}

// assertConsistent checks that the locked list, the occupancy map and the
// per-plane counts describe the same set of cells.
func assertConsistent(t *testing.T, g *Grid) {
	t.Helper()
	counts := make([]int, g.Depth())
	seen := map[types.Point3]bool{}
	for _, p := range g.Locked() {
		assert.True(t, g.IsOccupied(p), "locked element %s not occupied", p)
		assert.False(t, seen[p], "duplicate locked element %s", p)
		seen[p] = true
		counts[p.Z]++
	}
	occupied := 0
	for z := 0; z < g.Depth(); z++ {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.IsOccupied(types.Point3{X: x, Y: y, Z: z}) {
					occupied++
				}
			}
		}
	}
	assert.Equal(t, occupied, len(seen))
	assert.Equal(t, counts, g.PlaneCounts())
}

func TestGrid_IsOccupied(t *testing.T) {
	g := NewGrid(3, 3, 4)
	require.NoError(t, g.Lock(types.Point3{X: 1, Y: 2, Z: 0}))

	tests := []struct {
		name string
		p    types.Point3
		want bool
	}{
		{name: "locked cell", p: types.Point3{X: 1, Y: 2, Z: 0}, want: true},
		{name: "free cell", p: types.Point3{X: 0, Y: 0, Z: 0}, want: false},
		{name: "above the shaft", p: types.Point3{X: 1, Y: 2, Z: 4}, want: false},
		{name: "far above the shaft", p: types.Point3{X: 1, Y: 2, Z: 40}, want: false},
		{name: "below the floor", p: types.Point3{X: 1, Y: 2, Z: -1}, want: false},
		{name: "beside the wall", p: types.Point3{X: 3, Y: 0, Z: 0}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsOccupied(tt.p))
		})
	}
}

func TestGrid_Lock(t *testing.T) {
	tests := []struct {
		name    string
		p       types.Point3
		wantErr error
	}{
		{name: "inside", p: types.Point3{X: 0, Y: 0, Z: 0}},
		{name: "top plane", p: types.Point3{X: 2, Y: 2, Z: 3}},
		{name: "above the shaft", p: types.Point3{X: 0, Y: 0, Z: 4}, wantErr: ErrOutOfBounds},
		{name: "below the floor", p: types.Point3{X: 0, Y: 0, Z: -1}, wantErr: ErrOutOfBounds},
		{name: "outside x", p: types.Point3{X: -1, Y: 0, Z: 0}, wantErr: ErrOutOfBounds},
		{name: "outside y", p: types.Point3{X: 0, Y: 3, Z: 0}, wantErr: ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(3, 3, 4)
			err := g.Lock(tt.p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, g.NumLocked())
				return
			}
			require.NoError(t, err)
			assert.True(t, g.IsOccupied(tt.p))
			assert.Equal(t, 1, g.LockCount(tt.p.Z))
			assert.Equal(t, []types.Point3{tt.p}, g.Locked())
		})
	}
}

func TestGrid_LockTwice(t *testing.T) {
	g := NewGrid(3, 3, 4)
	p := types.Point3{X: 1, Y: 1, Z: 1}
	require.NoError(t, g.Lock(p))

	err := g.Lock(p)
	assert.ErrorIs(t, err, ErrAlreadyLocked)
	assert.Equal(t, 1, g.LockCount(1))
	assert.Equal(t, 1, g.NumLocked())
	assertConsistent(t, g)
}

func TestGrid_LockCountOutOfRange(t *testing.T) {
	g := NewGrid(2, 2, 2)
	assert.Equal(t, 0, g.LockCount(-1))
	assert.Equal(t, 0, g.LockCount(2))
}

func TestGrid_ClearFullPlanes_BottomPlane(t *testing.T) {
	g := NewGrid(5, 5, 12)
	fillPlane(t, g, 0)
	above := []types.Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 3, Y: 4, Z: 1},
		{X: 2, Y: 2, Z: 2},
	}
	for _, p := range above {
		require.NoError(t, g.Lock(p))
	}

	cleared := g.ClearFullPlanes()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 2, g.LockCount(0))
	assert.Equal(t, 1, g.LockCount(1))
	assert.Equal(t, 0, g.LockCount(2))
	want := []types.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 4, Z: 0},
		{X: 2, Y: 2, Z: 1},
	}
	assert.Equal(t, sortedPoints(want), sortedPoints(g.Locked()))
	assertConsistent(t, g)
}

func TestGrid_ClearFullPlanes_OnlyFloor(t *testing.T) {
	g := NewGrid(5, 5, 12)
	fillPlane(t, g, 0)

	assert.Equal(t, 1, g.ClearFullPlanes())
	assert.Equal(t, 0, g.LockCount(0))
	assert.Empty(t, g.Locked())
	assert.False(t, g.IsOccupied(types.Point3{X: 0, Y: 0, Z: 0}))
	assertConsistent(t, g)
}

func TestGrid_ClearFullPlanes_Cascade(t *testing.T) {
	g := NewGrid(2, 2, 6)
	// plane 0 full, plane 1 partial, planes 2 and 3 full, plane 4 partial
	fillPlane(t, g, 0)
	require.NoError(t, g.Lock(types.Point3{X: 1, Y: 1, Z: 1}))
	fillPlane(t, g, 2)
	fillPlane(t, g, 3)
	require.NoError(t, g.Lock(types.Point3{X: 0, Y: 1, Z: 4}))

	cleared := g.ClearFullPlanes()

	assert.Equal(t, 3, cleared)
	want := []types.Point3{
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 1},
	}
	assert.Equal(t, sortedPoints(want), sortedPoints(g.Locked()))
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0}, g.PlaneCounts())
	assertConsistent(t, g)
}

func TestGrid_ClearFullPlanes_StopsAtEmptyPlane(t *testing.T) {
	g := NewGrid(2, 2, 4)
	require.NoError(t, g.Lock(types.Point3{X: 0, Y: 0, Z: 0}))
	// a full plane floating above an empty one is never reached
	fillPlane(t, g, 2)

	assert.Equal(t, 0, g.ClearFullPlanes())
	assert.Equal(t, 4, g.LockCount(2))
	assertConsistent(t, g)
}

func TestGrid_ClearFullPlanes_Idempotent(t *testing.T) {
	g := NewGrid(3, 3, 5)
	fillPlane(t, g, 0)
	fillPlane(t, g, 1)
	require.NoError(t, g.Lock(types.Point3{X: 1, Y: 1, Z: 2}))

	assert.Equal(t, 2, g.ClearFullPlanes())
	assert.Equal(t, 0, g.ClearFullPlanes())
	assert.Equal(t, []types.Point3{{X: 1, Y: 1, Z: 0}}, g.Locked())
	assertConsistent(t, g)
}

func TestGrid_ClearFullPlanes_ReusesTopPlane(t *testing.T) {
	g := NewGrid(2, 2, 3)
	fillPlane(t, g, 0)
	fillPlane(t, g, 1)
	fillPlane(t, g, 2)

	assert.Equal(t, 3, g.ClearFullPlanes())
	assert.Empty(t, g.Locked())
	assert.Equal(t, []int{0, 0, 0}, g.PlaneCounts())

	// freed planes are writable again
	fillPlane(t, g, 2)
	assert.Equal(t, 4, g.LockCount(2))
	assertConsistent(t, g)
}

func TestGrid_Reset(t *testing.T) {
	g := NewGrid(2, 2, 2)
	fillPlane(t, g, 0)

	g.Reset(4, 3, 6)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 6, g.Depth())
	assert.Equal(t, 12, g.PlaneSize())
	assert.Empty(t, g.Locked())
	assert.Equal(t, make([]int, 6), g.PlaneCounts())
	assert.NoError(t, g.Lock(types.Point3{X: 3, Y: 2, Z: 5}))
}

func TestGrid_ReadViewsAreCopies(t *testing.T) {
	g := NewGrid(2, 2, 2)
	require.NoError(t, g.Lock(types.Point3{X: 0, Y: 0, Z: 0}))

	locked := g.Locked()
	locked[0].Z = 1
	counts := g.PlaneCounts()
	counts[0] = 99

	assert.Equal(t, []types.Point3{{X: 0, Y: 0, Z: 0}}, g.Locked())
	assert.Equal(t, 1, g.LockCount(0))
}
