// Package shaft holds the voxel occupancy of the play volume.
//
// Terminology: an element is a single cube, a plane is one z slice and the
// shaft is the whole width x height x depth volume with z=0 at the floor.
package shaft

import (
	"errors"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
)

var (
	// ErrOutOfBounds is returned when locking a cell outside the shaft.
	ErrOutOfBounds = errors.New("element out of bounds")
	// ErrAlreadyLocked is returned when a cell is locked twice. It means the
	// grid and the piece validation disagree and the game cannot continue.
	ErrAlreadyLocked = errors.New("element already locked")
)

// Grid is the authoritative occupancy map of the shaft.
type Grid struct {
	width  int
	height int
	depth  int

	// planes[z][y*width+x] is 1 when the cell is locked
	planes    [][]uint8
	lockCount []int
	// locked mirrors the set cells in planes
	locked []types.Point3
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(width, height, depth int) *Grid {
	g := &Grid{}
	g.Reset(width, height, depth)
	return g
}

// Reset resizes the grid and clears every cell.
func (g *Grid) Reset(width, height, depth int) {
	g.width = width
	g.height = height
	g.depth = depth

	mem := make([]uint8, width*height*depth)
	g.planes = make([][]uint8, depth)
	for z := range g.planes {
		g.planes[z] = mem[z*width*height : (z+1)*width*height : (z+1)*width*height]
	}
	g.lockCount = make([]int, depth)
	g.locked = g.locked[:0]
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Depth() int {
	return g.depth
}

// PlaneSize is the number of cells in one plane.
func (g *Grid) PlaneSize() int {
	return g.width * g.height
}

func (g *Grid) inPlane(p types.Point3) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsOccupied reports whether the cell at p is locked. Cells above the shaft
// (z >= depth) are always free so pieces can spawn partly outside the volume.
// Cells below the floor or beside the walls are reported free as well;
// callers check bounds separately.
func (g *Grid) IsOccupied(p types.Point3) bool {
	if p.Z < 0 || p.Z >= g.depth || !g.inPlane(p) {
		return false
	}
	return g.planes[p.Z][p.Y*g.width+p.X] > 0
}

// Lock marks the cell at p as occupied.
func (g *Grid) Lock(p types.Point3) error {
	if p.Z < 0 || p.Z >= g.depth || !g.inPlane(p) {
		log.Error("Out of bounds lock at %s (shaft %dx%dx%d)", p, g.width, g.height, g.depth)
		return ErrOutOfBounds
	}

	cell := &g.planes[p.Z][p.Y*g.width+p.X]
	if *cell > 0 {
		log.Error("Bad locked element at %s", p)
		return ErrAlreadyLocked
	}

	*cell = 1
	g.lockCount[p.Z]++
	g.locked = append(g.locked, p)

	return nil
}

// LockCount returns the number of locked cells in plane z.
func (g *Grid) LockCount(z int) int {
	if z < 0 || z >= g.depth {
		return 0
	}
	return g.lockCount[z]
}

// PlaneCounts returns a copy of the per-plane lock counts, index 0 is the floor.
func (g *Grid) PlaneCounts() []int {
	counts := make([]int, len(g.lockCount))
	copy(counts, g.lockCount)
	return counts
}

// Locked returns a copy of the locked elements.
func (g *Grid) Locked() []types.Point3 {
	return types.CopyPoints(g.locked)
}

// NumLocked returns the number of locked elements.
func (g *Grid) NumLocked() int {
	return len(g.locked)
}

// ClearFullPlanes removes every full plane and drops everything above it by
// one. Planes are scanned from the floor up and the scan ends at the first
// empty plane. It returns the number of planes removed.
func (g *Grid) ClearFullPlanes() int {
	planeSize := g.PlaneSize()
	if planeSize == 0 {
		return 0
	}

	cleared := 0
	for z := 0; z < g.depth; z++ {
		if g.lockCount[z] == 0 {
			break
		}
		if g.lockCount[z] < planeSize {
			continue
		}

		g.collapse(z)
		cleared++

		// everything above moved down into z, look at it again
		z--
	}

	return cleared
}

// collapse removes plane z by rotating the plane slices above it down one
// slot. The removed plane's storage is reused as the new, empty top plane.
func (g *Grid) collapse(z int) {
	removed := g.planes[z]
	copy(g.planes[z:], g.planes[z+1:])
	copy(g.lockCount[z:], g.lockCount[z+1:])
	g.planes[g.depth-1] = removed
	g.lockCount[g.depth-1] = 0
	clear(removed)

	kept := g.locked[:0]
	for _, e := range g.locked {
		switch {
		case e.Z == z:
			continue
		case e.Z > z:
			e.Z--
		}
		kept = append(kept, e)
	}
	g.locked = kept
}
