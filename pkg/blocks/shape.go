// Package blocks loads block sets and turns them into the shape catalog a
// simulation draws its pieces from.
package blocks

import (
	"errors"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
)

var (
	// ErrEmptyShape is returned for a shape without elements.
	ErrEmptyShape = errors.New("shape has no elements")
	// ErrNoShapes is returned when no shape of a block set fits the shaft.
	ErrNoShapes = errors.New("no shapes fit the shaft")
)

// Shape is one catalog entry. Elements are offsets relative to the shape
// origin and are never modified after construction.
type Shape struct {
	Elements []types.Point3 `json:"elements"`
	// Multiplier is the bounding box volume, used for scoring
	Multiplier int `json:"multiplier"`
	// Center is the bounding box midpoint, used for display only
	Center types.Vec3 `json:"center"`

	min types.Point3
	max types.Point3
}

// NewShape builds a shape from element offsets, computing its multiplier
// and center from the bounding box.
func NewShape(elements []types.Point3) (Shape, error) {
	if len(elements) == 0 {
		return Shape{}, ErrEmptyShape
	}

	lo, hi := elements[0], elements[0]
	for _, p := range elements[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}

	s := Shape{
		Elements: types.CopyPoints(elements),
		min:      lo,
		max:      hi,
		Center: types.Vec3{
			X: float32(hi.X+lo.X) / 2,
			Y: float32(hi.Y+lo.Y) / 2,
			Z: float32(hi.Z+lo.Z) / 2,
		},
	}
	size := s.Size()
	s.Multiplier = size.X * size.Y * size.Z
	return s, nil
}

// Size returns the bounding box extent along each axis.
func (s Shape) Size() types.Point3 {
	return s.max.Sub(s.min).Add(types.Point3{X: 1, Y: 1, Z: 1})
}

// Fits reports whether no extent of the shape exceeds maxSize.
func (s Shape) Fits(maxSize int) bool {
	size := s.Size()
	return size.X <= maxSize && size.Y <= maxSize && size.Z <= maxSize
}

// Blockset is a named, unfiltered list of shapes.
type Blockset struct {
	Name   string
	Shapes []Shape
}

// Catalog returns the shapes that fit a width x height x depth shaft. A shape
// is dropped when its extent along any axis exceeds the smallest dimension.
func (b *Blockset) Catalog(width, height, depth int) ([]Shape, error) {
	maxSize := min(width, height, depth)

	catalog := make([]Shape, 0, len(b.Shapes))
	for i, s := range b.Shapes {
		if !s.Fits(maxSize) {
			log.Info("Excluding big block %d of %s (size %s, shaft %dx%dx%d)", i, b.Name, s.Size(), width, height, depth)
			continue
		}
		catalog = append(catalog, s)
	}

	if len(catalog) == 0 {
		return nil, ErrNoShapes
	}
	return catalog, nil
}
