package blocks

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		name           string
		elements       []types.Point3
		wantMultiplier int
		wantCenter     types.Vec3
		wantSize       types.Point3
	}{
		{
			name:           "cube",
			elements:       []types.Point3{{}},
			wantMultiplier: 1,
			wantSize:       types.Point3{X: 1, Y: 1, Z: 1},
		},
		{
			name:           "I tromino",
			elements:       []types.Point3{{X: -1}, {}, {X: 1}},
			wantMultiplier: 3,
			wantSize:       types.Point3{X: 3, Y: 1, Z: 1},
		},
		{
			name:           "tripod",
			elements:       []types.Point3{{}, {X: 1}, {Y: 1}, {Z: 1}},
			wantMultiplier: 8,
			wantCenter:     types.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			wantSize:       types.Point3{X: 2, Y: 2, Z: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShape(tt.elements)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMultiplier, s.Multiplier)
			assert.Equal(t, tt.wantCenter, s.Center)
			assert.Equal(t, tt.wantSize, s.Size())
			assert.Equal(t, tt.elements, s.Elements)
		})
	}
}

func TestNewShapeCopiesElements(t *testing.T) {
	elements := []types.Point3{{}, {X: 1}}
	s, err := NewShape(elements)
	require.NoError(t, err)

	elements[0].X = 9
	assert.Equal(t, 0, s.Elements[0].X)
}

func TestNewShapeEmpty(t *testing.T) {
	_, err := NewShape(nil)
	assert.ErrorIs(t, err, ErrEmptyShape)
}

func TestParseText(t *testing.T) {
	input := `# test set

Elements 1
0 0 0
Elements 2
0 0 0
1 0
Elements 2
0 0 0
0 0 1
Elements x
Elements 3
0 0 0
`
	bs, err := ParseText("test", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "test", bs.Name)
	require.Len(t, bs.Shapes, 2, "malformed and truncated blocks are skipped")
	assert.Equal(t, []types.Point3{{}}, bs.Shapes[0].Elements)
	assert.Equal(t, []types.Point3{{}, {Z: 1}}, bs.Shapes[1].Elements)
	assert.Equal(t, 2, bs.Shapes[1].Multiplier)
}

func TestParseYAML(t *testing.T) {
	input := `name: yamlset
shapes:
  - elements: [[0, 0, 0], [0, 1, 0]]
  - elements: [[0, 0]]
  - elements: []
`
	bs, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "yamlset", bs.Name)
	require.Len(t, bs.Shapes, 1)
	assert.Equal(t, []types.Point3{{}, {Y: 1}}, bs.Shapes[0].Elements)
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("shapes: {"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"text.txt":   {Data: []byte("Elements 1\n0 0 0\n")},
		"other.yaml": {Data: []byte("shapes:\n  - elements: [[0, 0, 0]]\n")},
		"README.md":  {Data: []byte("not a blockset")},
	}

	tests := []struct {
		name       string
		blockset   string
		wantShapes int
		wantErr    bool
		wantNotFnd bool
	}{
		{name: "text", blockset: "text", wantShapes: 1},
		{name: "yaml named by file", blockset: "other", wantShapes: 1},
		{name: "missing", blockset: "nope", wantErr: true, wantNotFnd: true},
		{name: "path traversal", blockset: "../text", wantErr: true},
		{name: "empty", blockset: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs, err := Load(fsys, tt.blockset)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantNotFnd, errors.Is(err, fs.ErrNotExist))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.blockset, bs.Name)
			assert.Len(t, bs.Shapes, tt.wantShapes)
		})
	}

	names, err := List(fsys)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"text", "other"}, names)
}

func TestBuiltin(t *testing.T) {
	names, err := List(Builtin())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Shaaft", "Flat"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			bs, err := LoadBuiltin(name)
			require.NoError(t, err)
			assert.Equal(t, name, bs.Name)
			assert.NotEmpty(t, bs.Shapes)
			for _, s := range bs.Shapes {
				assert.NotEmpty(t, s.Elements)
				assert.Positive(t, s.Multiplier)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	bs, err := LoadBuiltin("Shaaft")
	require.NoError(t, err)

	full, err := bs.Catalog(5, 5, 12)
	require.NoError(t, err)
	assert.Len(t, full, len(bs.Shapes))

	small, err := bs.Catalog(3, 3, 12)
	require.NoError(t, err)
	assert.Less(t, len(small), len(full))
	for _, s := range small {
		assert.True(t, s.Fits(3))
	}

	// the depth counts towards the smallest dimension too
	shallow, err := bs.Catalog(5, 5, 1)
	require.NoError(t, err)
	for _, s := range shallow {
		assert.Equal(t, 1, s.Multiplier)
	}
}

func TestCatalogNoShapes(t *testing.T) {
	s, err := NewShape([]types.Point3{{}, {X: 1}})
	require.NoError(t, err)
	bs := &Blockset{Name: "dominoes", Shapes: []Shape{s}}

	_, err = bs.Catalog(1, 5, 5)
	assert.ErrorIs(t, err, ErrNoShapes)
}
