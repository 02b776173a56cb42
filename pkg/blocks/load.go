package blocks

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
	"gopkg.in/yaml.v3"
)

//go:embed blocksets/*
var builtin embed.FS

// Builtin returns the block sets shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "blocksets")
	if err != nil {
		// the embedded directory always exists
		panic(err)
	}
	return sub
}

// LoadBuiltin loads one of the embedded block sets by name.
func LoadBuiltin(name string) (*Blockset, error) {
	return Load(Builtin(), name)
}

// Load reads the block set called name from fsys, trying name.txt, then
// name.yaml and name.yml.
func Load(fsys fs.FS, name string) (*Blockset, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid blockset name %q", name)
	}

	for _, ext := range []string{".txt", ".yaml", ".yml"} {
		filename := name + ext
		f, err := fsys.Open(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %v", filename, err)
		}

		log.Debug("Loading block info from %s", filename)
		var bs *Blockset
		if ext == ".txt" {
			bs, err = ParseText(name, f)
		} else {
			bs, err = ParseYAML(f)
		}
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", filename, err)
		}
		if bs.Name == "" {
			bs.Name = name
		}
		return bs, nil
	}

	return nil, fmt.Errorf("blockset %s: %w", name, fs.ErrNotExist)
}

// List returns the names of the block sets in fsys.
func List(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read blocksets: %v", err)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch ext := path.Ext(e.Name()); ext {
		case ".txt", ".yaml", ".yml":
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	return names, nil
}

// ParseText reads the line based format:
//
//	# comment
//	Elements 2
//	0 0 0
//	1 0 0
//
// A block with a malformed or missing element line is skipped.
func ParseText(name string, r io.Reader) (*Blockset, error) {
	bs := &Blockset{Name: name}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	next := func() (string, bool) {
		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] != "Elements" {
			continue
		}
		if len(fields) < 2 {
			log.Warn("Missing element count in %s (line %d)", name, lineNum)
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count <= 0 {
			log.Warn("Bad element count %q in %s (line %d)", fields[1], name, lineNum)
			continue
		}

		elements := make([]types.Point3, 0, count)
		blockOK := true
		for i := 0; i < count; i++ {
			line, ok := next()
			if !ok {
				blockOK = false
				break
			}
			p, err := parsePoint(strings.Fields(line))
			if err != nil {
				log.Warn("Skipping block in %s (line %d): %v", name, lineNum, err)
				blockOK = false
				break
			}
			elements = append(elements, p)
		}
		if !blockOK {
			continue
		}

		shape, err := NewShape(elements)
		if err != nil {
			log.Warn("Skipping block in %s (line %d): %v", name, lineNum, err)
			continue
		}
		bs.Shapes = append(bs.Shapes, shape)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blockset: %v", err)
	}
	return bs, nil
}

func parsePoint(fields []string) (types.Point3, error) {
	if len(fields) != 3 {
		return types.Point3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var coords [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return types.Point3{}, fmt.Errorf("bad coordinate %q", f)
		}
		coords[i] = v
	}
	return types.Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

type yamlBlockset struct {
	Name   string      `yaml:"name"`
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlShape struct {
	Elements [][]int `yaml:"elements"`
}

// ParseYAML reads a block set of the form
//
//	name: Flat
//	shapes:
//	  - elements: [[0, 0, 0], [1, 0, 0]]
//
// Shapes with malformed elements are skipped like in the text format.
func ParseYAML(r io.Reader) (*Blockset, error) {
	doc := yamlBlockset{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode blockset: %v", err)
	}

	bs := &Blockset{Name: doc.Name}
	for i, ys := range doc.Shapes {
		elements := make([]types.Point3, 0, len(ys.Elements))
		for _, e := range ys.Elements {
			if len(e) != 3 {
				elements = nil
				break
			}
			elements = append(elements, types.Point3{X: e[0], Y: e[1], Z: e[2]})
		}
		shape, err := NewShape(elements)
		if err != nil {
			log.Warn("Skipping shape %d in %s: %v", i, doc.Name, err)
			continue
		}
		bs.Shapes = append(bs.Shapes, shape)
	}
	return bs, nil
}
