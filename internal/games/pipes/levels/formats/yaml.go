// Package formats provides level file format parsers for Pipes.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Size     int          `yaml:"size"`
	Input    YAMLPosition `yaml:"input"`
	Output   YAMLPosition `yaml:"output"`
	MaxSteps int          `yaml:"max_steps"`
	Map      []string     `yaml:"map"`
}

// YAMLPosition represents a board cell.
type YAMLPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EmptyToken marks a cell without a pipe.
const EmptyToken = ".."

var typeLetters = map[byte]core.PipeType{
	'S': core.PipeStraight,
	'C': core.PipeCorner,
	'T': core.PipeTee,
	'X': core.PipeCross,
}

var orientationMarks = map[byte]core.Dir{
	'^': core.DirTop,
	'>': core.DirRight,
	'v': core.DirBottom,
	'<': core.DirLeft,
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (core.GameLevel, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.GameLevel{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return core.GameLevel{}, fmt.Errorf("%w: missing id", core.ErrInvalidLevel)
	}
	if yl.Size <= 0 {
		return core.GameLevel{}, fmt.Errorf("%w: size %d", core.ErrInvalidLevel, yl.Size)
	}
	if yl.MaxSteps <= 0 {
		return core.GameLevel{}, fmt.Errorf("%w: max_steps %d", core.ErrInvalidLevel, yl.MaxSteps)
	}
	if len(yl.Map) != yl.Size {
		return core.GameLevel{}, fmt.Errorf("%w: map has %d rows, want %d",
			core.ErrInvalidLevel, len(yl.Map), yl.Size)
	}

	level := core.GameLevel{
		ID:       yl.ID,
		Name:     yl.Name,
		Size:     yl.Size,
		Input:    core.P(yl.Input.X, yl.Input.Y),
		Output:   core.P(yl.Output.X, yl.Output.Y),
		MaxSteps: yl.MaxSteps,
		Map:      make([]*core.PipeMeta, 0, yl.Size*yl.Size),
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	if !level.Input.InBounds(level.Size) {
		return core.GameLevel{}, fmt.Errorf("%w: input %v outside board", core.ErrInvalidLevel, level.Input)
	}
	if !level.Output.InBounds(level.Size) {
		return core.GameLevel{}, fmt.Errorf("%w: output %v outside board", core.ErrInvalidLevel, level.Output)
	}

	for y, row := range yl.Map {
		tokens := strings.Fields(row)
		if len(tokens) != yl.Size {
			return core.GameLevel{}, fmt.Errorf("%w: row %d has %d cells, want %d",
				core.ErrInvalidLevel, y, len(tokens), yl.Size)
		}
		for x, tok := range tokens {
			meta, err := ParseToken(tok)
			if err != nil {
				return core.GameLevel{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			level.Map = append(level.Map, meta)
		}
	}

	return level, nil
}

// ParseToken parses one map cell. A token is a type letter (S, C, T or X),
// an optional orientation mark (^ > v <, default ^) and an optional "!"
// for a locked pipe. EmptyToken yields nil.
func ParseToken(tok string) (*core.PipeMeta, error) {
	if tok == EmptyToken {
		return nil, nil
	}
	if tok == "" {
		return nil, fmt.Errorf("%w: empty token", core.ErrUnknownPipeType)
	}

	typ, ok := typeLetters[upper(tok[0])]
	if !ok {
		return nil, fmt.Errorf("%w: token %q", core.ErrUnknownPipeType, tok)
	}

	meta := &core.PipeMeta{Type: typ, Orientation: core.DirTop, Active: true}
	rest := tok[1:]
	if len(rest) > 0 {
		if d, ok := orientationMarks[rest[0]]; ok {
			meta.Orientation = d
			rest = rest[1:]
		}
	}
	if rest == "!" {
		meta.Active = false
		rest = ""
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: token %q", core.ErrUnknownPipeType, tok)
	}
	if typ == core.PipeCross {
		meta.Active = false
	}

	return meta, nil
}

// FormatToken renders a recipe back into its map token.
func FormatToken(meta *core.PipeMeta) string {
	if meta == nil {
		return EmptyToken
	}
	var b strings.Builder
	for letter, typ := range typeLetters {
		if typ == meta.Type {
			b.WriteByte(letter)
			break
		}
	}
	for mark, d := range orientationMarks {
		if d == meta.Orientation {
			b.WriteByte(mark)
			break
		}
	}
	if !meta.Active && meta.Type != core.PipeCross {
		b.WriteByte('!')
	}
	return b.String()
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
