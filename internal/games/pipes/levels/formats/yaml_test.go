package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		tok         string
		typ         core.PipeType
		orientation core.Dir
		active      bool
	}{
		{"S^", core.PipeStraight, core.DirTop, true},
		{"S", core.PipeStraight, core.DirTop, true},
		{"c>", core.PipeCorner, core.DirRight, true},
		{"Tv", core.PipeTee, core.DirBottom, true},
		{"C<!", core.PipeCorner, core.DirLeft, false},
		{"S!", core.PipeStraight, core.DirTop, false},
		{"X", core.PipeCross, core.DirTop, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			meta, err := ParseToken(tt.tok)
			if err != nil {
				t.Fatalf("ParseToken(%q) error: %v", tt.tok, err)
			}
			if meta.Type != tt.typ {
				t.Errorf("type = %v, want %v", meta.Type, tt.typ)
			}
			if meta.Orientation != tt.orientation {
				t.Errorf("orientation = %v, want %v", meta.Orientation, tt.orientation)
			}
			if meta.Active != tt.active {
				t.Errorf("active = %v, want %v", meta.Active, tt.active)
			}
		})
	}
}

func TestParseTokenEmpty(t *testing.T) {
	meta, err := ParseToken(EmptyToken)
	if err != nil || meta != nil {
		t.Errorf("ParseToken(%q) = %v, %v; want nil, nil", EmptyToken, meta, err)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	for _, tok := range []string{"Q^", "S^^", "C>?", "E^", "S!!"} {
		if _, err := ParseToken(tok); !errors.Is(err, core.ErrUnknownPipeType) {
			t.Errorf("ParseToken(%q) error = %v, want ErrUnknownPipeType", tok, err)
		}
	}
}

func TestFormatTokenRoundTrip(t *testing.T) {
	for _, tok := range []string{"S^", "C>", "Tv", "C<!", "X^", EmptyToken} {
		meta, err := ParseToken(tok)
		if err != nil {
			t.Fatalf("ParseToken(%q) error: %v", tok, err)
		}
		if got := FormatToken(meta); got != tok {
			t.Errorf("FormatToken(ParseToken(%q)) = %q", tok, got)
		}
	}
}

const validLevel = `
id: "t1"
name: Test
size: 3
input: {x: 1, y: 0}
output: {x: 1, y: 2}
max_steps: 5
map:
  - ".. S^ .."
  - "C> S^! .."
  - ".. S< X"
`

func TestParseYAML(t *testing.T) {
	level, err := ParseYAML([]byte(validLevel))
	if err != nil {
		t.Fatalf("ParseYAML error: %v", err)
	}

	if level.ID != "t1" || level.Name != "Test" {
		t.Errorf("id/name = %q/%q, want t1/Test", level.ID, level.Name)
	}
	if level.Size != 3 || len(level.Map) != 9 {
		t.Errorf("size = %d with %d cells, want 3 with 9", level.Size, len(level.Map))
	}
	if level.Input != core.P(1, 0) || level.Output != core.P(1, 2) {
		t.Errorf("input/output = %v/%v, want (1,0)/(1,2)", level.Input, level.Output)
	}
	if level.MaxSteps != 5 {
		t.Errorf("max steps = %d, want 5", level.MaxSteps)
	}

	if meta := level.Cell(core.P(1, 1)); meta == nil || meta.Active {
		t.Errorf("cell (1,1) = %+v, want locked straight", meta)
	}
	if meta := level.Cell(core.P(0, 0)); meta != nil {
		t.Errorf("cell (0,0) = %+v, want empty", meta)
	}
	if meta := level.Cell(core.P(2, 2)); meta == nil || meta.Type != core.PipeCross {
		t.Errorf("cell (2,2) = %+v, want cross", meta)
	}

	// The parsed level builds a playable session.
	if _, err := core.NewSession(core.Settings{Complexity: core.ComplexityHard, Level: level}); err != nil {
		t.Errorf("NewSession error: %v", err)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no id", "size: 1\nmax_steps: 1\nmap: [\"S^\"]", core.ErrInvalidLevel},
		{"zero size", "id: a\nsize: 0\nmax_steps: 1", core.ErrInvalidLevel},
		{"no steps", "id: a\nsize: 1\nmap: [\"S^\"]", core.ErrInvalidLevel},
		{"short map", "id: a\nsize: 2\nmax_steps: 1\nmap: [\"S^ S^\"]", core.ErrInvalidLevel},
		{"short row", "id: a\nsize: 2\nmax_steps: 1\nmap: [\"S^ S^\", \"S^\"]", core.ErrInvalidLevel},
		{"output outside", "id: a\nsize: 1\nmax_steps: 1\noutput: {x: 0, y: 1}\nmap: [\"S^\"]", core.ErrInvalidLevel},
		{"bad token", "id: a\nsize: 1\nmax_steps: 1\nmap: [\"Z^\"]", core.ErrUnknownPipeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseYAML error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
