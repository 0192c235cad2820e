package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPipe(t *testing.T, typ PipeType, orientation Dir, rotatable bool) *Pipe {
	t.Helper()
	p, err := NewPipe(typ, orientation, rotatable)
	require.NoError(t, err)
	return p
}

// openings lists the world directions a pipe can connect to.
func openings(p *Pipe) []Dir {
	var out []Dir
	for _, d := range Directions {
		if p.CanConnect(d) {
			out = append(out, d)
		}
	}
	return out
}

func TestCanConnect(t *testing.T) {
	tests := []struct {
		name        string
		typ         PipeType
		orientation Dir
		want        []Dir
	}{
		{"straight top", PipeStraight, DirTop, []Dir{DirTop, DirBottom}},
		{"straight right", PipeStraight, DirRight, []Dir{DirRight, DirLeft}},
		{"straight bottom", PipeStraight, DirBottom, []Dir{DirTop, DirBottom}},
		{"corner top", PipeCorner, DirTop, []Dir{DirTop, DirRight}},
		{"corner right", PipeCorner, DirRight, []Dir{DirRight, DirBottom}},
		{"corner bottom", PipeCorner, DirBottom, []Dir{DirBottom, DirLeft}},
		{"corner left", PipeCorner, DirLeft, []Dir{DirTop, DirLeft}},
		{"tee top", PipeTee, DirTop, []Dir{DirTop, DirRight, DirBottom}},
		{"tee right", PipeTee, DirRight, []Dir{DirRight, DirBottom, DirLeft}},
		{"tee bottom", PipeTee, DirBottom, []Dir{DirTop, DirBottom, DirLeft}},
		{"tee left", PipeTee, DirLeft, []Dir{DirTop, DirRight, DirLeft}},
		{"cross", PipeCross, DirTop, []Dir{DirTop, DirRight, DirBottom, DirLeft}},
		{"edge", PipeEdge, DirTop, []Dir{DirTop, DirRight, DirBottom, DirLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPipe(t, tt.typ, tt.orientation, true)
			assert.Equal(t, tt.want, openings(p))
		})
	}
}

func TestConnectionCount(t *testing.T) {
	want := map[PipeType]int{
		PipeEdge:     1,
		PipeStraight: 2,
		PipeCorner:   2,
		PipeTee:      3,
		PipeCross:    4,
	}
	for typ, n := range want {
		assert.Equal(t, n, mustPipe(t, typ, DirTop, true).ConnectionCount(), "type %v", typ)
	}
}

func TestNewPipeRejectsUnknownType(t *testing.T) {
	_, err := NewPipe(PipeType(42), DirTop, true)
	assert.ErrorIs(t, err, ErrUnknownPipeType)
}

func TestFixedPipesNeverRotate(t *testing.T) {
	for _, typ := range []PipeType{PipeCross, PipeEdge} {
		p := mustPipe(t, typ, DirTop, true)
		assert.False(t, p.Rotatable(), "type %v", typ)
	}

	locked := mustPipe(t, PipeCorner, DirRight, false)
	for i := 0; i < 7; i++ {
		locked.Rotate()
	}
	assert.Equal(t, DirRight, locked.Orientation())
}

func TestRotationClosure(t *testing.T) {
	for _, typ := range []PipeType{PipeStraight, PipeCorner, PipeTee} {
		p := mustPipe(t, typ, DirLeft, true)
		before := openings(p)

		p.Rotate()
		assert.Equal(t, DirTop, p.Orientation(), "type %v", typ)

		for i := 0; i < 3; i++ {
			p.Rotate()
		}
		assert.Equal(t, DirLeft, p.Orientation(), "type %v", typ)
		assert.Equal(t, before, openings(p), "type %v", typ)
	}
}

func TestUpdateConnectionLinksSymmetrically(t *testing.T) {
	upper := mustPipe(t, PipeStraight, DirTop, true)
	lower := mustPipe(t, PipeCorner, DirTop, true)

	upper.UpdateConnection(lower, DirBottom)

	assert.Same(t, lower, upper.Neighbor(DirBottom))
	assert.Same(t, upper, lower.Neighbor(DirTop))

	// Idempotent from either side.
	lower.UpdateConnection(upper, DirTop)
	upper.UpdateConnection(lower, DirBottom)
	assert.Same(t, lower, upper.Neighbor(DirBottom))
	assert.Same(t, upper, lower.Neighbor(DirTop))
}

func TestUpdateConnectionGating(t *testing.T) {
	tests := []struct {
		name  string
		a     *Pipe
		b     *Pipe
		dir   Dir
		links bool
	}{
		{"aligned vertical", mustPipe(t, PipeStraight, DirTop, true), mustPipe(t, PipeStraight, DirTop, true), DirBottom, true},
		{"first side closed", mustPipe(t, PipeStraight, DirRight, true), mustPipe(t, PipeStraight, DirTop, true), DirBottom, false},
		{"second side closed", mustPipe(t, PipeStraight, DirTop, true), mustPipe(t, PipeStraight, DirRight, true), DirBottom, false},
		{"corner into tee", mustPipe(t, PipeCorner, DirTop, true), mustPipe(t, PipeTee, DirBottom, true), DirRight, true},
		{"tee blind side", mustPipe(t, PipeTee, DirTop, true), mustPipe(t, PipeCross, DirTop, true), DirLeft, false},
		{"edge accepts any side", newEdgePipe(), mustPipe(t, PipeStraight, DirRight, true), DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.a.UpdateConnection(tt.b, tt.dir)
			if tt.links {
				assert.Same(t, tt.b, tt.a.Neighbor(tt.dir))
				assert.Same(t, tt.a, tt.b.Neighbor(tt.dir.Opposite()))
			} else {
				assert.Nil(t, tt.a.Neighbor(tt.dir))
				assert.Nil(t, tt.b.Neighbor(tt.dir.Opposite()))
			}
		})
	}
}

func TestUpdateConnectionDisconnects(t *testing.T) {
	left := mustPipe(t, PipeStraight, DirRight, true)
	right := mustPipe(t, PipeTee, DirRight, true)

	left.UpdateConnection(right, DirRight)
	require.Same(t, right, left.Neighbor(DirRight))

	// Disconnecting an unlinked direction is a no-op.
	left.UpdateConnection(nil, DirTop)
	assert.Same(t, right, left.Neighbor(DirRight))

	right.UpdateConnection(nil, DirLeft)
	assert.Nil(t, left.Neighbor(DirRight))
	assert.Nil(t, right.Neighbor(DirLeft))
}

func TestRotateDropsLinksOnBothSides(t *testing.T) {
	top := mustPipe(t, PipeStraight, DirTop, true)
	middle := mustPipe(t, PipeStraight, DirTop, true)
	bottom := mustPipe(t, PipeStraight, DirTop, true)

	middle.UpdateConnection(top, DirTop)
	middle.UpdateConnection(bottom, DirBottom)
	require.Same(t, top, middle.Neighbor(DirTop))

	middle.Rotate()

	assert.Equal(t, [4]bool{}, middle.Connected())
	assert.Nil(t, top.Neighbor(DirBottom))
	assert.Nil(t, bottom.Neighbor(DirTop))
}

func TestConnectReleasesStalePartner(t *testing.T) {
	edge := newEdgePipe()
	first := mustPipe(t, PipeStraight, DirTop, true)
	second := mustPipe(t, PipeStraight, DirTop, true)

	first.UpdateConnection(edge, DirTop)
	second.UpdateConnection(edge, DirTop)

	assert.Same(t, second, edge.Neighbor(DirBottom))
	assert.Nil(t, first.Neighbor(DirTop), "edge has a single slot")
}

func TestParsePipeType(t *testing.T) {
	for typ := PipeStraight; typ < pipeTypeCount; typ++ {
		got, err := ParsePipeType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParsePipeType("elbow")
	assert.ErrorIs(t, err, ErrUnknownPipeType)
}
