package core

import (
	"fmt"
	"strings"
)

// PipeType identifies the shape of a pipe.
type PipeType uint8

const (
	PipeStraight PipeType = iota
	PipeCorner
	PipeTee
	PipeCross
	PipeEdge
	pipeTypeCount
)

// pipeShape describes which local directions of a pipe type carry a slot.
type pipeShape struct {
	name  string
	slots [4]bool // indexed by local Dir
	fixed bool    // never rotatable
}

// shapes is the capability table for every pipe type.
// Local TOP is the pipe's own "up" before any rotation is applied.
var shapes = [pipeTypeCount]pipeShape{
	PipeStraight: {name: "straight", slots: [4]bool{DirTop: true, DirBottom: true}},
	PipeCorner:   {name: "corner", slots: [4]bool{DirTop: true, DirRight: true}},
	PipeTee:      {name: "tee", slots: [4]bool{DirTop: true, DirRight: true, DirBottom: true}},
	PipeCross:    {name: "cross", slots: [4]bool{true, true, true, true}, fixed: true},
	PipeEdge:     {name: "edge", slots: [4]bool{DirTop: true}, fixed: true},
}

// Valid reports whether t is a known pipe type.
func (t PipeType) Valid() bool {
	return t < pipeTypeCount
}

// String returns the string representation of a pipe type.
func (t PipeType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return shapes[t].name
}

// Slots returns the number of connection slots of the type.
func (t PipeType) Slots() int {
	if !t.Valid() {
		return 0
	}
	n := 0
	for _, ok := range shapes[t].slots {
		if ok {
			n++
		}
	}
	return n
}

// ParsePipeType parses a pipe type name as produced by String.
func ParsePipeType(s string) (PipeType, error) {
	for t := PipeStraight; t < pipeTypeCount; t++ {
		if shapes[t].name == strings.ToLower(s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPipeType, s)
}

// Pipe is a connectable unit on the board.
// Links are stored in the pipe's own (local) frame, so rotating a pipe
// changes which world direction each link faces.
type Pipe struct {
	typ         PipeType
	orientation Dir
	rotatable   bool
	links       [4]*Pipe // indexed by local Dir
}

// NewPipe creates a pipe of the given type facing orientation.
// Cross and edge pipes are never rotatable regardless of the rotatable flag.
func NewPipe(typ PipeType, orientation Dir, rotatable bool) (*Pipe, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPipeType, typ)
	}
	return &Pipe{
		typ:         typ,
		orientation: orientation % 4,
		rotatable:   rotatable && !shapes[typ].fixed,
	}, nil
}

// newEdgePipe creates a boundary sentinel with a single slot.
func newEdgePipe() *Pipe {
	return &Pipe{typ: PipeEdge}
}

// Type returns the pipe type.
func (p *Pipe) Type() PipeType {
	return p.typ
}

// Orientation returns the current rotation of the pipe.
func (p *Pipe) Orientation() Dir {
	return p.orientation
}

// Rotatable returns whether Rotate has any effect.
func (p *Pipe) Rotatable() bool {
	return p.rotatable
}

// ConnectionCount returns the number of slots of the pipe.
func (p *Pipe) ConnectionCount() int {
	return p.typ.Slots()
}

// local maps a world direction onto the pipe's own frame.
// Edge pipes collapse every direction onto their single slot.
func (p *Pipe) local(world Dir) Dir {
	if p.typ == PipeEdge {
		return DirTop
	}
	switch p.orientation {
	case DirRight:
		return world.Prev()
	case DirBottom:
		return world.Opposite()
	case DirLeft:
		return world.Next()
	default:
		return world
	}
}

// CanConnect returns true if the pipe has a slot facing world direction d.
func (p *Pipe) CanConnect(d Dir) bool {
	return shapes[p.typ].slots[p.local(d)]
}

// Neighbor returns the pipe linked in world direction d, or nil.
func (p *Pipe) Neighbor(d Dir) *Pipe {
	if !p.CanConnect(d) {
		return nil
	}
	return p.links[p.local(d)]
}

// Connected returns the world directions that currently hold a link.
func (p *Pipe) Connected() [4]bool {
	var out [4]bool
	for _, d := range Directions {
		out[d] = p.Neighbor(d) != nil
	}
	return out
}

// Rotate turns the pipe 90 degrees clockwise. Existing links are dropped on
// both sides first, since they would face a different world direction
// afterwards; the board re-links the cell after rotating it.
// Rotating a fixed pipe is a no-op.
func (p *Pipe) Rotate() {
	if !p.rotatable {
		return
	}
	p.detachAll()
	p.orientation = p.orientation.Next()
}

// UpdateConnection links p to other in world direction d, or unlinks
// whatever p holds in that direction when other is nil.
// Incompatible or redundant requests leave both pipes unchanged.
func (p *Pipe) UpdateConnection(other *Pipe, d Dir) {
	if other == nil {
		p.disconnect(d)
		return
	}
	p.connect(other, d)
}

func (p *Pipe) connect(other *Pipe, d Dir) {
	back := d.Opposite()
	if other == p || p.Neighbor(d) == other {
		return
	}
	if !p.CanConnect(d) || !other.CanConnect(back) {
		return
	}
	// A slot holds one link; release stale partners so links stay symmetric.
	p.detach(d)
	other.detach(back)
	p.links[p.local(d)] = other
	other.links[other.local(back)] = p
}

func (p *Pipe) disconnect(d Dir) {
	other := p.Neighbor(d)
	if other == nil || !other.linksTo(p) {
		return
	}
	p.detach(d)
}

// detach clears the link in world direction d on both sides.
func (p *Pipe) detach(d Dir) {
	if !p.CanConnect(d) {
		return
	}
	slot := p.local(d)
	other := p.links[slot]
	if other == nil {
		return
	}
	p.links[slot] = nil
	other.unlink(p)
}

func (p *Pipe) detachAll() {
	for slot, other := range p.links {
		if other == nil {
			continue
		}
		p.links[slot] = nil
		other.unlink(p)
	}
}

// unlink clears every slot of p that refers to target.
func (p *Pipe) unlink(target *Pipe) {
	for slot, other := range p.links {
		if other == target {
			p.links[slot] = nil
		}
	}
}

func (p *Pipe) linksTo(target *Pipe) bool {
	for _, other := range p.links {
		if other == target {
			return true
		}
	}
	return false
}
