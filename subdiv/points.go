// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	fm "github.com/chewxy/math32"
)

// cell is a position quantized by the [Points] tolerance.
type cell [3]int64

// Points is the vertex registry of one subdivision run. It holds the
// vertices with unique positions and finds an existing vertex for a
// position. Lookup uses a spatial hash with cells the size of the
// tolerance, so each search checks the 27 cells around the position.
// A zero tolerance means exact position equality.
type Points struct {

	// Tolerance is the per-coordinate distance within which two
	// positions are the same point.
	Tolerance float32

	vertices []mesh.Vertex
	cells    map[cell][]int
	exact    map[math32.Vector3]int
}

// NewPoints returns a registry seeded with a copy of the given vertices,
// keeping their indexes. Seed vertices sharing a position are kept
// as-is; lookups return the first one.
func NewPoints(vertices []mesh.Vertex, tolerance float32) *Points {
	pt := &Points{Tolerance: max(tolerance, 0)}
	pt.vertices = make([]mesh.Vertex, len(vertices), 2*len(vertices)+1)
	copy(pt.vertices, vertices)
	if pt.Tolerance == 0 {
		pt.exact = make(map[math32.Vector3]int, cap(pt.vertices))
	} else {
		pt.cells = make(map[cell][]int, cap(pt.vertices))
	}
	for i := range pt.vertices {
		if _, ok := pt.Find(pt.vertices[i].Pos); !ok {
			pt.insert(i)
		}
	}
	return pt
}

// Len returns the number of vertices.
func (pt *Points) Len() int {
	return len(pt.vertices)
}

// Vertex returns the vertex at the given index.
func (pt *Points) Vertex(i int) mesh.Vertex {
	return pt.vertices[i]
}

// Vertices returns the vertex list, which must not be modified.
func (pt *Points) Vertices() []mesh.Vertex {
	return pt.vertices
}

// Find returns the index of the vertex at the given position
// within the tolerance, and whether there is one.
func (pt *Points) Find(pos math32.Vector3) (int, bool) {
	if pt.exact != nil {
		i, ok := pt.exact[pos]
		return i, ok
	}
	c := pt.cell(pos)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, i := range pt.cells[cell{c[0] + dx, c[1] + dy, c[2] + dz}] {
					if pt.same(pt.vertices[i].Pos, pos) {
						return i, true
					}
				}
			}
		}
	}
	return -1, false
}

// FindOrAdd returns the index of the vertex at the position of v if
// there is one, and otherwise appends v and returns its new index.
func (pt *Points) FindOrAdd(v mesh.Vertex) int {
	if i, ok := pt.Find(v.Pos); ok {
		return i
	}
	pt.vertices = append(pt.vertices, v)
	i := len(pt.vertices) - 1
	pt.insert(i)
	return i
}

// same returns whether the two positions are the same point
// within the tolerance.
func (pt *Points) same(a, b math32.Vector3) bool {
	if pt.Tolerance == 0 {
		return a == b
	}
	d := a.Sub(b)
	return fm.Abs(d.X) <= pt.Tolerance && fm.Abs(d.Y) <= pt.Tolerance && fm.Abs(d.Z) <= pt.Tolerance
}

func (pt *Points) insert(i int) {
	pos := pt.vertices[i].Pos
	if pt.exact != nil {
		pt.exact[pos] = i
		return
	}
	c := pt.cell(pos)
	pt.cells[c] = append(pt.cells[c], i)
}

func (pt *Points) cell(pos math32.Vector3) cell {
	t := pt.Tolerance
	return cell{cellIndex(pos.X / t), cellIndex(pos.Y / t), cellIndex(pos.Z / t)}
}

// maxCell bounds cell indexes so that neighbor offsets cannot overflow.
const maxCell = 1 << 60

// cellIndex returns the cell index of x in tolerance units,
// clamped to [-maxCell, maxCell]. NaN is in cell 0.
func cellIndex(x float32) int64 {
	switch {
	case fm.IsNaN(x):
		return 0
	case x >= maxCell:
		return maxCell
	case x <= -maxCell:
		return -maxCell
	}
	return int64(fm.Floor(x))
}
