// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

// Edge is the segment between two vertexes, shared by the faces
// that own it. Its point is created once, by the first owning face
// that splits it, and reused by every other owner.
type Edge struct {

	// V1 and V2 are the vertex indexes, with V1 < V2.
	V1, V2 int

	// Faces are the indexes of the first two owning faces in the
	// face list of the group being divided; -1 when unset.
	Faces [2]int

	// Owners is the number of faces that own the edge.
	// It is more than 2 only for non-manifold edges.
	Owners int

	// Midpoint is the index of the vertex created on the edge,
	// or -1 until the edge is divided.
	Midpoint int

	// done is the number of owners that have been split.
	done int
}

// Interior returns whether the edge is shared by exactly two faces.
func (e *Edge) Interior() bool {
	return e.Owners == 2
}

// IsDivided returns whether the edge point has been created.
func (e *Edge) IsDivided() bool {
	return e.Midpoint >= 0
}

// Other returns the vertex of the edge other than v.
func (e *Edge) Other(v int) int {
	if v == e.V1 {
		return e.V2
	}
	return e.V1
}

type edgeKey struct{ v1, v2 int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// EdgeTable maps unordered vertex index pairs to their [Edge].
// A table covers the faces of one smoothing group for one pass,
// so edges are never merged across groups.
type EdgeTable struct {
	edges map[edgeKey]*Edge
}

// NewEdgeTable returns a new empty edge table.
func NewEdgeTable() *EdgeTable {
	return &EdgeTable{edges: make(map[edgeKey]*Edge)}
}

// GetOrCreate returns the edge between v1 and v2 in either order,
// creating it if needed, and records face as one of its owners.
func (et *EdgeTable) GetOrCreate(v1, v2, face int) *Edge {
	k := makeEdgeKey(v1, v2)
	e, ok := et.edges[k]
	if !ok {
		e = &Edge{V1: k.v1, V2: k.v2, Faces: [2]int{-1, -1}, Midpoint: -1}
		et.edges[k] = e
	}
	if e.Owners < 2 {
		e.Faces[e.Owners] = face
	}
	e.Owners++
	return e
}

// Find returns the edge between v1 and v2 in either order, or nil.
func (et *EdgeTable) Find(v1, v2 int) *Edge {
	return et.edges[makeEdgeKey(v1, v2)]
}

// Remove drops the edge between v1 and v2.
func (et *EdgeTable) Remove(v1, v2 int) {
	delete(et.edges, makeEdgeKey(v1, v2))
}

// Len returns the number of edges in the table.
func (et *EdgeTable) Len() int {
	return len(et.edges)
}

// release records that one owner of the edge has been split,
// removing the edge once all of them have.
func (et *EdgeTable) release(e *Edge) {
	e.done++
	if e.done >= e.Owners {
		et.Remove(e.V1, e.V2)
	}
}
