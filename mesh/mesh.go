// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the indexed triangle geometry that the subdivision
// engine reads and replaces: vertices, faces with per-corner texture
// coordinates, smoothing groups, and submeshes that swap in new geometry
// atomically.
package mesh

import (
	"log/slog"
	"sync/atomic"

	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// Vertex is one point of a [Geometry]. Its identity is its index
// in [Geometry.Vertices].
type Vertex struct {

	// Pos is the position of the vertex.
	Pos math32.Vector3

	// Normal is the vertex normal; the zero vector means no normal.
	Normal math32.Vector3

	// Tangent is the vertex tangent; the zero vector means no tangent.
	Tangent math32.Vector3

	// TexCoord is the default texture coordinate of the vertex.
	// Faces carry their own per-corner texture coordinates,
	// which take precedence when rendering.
	TexCoord math32.Vector2
}

// HasNormal returns whether the vertex carries a usable normal.
func (v Vertex) HasNormal() bool {
	return v.Normal.LengthSquared() > 0
}

// Face is a triangle referencing three vertex indexes.
// Texture coordinates are stored per corner on the face, because
// the same vertex can have different coordinates on different faces.
type Face struct {
	Index     [3]int
	TexCoords [3]math32.Vector2
}

// NewFace returns a face on the given vertex indexes with
// zero texture coordinates.
func NewFace(a, b, c int) Face {
	return Face{Index: [3]int{a, b, c}}
}

// Corner returns the corner (0-2) of the face that references
// the given vertex, or -1 if the face does not use it.
func (f *Face) Corner(vertex int) int {
	for i, vi := range f.Index {
		if vi == vertex {
			return i
		}
	}
	return -1
}

// SmoothingGroup is an ordered list of faces that form one
// continuous surface.
type SmoothingGroup struct {
	ID    int
	Faces []Face
}

// Geometry is the full vertex and face data of a [Submesh].
// A Geometry installed on a Submesh must be treated as read-only;
// build a new one (or [Geometry.Clone]) and call [Submesh.SetGeometry].
type Geometry struct {
	Vertices []Vertex
	Groups   []SmoothingGroup
}

// AddVertex appends a vertex at the given position and
// returns its index.
func (g *Geometry) AddVertex(pos math32.Vector3) int {
	g.Vertices = append(g.Vertices, Vertex{Pos: pos})
	return len(g.Vertices) - 1
}

// AddGroup appends a new empty smoothing group with the given id
// and returns its index in [Geometry.Groups].
func (g *Geometry) AddGroup(id int) int {
	g.Groups = append(g.Groups, SmoothingGroup{ID: id})
	return len(g.Groups) - 1
}

// AddFace appends the face to the group at the given index.
func (g *Geometry) AddFace(group int, f Face) {
	g.Groups[group].Faces = append(g.Groups[group].Faces, f)
}

// NumFaces returns the total number of faces over all groups.
func (g *Geometry) NumFaces() int {
	n := 0
	for i := range g.Groups {
		n += len(g.Groups[i].Faces)
	}
	return n
}

// Clone returns a deep copy of the geometry.
func (g *Geometry) Clone() *Geometry {
	cp := &Geometry{}
	err := copier.CopyWithOption(cp, g, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("mesh.Geometry.Clone", "err", err)
	}
	return cp
}

// BBox returns the bounding box of all vertex positions.
func (g *Geometry) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range g.Vertices {
		bb.ExpandByPoint(g.Vertices[i].Pos)
	}
	return bb
}

// Submesh is a named piece of a [Mesh] owning one [Geometry].
// The geometry is swapped as a whole, so a concurrent reader
// (e.g., a renderer uploading buffers) always sees a complete mesh.
type Submesh struct {
	Name string

	geom atomic.Pointer[Geometry]
}

// NewSubmesh returns a new submesh with the given geometry.
func NewSubmesh(name string, g *Geometry) *Submesh {
	sm := &Submesh{Name: name}
	sm.SetGeometry(g)
	return sm
}

// Geometry returns the current geometry, which must not be modified.
// It is never nil.
func (sm *Submesh) Geometry() *Geometry {
	g := sm.geom.Load()
	if g == nil {
		return &Geometry{}
	}
	return g
}

// SetGeometry replaces the geometry in one step.
func (sm *Submesh) SetGeometry(g *Geometry) {
	sm.geom.Store(g)
}

// BBox returns the bounding box of the current geometry.
func (sm *Submesh) BBox() math32.Box3 {
	return sm.Geometry().BBox()
}

// Mesh is a named list of submeshes.
type Mesh struct {
	Name      string
	Submeshes []*Submesh
}

// AddSubmesh adds a new submesh with the given geometry.
func (ms *Mesh) AddSubmesh(name string, g *Geometry) *Submesh {
	sm := NewSubmesh(name, g)
	ms.Submeshes = append(ms.Submeshes, sm)
	return sm
}

// BBox returns the union of the bounding boxes of all submeshes.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, sm := range ms.Submeshes {
		sbb := sm.BBox()
		if sbb.IsEmpty() {
			continue
		}
		bb.ExpandByBox(sbb)
	}
	return bb
}
