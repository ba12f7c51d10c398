// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	fm "github.com/chewxy/math32"
)

// FaceEdges is a face with its three edges AB, BC and CA.
type FaceEdges struct {
	Face mesh.Face

	// Index is the index of the face in the group being divided.
	Index int

	Edges [3]*Edge
}

// splitter is the state shared by all faces of one group during one pass.
type splitter struct {
	points *Points
	edges  *EdgeTable
	faces  []mesh.Face
	point  PointFunc
	ctx    PointContext

	// err is the last point error of the face being divided.
	err error
}

// checkFace returns [ErrDegenerateFace] if a corner is not a known vertex
// or is not at a finite position, if two corners are at the same
// position, or if the face has no area: its height over the longest
// side is within the tolerance.
func (sp *splitter) checkFace(f mesh.Face) error {
	if !sp.inRange(f) {
		return fmt.Errorf("%w: vertex index out of range in %v", ErrDegenerateFace, f.Index)
	}
	var pos [3]math32.Vector3
	for i, vi := range f.Index {
		pos[i] = sp.points.Vertex(vi).Pos
		if !finite(pos[i]) {
			return fmt.Errorf("%w: vertex %d is at %v", ErrDegenerateFace, vi, pos[i])
		}
	}
	var long float32
	for i := range 3 {
		a, b := f.Index[i], f.Index[(i+1)%3]
		if a == b || sp.points.same(pos[i], pos[(i+1)%3]) {
			return fmt.Errorf("%w: corners %d and %d coincide", ErrDegenerateFace, a, b)
		}
		long = max(long, pos[(i+1)%3].Sub(pos[i]).Length())
	}
	area := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0])).Length()
	if area <= sp.points.Tolerance*long {
		return fmt.Errorf("%w: corners of %v are collinear", ErrDegenerateFace, f.Index)
	}
	return nil
}

// inRange returns whether all corners of the face are known vertexes.
func (sp *splitter) inRange(f mesh.Face) bool {
	for _, vi := range f.Index {
		if vi < 0 || vi >= sp.points.Len() {
			return false
		}
	}
	return true
}

// finite returns whether no coordinate of v is NaN or infinite.
func finite(v math32.Vector3) bool {
	for _, x := range [3]float32{v.X, v.Y, v.Z} {
		if fm.IsNaN(x) || fm.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// register adds the edges of the face at the given index to the edge table.
func (sp *splitter) register(fi int) *FaceEdges {
	f := sp.faces[fi]
	fe := &FaceEdges{Face: f, Index: fi}
	for i := range 3 {
		fe.Edges[i] = sp.edges.GetOrCreate(f.Index[i], f.Index[(i+1)%3], fi)
	}
	return fe
}

// edgePoint returns the index of the point on the edge,
// creating it if the edge is not yet divided.
func (sp *splitter) edgePoint(e *Edge) int {
	if e.IsDivided() {
		return e.Midpoint
	}
	a := sp.points.Vertex(e.V1)
	b := sp.points.Vertex(e.V2)
	sp.ctx.Opposite = sp.ctx.Opposite[:0]
	if e.Owners <= 2 {
		for _, fi := range e.Faces {
			if fi < 0 {
				continue
			}
			for _, vi := range sp.faces[fi].Index {
				if vi != e.V1 && vi != e.V2 {
					sp.ctx.Opposite = append(sp.ctx.Opposite, sp.points.Vertex(vi))
					break
				}
			}
		}
	}
	v, err := sp.point(a, b, &sp.ctx)
	if err == nil && !finite(v.Pos) {
		err = fmt.Errorf("%w: edge point at %v", ErrMissingTopology, v.Pos)
	}
	if err != nil {
		sp.err = err
		v = lerpVertex(a, b, sp.ctx.T)
	}
	e.Midpoint = sp.points.FindOrAdd(v)
	return e.Midpoint
}

// Divide splits the face ABC into (A,D,F), (D,B,E), (F,E,C) and (D,E,F),
// where D, E and F are the points on AB, BC and CA. Edge points already
// created by a neighboring face are reused. The texture coordinates of the
// new corners are interpolated on this face, from the lower vertex index
// of each edge, like the positions.
func (fe *FaceEdges) Divide(sp *splitter) [4]mesh.Face {
	f := fe.Face
	var mid [3]int
	var tex [3]math32.Vector2
	for i, e := range fe.Edges {
		mid[i] = sp.edgePoint(e)
		c1, c2 := i, (i+1)%3
		if f.Index[c1] != e.V1 {
			c1, c2 = c2, c1
		}
		tex[i] = f.TexCoords[c1].Lerp(f.TexCoords[c2], sp.ctx.T)
	}
	a, b, c := f.Index[0], f.Index[1], f.Index[2]
	ta, tb, tc := f.TexCoords[0], f.TexCoords[1], f.TexCoords[2]
	d, e, ff := mid[0], mid[1], mid[2]
	td, te, tf := tex[0], tex[1], tex[2]
	return [4]mesh.Face{
		{Index: [3]int{a, d, ff}, TexCoords: [3]math32.Vector2{ta, td, tf}},
		{Index: [3]int{d, b, e}, TexCoords: [3]math32.Vector2{td, tb, te}},
		{Index: [3]int{ff, e, c}, TexCoords: [3]math32.Vector2{tf, te, tc}},
		{Index: [3]int{d, e, ff}, TexCoords: [3]math32.Vector2{td, te, tf}},
	}
}
