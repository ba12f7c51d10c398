// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// ComputeNormals sets smooth vertex normals from the faces of all groups.
// Face normals are weighted by face area; vertices not used by
// any face keep a zero normal.
func (g *Geometry) ComputeNormals() {
	for i := range g.Vertices {
		g.Vertices[i].Normal = math32.Vector3{}
	}
	for gi := range g.Groups {
		for _, f := range g.Groups[gi].Faces {
			a := g.Vertices[f.Index[0]].Pos
			b := g.Vertices[f.Index[1]].Pos
			c := g.Vertices[f.Index[2]].Pos
			// not normalized: length is twice the area
			fn := b.Sub(a).Cross(c.Sub(a))
			for _, vi := range f.Index {
				g.Vertices[vi].Normal.SetAdd(fn)
			}
		}
	}
	for i := range g.Vertices {
		g.Vertices[i].Normal = normalize(g.Vertices[i].Normal)
	}
}

// ComputeTangents sets vertex tangents from the face texture coordinates,
// orthogonalized against the vertex normal, so normals must be
// set first. Faces with a degenerate texture mapping do not contribute.
func (g *Geometry) ComputeTangents() {
	for i := range g.Vertices {
		g.Vertices[i].Tangent = math32.Vector3{}
	}
	for gi := range g.Groups {
		for _, f := range g.Groups[gi].Faces {
			p0 := g.Vertices[f.Index[0]].Pos
			e1 := g.Vertices[f.Index[1]].Pos.Sub(p0)
			e2 := g.Vertices[f.Index[2]].Pos.Sub(p0)
			d1 := f.TexCoords[1].Sub(f.TexCoords[0])
			d2 := f.TexCoords[2].Sub(f.TexCoords[0])
			den := d1.X*d2.Y - d2.X*d1.Y
			if den == 0 {
				continue
			}
			t := e1.MulScalar(d2.Y).Sub(e2.MulScalar(d1.Y)).DivScalar(den)
			for _, vi := range f.Index {
				g.Vertices[vi].Tangent.SetAdd(t)
			}
		}
	}
	for i := range g.Vertices {
		v := &g.Vertices[i]
		n := v.Normal
		t := v.Tangent.Sub(n.MulScalar(n.Dot(v.Tangent)))
		if t.LengthSquared() < 1e-12 {
			// any direction perpendicular to the normal
			if math32.Abs(n.X) < 0.9 {
				t = math32.Vec3(1, 0, 0).Sub(n.MulScalar(n.X))
			} else {
				t = math32.Vec3(0, 1, 0).Sub(n.MulScalar(n.Y))
			}
		}
		v.Tangent = normalize(t)
	}
}

// normalize returns the unit vector of v, or the zero vector
// if v has no length.
func normalize(v math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return v.DivScalar(l)
}
