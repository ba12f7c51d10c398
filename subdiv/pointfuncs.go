// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
)

// lerpVertex returns the vertex at fraction t from a to b, with
// normal and tangent interpolated and renormalized.
func lerpVertex(a, b mesh.Vertex, t float32) mesh.Vertex {
	return mesh.Vertex{
		Pos:      a.Pos.Lerp(b.Pos, t),
		Normal:   normalize(a.Normal.Lerp(b.Normal, t)),
		Tangent:  normalize(a.Tangent.Lerp(b.Tangent, t)),
		TexCoord: a.TexCoord.Lerp(b.TexCoord, t),
	}
}

func normalize(v math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return v.DivScalar(l)
}

// PNTrianglesPoint is the [PointFunc] of [PNTriangles]. With center O,
// the point is O + r*m, where m is the unit direction of the interpolated
// offsets A-O and B-O and r interpolates their lengths. Without a center,
// the center is inferred from the edge ends with [CenterFrom], and edges
// whose normals are parallel get the straight point.
func PNTrianglesPoint(a, b mesh.Vertex, ctx *PointContext) (mesh.Vertex, error) {
	v := lerpVertex(a, b, ctx.T)
	var o math32.Vector3
	if ctx.Center != nil {
		o = *ctx.Center
	} else {
		c, ok, err := CenterFrom(a, b)
		if err != nil || !ok {
			return v, err
		}
		o = c
	}
	da := a.Pos.Sub(o)
	db := b.Pos.Sub(o)
	dir := da.Lerp(db, ctx.T)
	l := dir.Length()
	if l == 0 {
		return v, fmt.Errorf("%w: edge ends are opposite around the center", ErrMissingTopology)
	}
	dir = dir.DivScalar(l)
	r := da.Length() + (db.Length()-da.Length())*ctx.T
	v.Pos = o.Add(dir.MulScalar(r))
	if !v.HasNormal() {
		v.Normal = dir
	}
	return v, nil
}

// CenterFrom returns the point closest to the two normal lines
// through a and b, which is the center of the sphere for vertices
// sampled from a sphere with radial normals. It returns false if the
// normals are parallel, and [ErrMissingTopology] if a vertex has no normal.
// The result is only an estimate for general meshes.
func CenterFrom(a, b mesh.Vertex) (math32.Vector3, bool, error) {
	if !a.HasNormal() || !b.HasNormal() {
		return math32.Vector3{}, false, fmt.Errorf("%w: no division center and no vertex normals", ErrMissingTopology)
	}
	na := normalize(a.Normal)
	nb := normalize(b.Normal)
	w := a.Pos.Sub(b.Pos)
	nab := na.Dot(nb)
	den := 1 - nab*nab
	if den < 1e-6 {
		return math32.Vector3{}, false, nil
	}
	d := na.Dot(w)
	e := nb.Dot(w)
	s := (nab*e - d) / den
	u := (e - nab*d) / den
	pa := a.Pos.Add(na.MulScalar(s))
	pb := b.Pos.Add(nb.MulScalar(u))
	return pa.Add(pb).MulScalar(0.5), true, nil
}

// LoopPoint is the [PointFunc] of [Loop]. For an interior edge with
// opposite corners C and D, the point is 3/4 of the straight point plus
// 1/8 of C and of D, which is 3/8 (A+B) + 1/8 (C+D) at the midpoint.
// Boundary and non-manifold edges get the straight point.
func LoopPoint(a, b mesh.Vertex, ctx *PointContext) (mesh.Vertex, error) {
	v := lerpVertex(a, b, ctx.T)
	if len(ctx.Opposite) != 2 {
		return v, nil
	}
	opp := ctx.Opposite[0].Pos.Add(ctx.Opposite[1].Pos)
	v.Pos = v.Pos.MulScalar(0.75).Add(opp.MulScalar(0.125))
	return v, nil
}

// PhongPoint is the [PointFunc] of [Phong]. The straight point is
// projected onto the tangent planes of both ends; the projections are
// interpolated and blended with the straight point by the shape factor.
func PhongPoint(a, b mesh.Vertex, ctx *PointContext) (mesh.Vertex, error) {
	v := lerpVertex(a, b, ctx.T)
	if !a.HasNormal() || !b.HasNormal() {
		return v, fmt.Errorf("%w: phong needs vertex normals", ErrMissingTopology)
	}
	p := v.Pos
	pa := projectPlane(p, a.Pos, normalize(a.Normal))
	pb := projectPlane(p, b.Pos, normalize(b.Normal))
	v.Pos = p.Lerp(pa.Lerp(pb, ctx.T), ctx.Alpha)
	return v, nil
}

// projectPlane projects p onto the plane through o with unit normal n.
func projectPlane(p, o, n math32.Vector3) math32.Vector3 {
	return p.Sub(n.MulScalar(p.Sub(o).Dot(n)))
}
