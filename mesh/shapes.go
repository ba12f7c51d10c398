// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
)

// squareTex are the corner texture coordinates used for each
// quad of the cube, split into two triangles.
var squareTex = [4]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// addQuad adds the two triangles (a,b,c), (a,c,d) of a quad, which
// share the a-c diagonal, with the full texture mapped onto the quad.
func (g *Geometry) addQuad(group, a, b, c, d int) {
	g.AddFace(group, Face{Index: [3]int{a, b, c}, TexCoords: [3]math32.Vector2{squareTex[0], squareTex[1], squareTex[2]}})
	g.AddFace(group, Face{Index: [3]int{a, c, d}, TexCoords: [3]math32.Vector2{squareTex[0], squareTex[2], squareTex[3]}})
}

// NewCube returns a cube centered at the origin with the given edge size:
// 8 shared vertices and 12 triangles in one smoothing group, wound
// counter-clockwise seen from outside. Vertex i has its x, y, z
// coordinates on the positive side when bit 0, 1, 2 of i is set.
func NewCube(size float32) *Geometry {
	h := size / 2
	g := &Geometry{}
	for i := range 8 {
		p := math32.Vec3(-h, -h, -h)
		if i&1 != 0 {
			p.X = h
		}
		if i&2 != 0 {
			p.Y = h
		}
		if i&4 != 0 {
			p.Z = h
		}
		g.AddVertex(p)
	}
	gi := g.AddGroup(0)
	g.addQuad(gi, 0, 4, 6, 2) // nx
	g.addQuad(gi, 1, 3, 7, 5) // px
	g.addQuad(gi, 0, 1, 5, 4) // ny
	g.addQuad(gi, 2, 6, 7, 3) // py
	g.addQuad(gi, 0, 2, 3, 1) // nz
	g.addQuad(gi, 4, 5, 7, 6) // pz
	g.ComputeNormals()
	return g
}

// icosahedron faces, counter-clockwise seen from outside
var icoFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// NewIcosahedron returns a regular icosahedron inscribed in the sphere
// of the given radius centered at the origin, with radial normals
// and a spherical texture mapping, in one smoothing group.
func NewIcosahedron(radius float32) *Geometry {
	phi := (1 + math32.Sqrt(5)) / 2
	pts := [12]math32.Vector3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	g := &Geometry{}
	for _, p := range pts {
		n := normalize(p)
		g.Vertices = append(g.Vertices, Vertex{
			Pos:      n.MulScalar(radius),
			Normal:   n,
			TexCoord: sphereTex(n),
		})
	}
	gi := g.AddGroup(0)
	for _, fi := range icoFaces {
		g.AddFace(gi, g.texFace(fi[0], fi[1], fi[2]))
	}
	return g
}

// sphereTex returns the longitude / latitude texture coordinates
// of the given unit direction.
func sphereTex(n math32.Vector3) math32.Vector2 {
	u := 0.5 + math32.Atan2(n.Z, n.X)/(2*math32.Pi)
	v := 0.5 + math32.Asin(min(max(n.Y, -1), 1))/math32.Pi
	return math32.Vec2(u, v)
}

// NewPlane returns a flat grid in the XY plane centered at the origin,
// with segs x segs cells of two triangles each, +Z normals and texture
// coordinates spanning 0-1, in one smoothing group. The outer edges
// of the grid are boundary edges owned by a single face.
func NewPlane(width, height float32, segs int) *Geometry {
	segs = max(segs, 1)
	g := &Geometry{}
	for j := 0; j <= segs; j++ {
		for i := 0; i <= segs; i++ {
			u := float32(i) / float32(segs)
			v := float32(j) / float32(segs)
			g.Vertices = append(g.Vertices, Vertex{
				Pos:      math32.Vec3((u-0.5)*width, (v-0.5)*height, 0),
				Normal:   math32.Vec3(0, 0, 1),
				TexCoord: math32.Vec2(u, v),
			})
		}
	}
	gi := g.AddGroup(0)
	row := segs + 1
	for j := 0; j < segs; j++ {
		for i := 0; i < segs; i++ {
			a := j*row + i
			b := a + 1
			c := a + row + 1
			d := a + row
			g.AddFace(gi, g.texFace(a, b, c))
			g.AddFace(gi, g.texFace(a, c, d))
		}
	}
	return g
}

// texFace returns a face whose corner texture coordinates are
// the vertex texture coordinates.
func (g *Geometry) texFace(a, b, c int) Face {
	f := Face{Index: [3]int{a, b, c}}
	for i, vi := range f.Index {
		f.TexCoords[i] = g.Vertices[vi].TexCoord
	}
	return f
}
