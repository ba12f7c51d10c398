// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// renderKey identifies one render vertex: a geometry vertex
// combined with the texture coordinate of a face corner.
type renderKey struct {
	vertex int
	tex    math32.Vector2
}

// renderVertices returns the render vertex keys in first-use order
// and the index of each face corner into that list.
func (g *Geometry) renderVertices() ([]renderKey, []uint32) {
	keys := make([]renderKey, 0, len(g.Vertices))
	index := make([]uint32, 0, 3*g.NumFaces())
	seen := make(map[renderKey]uint32, len(g.Vertices))
	for gi := range g.Groups {
		for _, f := range g.Groups[gi].Faces {
			for c, vi := range f.Index {
				k := renderKey{vertex: vi, tex: f.TexCoords[c]}
				ri, ok := seen[k]
				if !ok {
					ri = uint32(len(keys))
					seen[k] = ri
					keys = append(keys, k)
				}
				index = append(index, ri)
			}
		}
	}
	return keys, index
}

// MeshSize returns the number of render vertex and index points
// needed by [Geometry.Set]. A vertex used with different texture
// coordinates by different faces counts once per distinct coordinate.
func (g *Geometry) MeshSize() (numVertex, numIndex int) {
	keys, index := g.renderVertices()
	return len(keys), len(index)
}

// Set writes the geometry into the given arrays, which must be allocated
// to the sizes returned by [Geometry.MeshSize]: 3 floats per vertex
// for vertex and normal, 2 for texcoord, and 1 index per face corner.
// It returns the bounding box of the written vertices.
func (g *Geometry) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) math32.Box3 {
	keys, idx := g.renderVertices()
	bb := math32.B3Empty()
	for i, k := range keys {
		v := g.Vertices[k.vertex]
		vertex.SetVector3(i*3, v.Pos)
		normal.SetVector3(i*3, v.Normal)
		texcoord.Set(i*2, k.tex.X, k.tex.Y)
		bb.ExpandByPoint(v.Pos)
	}
	copy(index, idx)
	return bb
}

// Buffers allocates and fills render arrays for the geometry.
func (g *Geometry) Buffers() (vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	nv, ni := g.MeshSize()
	vertex = make(math32.ArrayF32, nv*3)
	normal = make(math32.ArrayF32, nv*3)
	texcoord = make(math32.ArrayF32, nv*2)
	index = make(math32.ArrayU32, ni)
	g.Set(vertex, normal, texcoord, index)
	return
}
