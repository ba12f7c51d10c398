// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"slices"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	cm "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeCounts returns the number of faces using each unordered edge.
func edgeCounts(g *mesh.Geometry) map[edgeKey]int {
	ec := map[edgeKey]int{}
	for _, gr := range g.Groups {
		for _, f := range gr.Faces {
			for i := range 3 {
				ec[makeEdgeKey(f.Index[i], f.Index[(i+1)%3])]++
			}
		}
	}
	return ec
}

// assertWatertight checks that every edge of a closed mesh is used by
// exactly two faces, in opposite directions.
func assertWatertight(t *testing.T, g *mesh.Geometry) {
	directed := map[[2]int]int{}
	for _, gr := range g.Groups {
		for _, f := range gr.Faces {
			for i := range 3 {
				directed[[2]int{f.Index[i], f.Index[(i+1)%3]}]++
			}
		}
	}
	for k, n := range edgeCounts(g) {
		assert.Equal(t, 2, n, "edge %v", k)
	}
	for k, n := range directed {
		assert.Equal(t, 1, n, "directed edge %v", k)
	}
}

// assertUniquePositions checks that no two vertices share a position.
func assertUniquePositions(t *testing.T, g *mesh.Geometry, tol float32) {
	for i := range g.Vertices {
		for j := i + 1; j < len(g.Vertices); j++ {
			d := g.Vertices[i].Pos.Sub(g.Vertices[j].Pos)
			same := math32.Abs(d.X) <= tol && math32.Abs(d.Y) <= tol && math32.Abs(d.Z) <= tol
			assert.False(t, same, "vertices %d and %d at %v", i, j, g.Vertices[i].Pos)
		}
	}
}

func testParams(alg Algorithms, occurrences int) Params {
	var p Params
	p.Defaults()
	p.Algorithm = alg
	p.Occurrences = occurrences
	return p
}

func TestCubeLoop(t *testing.T) {
	sm := mesh.NewSubmesh("cube", mesh.NewCube(1))
	require.Len(t, edgeCounts(sm.Geometry()), 18)

	st, err := Subdivide(sm, testParams(Loop, 1))
	require.NoError(t, err)
	g := sm.Geometry()
	assert.Equal(t, 48, g.NumFaces())
	assert.Equal(t, 26, len(g.Vertices))
	assert.Equal(t, Stats{FacesBefore: 12, FacesAfter: 48, VerticesBefore: 8, VerticesAfter: 26}, st)
	assertWatertight(t, g)
	assertUniquePositions(t, g, DefaultTolerance)
}

func TestCubeLoopTwice(t *testing.T) {
	sm := mesh.NewSubmesh("cube", mesh.NewCube(1))
	_, err := Subdivide(sm, testParams(Loop, 2))
	require.NoError(t, err)
	g := sm.Geometry()
	assert.Equal(t, 12*4*4, g.NumFaces())
	// closed genus 0 mesh: V = 2 + E - F
	assert.Equal(t, 2+288-192, len(g.Vertices))
	assertWatertight(t, g)
}

func TestAllAlgorithms(t *testing.T) {
	for _, alg := range AlgorithmsValues() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mesh.NewIcosahedron(1)
			nedges := len(edgeCounts(g))
			require.Equal(t, 30, nedges)
			sm := mesh.NewSubmesh("ico", g)
			st, err := Subdivide(sm, testParams(alg, 1))
			require.NoError(t, err)
			ng := sm.Geometry()
			assert.Equal(t, 4*20, ng.NumFaces())
			assert.Equal(t, 12+nedges, len(ng.Vertices))
			assert.Equal(t, 0, st.Fallbacks)
			assertWatertight(t, ng)
			assertUniquePositions(t, ng, DefaultTolerance)
			// the original geometry is untouched
			assert.Equal(t, 20, g.NumFaces())
			assert.Equal(t, 12, len(g.Vertices))
		})
	}
}

func TestPNTrianglesSphere(t *testing.T) {
	origin := math32.Vector3{}
	tests := []struct {
		name   string
		center *math32.Vector3
		bounds bool
		tol    float32
	}{
		{"center", &origin, false, 1e-5},
		{"bounds", nil, true, 1e-5},
		{"inferred", nil, false, 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := mesh.NewSubmesh("ico", mesh.NewIcosahedron(1))
			p := testParams(PNTriangles, 2)
			p.Center = tt.center
			p.BoundsCenter = tt.bounds
			st, err := Subdivide(sm, p)
			require.NoError(t, err)
			assert.Equal(t, 0, st.Fallbacks)
			g := sm.Geometry()
			assert.Equal(t, 320, g.NumFaces())
			for _, v := range g.Vertices {
				tolassert.EqualTol(t, 1, v.Pos.Length(), tt.tol)
			}
			assertWatertight(t, g)
		})
	}
}

func TestMissingNormals(t *testing.T) {
	g := mesh.NewCube(2)
	for i := range g.Vertices {
		g.Vertices[i].Normal = math32.Vector3{}
	}
	for _, alg := range []Algorithms{PNTriangles, Phong} {
		t.Run(alg.String(), func(t *testing.T) {
			sm := mesh.NewSubmesh("cube", g)
			p := testParams(alg, 1)
			p.Normals = false
			st, err := Subdivide(sm, p)
			require.NoError(t, err)
			assert.Greater(t, st.Fallbacks, 0)
			ng := sm.Geometry()
			assert.Equal(t, 48, ng.NumFaces())
			assert.Equal(t, 26, len(ng.Vertices))
			// straight midpoints stay on the cube surface
			for _, v := range ng.Vertices {
				m := max(math32.Abs(v.Pos.X), math32.Abs(v.Pos.Y), math32.Abs(v.Pos.Z))
				tolassert.EqualTol(t, 1, m, 1e-6)
			}
			assertWatertight(t, ng)
		})
	}
}

func TestDegenerateFace(t *testing.T) {
	// Loop point of the cube edge 0-1, with opposite corners 3 and 5
	loop01 := math32.Vec3(0.125, -0.375, -0.375)
	tests := []struct {
		name       string
		add        func(g *mesh.Geometry) mesh.Face
		faces      int
		vertices   int
		degenerate int
		kept       bool
		point      math32.Vector3
	}{
		{"coincident", func(g *mesh.Geometry) mesh.Face {
			return mesh.NewFace(0, g.AddVertex(g.Vertices[0].Pos), 1)
		}, 4*12 + 1, 26 + 1, 1, true, loop01},
		{"collinear", func(g *mesh.Geometry) mesh.Face {
			mid := g.Vertices[0].Pos.Lerp(g.Vertices[1].Pos, 0.5)
			return mesh.NewFace(0, 1, g.AddVertex(mid))
		}, 4*12 + 1, 26 + 1, 1, true, loop01},
		{"not finite", func(g *mesh.Geometry) mesh.Face {
			return mesh.NewFace(0, 1, g.AddVertex(math32.Vec3(cm.NaN(), 0, 0)))
		}, 4*12 + 1, 26 + 1, 1, true, loop01},
		{"out of range", func(g *mesh.Geometry) mesh.Face {
			return mesh.NewFace(0, 1, 99)
		}, 4 * 12, 26, 1, false, loop01},
		{"non-manifold", func(g *mesh.Geometry) mesh.Face {
			return mesh.NewFace(0, 1, g.AddVertex(math32.Vec3(0, -1, -1)))
		}, 4 * 13, 26 + 3, 0, false, math32.Vec3(0, -0.5, -0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mesh.NewCube(1)
			f := tt.add(g)
			g.AddFace(0, f)
			sm := mesh.NewSubmesh("cube", g)

			st, err := Subdivide(sm, testParams(Loop, 1))
			require.NoError(t, err)
			ng := sm.Geometry()
			assert.Equal(t, tt.faces, ng.NumFaces())
			assert.Equal(t, tt.vertices, len(ng.Vertices))
			assert.Equal(t, tt.degenerate, st.Degenerate)
			if tt.kept {
				last := ng.Groups[0].Faces[len(ng.Groups[0].Faces)-1]
				assert.Equal(t, f.Index, last.Index)
			}
			// edge 0-1 is interior unless a third face uses it
			pts := NewPoints(ng.Vertices, DefaultTolerance)
			_, ok := pts.Find(tt.point)
			assert.True(t, ok, "no point at %v", tt.point)
			for _, gr := range ng.Groups {
				for _, nf := range gr.Faces {
					for _, vi := range nf.Index {
						assert.Less(t, vi, len(ng.Vertices))
					}
				}
			}
		})
	}
}

func TestInvalidConfiguration(t *testing.T) {
	g := mesh.NewCube(1)
	sm := mesh.NewSubmesh("cube", g)
	bad := []func(p *Params){
		func(p *Params) { p.Occurrences = -1 },
		func(p *Params) { p.Algorithm = 7 },
		func(p *Params) { p.Ratio = 0 },
		func(p *Params) { p.Ratio = 1 },
		func(p *Params) { p.Alpha = 2 },
		func(p *Params) { p.Tolerance = -1 },
	}
	for i, set := range bad {
		p := testParams(Loop, 1)
		set(&p)
		_, err := Subdivide(sm, p)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "case %d", i)
		assert.Same(t, g, sm.Geometry(), "case %d", i)
	}

	_, err := Subdivide(nil, testParams(Loop, 1))
	assert.ErrorIs(t, err, ErrNoSubmesh)
	_, err = SubdivideMesh(&mesh.Mesh{}, testParams(Loop, 1))
	assert.ErrorIs(t, err, ErrNoSubmesh)
	assert.True(t, errors.Is(err, ErrNoSubmesh))
}

func TestZeroOccurrences(t *testing.T) {
	g := mesh.NewCube(1)
	sm := mesh.NewSubmesh("cube", g)
	st, err := Subdivide(sm, testParams(Loop, 0))
	require.NoError(t, err)
	assert.Same(t, g, sm.Geometry())
	assert.Equal(t, Stats{FacesBefore: 12, FacesAfter: 12, VerticesBefore: 8, VerticesAfter: 8}, st)
}

// kite returns the quad A(0,0) B(1,0) C(1,1) D(0,3) as triangles ABC and ACD,
// sharing the diagonal AC, either in one group or in two.
func kite(twoGroups bool) *mesh.Geometry {
	g := &mesh.Geometry{}
	a := g.AddVertex(math32.Vec3(0, 0, 0))
	b := g.AddVertex(math32.Vec3(1, 0, 0))
	c := g.AddVertex(math32.Vec3(1, 1, 0))
	d := g.AddVertex(math32.Vec3(0, 3, 0))
	g1 := g.AddGroup(1)
	g2 := g1
	if twoGroups {
		g2 = g.AddGroup(2)
	}
	g.AddFace(g1, mesh.NewFace(a, b, c))
	g.AddFace(g2, mesh.NewFace(a, c, d))
	return g
}

func TestLoopSmoothingGroups(t *testing.T) {
	tests := []struct {
		twoGroups bool
		diagonal  math32.Vector3
	}{
		{false, math32.Vec3(0.5, 0.75, 0)}, // 3/8 (A+C) + 1/8 (B+D)
		{true, math32.Vec3(0.5, 0.5, 0)},   // boundary in each group
	}
	for _, tt := range tests {
		sm := mesh.NewSubmesh("kite", kite(tt.twoGroups))
		_, err := Subdivide(sm, testParams(Loop, 1))
		require.NoError(t, err)
		g := sm.Geometry()
		assert.Equal(t, 8, g.NumFaces())
		assert.Equal(t, 4+5, len(g.Vertices))
		pts := NewPoints(g.Vertices, DefaultTolerance)
		_, ok := pts.Find(tt.diagonal)
		assert.True(t, ok, "two groups: %v", tt.twoGroups)
		// outer edges are boundary edges: plain midpoints
		_, ok = pts.Find(math32.Vec3(0.5, 0, 0))
		assert.True(t, ok)
		// the diagonal point is shared by both halves
		ec := edgeCounts(g)
		shared := 0
		for _, n := range ec {
			if n == 2 {
				shared++
			}
		}
		assert.Equal(t, 2+3*2, shared)
	}
}

func TestPhongPlaneStaysFlat(t *testing.T) {
	sm := mesh.NewSubmesh("plane", mesh.NewPlane(2, 2, 3))
	_, err := Subdivide(sm, testParams(Phong, 2))
	require.NoError(t, err)
	g := sm.Geometry()
	assert.Equal(t, 18*16, g.NumFaces())
	for _, v := range g.Vertices {
		assert.Equal(t, float32(0), v.Pos.Z)
		tolassert.EqualTol(t, 1, v.Normal.Z, 1e-6)
	}
}

func TestUVInterpolation(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		g := mesh.NewPlane(1, 1, 2)
		if reversed {
			slices.Reverse(g.Groups[0].Faces)
		}
		sm := mesh.NewSubmesh("plane", g)
		_, err := Subdivide(sm, testParams(Phong, 1))
		require.NoError(t, err)
		// Phong keeps the plane flat with straight edge points, and the plane
		// maps positions to texture coordinates linearly, so every corner of
		// every face must match its vertex position.
		ng := sm.Geometry()
		assert.Equal(t, 32, ng.NumFaces())
		for _, f := range ng.Groups[0].Faces {
			for c, vi := range f.Index {
				p := ng.Vertices[vi].Pos
				tc := f.TexCoords[c]
				tolassert.EqualTol(t, p.X+0.5, tc.X, 1e-6)
				tolassert.EqualTol(t, p.Y+0.5, tc.Y, 1e-6)
			}
		}
	}
}

func TestSubdivideMesh(t *testing.T) {
	m := &mesh.Mesh{Name: "pair"}
	m.AddSubmesh("cube", mesh.NewCube(1))
	m.AddSubmesh("ico", mesh.NewIcosahedron(1))
	p := testParams(PNTriangles, 1)
	p.BoundsCenter = true
	st, err := SubdivideMesh(m, p)
	require.NoError(t, err)
	assert.Equal(t, 12+20, st.FacesBefore)
	assert.Equal(t, 4*(12+20), st.FacesAfter)
	assert.Equal(t, 26+42, st.VerticesAfter)
}

func TestSubdivideMeshChecksFirst(t *testing.T) {
	cube := mesh.NewCube(1)
	m := &mesh.Mesh{Name: "broken"}
	first := m.AddSubmesh("cube", cube)
	m.Submeshes = append(m.Submeshes, nil)
	_, err := SubdivideMesh(m, testParams(Loop, 1))
	assert.ErrorIs(t, err, ErrNoSubmesh)
	assert.Same(t, cube, first.Geometry())

	m.Submeshes[1] = &mesh.Submesh{Name: "empty"}
	_, err = SubdivideMesh(m, testParams(Loop, 1))
	assert.ErrorIs(t, err, ErrNoSmoothingGroup)
	assert.Same(t, cube, first.Geometry())

	_, err = Subdivide(mesh.NewSubmesh("empty", &mesh.Geometry{}), testParams(Loop, 0))
	assert.ErrorIs(t, err, ErrNoSmoothingGroup)
}

func TestSubdividerState(t *testing.T) {
	sd, err := NewSubdivider(mesh.NewSubmesh("cube", mesh.NewCube(1)), testParams(Phong, 1))
	require.NoError(t, err)
	assert.Equal(t, Idle, sd.State())
	_, err = sd.Run()
	require.NoError(t, err)
	assert.Equal(t, Idle, sd.State())
	assert.Equal(t, Position{Group: 0, Face: 11, Pass: 0}, sd.Position())
}
