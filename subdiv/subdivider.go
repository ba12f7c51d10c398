// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subdiv subdivides triangle meshes: each pass splits every face
// into four, with new vertices on the edges computed by one of the
// [Algorithms]. Edge points are shared between the faces of an edge, so
// the result has no cracks, and texture coordinates are interpolated
// per face.
package subdiv

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
)

// States are the states of a [Subdivider].
type States int32 //enums:enum

const (
	// Idle is the state outside of [Subdivider.Run].
	Idle States = iota

	// Running is the state during [Subdivider.Run].
	Running
)

// Position is the place a running [Subdivider] is at.
type Position struct {
	Group, Face, Pass int
}

// Stats summarizes one subdivision run.
type Stats struct {
	FacesBefore    int
	FacesAfter     int
	VerticesBefore int
	VerticesAfter  int

	// Degenerate is the number of faces kept unsplit, counted once per pass.
	Degenerate int

	// Fallbacks is the number of faces for which the algorithm could not
	// compute at least one edge point and the straight point was used.
	Fallbacks int
}

// Add adds the counts of o to st.
func (st *Stats) Add(o Stats) {
	st.FacesBefore += o.FacesBefore
	st.FacesAfter += o.FacesAfter
	st.VerticesBefore += o.VerticesBefore
	st.VerticesAfter += o.VerticesAfter
	st.Degenerate += o.Degenerate
	st.Fallbacks += o.Fallbacks
}

// Subdivider runs the subdivision of one submesh. The vertex registry
// and the edge tables live only during [Subdivider.Run]; separate
// Subdividers on separate submeshes share no state and can run in parallel.
type Subdivider struct {
	Params

	// Submesh is the submesh whose geometry is replaced.
	Submesh *mesh.Submesh

	state States
	pos   Position
}

// NewSubdivider returns a new [Subdivider] for the given submesh,
// or an error if there is no submesh or the parameters are invalid.
func NewSubdivider(sm *mesh.Submesh, p Params) (*Subdivider, error) {
	sd := &Subdivider{Params: p, Submesh: sm}
	if err := sd.check(); err != nil {
		return nil, err
	}
	return sd, nil
}

// Subdivide subdivides the submesh with the given parameters.
func Subdivide(sm *mesh.Submesh, p Params) (Stats, error) {
	sd, err := NewSubdivider(sm, p)
	if err != nil {
		return Stats{}, err
	}
	return sd.Run()
}

// SubdivideMesh subdivides each submesh of the mesh in order. With
// [Params.BoundsCenter] and no center, the center of the whole mesh is
// the division center of every submesh. Nothing is modified if the
// parameters are invalid, or if a submesh is nil or has no smoothing group.
func SubdivideMesh(m *mesh.Mesh, p Params) (Stats, error) {
	var st Stats
	if m == nil || len(m.Submeshes) == 0 {
		return st, ErrNoSubmesh
	}
	if err := p.Validate(); err != nil {
		return st, err
	}
	for i, sm := range m.Submeshes {
		if err := checkSubmesh(sm); err != nil {
			return st, fmt.Errorf("submesh %d: %w", i, err)
		}
	}
	if p.Center == nil && p.BoundsCenter {
		if bb := m.BBox(); !bb.IsEmpty() {
			c := bb.Center()
			p.Center = &c
		}
	}
	for _, sm := range m.Submeshes {
		sst, err := Subdivide(sm, p)
		if err != nil {
			return st, err
		}
		st.Add(sst)
	}
	return st, nil
}

// State returns the current state.
func (sd *Subdivider) State() States {
	return sd.state
}

// Position returns the group, face and pass being divided.
// It is only meaningful while [Subdivider.State] is [Running].
func (sd *Subdivider) Position() Position {
	return sd.pos
}

func (sd *Subdivider) check() error {
	if err := checkSubmesh(sd.Submesh); err != nil {
		return err
	}
	return sd.Params.Validate()
}

// checkSubmesh returns an error if there is no submesh to divide.
func checkSubmesh(sm *mesh.Submesh) error {
	if sm == nil {
		return ErrNoSubmesh
	}
	if len(sm.Geometry().Groups) == 0 {
		return fmt.Errorf("%w: %q", ErrNoSmoothingGroup, sm.Name)
	}
	return nil
}

// Run subdivides the submesh [Params.Occurrences] times, group by group,
// and then replaces the geometry of the submesh in one step.
// The submesh is not modified if an error is returned.
func (sd *Subdivider) Run() (Stats, error) {
	if err := sd.check(); err != nil {
		return Stats{}, err
	}
	g := sd.Submesh.Geometry()
	st := Stats{FacesBefore: g.NumFaces(), VerticesBefore: len(g.Vertices)}
	if sd.Occurrences == 0 {
		st.FacesAfter, st.VerticesAfter = st.FacesBefore, st.VerticesBefore
		return st, nil
	}

	sd.state = Running
	defer func() { sd.state = Idle }()

	sp := &splitter{
		points: NewPoints(g.Vertices, sd.Tolerance),
		point:  sd.Algorithm.PointFunc(),
		ctx:    PointContext{T: sd.Ratio, Alpha: sd.Alpha, Center: sd.center(g)},
	}
	groups := make([]mesh.SmoothingGroup, len(g.Groups))
	for gi := range g.Groups {
		faces := slices.Clone(g.Groups[gi].Faces)
		for pass := range sd.Occurrences {
			sd.pos = Position{Group: gi, Pass: pass}
			faces = sd.dividePass(sp, faces, &st)
		}
		groups[gi] = mesh.SmoothingGroup{ID: g.Groups[gi].ID, Faces: faces}
	}

	ng := &mesh.Geometry{Vertices: slices.Clone(sp.points.Vertices()), Groups: groups}
	if sd.Normals {
		ng.ComputeNormals()
	}
	if sd.Tangents {
		ng.ComputeTangents()
	}
	sd.Submesh.SetGeometry(ng)
	st.FacesAfter = ng.NumFaces()
	st.VerticesAfter = len(ng.Vertices)
	return st, nil
}

// center returns the division center to use on the given geometry, or nil.
func (sd *Subdivider) center(g *mesh.Geometry) *math32.Vector3 {
	if sd.Center != nil {
		c := *sd.Center
		return &c
	}
	if !sd.BoundsCenter {
		return nil
	}
	bb := g.BBox()
	if bb.IsEmpty() {
		return nil
	}
	c := bb.Center()
	return &c
}

// dividePass divides every face once and returns the new face list.
// Degenerate faces are passed through unchanged, except faces referencing
// unknown vertexes, which are dropped.
func (sd *Subdivider) dividePass(sp *splitter, faces []mesh.Face, st *Stats) []mesh.Face {
	sp.faces = faces
	sp.edges = NewEdgeTable()
	split := make([]*FaceEdges, len(faces))
	for fi, f := range faces {
		if err := sp.checkFace(f); err != nil {
			slog.Warn("subdiv: skipping face", "submesh", sd.Submesh.Name, "group", sd.pos.Group, "pass", sd.pos.Pass, "face", fi, "err", err)
			st.Degenerate++
			continue
		}
		split[fi] = sp.register(fi)
	}

	out := make([]mesh.Face, 0, 4*len(faces))
	for fi, fe := range split {
		sd.pos.Face = fi
		if fe == nil {
			if sp.inRange(faces[fi]) {
				out = append(out, faces[fi])
			}
			continue
		}
		sp.err = nil
		children := fe.Divide(sp)
		if sp.err != nil {
			slog.Warn("subdiv: using straight edge points", "submesh", sd.Submesh.Name, "group", sd.pos.Group, "pass", sd.pos.Pass, "face", fi, "algorithm", sd.Algorithm, "err", sp.err)
			st.Fallbacks++
		}
		for _, e := range fe.Edges {
			sp.edges.release(e)
		}
		out = append(out, children[:]...)
	}
	return out
}
