// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

//go:generate core generate

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	"golang.org/x/exp/maps"
)

// Algorithms are the subdivision algorithms. They share the
// face splitting and differ only in how the point on an edge is computed.
type Algorithms int32 //enums:enum -transform kebab

const (
	// PNTriangles projects edge points onto the sphere around the
	// division center, with the average radius of the edge ends.
	PNTriangles Algorithms = iota

	// Loop places edge points with the Loop weights, using the
	// opposite corners of the two faces sharing the edge.
	Loop

	// Phong bends edge points toward the tangent planes of the
	// edge ends, given by their normals.
	Phong
)

// PointFunc returns the edge point function of the algorithm.
func (a Algorithms) PointFunc() PointFunc {
	switch a {
	case Loop:
		return LoopPoint
	case Phong:
		return PhongPoint
	default:
		return PNTrianglesPoint
	}
}

// AlgorithmNames returns the sorted names of all algorithms.
func AlgorithmNames() []string {
	names := maps.Keys(_AlgorithmsValueMap)
	slices.Sort(names)
	return names
}

// PointContext is the data a [PointFunc] may use beyond the two edge ends.
type PointContext struct {

	// T is the fraction along the edge from the first end, 0.5 for the midpoint.
	T float32

	// Center is the division center, if one is given.
	Center *math32.Vector3

	// Opposite are the corners opposite the edge in the faces that share it:
	// two for an interior edge, one for a boundary edge.
	Opposite []mesh.Vertex

	// Alpha is the Phong shape factor.
	Alpha float32
}

// PointFunc computes the new vertex on the edge from a to b.
// It returns [ErrMissingTopology] when the context lacks the data it needs.
type PointFunc func(a, b mesh.Vertex, ctx *PointContext) (mesh.Vertex, error)
