// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// DefaultTolerance is the default [Params.Tolerance].
const DefaultTolerance = 1e-5

// Params are the parameters of one subdivision run.
// Call [Params.Defaults] before setting fields.
type Params struct {

	// Occurrences is the number of subdivision passes; 0 does nothing.
	Occurrences int `default:"1" min:"0"`

	// Algorithm computes the new points on the edges.
	Algorithm Algorithms `default:"pn-triangles"`

	// Center is the division center used by [PNTriangles]. When nil,
	// [Params.BoundsCenter] or the per-edge estimate of [CenterFrom] is used.
	Center *math32.Vector3 `toml:"-" yaml:"-"`

	// BoundsCenter uses the center of the bounding box of the submesh
	// (or the whole mesh for [SubdivideMesh]) as the division center
	// when no Center is given.
	BoundsCenter bool

	// Ratio is the fraction along each edge at which it is split,
	// measured from its lower vertex index. It must be in (0, 1).
	Ratio float32 `default:"0.5" min:"0" max:"1"`

	// Alpha is the [Phong] shape factor in [0, 1]:
	// 0 gives straight points and 1 the full projection.
	Alpha float32 `default:"0.75" min:"0" max:"1"`

	// Tolerance is the distance below which two positions are the
	// same vertex. 0 requires exact equality.
	Tolerance float32 `default:"0.00001" min:"0"`

	// Normals recomputes smooth vertex normals when done.
	Normals bool `default:"true"`

	// Tangents recomputes vertex tangents from the face texture
	// coordinates when done.
	Tangents bool
}

// Defaults sets the default values.
func (p *Params) Defaults() {
	p.Occurrences = 1
	p.Algorithm = PNTriangles
	p.Center = nil
	p.BoundsCenter = false
	p.Ratio = 0.5
	p.Alpha = 0.75
	p.Tolerance = DefaultTolerance
	p.Normals = true
	p.Tangents = false
}

// Validate returns an error wrapping [ErrInvalidConfiguration]
// if the parameters cannot be used.
func (p *Params) Validate() error {
	switch {
	case p.Occurrences < 0:
		return fmt.Errorf("%w: occurrences %d is negative", ErrInvalidConfiguration, p.Occurrences)
	case p.Algorithm < 0 || p.Algorithm >= AlgorithmsN:
		return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfiguration, p.Algorithm)
	case !(p.Ratio > 0 && p.Ratio < 1):
		return fmt.Errorf("%w: ratio %g is not in (0, 1)", ErrInvalidConfiguration, p.Ratio)
	case !(p.Alpha >= 0 && p.Alpha <= 1):
		return fmt.Errorf("%w: alpha %g is not in [0, 1]", ErrInvalidConfiguration, p.Alpha)
	case !(p.Tolerance >= 0):
		return fmt.Errorf("%w: tolerance %g is negative", ErrInvalidConfiguration, p.Tolerance)
	}
	return nil
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithms, error) {
	var a Algorithms
	if err := a.SetString(name); err != nil {
		return a, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return a, nil
}
