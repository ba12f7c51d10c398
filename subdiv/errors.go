// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import "cogentcore.org/core/base/errors"

var (
	// ErrDegenerateFace is reported for a face with no area or with a
	// corner that is not a usable vertex. The face is kept unsplit, or
	// dropped if it references an unknown vertex, and subdivision continues.
	ErrDegenerateFace = errors.New("subdiv: degenerate face")

	// ErrMissingTopology is returned by a [PointFunc] that lacks the data
	// it needs, such as vertex normals. The straight edge point is used
	// instead for that edge.
	ErrMissingTopology = errors.New("subdiv: missing topology context")

	// ErrInvalidConfiguration is returned for invalid [Params],
	// before the submesh is touched.
	ErrInvalidConfiguration = errors.New("subdiv: invalid configuration")

	// ErrNoSubmesh is returned when no submesh is given to subdivide.
	ErrNoSubmesh = errors.New("subdiv: no submesh")

	// ErrNoSmoothingGroup is returned for a submesh without smoothing groups.
	ErrNoSmoothingGroup = errors.New("subdiv: no smoothing group")
)
