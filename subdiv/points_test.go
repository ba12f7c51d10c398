// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	cm "github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func vtx(x, y, z float32) mesh.Vertex {
	return mesh.Vertex{Pos: math32.Vec3(x, y, z)}
}

func TestPoints(t *testing.T) {
	pt := NewPoints([]mesh.Vertex{vtx(0, 0, 0), vtx(1, 0, 0)}, 0.01)
	assert.Equal(t, 2, pt.Len())

	i, ok := pt.Find(math32.Vec3(1.005, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = pt.Find(math32.Vec3(1.02, 0, 0))
	assert.False(t, ok)

	// new points get increasing indexes
	assert.Equal(t, 2, pt.FindOrAdd(vtx(0.5, 0, 0)))
	assert.Equal(t, 3, pt.FindOrAdd(vtx(0.5, 0.5, 0)))
	assert.Equal(t, 2, pt.FindOrAdd(vtx(0.5, 0.001, 0)))
	assert.Equal(t, 4, pt.Len())

	// close points in neighboring cells
	a := pt.FindOrAdd(vtx(0.0999, 2, 2))
	assert.Equal(t, a, pt.FindOrAdd(vtx(0.1001, 2, 2)))
	assert.Equal(t, a, pt.FindOrAdd(vtx(0.1001, 1.9999, 2.0001)))
	assert.Equal(t, 5, pt.Len())
}

func TestPointsExact(t *testing.T) {
	pt := NewPoints(nil, 0)
	a := pt.FindOrAdd(vtx(0.5, 0, 0))
	assert.Equal(t, 0, a)
	assert.Equal(t, a, pt.FindOrAdd(vtx(0.5, 0, 0)))
	assert.Equal(t, 1, pt.FindOrAdd(vtx(0.5000001, 0, 0)))
}

func TestPointsSeedDuplicates(t *testing.T) {
	seed := []mesh.Vertex{vtx(0, 0, 0), vtx(1, 1, 1), vtx(0, 0, 0)}
	pt := NewPoints(seed, DefaultTolerance)
	assert.Equal(t, 3, pt.Len())
	i, ok := pt.Find(math32.Vec3(0, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	// the registry does not alias the seed slice
	pt.FindOrAdd(vtx(2, 2, 2))
	seed[1].Pos.X = 5
	assert.Equal(t, float32(1), pt.Vertex(1).Pos.X)
}

func TestPointsOutOfCellRange(t *testing.T) {
	pt := NewPoints(nil, DefaultTolerance)
	far := pt.FindOrAdd(vtx(1e30, -1e30, 0))
	assert.Equal(t, far, pt.FindOrAdd(vtx(1e30, -1e30, 0)))
	inf := pt.FindOrAdd(vtx(cm.Inf(1), 0, 0))
	assert.NotEqual(t, far, inf)

	// NaN is never the same point, not even as itself
	nan := vtx(cm.NaN(), 0, 0)
	a := pt.FindOrAdd(nan)
	assert.NotEqual(t, a, pt.FindOrAdd(nan))
	_, ok := pt.Find(nan.Pos)
	assert.False(t, ok)
	assert.Equal(t, 0, pt.FindOrAdd(vtx(1e30, -1e30, 0)))
}
