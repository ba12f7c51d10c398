// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithms{
		"pn-triangles": PNTriangles,
		"PN-Triangles": PNTriangles,
		"loop":         Loop,
		"LOOP":         Loop,
		"Phong":        Phong,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseAlgorithm("catmull-clark")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	assert.Equal(t, []string{"loop", "phong", "pn-triangles"}, AlgorithmNames())
	assert.Equal(t, "pn-triangles", PNTriangles.String())
}

func TestParamsYAML(t *testing.T) {
	var p Params
	p.Defaults()
	require.NoError(t, p.Validate())

	doc := "occurrences: 3\nalgorithm: Phong\nboundscenter: true\nalpha: 0.5\n"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))
	assert.Equal(t, 3, p.Occurrences)
	assert.Equal(t, Phong, p.Algorithm)
	assert.True(t, p.BoundsCenter)
	assert.Equal(t, float32(0.5), p.Alpha)
	assert.Equal(t, float32(0.5), p.Ratio)
	assert.NoError(t, p.Validate())

	b, err := yaml.Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "algorithm: phong")
}
