// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command subdivide builds a primitive mesh, subdivides it,
// and reports the resulting vertex and face counts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/subdiv/mesh"
	"cogentcore.org/subdiv/subdiv"
)

// Config is the configuration for the subdivide command.
type Config struct {

	// Shape is the primitive to subdivide: cube, icosahedron or plane.
	Shape string `posarg:"0" required:"-" default:"cube"`

	// Size is the edge size of the cube, the radius of the
	// icosahedron, or the width and height of the plane.
	Size float32 `default:"1"`

	// Segments is the number of grid cells per side of the plane.
	Segments int `default:"4"`

	// Occurrences is the number of subdivision passes.
	Occurrences int `flag:"n,occurrences" default:"1"`

	// Algorithm is the subdivision algorithm.
	Algorithm subdiv.Algorithms `flag:"a,algorithm" default:"loop"`

	// Center is the optional division center, as x, y and z.
	Center []float32

	// BoundsCenter uses the bounding box center as the division center
	// when no Center is given.
	BoundsCenter bool

	// Ratio is the fraction along each edge at which it is split.
	Ratio float32 `default:"0.5"`

	// Alpha is the Phong shape factor.
	Alpha float32 `default:"0.75"`

	// Tolerance is the distance below which two positions are the same vertex.
	Tolerance float32 `default:"0.00001"`

	// Report is an optional TOML file to save the run report to.
	Report string `flag:"r,report"`
}

// Report is the summary of one run saved with [Config.Report].
type Report struct {
	Shape       string
	Algorithm   subdiv.Algorithms
	Occurrences int
	Stats       subdiv.Stats
}

func main() {
	opts := cli.DefaultOptions("subdivide", "Subdivide builds a primitive mesh and subdivides it with PN-Triangles, Loop or Phong subdivision.")
	opts.DefaultFiles = []string{"subdivide.toml"}
	cli.Run(opts, &Config{}, Subdivide)
}

// Subdivide builds the configured shape and subdivides it.
func Subdivide(c *Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))

	g, err := NewShape(c.Shape, c.Size, c.Segments)
	if err != nil {
		return errors.Log(err)
	}
	p, err := c.Params()
	if err != nil {
		return errors.Log(err)
	}
	m := &mesh.Mesh{Name: c.Shape}
	m.AddSubmesh(c.Shape, g)
	st, err := subdiv.SubdivideMesh(m, p)
	if err != nil {
		return errors.Log(err)
	}
	slog.Info("subdivided", "shape", c.Shape, "algorithm", c.Algorithm, "occurrences", c.Occurrences, "degenerate", st.Degenerate, "fallbacks", st.Fallbacks)
	fmt.Printf("%s %s x%d: vertices %d -> %d, faces %d -> %d\n", c.Shape, c.Algorithm, c.Occurrences, st.VerticesBefore, st.VerticesAfter, st.FacesBefore, st.FacesAfter)

	if c.Report == "" {
		return nil
	}
	rep := &Report{Shape: c.Shape, Algorithm: c.Algorithm, Occurrences: c.Occurrences, Stats: st}
	return errors.Log(tomlx.Save(rep, c.Report))
}

// Params returns the subdivision parameters for the config.
func (c *Config) Params() (subdiv.Params, error) {
	var p subdiv.Params
	p.Defaults()
	p.Occurrences = c.Occurrences
	p.Algorithm = c.Algorithm
	p.BoundsCenter = c.BoundsCenter
	p.Ratio = c.Ratio
	p.Alpha = c.Alpha
	p.Tolerance = c.Tolerance
	switch len(c.Center) {
	case 0:
	case 3:
		ctr := math32.Vec3(c.Center[0], c.Center[1], c.Center[2])
		p.Center = &ctr
	default:
		return p, fmt.Errorf("%w: center needs 3 values, not %d", subdiv.ErrInvalidConfiguration, len(c.Center))
	}
	return p, p.Validate()
}

// NewShape returns the geometry of the named primitive.
func NewShape(name string, size float32, segs int) (*mesh.Geometry, error) {
	switch strings.ToLower(name) {
	case "cube":
		return mesh.NewCube(size), nil
	case "icosahedron", "ico":
		return mesh.NewIcosahedron(size), nil
	case "plane":
		return mesh.NewPlane(size, size, segs), nil
	}
	return nil, fmt.Errorf("%w: unknown shape %q", subdiv.ErrInvalidConfiguration, name)
}
