// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solids generates the primitive solid meshes and runs the
// animated scenes headlessly, on the recording backend.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/solids/colors"
	"cogentcore.org/solids/config"
	"cogentcore.org/solids/gpu/recorder"
	"cogentcore.org/solids/scenes"
	"cogentcore.org/solids/shape"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the solids cli.
type Config struct {

	// Kind is the kind of shape to show stats for,
	// or all of them if it is not specified.
	Kind string `cmd:"stats" posarg:"0" required:"-"`

	// File is a scene config file in TOML, YAML or JSON format.
	// The default scene config is used if it is not specified.
	File string `cmd:"run" flag:"f,file"`

	// Scene overrides the scene in the config file: two or three.
	Scene string `cmd:"run" flag:"s,scene"`

	// Frames is the number of animation frames to run.
	Frames int `cmd:"run" default:"720" flag:"n,frames"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("solids", "Solids generates primitive solid meshes and runs animated scenes of them.")
	cli.Run(opts, &Config{}, Run, Stats)
}

// Run builds the configured scene on the recording backend,
// initializes it, and runs the given number of frames, each an
// animation update followed by a render. It prints the final light
// positions and logs the number of draw calls.
func Run(c *Config) error { //cli:cmd -root
	sc := config.New()
	if c.File != "" {
		var err error
		sc, err = config.Open(c.File)
		if err != nil {
			return err
		}
	}
	if c.Scene != "" {
		sc.Scene = c.Scene
	}
	dv := recorder.New()
	an, err := scenes.New(sc, dv, dv.Program, nil)
	if err != nil {
		return err
	}
	if err := an.Initialize(); err != nil {
		return err
	}
	s := an.AsScene()
	for range c.Frames {
		an.AnimationUpdate()
		s.Render()
	}
	s.LogLights()
	writeLights(termenv.NewOutput(os.Stdout), s)
	slog.Info("solids: run", "scene", s.Name, "frames", c.Frames, "angle", s.Angle, "draws", len(dv.Draws))
	s.Release()
	return dv.Err()
}

// Stats prints the vertex and index counts, bounding box and vertex
// layout of the mesh for a shape with default parameters,
// or for all of the shapes.
func Stats(c *Config) error {
	kinds := shape.Kinds()
	if c.Kind != "" {
		kinds = []string{c.Kind}
	}
	return writeStats(termenv.NewOutput(os.Stdout), kinds)
}

func writeStats(out *termenv.Output, kinds []string) error {
	for _, kind := range kinds {
		gen, err := shape.New(kind)
		if err != nil {
			return err
		}
		ms, err := gen.Generate()
		if err != nil {
			return err
		}
		bb := ms.BBox()
		title := out.String(kind).Bold().Foreground(out.Color("6"))
		fmt.Fprintf(out, "%s\n", title)
		fmt.Fprintf(out, "  vertices:  %d\n  indexes:   %d\n  triangles: %d\n", ms.NumVertex(), ms.NumIndex(), ms.NumIndex()/3)
		fmt.Fprintf(out, "  bbox:      %v to %v\n", bb.Min, bb.Max)
		writeLayout(out, &ms.Layout)
	}
	return nil
}

func writeLayout(w io.Writer, ly *shape.Layout) {
	as := make([]string, len(ly.Attribs))
	for i, a := range ly.Attribs {
		as[i] = fmt.Sprintf("%s[%d:%d]", a.Name, a.Offset, a.Offset+a.Size)
	}
	fmt.Fprintf(w, "  layout:    stride %d: %s\n", ly.Stride, strings.Join(as, " "))
}

// writeLights prints each light of the scene with a swatch of its color.
func writeLights(out *termenv.Output, s *scenes.Scene) {
	for _, kv := range s.Lights.Order {
		lt := kv.Value
		hex := colors.Hex(lt.Color)
		sw := out.String("■").Foreground(out.Color(hex))
		fmt.Fprintf(out, "%s %s %s pos %.3g %.3g %.3g\n", sw, kv.Key, hex, lt.Pos.X, lt.Pos.Y, lt.Pos.Z)
	}
}
