// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debug defines the rendering seam between the physics/sim core
// and an optional display. The core never draws anything itself; it only
// calls a Renderer, so a headless environment can run with NullRenderer
// and an interactive one can plug in a real backend. Package window supplies
// input only and does not implement Renderer.
package debug

import "github.com/ballbeam-sim/ballbeam/math2d"

// Renderer receives one frame's worth of debug draw calls from
// env.Environment.Render. Calls between Flush and the next Flush belong to
// the same frame; a Renderer is free to batch them however it likes.
type Renderer interface {
	DrawCircle(center math2d.Vector, radius, angle float32, color [4]byte)
	DrawRect(center math2d.Vector, halfWidth, halfHeight, angle float32, color [4]byte)
	DrawLine(from, to math2d.Vector, color [4]byte)
	Flush()
}

// NullRenderer discards every draw call. It is the default Renderer for a
// headless Environment.
type NullRenderer struct{}

func (NullRenderer) DrawCircle(math2d.Vector, float32, float32, [4]byte)         {}
func (NullRenderer) DrawRect(math2d.Vector, float32, float32, float32, [4]byte) {}
func (NullRenderer) DrawLine(from, to math2d.Vector, color [4]byte)             {}
func (NullRenderer) Flush()                                                     {}
