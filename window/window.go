// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window wraps a GLFW window for the interactive CLI mode. Unlike
// g3n-engine's window package it carries no GL-context or cursor-asset
// concerns: the simulator never renders through this window, it only
// polls key state (A/D to act, R to reset, Escape to quit).
package window

import "github.com/ballbeam-sim/ballbeam/core"

// IWindow is the interface the interactive CLI drives.
type IWindow interface {
	core.IDispatcher
	ShouldClose() bool
	PollEvents()
	Destroy()
}

// Key corresponds to a keyboard key.
type Key int

// ModifierKey corresponds to a set of modifier keys (bitmask).
type ModifierKey int

// Keys the interactive CLI cares about; see §6 ("A/D for action, R for
// reset"). Unrecognized keys still dispatch as KeyUnknown rather than
// being dropped, so a host could extend behavior without touching this
// package.
const (
	KeyUnknown = Key(iota - 1)
	KeyA
	KeyD
	KeyR
	KeyEscape
)

// Window event names.
const (
	OnKeyUp   = "w.OnKeyUp"
	OnKeyDown = "w.OnKeyDown"
)

// KeyEvent describes a window key event.
type KeyEvent struct {
	Key  Key
	Mods ModifierKey
}
