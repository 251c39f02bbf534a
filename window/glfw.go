// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"fmt"
	"runtime"

	"github.com/ballbeam-sim/ballbeam/core"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwWindow is a GLFW-backed IWindow that dispatches key events through an
// embedded core.Dispatcher, the same pattern g3n-engine's GlfwWindow uses
// for its full input event set, trimmed to the one event the CLI needs.
type GlfwWindow struct {
	core.Dispatcher
	win   *glfw.Window
	keyEv KeyEvent
}

var glfwKeys = map[glfw.Key]Key{
	glfw.KeyA:      KeyA,
	glfw.KeyD:      KeyD,
	glfw.KeyR:      KeyR,
	glfw.KeyEscape: KeyEscape,
}

// New creates and shows a GLFW window of the given size and title, and
// wires its key callback to dispatch OnKeyDown/OnKeyUp events.
func New(width, height int, title string) (*GlfwWindow, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	glfwWin, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: create window: %w", err)
	}
	glfwWin.MakeContextCurrent()

	w := &GlfwWindow{win: glfwWin}
	w.Dispatcher.Initialize()

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		mapped, ok := glfwKeys[key]
		if !ok {
			mapped = KeyUnknown
		}
		w.keyEv.Key = mapped
		w.keyEv.Mods = ModifierKey(mods)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.Dispatch(OnKeyDown, &w.keyEv)
		case glfw.Release:
			w.Dispatch(OnKeyUp, &w.keyEv)
		}
	})

	return w, nil
}

// ShouldClose reports whether the user has requested the window close.
func (w *GlfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents processes pending input events, running the key callback for
// anything that happened since the last call.
func (w *GlfwWindow) PollEvents() {
	glfw.PollEvents()
}

// Destroy tears down the underlying GLFW window and terminates GLFW.
func (w *GlfwWindow) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
