// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "github.com/ballbeam-sim/ballbeam/core"

// KeyState keeps track of the pressed/released state of the keys the CLI
// cares about, the same subscribe-and-record pattern g3n-engine's
// KeyState uses for its full keyboard, trimmed to A/D/R/Escape.
type KeyState struct {
	win    core.IDispatcher
	states map[Key]bool
}

// NewKeyState returns a new KeyState subscribed to win's key events.
func NewKeyState(win core.IDispatcher) *KeyState {
	ks := &KeyState{
		win: win,
		states: map[Key]bool{
			KeyA:      false,
			KeyD:      false,
			KeyR:      false,
			KeyEscape: false,
		},
	}
	ks.win.SubscribeID(OnKeyUp, ks, ks.onKey)
	ks.win.SubscribeID(OnKeyDown, ks, ks.onKey)
	return ks
}

// Dispose unsubscribes from the window's key events.
func (ks *KeyState) Dispose() {
	ks.win.UnsubscribeID(OnKeyUp, ks)
	ks.win.UnsubscribeID(OnKeyDown, ks)
}

// Pressed returns whether k is currently held down.
func (ks *KeyState) Pressed(k Key) bool {
	return ks.states[k]
}

func (ks *KeyState) onKey(evname string, ev interface{}) {
	kev := ev.(*KeyEvent)
	switch evname {
	case OnKeyUp:
		ks.states[kev.Key] = false
	case OnKeyDown:
		ks.states[kev.Key] = true
	}
}
