// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Dispatcher implements an event dispatcher
type Dispatcher struct {
	evmap map[string][]subscription // maps event name to subcriptions list
}

// IDispatcher is the interface for dispatchers
type IDispatcher interface {
	SubscribeID(evname string, id interface{}, cb Callback)
	UnsubscribeID(evname string, id interface{}) int
	Dispatch(evname string, ev interface{}) bool
}

// Callback is the type for the Dispatcher callbacks functions
type Callback func(string, interface{})

type subscription struct {
	id interface{}
	cb func(string, interface{})
}

// Initialize initializes this event dispatcher.
// It is normally used by other types which embed an event dispatcher
func (d *Dispatcher) Initialize() {

	d.evmap = make(map[string][]subscription)
}

// SubscribeID subscribes to receive events with the given name.
// The function accepts a unique id to be use to unsubscribe this event
func (d *Dispatcher) SubscribeID(evname string, id interface{}, cb Callback) {

	d.evmap[evname] = append(d.evmap[evname], subscription{id, cb})
}

// UnsubscribeID unsubscribes from the specified event and subscription id
// Returns the number of subscriptions found.
func (d *Dispatcher) UnsubscribeID(evname string, id interface{}) int {

	// Get list of subscribers for this event
	// If not found, nothing to do
	subs, ok := d.evmap[evname]
	if !ok {
		return 0
	}

	// Remove all subscribers with the specified id for this event
	found := 0
	pos := 0
	for pos < len(subs) {
		if subs[pos].id == id {
			copy(subs[pos:], subs[pos+1:])
			subs[len(subs)-1] = subscription{}
			subs = subs[:len(subs)-1]
			found++
		} else {
			pos++
		}
	}
	d.evmap[evname] = subs
	return found
}

// Dispatch dispatch the specified event and data to all registered subscribers.
func (d *Dispatcher) Dispatch(evname string, ev interface{}) bool {

	// Get list of subscribers for this event
	subs := d.evmap[evname]
	if subs == nil {
		return false
	}

	// Dispatch to all subscribers
	for i := 0; i < len(subs); i++ {
		subs[i].cb(evname, ev)
	}
	return false
}
