// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ballbeam runs the ball-on-beam environment either headlessly,
// stepping as fast as possible with a null action, or interactively in a
// window where A/D drive the beam, R reloads a fresh episode and Escape
// quits. The interactive loop advances the environment by one fixed
// timestep per window frame. Its argument parsing and headless/interactive
// split are grounded on the original main_sim.c reference harness.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ballbeam-sim/ballbeam/debug"
	"github.com/ballbeam-sim/ballbeam/env"
	"github.com/ballbeam-sim/ballbeam/util/logger"
	"github.com/ballbeam-sim/ballbeam/window"
)

var log = logger.New("ballbeam", nil)

func init() {
	log.AddWriter(logger.NewConsole(false))
	log.SetLevel(logger.INFO)
}

const (
	simDt        = float32(1.0 / 240)
	windowWidth  = 960
	windowHeight = 600
)

func main() {
	var headless bool
	var scenePath string
	var seed uint
	flag.BoolVar(&headless, "headless", false, "disable window creation and rendering")
	flag.BoolVar(&headless, "h", false, "shorthand for --headless")
	flag.StringVar(&scenePath, "scene", "scene/testdata/fulcrum.yaml", "scene file to load")
	flag.UintVar(&seed, "seed", 12345, "RNG seed")
	flag.Parse()

	e, err := env.New(scenePath, uint32(seed), simDt, headless)
	if err != nil {
		log.Fatal("creating environment: %v", err)
		os.Exit(1)
	}
	if _, err := e.Reset(); err != nil {
		log.Fatal("resetting environment: %v", err)
		os.Exit(1)
	}

	if headless {
		runHeadless(e)
		return
	}
	if err := runInteractive(e); err != nil {
		log.Fatal("%v", err)
		os.Exit(1)
	}
}

func runHeadless(e *env.Environment) {
	const steps = 10_000_000
	for i := 0; i < steps; i++ {
		result := e.Step(0)
		if result.Terminated || result.Truncated {
			if _, err := e.Reset(); err != nil {
				log.Error("reset failed: %v", err)
				return
			}
		}
	}
	log.Info("headless run complete: %d steps", steps)
}

func runInteractive(e *env.Environment) error {
	win, err := window.New(windowWidth, windowHeight, "ballbeam")
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	keys := window.NewKeyState(win)
	defer keys.Dispose()

	frameStart := time.Now()
	var debugTimer float32
	var stepCount int64

	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(frameStart)
		frameStart = now

		if keys.Pressed(window.KeyEscape) {
			break
		}

		var action float32
		if keys.Pressed(window.KeyA) {
			action -= 1
		}
		if keys.Pressed(window.KeyD) {
			action += 1
		}

		result := e.Step(action)
		stepCount++
		if result.Terminated || result.Truncated {
			if _, err := e.Reset(); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
		}
		if keys.Pressed(window.KeyR) {
			e.Simulator.Seed = rand.Uint32()
			if _, err := e.Reset(); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
		}

		debugTimer += float32(dt.Seconds())
		if debugTimer >= 1 {
			log.Info("steps=%d action=%+.2f angle=%+.4f rad angvel=%+.4f rad/s",
				stepCount, action, e.Simulator.Actuator.Angle, e.Simulator.Actuator.AngularVelocity)
			debugTimer = 0
		}

		// No GL rendering backend is wired up (§1, out of scope); the
		// window exists for input only, so debug draw calls go nowhere.
		e.Render(debug.NullRenderer{})
		win.PollEvents()
	}
	return nil
}
