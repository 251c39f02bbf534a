// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene loads the textual, object-structured scene description
// (§6) that seeds a World with its initial bodies. The format is YAML,
// following the declarative-object-tree convention g3n-engine's gui.Builder
// uses to build panel trees from a parsed document.
package scene

import (
	"fmt"
	"os"

	"github.com/ballbeam-sim/ballbeam/math2d"
	"github.com/ballbeam-sim/ballbeam/physics"
	"github.com/ballbeam-sim/ballbeam/util/logger"
	"gopkg.in/yaml.v2"
)

var log = logger.New("scene", nil)

func init() {
	log.AddWriter(logger.NewConsole(false))
	log.SetLevel(logger.WARN)
}

// defaultGravity is used when a scene omits world.gravity.
var defaultGravity = [2]float32{0, 900}

// defaultRestitution and defaultMass are applied when a body entry omits
// the corresponding optional field, per §6.
const (
	defaultMass        = 1.0
	defaultRestitution = 0.8
)

type worldDesc struct {
	Gravity []float32  `yaml:"gravity"`
	Bounds  *boundsDoc `yaml:"bounds"`
}

type boundsDoc struct {
	Left   float32 `yaml:"left"`
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
}

type bodyDesc struct {
	Type            string    `yaml:"type"`
	Position        []float32 `yaml:"position"`
	Radius          float32   `yaml:"radius"`
	Width           float32   `yaml:"width"`
	Height          float32   `yaml:"height"`
	Mass            *float32  `yaml:"mass"`
	Restitution     *float32  `yaml:"restitution"`
	Velocity        []float32 `yaml:"velocity"`
	AngularVelocity float32   `yaml:"angular_velocity"`
	Angle           float32   `yaml:"angle"`
	Color           []int     `yaml:"color"`
	Static          bool      `yaml:"static"`
	Actuator        bool      `yaml:"actuator"`
}

type document struct {
	World  *worldDesc `yaml:"world"`
	Bodies []bodyDesc `yaml:"bodies"`
}

// Scene is a parsed scene description, ready to populate a World.
type Scene struct {
	doc document
}

// Load reads and parses the scene file at path. It is the sole
// construction-failure surface for a malformed or unreadable scene: the
// returned error distinguishes "file not found" from "invalid YAML" from
// "invalid body entry" so the host can react appropriately.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %q: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parsing %q: %w", path, err)
	}
	for i, b := range doc.Bodies {
		if b.Type != "circle" && b.Type != "rect" {
			return nil, fmt.Errorf("scene: %q: body %d: invalid type %q (want circle or rect)", path, i, b.Type)
		}
		if len(b.Position) != 2 {
			return nil, fmt.Errorf("scene: %q: body %d: position must have 2 components", path, i)
		}
	}
	return &Scene{doc: doc}, nil
}

// Populate creates the scene's bodies in the given, freshly-reset World, in
// file order. If more bodies are present than the world's remaining
// capacity, the surplus is logged and skipped rather than failing the
// whole load (§7). It sets world.Gravity, world.Bounds,
// world.ActuatorBodyIndex and world.ActuatorPivot.
func (s *Scene) Populate(world *physics.World) error {
	grav := defaultGravity
	if s.doc.World != nil && len(s.doc.World.Gravity) == 2 {
		grav[0], grav[1] = s.doc.World.Gravity[0], s.doc.World.Gravity[1]
	}
	world.Gravity = math2d.New(grav[0], grav[1])

	if s.doc.World != nil && s.doc.World.Bounds != nil {
		bd := s.doc.World.Bounds
		world.Bounds = physics.Bounds{Left: bd.Left, Top: bd.Top, Right: bd.Right, Bottom: bd.Bottom, Enabled: true}
	}

	world.ActuatorBodyIndex = -1
	for i, bd := range s.doc.Bodies {
		body, err := buildBody(bd)
		if err != nil {
			return fmt.Errorf("scene: body %d: %w", i, err)
		}
		idx, ok := world.AddBody(body)
		if !ok {
			log.Warn("scene: dropping body %d (%s): world at capacity (%d)", i, bd.Type, physics.MaxBodies)
			continue
		}
		if bd.Actuator {
			world.ActuatorBodyIndex = idx
			world.ActuatorPivot = body.Position
		}
	}
	return nil
}

func buildBody(bd bodyDesc) (*physics.Body, error) {
	pos := math2d.New(bd.Position[0], bd.Position[1])
	mass := valueOr(bd.Mass, defaultMass)
	restitution := valueOr(bd.Restitution, defaultRestitution)

	var body *physics.Body
	switch bd.Type {
	case "circle":
		if bd.Radius <= 0 {
			return nil, fmt.Errorf("circle requires a positive radius")
		}
		body = physics.NewCircleBody(pos, bd.Radius, mass, restitution, bd.Static)
	case "rect":
		if bd.Width <= 0 || bd.Height <= 0 {
			return nil, fmt.Errorf("rect requires positive width and height")
		}
		body = physics.NewRectBody(pos, bd.Width, bd.Height, mass, restitution, bd.Static)
	default:
		return nil, fmt.Errorf("invalid type %q", bd.Type)
	}

	body.Angle = bd.Angle
	body.AngularVelocity = bd.AngularVelocity
	if len(bd.Velocity) == 2 {
		body.Velocity = math2d.New(bd.Velocity[0], bd.Velocity[1])
	}
	if len(bd.Color) == 4 {
		for i, c := range bd.Color {
			body.Color[i] = byte(c)
		}
	}
	return body, nil
}

func valueOr(p *float32, fallback float32) float32 {
	if p == nil {
		return fallback
	}
	return *p
}
