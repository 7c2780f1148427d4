// Package motion turns sampled pointer and scroll input into smoothed visual
// parameters.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring by its physical parameters.
type SpringConfig struct {
	Stiffness float64 `mapstructure:"stiffness"`
	Damping   float64 `mapstructure:"damping"`
	Mass      float64 `mapstructure:"mass"`
}

// Presets used across the page.
var (
	CursorSpring    = SpringConfig{Stiffness: 1000, Damping: 60, Mass: 1}
	SpotlightSpring = SpringConfig{Stiffness: 100, Damping: 20, Mass: 1}
	MagneticSpring  = SpringConfig{Stiffness: 150, Damping: 15, Mass: 0.1}
	NavbarSpring    = SpringConfig{Stiffness: 350, Damping: 35, Mass: 1}
)

const settleEpsilon = 0.01

func (c SpringConfig) normalized() SpringConfig {
	if c.Mass <= 0 {
		c.Mass = 1
	}
	if c.Stiffness <= 0 {
		c.Stiffness = 100
	}
	if c.Damping < 0 {
		c.Damping = 0
	}
	return c
}

// AngularFrequency returns sqrt(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	c = c.normalized()
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio returns c / (2 sqrt(k m)).
func (c SpringConfig) DampingRatio() float64 {
	c = c.normalized()
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring is a one-dimensional spring-damped value.
type Spring struct {
	spring   harmonica.Spring
	Position float64
	Velocity float64
	Target   float64
}

// NewSpring creates a spring stepping at fps frames per second, resting at
// start.
func NewSpring(cfg SpringConfig, fps int, start float64) *Spring {
	if fps <= 0 {
		fps = 60
	}
	return &Spring{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
		Position: start,
		Target:   start,
	}
}

// Step advances the spring by one frame and returns the new position.
func (s *Spring) Step() float64 {
	s.Position, s.Velocity = s.spring.Update(s.Position, s.Velocity, s.Target)
	if s.Settled() {
		s.Position = s.Target
		s.Velocity = 0
	}
	return s.Position
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return math.Abs(s.Position-s.Target) < settleEpsilon && math.Abs(s.Velocity) < settleEpsilon
}

// Jump moves the spring to v without animating.
func (s *Spring) Jump(v float64) {
	s.Position = v
	s.Target = v
	s.Velocity = 0
}

// Point is a position in terminal cells.
type Point struct {
	X float64
	Y float64
}

// Cell rounds the point to integer cell coordinates.
func (p Point) Cell() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Follower is a two-dimensional spring pair that chases a target point.
type Follower struct {
	x *Spring
	y *Spring
}

// NewFollower creates a follower resting at start.
func NewFollower(cfg SpringConfig, fps int, start Point) *Follower {
	return &Follower{
		x: NewSpring(cfg, fps, start.X),
		y: NewSpring(cfg, fps, start.Y),
	}
}

// SetTarget changes the point the follower chases.
func (f *Follower) SetTarget(p Point) {
	f.x.Target = p.X
	f.y.Target = p.Y
}

// Target returns the current target.
func (f *Follower) Target() Point {
	return Point{X: f.x.Target, Y: f.y.Target}
}

// Position returns the current smoothed position.
func (f *Follower) Position() Point {
	return Point{X: f.x.Position, Y: f.y.Position}
}

// Step advances both axes by one frame.
func (f *Follower) Step() Point {
	return Point{X: f.x.Step(), Y: f.y.Step()}
}

// Settled reports whether both axes are at rest.
func (f *Follower) Settled() bool {
	return f.x.Settled() && f.y.Settled()
}

// Jump places the follower at p without animating.
func (f *Follower) Jump(p Point) {
	f.x.Jump(p.X)
	f.y.Jump(p.Y)
}
