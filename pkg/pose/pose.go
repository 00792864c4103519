// Package pose drives a cuboid's orientation over time: a constant spin plus
// spring-damped velocity from drags and impulses.
package pose

import (
	"math"
	"sync"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
)

const (
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
	springFrequency = 4.0
	springDamping   = 1.0

	// DragGain converts one cell of pointer movement to degrees per second.
	DragGain = 60.0

	minExtent = 0.05
	maxExtent = 4.0
)

// Axis tracks angle and angular velocity for one rotation axis. Velocity
// decays towards zero through a harmonica spring.
type Axis struct {
	Angle    float64 // Degrees
	Velocity float64 // Degrees per second

	spring   harmonica.Spring
	springDt float64
	accel    float64 // internal spring velocity (for animating Velocity toward 0)
}

// Update advances the axis by dt seconds with an extra constant rate in
// degrees per second.
func (a *Axis) Update(dt, rate float64) {
	if dt <= 0 {
		return
	}
	a.Angle += (a.Velocity + rate) * dt

	// harmonica precomputes coefficients for a fixed step; rebuild only when
	// the step changes.
	if dt != a.springDt {
		a.spring = harmonica.NewSpring(dt, springFrequency, springDamping)
		a.springDt = dt
	}
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Driver produces a cuboid pose per frame. It is safe for concurrent use by
// an input goroutine and a render loop.
type Driver struct {
	mu sync.Mutex

	pitch, yaw, roll Axis
	spin             math3d.Vec3
	position         math3d.Vec3
	halfExtents      math3d.Vec3
	initial          models.Cuboid
}

// NewDriver creates a driver starting at base, rotating at spin degrees per
// second around X, Y and Z.
func NewDriver(base models.Cuboid, spin math3d.Vec3) *Driver {
	d := &Driver{initial: base, spin: spin}
	d.reset()
	return d
}

func (d *Driver) reset() {
	d.pitch = Axis{Angle: d.initial.Orientation.X}
	d.yaw = Axis{Angle: d.initial.Orientation.Y}
	d.roll = Axis{Angle: d.initial.Orientation.Z}
	d.position = d.initial.Position
	d.halfExtents = d.initial.HalfExtents
}

// Reset returns to the starting pose and stops all motion except spin.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reset()
}

// ApplyImpulse adds angular velocity in degrees per second.
func (d *Driver) ApplyImpulse(pitch, yaw, roll float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pitch.Velocity += pitch
	d.yaw.Velocity += yaw
	d.roll.Velocity += roll
}

// Drag turns a pointer movement of dx columns and dy rows into an impulse:
// horizontal movement yaws, vertical movement pitches.
func (d *Driver) Drag(dx, dy int) {
	d.ApplyImpulse(float64(dy)*DragGain, float64(dx)*DragGain, 0)
}

// SetSpin changes the constant rotation rate.
func (d *Driver) SetSpin(spin math3d.Vec3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spin = spin
}

// Spin returns the constant rotation rate.
func (d *Driver) Spin() math3d.Vec3 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.spin
}

// Zoom scales the half-extents by factor, keeping each between fixed limits.
func (d *Driver) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	clampExtent := func(v float64) float64 {
		return min(max(v*factor, minExtent), maxExtent)
	}
	d.halfExtents = math3d.V3(
		clampExtent(d.halfExtents.X),
		clampExtent(d.halfExtents.Y),
		clampExtent(d.halfExtents.Z),
	)
}

// Update advances all axes by dt seconds.
func (d *Driver) Update(dt float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pitch.Update(dt, d.spin.X)
	d.yaw.Update(dt, d.spin.Y)
	d.roll.Update(dt, d.spin.Z)
}

// Pose returns the current cuboid. Angles are wrapped into [0, 360).
func (d *Driver) Pose() models.Cuboid {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.Cuboid{
		Position:    d.position,
		HalfExtents: d.halfExtents,
		Orientation: math3d.V3(wrapDegrees(d.pitch.Angle), wrapDegrees(d.yaw.Angle), wrapDegrees(d.roll.Angle)),
	}
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
