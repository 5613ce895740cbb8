package modal

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// MotionInterval is the frame interval of the overlay slide animation.
const MotionInterval = time.Second / 60

var frameDelta = MotionInterval.Seconds()

// Motion animates the overlay between hidden (0) and shown (1) with a
// damped spring. The presentation layer maps the position to a slide
// offset and a dim level.
type Motion struct {
	spring  harmonica.Spring
	instant bool
	pos     float64
	vel     float64
}

// NewMotion builds a Motion for a motion level: "full", "reduced" or "off".
// Springs are built for MotionInterval, the rate Step is called at.
func NewMotion(level string) Motion {
	switch level {
	case "reduced":
		return Motion{spring: harmonica.NewSpring(frameDelta, 6.0, 1.0)}
	case "off":
		return Motion{instant: true}
	}
	return Motion{spring: harmonica.NewSpring(frameDelta, 10.0, 0.8)}
}

// Position returns the current position in [0, 1].
func (m Motion) Position() float64 {
	return math.Max(0, math.Min(1, m.pos))
}

// Step advances one frame toward target and reports whether the motion
// has settled there.
func (m *Motion) Step(target float64) bool {
	if m.instant {
		m.pos, m.vel = target, 0
		return true
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	if math.Abs(m.pos-target) < 0.001 && math.Abs(m.vel) < 0.001 {
		m.pos, m.vel = target, 0
		return true
	}
	return false
}

// Settled reports whether the motion rests at target.
func (m Motion) Settled(target float64) bool {
	return m.pos == target && m.vel == 0
}
