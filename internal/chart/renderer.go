package chart

import (
	"time"

	"github.com/abhisek/edgefinder/internal/pattern"
	"github.com/abhisek/edgefinder/internal/timer"
)

// FrameInterval is the renderer's frame clock period.
const FrameInterval = time.Second / 30

// Renderer plays a Scene on a frame clock. Each frame is a timer request;
// loading new geometry re-arms the clock, so frames scheduled for a
// previous diagram are ignored when they arrive.
type Renderer struct {
	// Instant skips the reveal and shows the final frame at once.
	Instant bool

	scene   Scene
	elapsed time.Duration
	clock   timer.Slot
	loaded  bool
}

// Load replaces the diagram and restarts the reveal from hidden. The
// returned request schedules the first frame; it is invalid when nothing
// needs animating.
func (r *Renderer) Load(g pattern.Geometry) timer.Request {
	r.scene = BuildScene(g)
	r.loaded = true
	r.elapsed = 0
	r.clock.Cancel()
	if r.Instant {
		r.elapsed = r.scene.Duration()
		return timer.Request{}
	}
	return r.clock.Arm(FrameInterval)
}

// Frame advances the clock by one interval when tok is the armed frame.
// It returns the next frame request, if the reveal is still running, and
// whether tok was accepted.
func (r *Renderer) Frame(tok timer.Token) (timer.Request, bool) {
	if !r.clock.Fire(tok) {
		return timer.Request{}, false
	}
	r.elapsed += FrameInterval
	if end := r.scene.Duration(); r.elapsed >= end {
		r.elapsed = end
		return timer.Request{}, true
	}
	return r.clock.Arm(FrameInterval), true
}

// Stop halts the clock and unloads the diagram.
func (r *Renderer) Stop() {
	r.clock.Cancel()
	r.loaded = false
	r.scene = Scene{}
	r.elapsed = 0
}

// Loaded reports whether a diagram is loaded.
func (r *Renderer) Loaded() bool {
	return r.loaded
}

// Running reports whether a frame is pending.
func (r *Renderer) Running() bool {
	return r.clock.Pending()
}

// Elapsed returns the playback position.
func (r *Renderer) Elapsed() time.Duration {
	return r.elapsed
}

// Scene returns the full animated scene.
func (r *Renderer) Scene() Scene {
	return r.scene
}

// Current returns the scene sampled at the playback position.
func (r *Renderer) Current() Scene {
	return r.scene.At(r.elapsed)
}
