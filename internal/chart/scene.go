// Package chart turns pattern geometry into an animated diagram.
//
// The output is a declarative Scene: shapes with stroke, dash and opacity
// plus per-shape timing. Hosts either sample it (Scene.At) and rasterize
// the frame, as the terminal Canvas does, or hand the whole thing to a
// vector surface (WriteSVG).
package chart

import (
	"math"
	"time"

	"github.com/abhisek/edgefinder/internal/pattern"
)

// View box of every diagram.
const (
	Width  = 350.0
	Height = 100.0
	// GridCell is the spacing of the background grid.
	GridCell = 20.0
)

const gridColor = "#1a1a24"

// Reveal timings.
const (
	DrawDuration    = 2 * time.Second
	AnnotationDelay = 1 * time.Second
	AnnotationStep  = 300 * time.Millisecond
	FadeDuration    = 500 * time.Millisecond
)

// Kind is the type of a Shape.
type Kind int

const (
	KindPath Kind = iota
	KindRect
	KindCircle
	KindText
)

// Role tags what a shape depicts, so hosts can style by meaning.
type Role int

const (
	RoleGrid Role = iota
	RoleReference
	RoleBox
	RolePrimary
	RoleMarker
	RoleLabel
)

// Easing is a timing curve.
type Easing int

const (
	Linear Easing = iota
	EaseOut
)

// Apply maps linear progress t in [0, 1] through the curve.
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	if e == EaseOut {
		// cubic-bezier(0, 0, 0.58, 1) is close to a cubic ease-out.
		return 1 - math.Pow(1-t, 3)
	}
	return t
}

// CSS returns the CSS timing-function keyword.
func (e Easing) CSS() string {
	if e == EaseOut {
		return "ease-out"
	}
	return "linear"
}

// Timing schedules a shape's animation. A zero Duration means static.
type Timing struct {
	Delay    time.Duration
	Duration time.Duration
	Easing   Easing
}

// Static reports whether the shape does not animate.
func (t Timing) Static() bool {
	return t.Duration == 0
}

// Progress returns eased progress at elapsed time.
func (t Timing) Progress(elapsed time.Duration) float64 {
	if t.Static() {
		return 1
	}
	if elapsed <= t.Delay {
		return 0
	}
	return t.Easing.Apply(float64(elapsed-t.Delay) / float64(t.Duration))
}

// End returns when the animation finishes.
func (t Timing) End() time.Duration {
	return t.Delay + t.Duration
}

// Animation says which property a Timing drives.
type Animation int

const (
	AnimNone Animation = iota
	// AnimDraw moves DashOffset from its initial value to 0.
	AnimDraw
	// AnimFade moves Opacity from 0 to its final value.
	AnimFade
)

// Shape is one drawable element.
type Shape struct {
	Kind Kind
	Role Role

	Path   pattern.Path  // KindPath
	Rect   pattern.Rect  // KindRect
	Center pattern.Point // KindCircle, KindText anchor
	Radius float64
	Text   string

	Stroke      string
	StrokeWidth float64
	Fill        string
	FillOpacity float64 // KindRect only; 0 means opaque
	Dash        []float64
	DashOffset  float64
	Opacity     float64

	Animation Animation
	Timing    Timing
}

// Scene is a complete diagram.
type Scene struct {
	PatternID string
	Shapes    []Shape
}

// Duration is when the last animation ends.
func (s Scene) Duration() time.Duration {
	var d time.Duration
	for _, sh := range s.Shapes {
		if sh.Animation != AnimNone && sh.Timing.End() > d {
			d = sh.Timing.End()
		}
	}
	return d
}

// At samples the scene at elapsed time: animated properties are resolved
// and timings become static.
func (s Scene) At(elapsed time.Duration) Scene {
	out := Scene{PatternID: s.PatternID, Shapes: make([]Shape, len(s.Shapes))}
	for i, sh := range s.Shapes {
		p := sh.Timing.Progress(elapsed)
		switch sh.Animation {
		case AnimDraw:
			sh.DashOffset = sh.DashOffset * (1 - p)
		case AnimFade:
			sh.Opacity = sh.Opacity * p
		}
		sh.Animation = AnimNone
		sh.Timing = Timing{}
		out.Shapes[i] = sh
	}
	return out
}

// BuildScene lays out the diagram for g. Shapes are ordered back to front.
func BuildScene(g pattern.Geometry) Scene {
	s := Scene{PatternID: g.ID}
	s.Shapes = append(s.Shapes, grid()...)

	if g.HasReference() {
		s.Shapes = append(s.Shapes, Shape{
			Kind:        KindPath,
			Role:        RoleReference,
			Path:        g.Reference,
			Stroke:      pattern.ColorGray.Hex(),
			StrokeWidth: 1,
			Dash:        []float64{4, 4},
			Opacity:     1,
		})
	}

	if g.Box != nil {
		s.Shapes = append(s.Shapes, Shape{
			Kind:        KindRect,
			Role:        RoleBox,
			Rect:        *g.Box,
			Stroke:      pattern.ColorCyan.Hex(),
			StrokeWidth: 1,
			Fill:        pattern.ColorCyan.Hex(),
			FillOpacity: 0.05,
			Dash:        []float64{4, 4},
			Opacity:     1,
		})
	}

	length := g.Path.Length()
	s.Shapes = append(s.Shapes, Shape{
		Kind:        KindPath,
		Role:        RolePrimary,
		Path:        g.Path,
		Stroke:      pattern.ColorCyan.Hex(),
		StrokeWidth: 2,
		Dash:        []float64{length},
		DashOffset:  length,
		Opacity:     1,
		Animation:   AnimDraw,
		Timing:      Timing{Duration: DrawDuration, Easing: EaseOut},
	})

	for i, a := range g.Annotations {
		t := Timing{
			Delay:    AnnotationDelay + time.Duration(i)*AnnotationStep,
			Duration: FadeDuration,
			Easing:   EaseOut,
		}
		s.Shapes = append(s.Shapes,
			Shape{
				Kind:      KindCircle,
				Role:      RoleMarker,
				Center:    a.Marker(),
				Radius:    3,
				Fill:      a.Color.Hex(),
				Opacity:   1,
				Animation: AnimFade,
				Timing:    t,
			},
			Shape{
				Kind:      KindText,
				Role:      RoleLabel,
				Center:    a.At,
				Text:      a.Label,
				Fill:      a.Color.Hex(),
				Opacity:   1,
				Animation: AnimFade,
				Timing:    t,
			},
		)
	}
	return s
}

func grid() []Shape {
	var shapes []Shape
	for x := 0.0; x <= Width; x += GridCell {
		shapes = append(shapes, gridLine(pattern.Point{X: x, Y: 0}, pattern.Point{X: x, Y: Height}))
	}
	for y := 0.0; y <= Height; y += GridCell {
		shapes = append(shapes, gridLine(pattern.Point{X: 0, Y: y}, pattern.Point{X: Width, Y: y}))
	}
	return shapes
}

func gridLine(a, b pattern.Point) Shape {
	return Shape{
		Kind: KindPath,
		Role: RoleGrid,
		Path: pattern.Path{
			{Op: pattern.MoveTo, Pts: []pattern.Point{a}},
			{Op: pattern.LineTo, Pts: []pattern.Point{b}},
		},
		Stroke:      gridColor,
		StrokeWidth: 0.5,
		Opacity:     1,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
