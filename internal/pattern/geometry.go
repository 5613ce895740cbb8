package pattern

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in diagram space (a 350×100 view box, y grows down).
type Point struct {
	X float64
	Y float64
}

// Op is a path drawing operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo // Pts[0] is the control point, Pts[1] the end point
)

// Cmd is one drawing operation of a Path.
type Cmd struct {
	Op  Op
	Pts []Point
}

// Path is an ordered list of drawing operations. A MoveTo in the middle
// starts a new, disconnected subpath (the gap in a gap-fill diagram).
type Path []Cmd

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Color is a named color tag used by annotations and shapes.
type Color string

const (
	ColorCyan  Color = "cyan"
	ColorGreen Color = "green"
	ColorAmber Color = "amber"
	ColorRed   Color = "red"
	ColorGray  Color = "gray"
)

var colorHex = map[Color]string{
	ColorCyan:  "#00f0ff",
	ColorGreen: "#00ff88",
	ColorAmber: "#ffa726",
	ColorRed:   "#ff4757",
	ColorGray:  "#6b6b7b",
}

// Hex returns the color as a #rrggbb string. Unknown tags map to gray.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorGray]
}

// Annotation is a labeled marker on a diagram.
type Annotation struct {
	At    Point
	Label string
	Color Color
}

// Marker returns where the annotation's dot is drawn: just above the label.
func (a Annotation) Marker() Point {
	return Point{X: a.At.X, Y: a.At.Y - 10}
}

// Geometry is everything needed to draw one pattern schematic.
type Geometry struct {
	ID          string
	Path        Path
	Reference   Path  // optional flat benchmark line (VWAP); nil when absent
	Box         *Rect // optional shaded range (opening range); nil when absent
	Annotations []Annotation
}

// HasReference reports whether the geometry carries a reference line.
func (g Geometry) HasReference() bool {
	return len(g.Reference) > 0
}

// SVG renders the path as an SVG path "d" attribute.
func (p Path) SVG() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			b.WriteString("M")
		case LineTo:
			b.WriteString("L")
		case QuadTo:
			b.WriteString("Q")
		}
		for _, pt := range c.Pts {
			b.WriteByte(' ')
			b.WriteString(formatNum(pt.X))
			b.WriteByte(' ')
			b.WriteString(formatNum(pt.Y))
		}
	}
	return b.String()
}

// Subpaths flattens the path into polylines, one per subpath. Quadratic
// curves are approximated with steps line segments.
func (p Path) Subpaths(steps int) [][]Point {
	if steps < 1 {
		steps = 1
	}
	var (
		out     [][]Point
		current []Point
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			if len(c.Pts) == 0 {
				continue
			}
			flush()
			current = []Point{c.Pts[0]}
		case LineTo:
			if len(c.Pts) == 0 || len(current) == 0 {
				continue
			}
			current = append(current, c.Pts[0])
		case QuadTo:
			if len(c.Pts) < 2 || len(current) == 0 {
				continue
			}
			start := current[len(current)-1]
			ctrl, end := c.Pts[0], c.Pts[1]
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				current = append(current, Point{
					X: u*u*start.X + 2*u*t*ctrl.X + t*t*end.X,
					Y: u*u*start.Y + 2*u*t*ctrl.Y + t*t*end.Y,
				})
			}
		}
	}
	flush()
	return out
}

// Length returns the drawn length of the path. Gaps between subpaths
// are not counted.
func (p Path) Length() float64 {
	var total float64
	for _, sub := range p.Subpaths(16) {
		total += polylineLength(sub)
	}
	return total
}

func polylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += dist(pts[i-1], pts[i])
	}
	return total
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
