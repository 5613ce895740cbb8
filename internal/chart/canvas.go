package chart

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/pattern"
)

// Braille dot bits, indexed [y][x] inside a 2×4 cell.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Minimum opacity at which faded shapes are drawn, and below which they
// are drawn dim.
const (
	hiddenBelow = 0.05
	dimBelow    = 0.6
)

type cell struct {
	dots  rune
	glyph rune
	color string
	dim   bool
}

// Canvas rasterizes a sampled Scene into braille cells for a terminal.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns a canvas of cols×rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

// Draw rasterizes a static frame (see Scene.At). The grid is skipped; at
// braille resolution it would drown the price line.
func (c *Canvas) Draw(frame Scene) {
	for _, sh := range frame.Shapes {
		if sh.Role == RoleGrid || sh.Opacity < hiddenBelow {
			continue
		}
		dim := sh.Opacity < dimBelow
		switch sh.Kind {
		case KindPath:
			c.strokePath(sh, dim)
		case KindRect:
			c.strokeRect(sh, dim)
		case KindCircle:
			c.glyphAt(sh.Center, '●', sh.Fill, dim)
		case KindText:
			c.text(sh.Center, sh.Text, sh.Fill, dim)
		}
	}
}

// Lines returns the canvas as styled terminal lines.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var b strings.Builder
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			r := cl.glyph
			if r == 0 {
				if cl.dots == 0 {
					b.WriteRune(' ')
					continue
				}
				r = 0x2800 + cl.dots
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(cl.color))
			if cl.dim {
				style = style.Faint(true)
			}
			b.WriteString(style.Render(string(r)))
		}
		lines[y] = b.String()
	}
	return lines
}

// Plain returns the canvas runes without styling.
func (c *Canvas) Plain() []string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		row := make([]rune, c.cols)
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			switch {
			case cl.glyph != 0:
				row[x] = cl.glyph
			case cl.dots != 0:
				row[x] = 0x2800 + cl.dots
			default:
				row[x] = ' '
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) strokePath(sh Shape, dim bool) {
	limit := math.Inf(1)
	var dashes []float64
	if sh.Role == RolePrimary && len(sh.Dash) == 1 {
		// A single-entry dash equal to the path length is the reveal
		// technique: the offset hides the tail of the line.
		limit = sh.Dash[0] - sh.DashOffset
	} else {
		dashes = sh.Dash
	}

	travelled := 0.0
	for _, sub := range sh.Path.Subpaths(12) {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			seg := math.Hypot(b.X-a.X, b.Y-a.Y)
			c.segment(a, b, travelled, seg, limit, dashes, sh.Stroke, dim)
			travelled += seg
		}
	}
}

func (c *Canvas) strokeRect(sh Shape, dim bool) {
	r := sh.Rect
	corners := []pattern.Point{{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y}, {X: r.X + r.W, Y: r.Y + r.H}, {X: r.X, Y: r.Y + r.H}, {X: r.X, Y: r.Y}}
	travelled := 0.0
	for i := 1; i < len(corners); i++ {
		a, b := corners[i-1], corners[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		c.segment(a, b, travelled, seg, math.Inf(1), sh.Dash, sh.Stroke, dim)
		travelled += seg
	}
}

// segment plots a→b. start is the distance already travelled along the
// shape, limit the drawn length cap, dashes an on/off pattern.
func (c *Canvas) segment(a, b pattern.Point, start, length, limit float64, dashes []float64, color string, dim bool) {
	if start >= limit || length == 0 {
		return
	}
	pw, ph := float64(c.cols*2), float64(c.rows*4)
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X)/Width*pw, math.Abs(b.Y-a.Y)/Height*ph)*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d := start + t*length
		if d > limit {
			return
		}
		if !dashOn(d, dashes) {
			continue
		}
		c.dot(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, color, dim)
	}
}

func dashOn(d float64, dashes []float64) bool {
	if len(dashes) == 0 {
		return true
	}
	var period float64
	for _, v := range dashes {
		period += v
	}
	if period <= 0 {
		return true
	}
	pos := math.Mod(d, period)
	on := true
	for _, v := range dashes {
		if pos < v {
			return on
		}
		pos -= v
		on = !on
	}
	return on
}

func (c *Canvas) dot(x, y float64, color string, dim bool) {
	px := int(math.Round(x / Width * float64(c.cols*2-1)))
	py := int(math.Round(y / Height * float64(c.rows*4-1)))
	if px < 0 || py < 0 || px >= c.cols*2 || py >= c.rows*4 {
		return
	}
	cl := &c.cells[(py/4)*c.cols+px/2]
	cl.dots |= brailleBits[py%4][px%2]
	cl.color = color
	cl.dim = dim
}

func (c *Canvas) cellAt(p pattern.Point) (int, int) {
	x := int(math.Round(p.X / Width * float64(c.cols-1)))
	y := int(math.Round(p.Y / Height * float64(c.rows-1)))
	return x, y
}

func (c *Canvas) glyphAt(p pattern.Point, r rune, color string, dim bool) {
	x, y := c.cellAt(p)
	c.setGlyph(x, y, r, color, dim)
}

// text centres s on p, clipped to the canvas.
func (c *Canvas) text(p pattern.Point, s, color string, dim bool) {
	x, y := c.cellAt(p)
	runes := []rune(s)
	x -= len(runes) / 2
	x = max(0, min(x, c.cols-len(runes)))
	for i, r := range runes {
		c.setGlyph(x+i, y, r, color, dim)
	}
}

func (c *Canvas) setGlyph(x, y int, r rune, color string, dim bool) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	cl := &c.cells[y*c.cols+x]
	cl.glyph = r
	cl.color = color
	cl.dim = dim
}
