// Package pattern maps pattern identifiers to the static geometry of their
// schematic diagrams.
package pattern

// DefaultID is the pattern drawn when an identifier is not recognized.
const DefaultID = "vwap-bounce"

// Known pattern identifiers, in display order.
const (
	VWAPBounce        = "vwap-bounce"
	OpeningRange      = "opening-range"
	GapFill           = "gap-fill"
	TrendContinuation = "trend-continuation"
	Reversal          = "reversal"
	Consolidation     = "consolidation"
)

var order = []string{VWAPBounce, OpeningRange, GapFill, TrendContinuation, Reversal, Consolidation}

var table = map[string]Geometry{
	VWAPBounce: {
		Path: path(
			move(10, 70), line(40, 30), line(70, 50), line(100, 35), line(130, 55), line(160, 40),
			line(190, 60), line(220, 45), line(250, 65), line(270, 55), quad(290, 70, 310, 45), line(340, 25),
		),
		Reference: path(move(10, 55), line(340, 55)),
		Annotations: []Annotation{
			{At: Point{270, 75}, Label: "VWAP Touch", Color: ColorAmber},
			{At: Point{310, 35}, Label: "Entry", Color: ColorGreen},
		},
	},
	OpeningRange: {
		Path: path(
			move(10, 50), line(40, 35), line(70, 55), line(100, 40), line(130, 45), line(160, 38),
			line(190, 48), line(220, 42), line(250, 35), line(280, 20), line(340, 15),
		),
		Box: &Rect{X: 30, Y: 30, W: 130, H: 30},
		Annotations: []Annotation{
			{At: Point{40, 25}, Label: "Range High", Color: ColorCyan},
			{At: Point{40, 65}, Label: "Range Low", Color: ColorRed},
			{At: Point{280, 10}, Label: "Breakout", Color: ColorGreen},
		},
	},
	GapFill: {
		Path: path(
			move(10, 70), line(30, 65),
			move(50, 35), line(80, 30), line(110, 40), line(140, 25), line(170, 45), line(200, 55),
			line(230, 50), line(260, 60), line(290, 55), line(340, 65),
		),
		Annotations: []Annotation{
			{At: Point{30, 50}, Label: "Gap", Color: ColorAmber},
			{At: Point{170, 55}, Label: "Reversal", Color: ColorGreen},
			{At: Point{340, 75}, Label: "Fill", Color: ColorCyan},
		},
	},
	TrendContinuation: {
		Path: path(
			move(10, 80), line(50, 65), line(70, 70), line(100, 50), line(120, 55), line(150, 35),
			line(180, 42), line(210, 25), line(240, 30), line(280, 15), line(340, 10),
		),
		Annotations: []Annotation{
			{At: Point{70, 80}, Label: "Pullback 1", Color: ColorAmber},
			{At: Point{180, 52}, Label: "Pullback 2", Color: ColorAmber},
			{At: Point{280, 5}, Label: "Continue", Color: ColorGreen},
		},
	},
	Reversal: {
		Path: path(
			move(10, 30), line(50, 45), line(90, 55), line(130, 65), line(160, 80), line(180, 85),
			line(200, 75), line(230, 60), line(260, 50), line(300, 35), line(340, 20),
		),
		Annotations: []Annotation{
			{At: Point{180, 95}, Label: "False Break", Color: ColorRed},
			{At: Point{200, 65}, Label: "Reclaim", Color: ColorGreen},
		},
	},
	Consolidation: {
		Path: path(
			move(10, 50), line(50, 45), line(90, 52), line(130, 48), line(170, 50), line(210, 47),
			line(250, 51), line(270, 48), line(290, 30), line(340, 15),
		),
		Annotations: []Annotation{
			{At: Point{140, 40}, Label: "Range", Color: ColorGray},
			{At: Point{290, 20}, Label: "Breakout", Color: ColorGreen},
		},
	},
}

// Resolve returns the geometry for id. Unknown identifiers resolve to the
// DefaultID geometry; Resolve never fails.
func Resolve(id string) Geometry {
	if g, ok := Lookup(id); ok {
		return g
	}
	g, _ := Lookup(DefaultID)
	return g
}

// Lookup returns the geometry for id and whether id is known.
func Lookup(id string) (Geometry, bool) {
	g, ok := table[id]
	if !ok {
		return Geometry{}, false
	}
	g.ID = id
	return g, true
}

// Known reports whether id has its own geometry.
func Known(id string) bool {
	_, ok := table[id]
	return ok
}

// IDs returns the known identifiers in display order.
func IDs() []string {
	return append([]string(nil), order...)
}

func path(cmds ...Cmd) Path { return Path(cmds) }

func move(x, y float64) Cmd { return Cmd{Op: MoveTo, Pts: []Point{{x, y}}} }

func line(x, y float64) Cmd { return Cmd{Op: LineTo, Pts: []Point{{x, y}}} }

func quad(cx, cy, x, y float64) Cmd {
	return Cmd{Op: QuadTo, Pts: []Point{{cx, cy}, {x, y}}}
}
