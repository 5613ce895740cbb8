package chart

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const svgStyle = `@keyframes drawLine { to { stroke-dashoffset: 0; } }
@keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
`

// WriteSVG writes s as a standalone animated SVG. Draw animations become
// a drawLine keyframe on stroke-dashoffset, fades become fadeIn.
func WriteSVG(w io.Writer, s Scene) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" data-pattern="%s">`+"\n",
		num(Width), num(Height), html.EscapeString(s.PatternID))
	fmt.Fprintf(bw, "<style>\n%s</style>\n", svgStyle)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="#0a0a0f"/>`+"\n")

	for _, sh := range s.Shapes {
		writeShape(bw, sh)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeShape(w *bufio.Writer, sh Shape) {
	var attrs []string
	add := func(k, v string) { attrs = append(attrs, fmt.Sprintf(`%s="%s"`, k, v)) }

	var tag, body string
	switch sh.Kind {
	case KindPath:
		tag = "path"
		add("d", sh.Path.SVG())
		add("fill", "none")
	case KindRect:
		tag = "rect"
		add("x", num(sh.Rect.X))
		add("y", num(sh.Rect.Y))
		add("width", num(sh.Rect.W))
		add("height", num(sh.Rect.H))
	case KindCircle:
		tag = "circle"
		add("cx", num(sh.Center.X))
		add("cy", num(sh.Center.Y))
		add("r", num(sh.Radius))
	case KindText:
		tag = "text"
		add("x", num(sh.Center.X))
		add("y", num(sh.Center.Y))
		add("font-size", "8")
		add("font-family", "monospace")
		add("text-anchor", "middle")
		body = html.EscapeString(sh.Text)
	}

	if sh.Fill != "" && sh.Kind != KindPath {
		add("fill", sh.Fill)
		if sh.FillOpacity > 0 {
			add("fill-opacity", num(sh.FillOpacity))
		}
	}
	if sh.Stroke != "" {
		add("stroke", sh.Stroke)
		add("stroke-width", num(sh.StrokeWidth))
	}
	if sh.Role == RolePrimary {
		add("stroke-linecap", "round")
		add("stroke-linejoin", "round")
	}
	if len(sh.Dash) > 0 {
		parts := make([]string, len(sh.Dash))
		for i, d := range sh.Dash {
			parts[i] = num(d)
		}
		add("stroke-dasharray", strings.Join(parts, " "))
	}
	if sh.DashOffset != 0 {
		add("stroke-dashoffset", num(sh.DashOffset))
	}

	switch sh.Animation {
	case AnimDraw:
		add("style", fmt.Sprintf("animation: drawLine %s %s %s forwards",
			seconds(sh.Timing.Duration), sh.Timing.Easing.CSS(), seconds(sh.Timing.Delay)))
	case AnimFade:
		add("opacity", "0")
		add("style", fmt.Sprintf("animation: fadeIn %s %s %s forwards",
			seconds(sh.Timing.Duration), sh.Timing.Easing.CSS(), seconds(sh.Timing.Delay)))
	default:
		if sh.Opacity < 1 {
			add("opacity", num(sh.Opacity))
		}
	}

	if body != "" {
		fmt.Fprintf(w, "<%s %s>%s</%s>\n", tag, strings.Join(attrs, " "), body, tag)
		return
	}
	fmt.Fprintf(w, "<%s %s/>\n", tag, strings.Join(attrs, " "))
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}
