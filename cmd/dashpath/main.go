// Command dashpath splits an SVG path into dash and gap segments.
//
// By default it prints one line per dash or gap. With --svg or --png it
// renders the dashes to a file instead, which is handy for eyeballing a
// pattern:
//
//	dashpath -d '1,2' 'M0 0 L10 0 L10 10 Z'
//	dashpath -d '4 1' --offset 2 --png out.png 'M2 2 H20 V20 H2 Z'
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"slices"

	"github.com/foobar27/dash"
	"github.com/tdewolff/argp"
	"golang.org/x/image/vector"
)

type Main struct {
	DashArray string  `short:"d" default:"1" desc:"Dash array: comma or space separated lengths, alternating dash and gap"`
	Offset    float64 `short:"o" default:"0" desc:"Offset into the dash pattern, may be negative"`
	SVG       string  `desc:"Write the dashes as an SVG document to this file"`
	PNG       string  `desc:"Rasterize the dashes to this PNG file"`
	Width     float64 `default:"0.5" desc:"Stroke width for SVG and PNG output"`
	Scale     float64 `default:"10" desc:"Pixels per path unit for PNG output"`
	Path      string  `index:"0" desc:"SVG path data, e.g. 'M0 0 L10 0'; lines only"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Split an SVG path into dash and gap segments")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	path, err := dash.ParseSVGPath(cmd.Path)
	if err != nil {
		return err
	}
	lengths, err := dash.ParseDashArray(cmd.DashArray)
	if err != nil {
		return err
	}
	pattern, err := dash.NewPattern(cmd.Offset, lengths)
	if err != nil {
		return err
	}

	spans := slices.Collect(dash.DashPath(path.Elements(), pattern))
	switch {
	case cmd.SVG != "":
		return cmd.writeSVG(path, spans)
	case cmd.PNG != "":
		return cmd.writePNG(path, spans)
	default:
		for _, span := range spans {
			fmt.Println(span)
		}
		return nil
	}
}

// bounds returns the bounding box of all points of the path. Dash endpoints
// always lie on the path, so this also bounds the output spans.
func bounds(path dash.Path) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	grow := func(pt dash.Point) {
		x0 = min(x0, pt.X)
		y0 = min(y0, pt.Y)
		x1 = max(x1, pt.X)
		y1 = max(y1, pt.Y)
	}
	for el := range path.Elements() {
		switch el.Kind {
		case dash.MoveToKind, dash.LineToKind:
			grow(el.P0)
		case dash.QuadToKind:
			grow(el.P0)
			grow(el.P1)
		case dash.CubicToKind:
			grow(el.P0)
			grow(el.P1)
			grow(el.P2)
		}
	}
	return x0, y0, x1, y1
}

func (cmd *Main) writeSVG(path dash.Path, spans []dash.Span) error {
	f, err := os.Create(cmd.SVG)
	if err != nil {
		return err
	}
	defer f.Close()

	x0, y0, x1, y1 := bounds(path)
	pad := cmd.Width
	fmt.Fprintf(f, "<svg viewBox=\"%g %g %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		x0-pad, y0-pad, x1-x0+2*pad, y1-y0+2*pad)
	for _, span := range spans {
		if span.Kind != dash.DashKind {
			continue
		}
		fmt.Fprintf(f, "<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"black\" stroke-width=\"%g\" />\n",
			span.From.X, span.From.Y, span.To.X, span.To.Y, cmd.Width)
	}
	fmt.Fprintln(f, "</svg>")
	return nil
}

func (cmd *Main) writePNG(path dash.Path, spans []dash.Span) error {
	x0, y0, x1, y1 := bounds(path)
	pad := cmd.Width
	w := int(math.Ceil((x1 - x0 + 2*pad) * cmd.Scale))
	h := int(math.Ceil((y1 - y0 + 2*pad) * cmd.Scale))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("empty raster area for path %q", cmd.Path)
	}
	// Path coordinates to pixels.
	toImage := func(pt dash.Point) (float32, float32) {
		return float32((pt.X - x0 + pad) * cmd.Scale), float32((pt.Y - y0 + pad) * cmd.Scale)
	}

	ras := vector.NewRasterizer(w, h)
	for _, span := range spans {
		if span.Kind != dash.DashKind || span.Length == 0 {
			continue
		}
		// Fill a rectangle of the stroke width around the dash.
		n := dash.Vec(span.From.Y-span.To.Y, span.To.X-span.From.X).Normalize().Mul(cmd.Width / 2)
		ax, ay := toImage(span.From.Translate(n))
		bx, by := toImage(span.To.Translate(n))
		cx, cy := toImage(span.To.Translate(n.Mul(-1)))
		dx, dy := toImage(span.From.Translate(n.Mul(-1)))
		ras.MoveTo(ax, ay)
		ras.LineTo(bx, by)
		ras.LineTo(cx, cy)
		ras.LineTo(dx, dy)
		ras.ClosePath()
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ras.Draw(img, img.Bounds(), image.Black, image.Point{})

	f, err := os.Create(cmd.PNG)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return nil
}
