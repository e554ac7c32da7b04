package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/structcode/gosect/internal/composite"
)

// ExportSectionDiagram draws the cross-section to an image file (png, svg or
// pdf, chosen by extension). Solid parts are filled, holes are blanked out,
// rebar and the centroid are marked, and the elastic and plastic neutral
// axes are overlaid.
func ExportSectionDiagram(cs *composite.CrossSection, props *composite.SectionProperties, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	for _, part := range cs.Parts() {
		outline := make(plotter.XYs, 0, len(part.Polygon.Vertices)+1)
		for _, v := range part.Polygon.Vertices {
			outline = append(outline, plotter.XY{X: v.X, Y: v.Y})
		}
		outline = append(outline, outline[0])

		fill, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		if part.Polygon.SignedArea() >= 0 {
			fill.Color = color.RGBA{R: 176, G: 196, B: 222, A: 255}
		} else {
			fill.Color = color.White
		}
		fill.LineStyle.Width = vg.Points(1.5)
		fill.LineStyle.Color = color.Black
		p.Add(fill)
	}

	// Elastic centroid axes, gray dashed.
	for _, axis := range []plotter.XYs{
		{{X: props.MinX, Y: props.CentroidY}, {X: props.MaxX, Y: props.CentroidY}},
		{{X: props.CentroidX, Y: props.MinY}, {X: props.CentroidX, Y: props.MaxY}},
	} {
		line, err := plotter.NewLine(axis)
		if err != nil {
			return err
		}
		line.LineStyle.Color = color.Gray{Y: 120}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	// Plastic neutral axis, red dashed. Drawn only when it departs from the
	// elastic centroid.
	if props.PlasticAxisY != props.CentroidY {
		pna, err := plotter.NewLine(plotter.XYs{
			{X: props.MinX - 10, Y: props.PlasticAxisY},
			{X: props.MaxX + 10, Y: props.PlasticAxisY},
		})
		if err != nil {
			return err
		}
		pna.LineStyle.Width = vg.Points(1.5)
		pna.LineStyle.Color = color.RGBA{R: 255, A: 255}
		pna.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(pna)
	}

	if bars := cs.Reinforcement(); len(bars) > 0 {
		pts := make(plotter.XYs, len(bars))
		for i, b := range bars {
			pts[i] = plotter.XY{X: b.At.X, Y: b.At.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: props.CentroidX, Y: props.CentroidY}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.Black
	centroid.GlyphStyle.Radius = vg.Points(5)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	width := 7 * vg.Inch
	height := 7 * vg.Inch

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
