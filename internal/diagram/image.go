package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSectionDiagram writes the section outline with its compression
// stress block, neutral axis and tension reinforcement to an image file.
// The format follows the file extension (.png, .svg, .pdf).
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	if len(data.Vertices) < 3 {
		return fmt.Errorf("diagram: section outline needs at least 3 vertices")
	}

	minX, maxX := data.Vertices[0].X, data.Vertices[0].X
	outlinePts := make(plotter.XYs, 0, len(data.Vertices)+1)
	for _, v := range data.Vertices {
		outlinePts = append(outlinePts, plotter.XY{X: v.X, Y: v.Y})
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
	}
	outlinePts = append(outlinePts, outlinePts[0])

	outlineLine, err := plotter.NewLine(outlinePts)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Compression zone: the outline polygon clipped at the stress block
	// depth. For T-shapes this follows the flange and web boundary.
	if blockPts := clipSectionAtDepth(data.Vertices, data.Height, data.StressBlockDepth); len(blockPts) >= 3 {
		stressBlock, err := plotter.NewPolygon(blockPts)
		if err != nil {
			return err
		}
		stressBlock.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		stressBlock.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(stressBlock)
	}

	// Neutral axis
	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: naY},
		{X: maxX + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Place the bar glyphs inside the web at the steel centroid level.
	webMinX, webMaxX := findWidthAtY(data.Vertices, data.TensionSteelY, minX, maxX)
	webCenter := (webMinX + webMaxX) / 2
	webWidth := webMaxX - webMinX
	if webWidth == 0 {
		webWidth = maxX - minX
		webCenter = (minX + maxX) / 2
	}

	tensionSteel, err := plotter.NewScatter(plotter.XYs{
		{X: webCenter - webWidth*0.2, Y: data.TensionSteelY},
		{X: webCenter, Y: data.TensionSteelY},
		{X: webCenter + webWidth*0.2, Y: data.TensionSteelY},
	})
	if err != nil {
		return err
	}
	tensionSteel.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	tensionSteel.GlyphStyle.Radius = vg.Points(6)
	tensionSteel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tensionSteel)

	labels := []struct {
		x, y float64
		text string
	}{
		{maxX + 30, naY, "N.A."},
		{maxX + 30, data.Height - data.StressBlockDepth/2, fmt.Sprintf("a=%.1fmm", data.StressBlockDepth)},
		{webCenter, data.TensionSteelY - 25, fmt.Sprintf("As=%.0fmm²", data.TensionSteelArea)},
		{webCenter, data.Height + 25, fmt.Sprintf("φMn=%.1fkN·m", data.PhiMn/1e6)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return savePlot(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStrainDiagram writes the linear strain distribution with the yield
// strain and the minimum allowable tensile strain marked.
func ExportStrainDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from top (mm)"

	// Depth grows downward.
	p.Y.Min = data.Height
	p.Y.Max = 0

	steelDepth := data.Height - data.TensionSteelY

	strainLine, err := plotter.NewLine(plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: steelDepth},
	})
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(strainLine)

	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: data.Height},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	for _, ref := range []struct {
		strain float64
		c      color.RGBA
	}{
		{-data.EpsilonY, color.RGBA{R: 255, G: 165, B: 0, A: 255}},
		{-data.EpsilonTMin, color.RGBA{R: 178, G: 34, B: 34, A: 255}},
	} {
		line, err := plotter.NewLine(plotter.XYs{
			{X: ref.strain, Y: 0},
			{X: ref.strain, Y: data.Height},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = ref.c
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(line)
	}

	keyPoints, err := plotter.NewScatter(plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: steelDepth},
	})
	if err != nil {
		return err
	}
	keyPoints.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	p.Add(keyPoints)

	return savePlot(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func savePlot(p *plot.Plot, w, h vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}

// clipSectionAtDepth clips the outline polygon at the given depth from the
// top fiber and returns the compression-zone polygon.
func clipSectionAtDepth(vertices []Point, height, depth float64) plotter.XYs {
	if len(vertices) < 3 || depth <= 0 {
		return nil
	}

	clipY := height - depth
	var result plotter.XYs

	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		currAbove := curr.Y >= clipY
		nextAbove := next.Y >= clipY

		if currAbove {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}
		if currAbove != nextAbove {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}

	return result
}

// findWidthAtY returns the min and max outline X at height y above the
// bottom fiber.
func findWidthAtY(vertices []Point, y, defaultMin, defaultMax float64) (float64, float64) {
	if len(vertices) < 3 {
		return defaultMin, defaultMax
	}

	var intersections []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			intersections = append(intersections, curr.X+t*(next.X-curr.X))
		}
	}
	if len(intersections) < 2 {
		return defaultMin, defaultMax
	}

	minX, maxX := intersections[0], intersections[0]
	for _, x := range intersections {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	return minX, maxX
}
