// Package diagram renders beam sections, strain distributions and result
// summaries, both as terminal ASCII art and as image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/kdstools/kdsbeam/internal/engine"
	"github.com/kdstools/kdsbeam/internal/section"
)

// Point is a 2D coordinate of the section outline, in mm. X grows to the
// right, Y grows upward from the bottom fiber.
type Point struct {
	X float64
	Y float64
}

// SectionDiagramData carries everything the renderers need about one
// analyzed section state.
type SectionDiagramData struct {
	Width  float64 // overall width (flange width for T-shapes), mm
	Height float64 // mm

	// Outline vertices, counter-clockwise from the bottom-left corner.
	Vertices []Point

	NeutralAxisDepth float64 // c, from the compression face (mm)
	StressBlockDepth float64 // a = beta1*c (mm)

	TensionSteelY    float64 // bar centroid height above the bottom fiber (mm)
	TensionSteelArea float64 // mm^2

	EpsilonCU   float64 // concrete ultimate strain
	EpsilonT    float64 // net tensile strain at the bar centroid
	EpsilonTMin float64 // minimum allowable tensile strain
	EpsilonY    float64 // steel yield strain

	EffectiveStress float64 // eta*0.85*fck (MPa)
	Phi             float64
	PhiMn           float64 // N-mm
	AxialForce      float64 // N, compression positive
}

// FromAnalysis assembles diagram data for a section at one analysis state.
func FromAnalysis(sec section.Section, as, pu float64, res engine.AnalysisResult) SectionDiagramData {
	conc := sec.Concrete()
	steel := sec.TensionSteel()

	data := SectionDiagramData{
		Height:           sec.Height(),
		Vertices:         outline(sec),
		NeutralAxisDepth: res.C,
		StressBlockDepth: conc.Beta1() * res.C,
		TensionSteelY:    sec.Height() - sec.EffectiveDepth(),
		TensionSteelArea: as,
		EpsilonCU:        conc.UltimateStrain(),
		EpsilonT:         res.NetTensileStrain,
		EpsilonTMin:      steel.MinAllowableTensileStrain(),
		EpsilonY:         steel.YieldStrain(),
		EffectiveStress:  conc.Eta() * 0.85 * conc.Fck,
		Phi:              res.Phi,
		PhiMn:            res.PhiMn,
		AxialForce:       pu,
	}

	switch s := sec.(type) {
	case *section.TSection:
		data.Width = s.FlangeWidth()
	case *section.Rectangular:
		data.Width = s.Width()
	}
	return data
}

// outline builds the counter-clockwise boundary polygon of the section.
func outline(sec section.Section) []Point {
	switch s := sec.(type) {
	case *section.Rectangular:
		b, h := s.Width(), s.Height()
		return []Point{{0, 0}, {b, 0}, {b, h}, {0, h}}
	case *section.TSection:
		bw, bf := s.WebWidth(), s.FlangeWidth()
		hf, h := s.FlangeDepth(), s.Height()
		x0 := (bf - bw) / 2
		x1 := x0 + bw
		return []Point{
			{x0, 0}, {x1, 0},
			{x1, h - hf}, {bf, h - hf},
			{bf, h}, {0, h},
			{0, h - hf}, {x0, h - hf},
		}
	default:
		return nil
	}
}

// widthAtHeight returns the section width at height y above the bottom
// fiber, derived from the outline polygon.
func (d *SectionDiagramData) widthAtHeight(y float64) float64 {
	minX, maxX := findWidthAtY(d.Vertices, y, 0, d.Width)
	return maxX - minX
}

// DrawSection renders the section with its stress block alongside the
// strain distribution and the concrete stress labels.
func DrawSection(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	naLine := scanline(data.NeutralAxisDepth, data.Height, heightChars)
	aLine := scanline(data.StressBlockDepth, data.Height, heightChars)
	tensionLine := scanline(data.Height-data.TensionSteelY, data.Height, heightChars)

	sb.WriteString("\n")
	sb.WriteString("  SECTION                           STRAIN               STRESS\n")
	sb.WriteString("  ───────                           ──────               ──────\n")

	for i := 0; i <= heightChars; i++ {
		y := data.Height * (1 - float64(i)/float64(heightChars))
		cols := charsAtWidth(data.widthAtHeight(y), data.Width, widthChars)
		pad := (widthChars - cols) / 2

		// Section column
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  %s┌%s┐%s", strings.Repeat(" ", pad), strings.Repeat("─", cols), strings.Repeat(" ", widthChars-cols-pad)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  %s└%s┘%s", strings.Repeat(" ", pad), strings.Repeat("─", cols), strings.Repeat(" ", widthChars-cols-pad)))
		default:
			fill := strings.Repeat(" ", cols)
			if i <= aLine {
				fill = strings.Repeat("░", cols)
			}
			if i == tensionLine && cols >= 10 {
				mid := cols / 2
				fill = fill[:mid-3] + "●────●" + fill[mid+3:]
			}
			sb.WriteString(fmt.Sprintf("  %s│%s│%s", strings.Repeat(" ", pad), fill, strings.Repeat(" ", widthChars-cols-pad)))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			}
		}

		// Strain column
		sb.WriteString("    ")
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  ├── ε = 0")
		case i == tensionLine:
			mark := ""
			if data.EpsilonT >= data.EpsilonTMin {
				mark = " (ductile)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εt = %.4f%s", data.EpsilonT, mark))
		case i > 0 && i < heightChars:
			sb.WriteString("  │")
		}

		// Stress column
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("      ┌── η·0.85·fck = %.1f MPa", data.EffectiveStress))
		case i == aLine && aLine > 0:
			sb.WriteString("      └── (stress block)")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("      ── As = %.0f mm²", data.TensionSteelArea))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = compression zone (equivalent stress block)\n")
	sb.WriteString("  ●●● = tension reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. at c = %.1f mm, stress block depth a = %.1f mm\n",
		data.NeutralAxisDepth, data.StressBlockDepth))
	if data.AxialForce != 0 {
		sb.WriteString(fmt.Sprintf("  Axial force Pu = %.1f kN (compression positive)\n", data.AxialForce/1e3))
	}

	return sb.String()
}

// DrawStrainDiagram renders a horizontal-bar view of the linear strain
// distribution with the KDS strain limits annotated.
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	height := 15
	width := 40

	maxStrain := data.EpsilonCU
	if data.EpsilonT > maxStrain {
		maxStrain = data.EpsilonT
	}
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	naLine := scanline(data.NeutralAxisDepth, data.Height, height)
	tensionLine := scanline(data.Height-data.TensionSteelY, data.Height, height)

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height
		var strain float64
		if depth <= data.NeutralAxisDepth {
			strain = data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
		} else {
			strain = data.EpsilonCU * (depth - data.NeutralAxisDepth) / data.NeutralAxisDepth
		}
		barLen := int(strain * scale)
		if barLen < 0 {
			barLen = 0
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu = %.4f\n", strings.Repeat("█", barLen), data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  N.A.   ├───── (ε = 0)\n")
		case i == tensionLine:
			mark := ""
			if data.EpsilonT >= data.EpsilonTMin {
				mark = " ✓ductile"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εt = %.4f%s\n", strings.Repeat("█", barLen), data.EpsilonT, mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat("█", barLen)))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat("█", barLen)))
		}
	}

	sb.WriteString(fmt.Sprintf("\n  εy = %.4f, εt,min = %.4f (minimum allowable)\n",
		data.EpsilonY, data.EpsilonTMin))

	return sb.String()
}

// DrawSummaryBox frames a titled list of result lines.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// scanline maps a depth from the top fiber onto a character row index.
func scanline(depth, height float64, rows int) int {
	if height <= 0 {
		return 0
	}
	return int(depth / height * float64(rows))
}

// charsAtWidth maps a physical width onto a character count, clamped so
// that the web of a T-shape still renders at least a few columns wide.
func charsAtWidth(w, full float64, cols int) int {
	if full <= 0 {
		return cols
	}
	n := int(w / full * float64(cols))
	if n < 6 {
		n = 6
	}
	if n > cols {
		n = cols
	}
	return n
}
