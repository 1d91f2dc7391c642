// Package sweep samples the design-strength curve phiMn(As) of a section
// between the minimum and the ductility-governed maximum reinforcement,
// for terminal plotting and tabular reports.
package sweep

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/kdstools/kdsbeam/internal/engine"
	"github.com/kdstools/kdsbeam/internal/section"
)

// Point is one sample of the capacity curve.
type Point struct {
	As               float64 // trial tension-steel area (mm^2)
	Rho              float64 // As / (b*d)
	PhiMn            float64 // design strength (N-mm)
	Phi              float64
	NetTensileStrain float64
}

// Curve is a sampled capacity curve with its admissible area range.
type Curve struct {
	AsMin  float64
	AsMax  float64
	Points []Point
}

// CapacityCurve samples phiMn(As) at steps evenly spaced trial areas from
// As,min to As,max for the given axial force.
func CapacityCurve(sec section.Section, pu float64, steps int) (*Curve, error) {
	if steps < 2 {
		steps = 2
	}

	capacity, err := engine.MaximumCapacity(sec, pu)
	if err != nil {
		return nil, err
	}
	design, err := engine.DesignFlexuralReinforcement(sec, 0, pu)
	if err != nil {
		return nil, err
	}

	asMin, asMax := design.AsMin, capacity.AsMax
	stepSize := 0.0
	if asMax > asMin {
		stepSize = (asMax - asMin) / float64(steps-1)
	}

	bd := effectiveWidth(sec) * sec.EffectiveDepth()
	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		as := asMin + float64(i)*stepSize
		analysis, err := engine.Analyze(sec, as, pu)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			As:               as,
			Rho:              as / bd,
			PhiMn:            analysis.PhiMn,
			Phi:              analysis.Phi,
			NetTensileStrain: analysis.NetTensileStrain,
		})
	}

	return &Curve{AsMin: asMin, AsMax: asMax, Points: points}, nil
}

// Render draws the curve as an ASCII chart of phiMn (kN-m) over the
// sampled reinforcement range.
func (c *Curve) Render(height int) string {
	values := make([]float64, len(c.Points))
	for i, p := range c.Points {
		values[i] = p.PhiMn / 1e6
	}
	caption := fmt.Sprintf("phiMn (kN-m) for As = %.0f ... %.0f mm2", c.AsMin, c.AsMax)
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

func effectiveWidth(sec section.Section) float64 {
	switch s := sec.(type) {
	case *section.TSection:
		return s.WebWidth()
	case *section.Rectangular:
		return s.Width()
	default:
		return 0
	}
}
