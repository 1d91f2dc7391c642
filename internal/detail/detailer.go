package detail

import (
	"fmt"
	"math"

	"github.com/kdstools/kdsbeam/internal/material"
)

// UnsupportedDiameterError reports a candidate diameter outside the KS
// nominal-area table.
type UnsupportedDiameterError struct {
	Diameter int
}

func (e *UnsupportedDiameterError) Error() string {
	return fmt.Sprintf("unsupported rebar diameter: D%d", e.Diameter)
}

// Layer is one horizontal row of bars in a layout.
type Layer struct {
	YFromBottom float64 // centroid height of this row above the bottom fiber (mm)
	NumRebars   int
	Rebar       material.Rebar
}

// Layout is a concrete multi-layer arrangement realizing a selection
// concept within an actual section.
type Layout struct {
	Option          Option
	Layers          []Layer
	AsProvidedTotal float64 // mm^2
	SectionHeight   float64 // mm
}

// TotalRebars returns the bar count over all layers.
func (l *Layout) TotalRebars() int {
	var n int
	for _, layer := range l.Layers {
		n += layer.NumRebars
	}
	return n
}

// ActualEffectiveDepth returns the effective depth measured to the centroid
// of the whole bar group, which shifts upward when bars stack into layers.
func (l *Layout) ActualEffectiveDepth() float64 {
	var momentY, totalArea float64
	for _, layer := range l.Layers {
		area := float64(layer.NumRebars) * layer.Rebar.Area()
		momentY += area * layer.YFromBottom
		totalArea += area
	}
	if totalArea == 0 {
		return 0
	}
	return l.SectionHeight - momentY/totalArea
}

// Vertical clear spacing between bar layers. KDS 14 20 50, 4.2.2(2)
const verticalClearSpacing = 25.0

// Detailer plans multi-layer bar placements for selection concepts.
type Detailer struct {
	Steel material.Steel

	// MinClearSpacingFactor scales the bar diameter when computing the
	// horizontal clear spacing floor (kept at 1.0 until maximum aggregate
	// size enters the rules).
	MinClearSpacingFactor float64
}

// NewDetailer creates a Detailer for the given steel material.
func NewDetailer(steel material.Steel) *Detailer {
	return &Detailer{Steel: steel, MinClearSpacingFactor: 1.0}
}

// PlanLayout places the bars demanded by asRequiredTotal (mm^2) into the
// section using the diameter of the selected option, stacking extra layers
// when one row cannot hold them. Returns nil when the width cannot fit a
// single bar or no bars are required.
func (d *Detailer) PlanLayout(option Option, sectionWidth, sectionHeight, asRequiredTotal, coverToStirrup, stirrupDia float64) (*Layout, error) {
	rebar, err := material.NewRebar(d.Steel, option.Diameter)
	if err != nil {
		return nil, err
	}

	if asRequiredTotal <= 0 {
		return nil, nil
	}
	numRequired := int(math.Ceil(asRequiredTotal / rebar.Area()))

	// Constructability: bars need a clear gap of at least 25mm or one bar
	// diameter. KDS 14 20 50, 4.2.2(1)
	dia := float64(option.Diameter)
	minClearSpacing := math.Max(25.0, dia*d.MinClearSpacingFactor)
	effectiveWidth := sectionWidth - 2*coverToStirrup - 2*stirrupDia - dia
	if effectiveWidth < 0 {
		return nil, nil
	}

	maxPerLayer := int(math.Floor(effectiveWidth/(dia+minClearSpacing))) + 1
	if maxPerLayer == 0 {
		return nil, nil
	}

	var layers []Layer
	remaining := numRequired
	for layerIndex := 0; remaining > 0; layerIndex++ {
		n := remaining
		if n > maxPerLayer {
			n = maxPerLayer
		}
		y := coverToStirrup + stirrupDia + dia/2 + float64(layerIndex)*(dia+verticalClearSpacing)
		layers = append(layers, Layer{YFromBottom: y, NumRebars: n, Rebar: rebar})
		remaining -= n
	}

	return &Layout{
		Option:          option,
		Layers:          layers,
		AsProvidedTotal: float64(numRequired) * rebar.Area(),
		SectionHeight:   sectionHeight,
	}, nil
}
