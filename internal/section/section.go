// Package section defines the cross-section models analyzed by the design
// engine. The variant set is closed: solid rectangular and flanged T-shape.
// Sections are validated at construction and never mutated. Units are mm.
package section

import (
	"fmt"

	"github.com/kdstools/kdsbeam/internal/material"
)

// Shape identifies a section variant.
type Shape string

const (
	ShapeRectangular Shape = "r"
	ShapeT           Shape = "t"
)

// Section is the capability contract the engine requires from a
// cross-section. The engine additionally dispatches on the concrete type
// for the shape-specific equilibrium equations.
type Section interface {
	Shape() Shape

	// GrossArea returns Ag (mm^2).
	GrossArea() float64

	// Ig returns the second moment of area about the centroid (mm^4).
	Ig() float64

	// EffectiveDepth returns d, from the compression face to the centroid
	// of the tension reinforcement (mm).
	EffectiveDepth() float64

	// CrackingMoment returns Mcr = fr*Ig/yt (N-mm).
	CrackingMoment() float64

	// Height returns the overall depth h (mm).
	Height() float64

	Concrete() material.Concrete
	TensionSteel() material.Steel
}

// SectionError reports an invalid geometric configuration found at
// construction time.
type SectionError struct {
	msg string
}

func (e *SectionError) Error() string {
	return e.msg
}

func sectionErrorf(format string, args ...any) *SectionError {
	return &SectionError{msg: fmt.Sprintf(format, args...)}
}

func effectiveDepth(height, coverToStirrup, stirrupDia, tensionRebarDia float64) float64 {
	return height - coverToStirrup - stirrupDia - tensionRebarDia/2
}
