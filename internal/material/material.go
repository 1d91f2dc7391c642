// Package material defines the concrete and reinforcing steel value objects
// used by the section models and the design engine. Each object is validated
// at construction and never mutated afterwards. Units are N, mm and MPa.
package material

import (
	"fmt"
	"math"

	"github.com/kdstools/kdsbeam/internal/kds"
)

// MaterialError reports an invalid grade, diameter or material parameter
// found at construction time.
type MaterialError struct {
	msg string
}

func (e *MaterialError) Error() string {
	return e.msg
}

func materialErrorf(format string, args ...any) *MaterialError {
	return &MaterialError{msg: fmt.Sprintf(format, args...)}
}

// steelSpec holds the (fy, fu) pair for a rebar grade.
type steelSpec struct {
	fy float64
	fu float64
}

// Rebar grades per KS D 3504.
var steelSpecs = map[string]steelSpec{
	"SD300":  {300, 440},
	"SD350":  {350, 490},
	"SD400":  {400, 560},
	"SD500":  {500, 620},
	"SD600":  {600, 710},
	"SD400W": {400, 560},
	"SD500W": {500, 620},
}

// Nominal cross-sectional areas (mm^2) per KS D 3504. Table values, not
// pi*d^2/4.
var rebarAreas = map[int]float64{
	10: 71.33,
	13: 126.7,
	16: 198.6,
	19: 286.5,
	22: 387.1,
	25: 506.7,
	29: 642.4,
	32: 794.2,
	35: 956.6,
	38: 1140.0,
}

// RebarDiameters lists the supported nominal diameters in ascending order.
var RebarDiameters = []int{10, 13, 16, 19, 22, 25, 29, 32, 35, 38}

// Steel represents a reinforcing steel material of a fixed grade.
type Steel struct {
	Grade string

	fy float64
	fu float64
}

// NewSteel creates a Steel from its grade designation (e.g. "SD400").
func NewSteel(grade string) (Steel, error) {
	spec, ok := steelSpecs[grade]
	if !ok {
		return Steel{}, materialErrorf("unknown rebar grade: %q", grade)
	}
	if spec.fy > 600 {
		return Steel{}, materialErrorf("design yield strength (fy=%.0f MPa) exceeds the 600 MPa limit (KDS 14 20 10)", spec.fy)
	}
	return Steel{Grade: grade, fy: spec.fy, fu: spec.fu}, nil
}

// Fy returns the design yield strength (MPa).
func (s Steel) Fy() float64 { return s.fy }

// Fu returns the ultimate tensile strength (MPa).
func (s Steel) Fu() float64 { return s.fu }

// Es returns the modulus of elasticity (MPa).
func (s Steel) Es() float64 { return kds.Es }

// YieldStrain returns the yield strain fy/Es.
func (s Steel) YieldStrain() float64 { return s.fy / kds.Es }

// CompressionControlledLimitStrain returns the compression-controlled limit
// strain, which equals the yield strain.
func (s Steel) CompressionControlledLimitStrain() float64 {
	return s.YieldStrain()
}

// TensionControlledLimitStrain returns the tension-controlled limit strain.
// KDS 14 20 20, 4.1.2(4)
func (s Steel) TensionControlledLimitStrain() float64 {
	if s.fy > 400 {
		return 2.5 * s.YieldStrain()
	}
	return 0.005
}

// MinAllowableTensileStrain returns the minimum allowable net tensile strain
// for flexural members. KDS 14 20 20, 4.1.2(5)
func (s Steel) MinAllowableTensileStrain() float64 {
	if s.fy > 400 {
		return 2.0 * s.YieldStrain()
	}
	return 0.004
}

// Rebar couples a steel material with a nominal bar diameter.
type Rebar struct {
	Material Steel
	Diameter int
}

// NewRebar creates a Rebar, validating the diameter against the KS table.
func NewRebar(material Steel, diameter int) (Rebar, error) {
	if _, ok := rebarAreas[diameter]; !ok {
		return Rebar{}, materialErrorf("unsupported rebar diameter: D%d", diameter)
	}
	return Rebar{Material: material, Diameter: diameter}, nil
}

// Area returns the nominal cross-sectional area (mm^2).
func (r Rebar) Area() float64 { return rebarAreas[r.Diameter] }

// RebarArea looks up the nominal area for a diameter without constructing a
// Rebar; ok is false for diameters outside the KS table.
func RebarArea(diameter int) (area float64, ok bool) {
	area, ok = rebarAreas[diameter]
	return area, ok
}

// Concrete represents a concrete material.
type Concrete struct {
	Fck      float64 // specified compressive strength (MPa)
	UnitMass float64 // kg/m^3
	Lambda   float64 // lightweight concrete factor
}

// NewConcrete creates a normal-weight Concrete of the given strength.
func NewConcrete(fck float64) (Concrete, error) {
	return NewConcreteWith(fck, 2300.0, 1.0)
}

// NewConcreteWith creates a Concrete with an explicit unit mass and
// lightweight factor.
func NewConcreteWith(fck, unitMass, lambda float64) (Concrete, error) {
	if fck <= 0 {
		return Concrete{}, materialErrorf("fck must be positive, got %.2f", fck)
	}
	if lambda < 0.75 || lambda > 1.0 {
		return Concrete{}, materialErrorf("lightweight factor lambda must be within [0.75, 1.0], got %.3f", lambda)
	}
	return Concrete{Fck: fck, UnitMass: unitMass, Lambda: lambda}, nil
}

// Fcm returns the mean compressive strength (MPa). KDS 14 20 10 (4.3-3)
func (c Concrete) Fcm() float64 {
	switch {
	case c.Fck <= 40:
		return c.Fck + 4.0
	case c.Fck < 60:
		return c.Fck + 4.0 + 2.0*(c.Fck-40.0)/20.0
	default:
		return c.Fck + 6.0
	}
}

// Ec returns the secant modulus of elasticity (MPa). KDS 14 20 10 (4.3-1)
func (c Concrete) Ec() float64 {
	return 0.077 * math.Pow(c.UnitMass, 1.5) * math.Cbrt(c.Fcm())
}

// UltimateStrain returns the ultimate compressive strain. KDS 14 20 20, 4.1.1(3)
func (c Concrete) UltimateStrain() float64 {
	if c.Fck <= 40 {
		return 0.0033
	}
	return math.Max(0.0033-(c.Fck-40)/100000, 0.0028)
}

// ModulusOfRupture returns fr including the lightweight factor.
// KDS 14 20 50, 4.1.2(3)
func (c Concrete) ModulusOfRupture() float64 {
	return 0.63 * c.Lambda * math.Sqrt(c.Fck)
}

// Beta1 returns the equivalent stress block depth factor.
// KDS 14 20 20, table 4.1-2
func (c Concrete) Beta1() float64 {
	switch {
	case c.Fck <= 40:
		return 0.80
	case c.Fck < 80:
		return math.Max(0.64, 0.80-0.04*(c.Fck-40)/10)
	default:
		return 0.64
	}
}

// Eta returns the equivalent stress block stress factor.
// KDS 14 20 20, table 4.1-2
func (c Concrete) Eta() float64 {
	switch {
	case c.Fck <= 40:
		return 1.00
	case c.Fck < 90:
		return math.Max(0.84, 1.00-0.03*(c.Fck-40)/10)
	default:
		return 0.84
	}
}
