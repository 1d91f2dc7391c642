package kds

// KDS 14 20 Design Constants

const (
	// Strength reduction factors (KDS 14 20 10, 4.2.3)
	PhiTensionControlled     = 0.85 // Tension-controlled sections
	PhiCompressionTied       = 0.65 // Compression-controlled (tied)
	PhiCompressionSpiral     = 0.70 // Compression-controlled (spiral)

	// Minimum flexural strength multiplier: phiMn >= 1.2*Mcr
	// KDS 14 20 20, 4.2.2
	MinFlexuralStrengthFactor = 1.2

	// Coarse axial capacity estimate for the load precheck.
	// Longitudinal reinforcement assumed at 1% of gross area,
	// tied column formula with the 0.80 cap. KDS 14 20 20 (4.1-17)
	AssumedAxialRebarRatio = 0.01
	AxialCapacityCapTied   = 0.80

	// Modulus of elasticity for reinforcement (MPa). KDS 14 20 10
	Es = 200000.0
)

// Phi calculates the strength reduction factor for a net tensile strain et,
// interpolating between the compression-controlled limit strain eccl and the
// tension-controlled limit strain etcl of the reinforcement.
// KDS 14 20 10, 4.2.3(2)
func Phi(et, eccl, etcl float64) float64 {
	if GreaterOrEqual(et, etcl) {
		return PhiTensionControlled
	}
	if LessOrEqual(et, eccl) {
		return PhiCompressionTied
	}
	return PhiCompressionTied +
		(PhiTensionControlled-PhiCompressionTied)*(et-eccl)/(etcl-eccl)
}
