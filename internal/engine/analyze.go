// Package engine performs strain-compatibility analysis, capacity
// evaluation, reinforcement design and adequacy checks for flexural
// members per KDS 14 20. All calculations use N, mm and MPa; axial force
// is positive in compression. Every function is a pure function of its
// inputs and is safe for concurrent use.
package engine

import (
	"github.com/kdstools/kdsbeam/internal/kds"
	"github.com/kdstools/kdsbeam/internal/section"
)

// AnalysisResult is the low-level outcome of a strain-compatibility
// analysis at a fixed tension-steel area and axial force.
type AnalysisResult struct {
	C                float64 // neutral axis depth from the compression face (mm)
	NetTensileStrain float64 // et at the tension steel centroid
	Phi              float64 // strength reduction factor
	PhiMn            float64 // design moment capacity (N-mm)
}

// Analyze solves strain compatibility for the given tension-steel area as
// (mm^2) and axial force pu (N, compression positive) and returns the
// neutral axis depth, net tensile strain, strength reduction factor and
// design moment capacity.
func Analyze(sec section.Section, as, pu float64) (AnalysisResult, error) {
	return AnalyzeWithCompression(sec, as, 0, pu)
}

// AnalyzeWithCompression is Analyze with an explicit compression-steel
// area. Doubly-reinforced analysis is not implemented: a positive asPrime
// fails fast rather than silently ignoring the compression steel.
func AnalyzeWithCompression(sec section.Section, as, asPrime, pu float64) (AnalysisResult, error) {
	if asPrime > 0 {
		return AnalysisResult{}, &NotImplementedError{msg: "doubly-reinforced section analysis is not implemented"}
	}

	switch s := sec.(type) {
	case *section.Rectangular:
		return analyzeRectangular(s, as, pu)
	case *section.TSection:
		return analyzeTSection(s, as, pu)
	default:
		return AnalysisResult{}, &NotImplementedError{msg: "unsupported section type"}
	}
}

func analyzeRectangular(s *section.Rectangular, as, pu float64) (AnalysisResult, error) {
	conc, steel := s.Concrete(), s.TensionSteel()
	b, d, h := s.Width(), s.EffectiveDepth(), s.Height()

	// Force equilibrium Cc = T - Pu  ->  c = (As*fy - Pu) / (eta*0.85*fck*beta1*b)
	numerator := as*steel.Fy() - pu
	denominator := conc.Eta() * 0.85 * conc.Fck * conc.Beta1() * b
	if kds.Equal(denominator, 0) {
		return AnalysisResult{}, capacityErrorf("degenerate section: zero width or concrete strength")
	}
	c := numerator / denominator

	if c <= 0 {
		return AnalysisResult{}, capacityErrorf("neutral axis falls outside the section; flexure alone cannot resist the demand")
	}

	et := conc.UltimateStrain() * (d - c) / c
	phi := kds.Phi(et, steel.CompressionControlledLimitStrain(), steel.TensionControlledLimitStrain())

	a := conc.Beta1() * c
	cc := conc.Eta() * 0.85 * conc.Fck * a * b
	// The Pu term moves the resultant to the section mid-height.
	mn := cc*(d-a/2) + pu*(d-h/2)

	return AnalysisResult{C: c, NetTensileStrain: et, Phi: phi, PhiMn: phi * mn}, nil
}

func analyzeTSection(s *section.TSection, as, pu float64) (AnalysisResult, error) {
	conc, steel := s.Concrete(), s.TensionSteel()
	bw, d, h := s.WebWidth(), s.EffectiveDepth(), s.Height()
	bf, hf := s.FlangeWidth(), s.FlangeDepth()

	// Trial: assume the neutral axis sits within the flange and solve with
	// the full flange width.
	numerator := as*steel.Fy() - pu
	denominator := conc.Eta() * 0.85 * conc.Fck * conc.Beta1() * bf
	if kds.Equal(denominator, 0) {
		return AnalysisResult{}, capacityErrorf("degenerate T-section: zero flange width or concrete strength")
	}
	c := numerator / denominator
	a := conc.Beta1() * c

	var mn float64
	if kds.LessOrEqual(a, hf) {
		// Stress block within the flange: rectangular behavior with bf.
		cc := conc.Eta() * 0.85 * conc.Fck * a * bf
		mn = cc*(d-a/2) + pu*(d-h/2)
	} else {
		// Stress block penetrates the web. The flange overhangs carry a
		// fixed force; the web block balances the remainder.
		ccf := conc.Eta() * 0.85 * conc.Fck * (bf - bw) * hf
		numeratorWeb := as*steel.Fy() - pu - ccf
		denominatorWeb := conc.Eta() * 0.85 * conc.Fck * conc.Beta1() * bw
		if kds.Equal(denominatorWeb, 0) {
			return AnalysisResult{}, capacityErrorf("degenerate T-section: zero web width or concrete strength")
		}
		c = numeratorWeb / denominatorWeb
		a = conc.Beta1() * c

		ccw := conc.Eta() * 0.85 * conc.Fck * a * bw
		mn = ccf*(d-hf/2) + ccw*(d-a/2) + pu*(d-h/2)
	}

	if c <= 0 {
		return AnalysisResult{}, capacityErrorf("neutral axis falls outside the section; flexure alone cannot resist the demand")
	}

	et := conc.UltimateStrain() * (d - c) / c
	phi := kds.Phi(et, steel.CompressionControlledLimitStrain(), steel.TensionControlledLimitStrain())

	return AnalysisResult{C: c, NetTensileStrain: et, Phi: phi, PhiMn: phi * mn}, nil
}
