package engine

import (
	"github.com/kdstools/kdsbeam/internal/kds"
	"github.com/kdstools/kdsbeam/internal/section"
)

// CapacityResult reports the ductility-governed maximum usable
// reinforcement and the corresponding design strength.
type CapacityResult struct {
	AsMax    float64 // maximum usable tension-steel area (mm^2)
	MaxPhiMn float64 // design strength at AsMax (N-mm)
	Analysis AnalysisResult
}

// DesignResult reports the required reinforcement for a demand moment.
type DesignResult struct {
	AsRequired           float64 // governing required area (mm^2)
	AsMin                float64 // minimum-reinforcement area (mm^2)
	AsMax                float64 // ductility-governed maximum (mm^2)
	IsMinRebarControlled bool    // true when the minimum governs
	Analysis             AnalysisResult
}

// CheckResult reports the three independent adequacy verdicts for a
// provided reinforcement amount.
type CheckResult struct {
	IsOK        bool
	StrengthOK  bool
	DuctilityOK bool
	MinRebarOK  bool
	Analysis    AnalysisResult
}

const (
	searchIterations = 100
	searchTolerance  = 1e-9 // bracket width, mm^2
)

// MaximumCapacity computes the largest tension-steel area usable before the
// ductility requirement is violated, together with the design strength at
// that limit state.
func MaximumCapacity(sec section.Section, pu float64) (CapacityResult, error) {
	if err := checkAxialLoadLimit(sec, pu); err != nil {
		return CapacityResult{}, err
	}

	conc := sec.Concrete()
	steel := sec.TensionSteel()

	etMin := steel.MinAllowableTensileStrain()
	ecu := conc.UltimateStrain()
	cMax := ecu / (ecu + etMin) * sec.EffectiveDepth()
	aMax := conc.Beta1() * cMax

	var cc float64
	switch s := sec.(type) {
	case *section.TSection:
		if kds.LessOrEqual(aMax, s.FlangeDepth()) {
			cc = conc.Eta() * 0.85 * conc.Fck * aMax * s.FlangeWidth()
		} else {
			ccf := conc.Eta() * 0.85 * conc.Fck * (s.FlangeWidth() - s.WebWidth()) * s.FlangeDepth()
			ccw := conc.Eta() * 0.85 * conc.Fck * s.WebWidth() * aMax
			cc = ccf + ccw
		}
	case *section.Rectangular:
		cc = conc.Eta() * 0.85 * conc.Fck * aMax * s.Width()
	default:
		return CapacityResult{}, &NotImplementedError{msg: "unsupported section type"}
	}

	// Force equilibrium T = Cc + Pu.
	asMax := (cc + pu) / steel.Fy()
	if asMax < 0 {
		return CapacityResult{}, capacityErrorf("axial tension too large: no tension reinforcement can provide flexural resistance")
	}

	analysis, err := Analyze(sec, asMax, pu)
	if err != nil {
		return CapacityResult{}, err
	}

	return CapacityResult{AsMax: asMax, MaxPhiMn: analysis.PhiMn, Analysis: analysis}, nil
}

// DesignFlexuralReinforcement finds the minimum tension-steel area that
// satisfies the strength demand mu (N-mm), floored by the 1.2*Mcr minimum
// reinforcement requirement.
func DesignFlexuralReinforcement(sec section.Section, mu, pu float64) (DesignResult, error) {
	if mu < 0 {
		return DesignResult{}, ErrNegativeMoment
	}
	if err := checkAxialLoadLimit(sec, pu); err != nil {
		return DesignResult{}, err
	}

	maxCapacity, err := MaximumCapacity(sec, pu)
	if err != nil {
		return DesignResult{}, err
	}

	var asMin float64
	mcrCheck := kds.MinFlexuralStrengthFactor * sec.CrackingMoment()
	if mcrCheck > 0 {
		asMin, err = findAsForMu(sec, mcrCheck, pu, maxCapacity.AsMax)
		if err != nil {
			return DesignResult{}, err
		}
	}

	if !kds.LessOrEqual(mu, maxCapacity.MaxPhiMn) {
		return DesignResult{}, capacityErrorf("demand Mu=%.2f kNm exceeds the ductility-governed maximum phiMn,max=%.2f kNm",
			mu/1e6, maxCapacity.MaxPhiMn/1e6)
	}

	asStrength, err := findAsForMu(sec, mu, pu, maxCapacity.AsMax)
	if err != nil {
		return DesignResult{}, err
	}

	asRequired := asStrength
	if asMin > asRequired {
		asRequired = asMin
	}
	minControlled := kds.GreaterOrEqual(asRequired, asMin) && !kds.Equal(asRequired, asStrength)

	analysis, err := Analyze(sec, asRequired, pu)
	if err != nil {
		return DesignResult{}, err
	}

	return DesignResult{
		AsRequired:           asRequired,
		AsMin:                asMin,
		AsMax:                maxCapacity.AsMax,
		IsMinRebarControlled: minControlled,
		Analysis:             analysis,
	}, nil
}

// CheckSectionAdequacy verifies the strength, ductility and minimum
// reinforcement criteria for a provided reinforcement area and reports
// each verdict.
func CheckSectionAdequacy(sec section.Section, asProvided, mu, pu float64) (CheckResult, error) {
	if asProvided < 0 {
		return CheckResult{}, ErrNegativeArea
	}

	analysis, err := Analyze(sec, asProvided, pu)
	if err != nil {
		return CheckResult{}, err
	}
	steel := sec.TensionSteel()

	strengthOK := kds.GreaterOrEqual(analysis.PhiMn, mu)
	ductilityOK := kds.GreaterOrEqual(analysis.NetTensileStrain, steel.MinAllowableTensileStrain())
	mcrCheck := kds.MinFlexuralStrengthFactor * sec.CrackingMoment()
	minRebarOK := kds.GreaterOrEqual(analysis.PhiMn, mcrCheck)

	return CheckResult{
		IsOK:        strengthOK && ductilityOK && minRebarOK,
		StrengthOK:  strengthOK,
		DuctilityOK: ductilityOK,
		MinRebarOK:  minRebarOK,
		Analysis:    analysis,
	}, nil
}

// VerifySectionAdequacy runs CheckSectionAdequacy and, on failure, returns
// the single most specific failing criterion in fixed priority order:
// ductility, then strength, then minimum reinforcement.
func VerifySectionAdequacy(sec section.Section, asProvided, mu, pu float64) error {
	result, err := CheckSectionAdequacy(sec, asProvided, mu, pu)
	if err != nil {
		return err
	}
	if result.IsOK {
		return nil
	}

	if !result.DuctilityOK {
		return &DuctilityError{
			Et:    result.Analysis.NetTensileStrain,
			EtMin: sec.TensionSteel().MinAllowableTensileStrain(),
		}
	}
	if !result.StrengthOK {
		return capacityErrorf("insufficient strength: phiMn=%.2f kNm is below the demand Mu=%.2f kNm",
			result.Analysis.PhiMn/1e6, mu/1e6)
	}
	return &MinReinforcementError{
		PhiMn:    result.Analysis.PhiMn,
		McrCheck: kds.MinFlexuralStrengthFactor * sec.CrackingMoment(),
	}
}

// maxAxialCapacity is the coarse maximum design axial strength estimate
// used by the precheck: tied-column formula with the longitudinal
// reinforcement assumed at 1% of the gross area. KDS 14 20 20 (4.1-17)
func maxAxialCapacity(sec section.Section) float64 {
	conc, steel := sec.Concrete(), sec.TensionSteel()
	ag := sec.GrossArea()
	ast := kds.AssumedAxialRebarRatio * ag
	pnMax := 0.85*conc.Fck*(ag-ast) + steel.Fy()*ast
	return kds.AxialCapacityCapTied * kds.PhiCompressionTied * pnMax
}

// checkAxialLoadLimit rejects compressive axial loads beyond the coarse
// axial capacity estimate before any section analysis is attempted.
// Tensile (negative) loads are not screened here.
func checkAxialLoadLimit(sec section.Section, pu float64) error {
	if pu <= 0 {
		return nil
	}
	if limit := maxAxialCapacity(sec); pu > limit {
		return capacityErrorf("factored axial load Pu=%.2f kN exceeds the maximum axial capacity %.2f kN",
			pu/1e3, limit/1e3)
	}
	return nil
}

// findAsForMu inverts the target moment to a required steel area by
// bounded bisection on [0, asUpperBound]. phiMn is monotonically
// non-decreasing in As over the admissible range, so the search converges;
// the returned upper bound is a slight conservative over-estimate.
func findAsForMu(sec section.Section, targetMu, pu, asUpperBound float64) (float64, error) {
	if targetMu < 0 {
		return 0, ErrNegativeMoment
	}

	lower, upper := 0.0, asUpperBound
	for i := 0; i < searchIterations; i++ {
		if upper-lower < searchTolerance {
			break
		}
		guess := (lower + upper) / 2
		analysis, err := Analyze(sec, guess, pu)
		if err != nil {
			return 0, err
		}
		if analysis.PhiMn < targetMu {
			lower = guess
		} else {
			upper = guess
		}
	}
	return upper, nil
}
