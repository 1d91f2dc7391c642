package batch

import (
	"runtime"
	"sync"

	"github.com/kdstools/kdsbeam/internal/engine"
	"github.com/kdstools/kdsbeam/internal/section"
)

// Row is one result record. Which fields are meaningful depends on the
// case mode; exporters pick columns per mode. All values are kept in
// N-mm units; unit conversion happens at export only.
type Row struct {
	Case

	Status  string // "OK", "Error" or "Critical Error"
	Message string

	// Enrichment columns shared by every mode
	Fy float64
	D  float64
	Ag float64
	Ig float64
	Sm float64 // unit section modulus Ig/(h/2)/width

	// Design mode
	AsRequired      float64
	IsMinControlled bool

	// Shared analysis outputs
	AsMin            float64
	AsMax            float64
	Phi              float64
	PhiMn            float64
	NetTensileStrain float64

	// Analysis and check modes
	Step   int
	AsProv float64
	Rho    float64

	IsOK        bool
	StrengthOK  bool
	DuctilityOK bool
	MinRebarOK  bool
}

// Runner executes every case of a scenario. Cases are independent pure
// computations, so they fan out over a bounded worker pool; results keep
// the expansion order.
type Runner struct {
	scenario *Scenario
	rows     []Row
}

// NewRunner creates a Runner for the scenario.
func NewRunner(s *Scenario) *Runner {
	return &Runner{scenario: s}
}

// Rows returns the collected result rows after Run.
func (r *Runner) Rows() []Row {
	return r.rows
}

// Run expands the scenario and computes all cases.
func (r *Runner) Run() {
	cases := r.scenario.Expand()
	perCase := make([][]Row, len(cases))

	workers := r.scenario.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(cases) {
		workers = len(cases)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perCase[i] = runCase(cases[i])
			}
		}()
	}
	for i := range cases {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	r.rows = r.rows[:0]
	for _, rows := range perCase {
		r.rows = append(r.rows, rows...)
	}
}

func runCase(c Case) []Row {
	sec, err := c.Section()
	if err != nil {
		return []Row{{Case: c, Status: "Error", Message: err.Error()}}
	}

	base := Row{
		Case:   c,
		Status: "OK",
		Fy:     sec.TensionSteel().Fy(),
		D:      sec.EffectiveDepth(),
		Ag:     sec.GrossArea(),
		Ig:     sec.Ig(),
		Sm:     sec.Ig() / sec.Height() * 2 / c.EffectiveWidth(),
	}

	switch c.Mode {
	case ModeDesign:
		return runDesign(sec, c, base)
	case ModeAnalysis:
		return runAnalysis(sec, c, base)
	case ModeCheck:
		return runCheck(sec, c, base)
	default:
		return []Row{{Case: c, Status: "Critical Error", Message: "unknown mode"}}
	}
}

func runDesign(sec section.Section, c Case, base Row) []Row {
	result, err := engine.DesignFlexuralReinforcement(sec, c.Mu, c.Pu)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}
	base.AsRequired = result.AsRequired
	base.AsMin = result.AsMin
	base.AsMax = result.AsMax
	base.Phi = result.Analysis.Phi
	base.PhiMn = result.Analysis.PhiMn
	base.NetTensileStrain = result.Analysis.NetTensileStrain
	base.IsMinControlled = result.IsMinRebarControlled
	return []Row{base}
}

func runAnalysis(sec section.Section, c Case, base Row) []Row {
	capacity, err := engine.MaximumCapacity(sec, 0)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}
	design, err := engine.DesignFlexuralReinforcement(sec, 0, 0)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}

	asMin, asMax := design.AsMin, capacity.AsMax
	steps := c.NumRebarSteps
	stepSize := 0.0
	if steps > 1 && asMax > asMin {
		stepSize = (asMax - asMin) / float64(steps-1)
	}

	bd := c.EffectiveWidth() * sec.EffectiveDepth()
	rows := make([]Row, 0, steps)
	for i := 0; i < steps; i++ {
		as := asMin + float64(i)*stepSize
		result, err := engine.CheckSectionAdequacy(sec, as, 0, 0)
		if err != nil {
			row := base
			row.Status, row.Message = "Error", err.Error()
			rows = append(rows, row)
			continue
		}
		row := base
		row.AsMin = asMin
		row.AsMax = asMax
		row.Step = i + 1
		row.AsProv = as
		row.Rho = as / bd
		row.Phi = result.Analysis.Phi
		row.PhiMn = result.Analysis.PhiMn
		row.NetTensileStrain = result.Analysis.NetTensileStrain
		row.IsOK = result.IsOK
		row.StrengthOK = result.StrengthOK
		row.DuctilityOK = result.DuctilityOK
		row.MinRebarOK = result.MinRebarOK
		rows = append(rows, row)
	}
	return rows
}

func runCheck(sec section.Section, c Case, base Row) []Row {
	capacity, err := engine.MaximumCapacity(sec, 0)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}
	design, err := engine.DesignFlexuralReinforcement(sec, 0, 0)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}
	result, err := engine.CheckSectionAdequacy(sec, c.AsProvided, c.Mu, c.Pu)
	if err != nil {
		base.Status, base.Message = "Error", err.Error()
		return []Row{base}
	}

	base.AsMin = design.AsMin
	base.AsMax = capacity.AsMax
	base.AsProv = c.AsProvided
	base.Rho = c.AsProvided / (c.EffectiveWidth() * sec.EffectiveDepth())
	base.Phi = result.Analysis.Phi
	base.PhiMn = result.Analysis.PhiMn
	base.NetTensileStrain = result.Analysis.NetTensileStrain
	base.IsOK = result.IsOK
	base.StrengthOK = result.StrengthOK
	base.DuctilityOK = result.DuctilityOK
	base.MinRebarOK = result.MinRebarOK
	return []Row{base}
}
