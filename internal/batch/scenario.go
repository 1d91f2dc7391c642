// Package batch expands a parameter-sweep scenario into independent design
// cases, runs them on a worker pool and exports the results to CSV or XLSX.
package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kdstools/kdsbeam/internal/material"
	"github.com/kdstools/kdsbeam/internal/section"
)

// Mode selects what the runner computes per case.
type Mode string

const (
	ModeDesign   Mode = "design"   // required reinforcement for Mu, Pu
	ModeAnalysis Mode = "analysis" // capacity curve sweep from As,min to As,max
	ModeCheck    Mode = "check"    // adequacy verdicts for a provided As
)

// Scenario is one sweep definition, usually loaded from a YAML file. Every
// list field is combined cartesian-style into cases. Moments are given in
// kN-m and axial forces in kN; the runner converts to N-mm and N.
type Scenario struct {
	Shape string `yaml:"shape"` // "r" or "t"
	Mode  Mode   `yaml:"mode"`

	Fck   []float64 `yaml:"fck"`
	Grade []string  `yaml:"grade"`

	// Rectangular geometry
	Width []float64 `yaml:"width"`

	// T-shape geometry
	WebWidth    []float64 `yaml:"web_width"`
	FlangeWidth []float64 `yaml:"flange_width"`
	FlangeDepth []float64 `yaml:"flange_depth"`

	Height     []float64 `yaml:"height"`
	Cover      []float64 `yaml:"cover"`
	StirrupDia []float64 `yaml:"stirrup_dia"`
	RebarDia   []float64 `yaml:"rebar_dia"`

	Mu         []float64 `yaml:"mu"`          // kN-m
	Pu         []float64 `yaml:"pu"`          // kN
	AsProvided []float64 `yaml:"as_provided"` // mm^2, check mode

	// Sample count for analysis mode, As,min to As,max.
	NumRebarSteps int `yaml:"num_rebar_steps"`

	// Worker pool size; 0 selects runtime.NumCPU().
	Workers int `yaml:"workers"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects scenarios whose shape, mode or parameter lists cannot
// produce cases.
func (s *Scenario) Validate() error {
	switch s.Shape {
	case "r":
		if len(s.Width) == 0 {
			return fmt.Errorf("rectangular scenario needs a width list")
		}
	case "t":
		if len(s.WebWidth) == 0 || len(s.FlangeWidth) == 0 || len(s.FlangeDepth) == 0 {
			return fmt.Errorf("t-shape scenario needs web_width, flange_width and flange_depth lists")
		}
	default:
		return fmt.Errorf("unknown shape code %q", s.Shape)
	}

	switch s.Mode {
	case ModeDesign, ModeAnalysis:
	case ModeCheck:
		if len(s.AsProvided) == 0 {
			return fmt.Errorf("check scenario needs an as_provided list")
		}
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}

	for _, req := range []struct {
		name string
		n    int
	}{
		{"fck", len(s.Fck)},
		{"grade", len(s.Grade)},
		{"height", len(s.Height)},
		{"cover", len(s.Cover)},
		{"stirrup_dia", len(s.StirrupDia)},
		{"rebar_dia", len(s.RebarDia)},
	} {
		if req.n == 0 {
			return fmt.Errorf("scenario needs a %s list", req.name)
		}
	}
	return nil
}

// Case is one fully resolved parameter combination. Loads are already in
// N-mm and N.
type Case struct {
	Shape string
	Mode  Mode

	Fck   float64
	Grade string

	Width       float64
	WebWidth    float64
	FlangeWidth float64
	FlangeDepth float64

	Height     float64
	Cover      float64
	StirrupDia float64
	RebarDia   float64

	Mu         float64
	Pu         float64
	AsProvided float64

	NumRebarSteps int
}

// Section builds the section object for this case.
func (c *Case) Section() (section.Section, error) {
	concrete, err := material.NewConcrete(c.Fck)
	if err != nil {
		return nil, err
	}
	steel, err := material.NewSteel(c.Grade)
	if err != nil {
		return nil, err
	}

	if c.Shape == "t" {
		return section.NewTSection(c.WebWidth, c.FlangeWidth, c.FlangeDepth, c.Height,
			c.Cover, c.StirrupDia, c.RebarDia, concrete, steel)
	}
	return section.NewRectangular(c.Width, c.Height, c.Cover, c.StirrupDia, c.RebarDia,
		concrete, steel)
}

// EffectiveWidth returns the width the main reinforcement occupies: the
// web for T-shapes, the full width for rectangles.
func (c *Case) EffectiveWidth() float64 {
	if c.Shape == "t" {
		return c.WebWidth
	}
	return c.Width
}

// Expand produces the cartesian product of all parameter lists. Empty load
// lists default to a single zero entry.
func (s *Scenario) Expand() []Case {
	orOne := func(vals []float64) []float64 {
		if len(vals) == 0 {
			return []float64{0}
		}
		return vals
	}

	widths := s.Width
	if s.Shape == "t" {
		widths = []float64{0}
	}
	mus := orOne(s.Mu)
	pus := orOne(s.Pu)
	asProvided := orOne(s.AsProvided)
	webWidths := orOne(s.WebWidth)
	flangeWidths := orOne(s.FlangeWidth)
	flangeDepths := orOne(s.FlangeDepth)

	steps := s.NumRebarSteps
	if steps <= 0 {
		steps = 20
	}

	var cases []Case
	for _, fck := range s.Fck {
		for _, grade := range s.Grade {
			for _, w := range widths {
				for _, bw := range webWidths {
					for _, bf := range flangeWidths {
						for _, hf := range flangeDepths {
							for _, h := range s.Height {
								for _, cover := range s.Cover {
									for _, sd := range s.StirrupDia {
										for _, rd := range s.RebarDia {
											for _, mu := range mus {
												for _, pu := range pus {
													for _, asp := range asProvided {
														cases = append(cases, Case{
															Shape:         s.Shape,
															Mode:          s.Mode,
															Fck:           fck,
															Grade:         grade,
															Width:         w,
															WebWidth:      bw,
															FlangeWidth:   bf,
															FlangeDepth:   hf,
															Height:        h,
															Cover:         cover,
															StirrupDia:    sd,
															RebarDia:      rd,
															Mu:            mu * 1e6, // kN-m -> N-mm
															Pu:            pu * 1e3, // kN -> N
															AsProvided:    asp,
															NumRebarSteps: steps,
														})
													}
												}
											}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return cases
}
