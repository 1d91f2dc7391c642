package kds

// LoadCombination is one KDS strength-design load combination.
// Based on KDS 41 12 00 - load combinations for ultimate strength design.
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - dead load
	Live       float64 // L - live load
	Roof       float64 // Lr - roof live load
	Wind       float64 // W - wind load
	Earthquake float64 // E - earthquake load
	Rain       float64 // R - rain load
}

// LoadCombinations lists the basic strength-design combinations.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.65W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.65,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.3W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.3,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.3W",
		Dead:        0.9,
		Wind:        1.3,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// GravityCombinations holds the two combinations that usually govern
// beams carrying only gravity loads.
var GravityCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadMoments holds unfactored moments from each load type (kN-m).
type LoadMoments struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factored returns the factored moment for this combination.
func (lc LoadCombination) Factored(m LoadMoments) float64 {
	return lc.Dead*m.Dead +
		lc.Live*m.Live +
		lc.Roof*m.Roof +
		lc.Wind*m.Wind +
		lc.Earthquake*m.Earthquake +
		lc.Rain*m.Rain
}

// GoverningMoment returns the maximum factored moment over the given
// combinations together with the combination that produced it.
func GoverningMoment(m LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var max float64
	var governing LoadCombination
	for _, lc := range combinations {
		if mu := lc.Factored(m); mu > max {
			max = mu
			governing = lc
		}
	}
	return max, governing
}
