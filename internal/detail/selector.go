// Package detail proposes constructible rebar arrangements for a required
// tension-steel area: first a diameter-at-spacing concept per unit width,
// then a concrete multi-layer layout for the actual section.
package detail

import (
	"sort"

	"github.com/kdstools/kdsbeam/internal/material"
)

// Option is a rebar arrangement concept per metre of width: diameter D at
// spacing S, with the provided area it yields.
type Option struct {
	Diameter           int     // mm
	Spacing            int     // mm
	AsProvidedPerMeter float64 // mm^2/m
	Efficiency         float64 // provided / required, >= 1
}

// Selector proposes the most economical diameter-at-spacing concepts for a
// required steel area per metre of width.
type Selector struct {
	availableDiameters []int
	preferredSpacings  []int
}

// NewSelector creates a Selector over the given candidate diameters and
// preferred spacings. Diameters must come from the supported KS table.
func NewSelector(availableDiameters, preferredSpacings []int) (*Selector, error) {
	dias := append([]int(nil), availableDiameters...)
	sort.Ints(dias)
	for _, dia := range dias {
		if _, ok := material.RebarArea(dia); !ok {
			return nil, &UnsupportedDiameterError{Diameter: dia}
		}
	}
	spacings := append([]int(nil), preferredSpacings...)
	sort.Ints(spacings)
	return &Selector{availableDiameters: dias, preferredSpacings: spacings}, nil
}

// Options returns up to topN arrangement concepts covering asRequiredPerMeter
// (mm^2/m), sorted by ascending efficiency (least over-provision first).
// For each preferred spacing the smallest adequate diameter is back-solved
// from the single-bar area that spacing demands.
func (s *Selector) Options(asRequiredPerMeter float64, topN int) []Option {
	if asRequiredPerMeter <= 0 {
		return nil
	}

	var options []Option
	for _, spacing := range s.preferredSpacings {
		requiredBarArea := asRequiredPerMeter * float64(spacing) / 1000.0

		for _, dia := range s.availableDiameters {
			area, _ := material.RebarArea(dia)
			if area < requiredBarArea {
				continue
			}
			provided := area * 1000.0 / float64(spacing)
			options = append(options, Option{
				Diameter:           dia,
				Spacing:            spacing,
				AsProvidedPerMeter: provided,
				Efficiency:         provided / asRequiredPerMeter,
			})
			break
		}
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Efficiency < options[j].Efficiency
	})
	if len(options) > topN {
		options = options[:topN]
	}
	return options
}
