package detail

import (
	"errors"
	"math"
	"testing"

	"github.com/kdstools/kdsbeam/internal/material"
)

func TestSelectorOptions(t *testing.T) {
	sel, err := NewSelector([]int{10, 13, 16, 19, 22, 25}, []int{100, 150, 200, 250, 300})
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}

	options := sel.Options(1000, 3)
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}

	// D19@250 provides 286.5*1000/250 = 1146 mm^2/m, the tightest fit.
	best := options[0]
	if best.Diameter != 19 || best.Spacing != 250 {
		t.Errorf("best option = D%d@%d, want D19@250", best.Diameter, best.Spacing)
	}
	if math.Abs(best.AsProvidedPerMeter-1146.0) > 1e-9 {
		t.Errorf("AsProvidedPerMeter = %v, want 1146", best.AsProvidedPerMeter)
	}

	for i := 1; i < len(options); i++ {
		if options[i].Efficiency < options[i-1].Efficiency {
			t.Error("options must be sorted by ascending efficiency")
		}
		if options[i].Efficiency < 1 {
			t.Errorf("option %d under-provides: %v", i, options[i].Efficiency)
		}
	}
}

func TestSelectorRejectsUnknownDiameter(t *testing.T) {
	var uerr *UnsupportedDiameterError
	if _, err := NewSelector([]int{10, 15}, []int{200}); !errors.As(err, &uerr) {
		t.Errorf("got %v, want UnsupportedDiameterError", err)
	} else if uerr.Diameter != 15 {
		t.Errorf("Diameter = %d, want 15", uerr.Diameter)
	}
}

func TestSelectorZeroDemand(t *testing.T) {
	sel, err := NewSelector([]int{13}, []int{200})
	if err != nil {
		t.Fatal(err)
	}
	if got := sel.Options(0, 5); got != nil {
		t.Errorf("zero demand should yield no options, got %v", got)
	}
}

func TestDetailerSingleLayer(t *testing.T) {
	steel, err := material.NewSteel("SD400")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetailer(steel)

	layout, err := d.PlanLayout(Option{Diameter: 25}, 300, 500, 1500, 40, 10)
	if err != nil {
		t.Fatalf("PlanLayout: %v", err)
	}
	if layout == nil {
		t.Fatal("layout should be plannable")
	}

	// ceil(1500/506.7) = 3 bars fit one layer of a 300mm web.
	if got := layout.TotalRebars(); got != 3 {
		t.Errorf("TotalRebars = %d, want 3", got)
	}
	if len(layout.Layers) != 1 {
		t.Fatalf("layers = %d, want 1", len(layout.Layers))
	}
	if want := 3 * 506.7; math.Abs(layout.AsProvidedTotal-want) > 1e-9 {
		t.Errorf("AsProvidedTotal = %v, want %v", layout.AsProvidedTotal, want)
	}

	// Bar centroid at cover + stirrup + dia/2 = 62.5mm above the bottom.
	if want := 62.5; layout.Layers[0].YFromBottom != want {
		t.Errorf("YFromBottom = %v, want %v", layout.Layers[0].YFromBottom, want)
	}
	if want := 500 - 62.5; math.Abs(layout.ActualEffectiveDepth()-want) > 1e-9 {
		t.Errorf("ActualEffectiveDepth = %v, want %v", layout.ActualEffectiveDepth(), want)
	}
}

func TestDetailerStacksLayers(t *testing.T) {
	steel, err := material.NewSteel("SD400")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetailer(steel)

	layout, err := d.PlanLayout(Option{Diameter: 25}, 300, 500, 3000, 40, 10)
	if err != nil {
		t.Fatal(err)
	}
	if layout == nil {
		t.Fatal("layout should be plannable")
	}

	// ceil(3000/506.7) = 6 bars, at most 4 per layer in a 300mm web.
	if got := layout.TotalRebars(); got != 6 {
		t.Errorf("TotalRebars = %d, want 6", got)
	}
	if len(layout.Layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(layout.Layers))
	}
	if layout.Layers[0].NumRebars != 4 || layout.Layers[1].NumRebars != 2 {
		t.Errorf("layer split = %d/%d, want 4/2",
			layout.Layers[0].NumRebars, layout.Layers[1].NumRebars)
	}

	// Second layer sits one bar diameter plus 25mm clear above the first.
	if want := 62.5 + 25 + 25; layout.Layers[1].YFromBottom != want {
		t.Errorf("layer 2 YFromBottom = %v, want %v", layout.Layers[1].YFromBottom, want)
	}

	// Group centroid: (4*62.5 + 2*112.5)/6 = 79.17mm above the bottom.
	if want := 500 - (4*62.5+2*112.5)/6; math.Abs(layout.ActualEffectiveDepth()-want) > 1e-9 {
		t.Errorf("ActualEffectiveDepth = %v, want %v", layout.ActualEffectiveDepth(), want)
	}
}

func TestDetailerUnplaceable(t *testing.T) {
	steel, err := material.NewSteel("SD400")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetailer(steel)

	layout, err := d.PlanLayout(Option{Diameter: 25}, 60, 500, 1500, 40, 10)
	if err != nil {
		t.Fatal(err)
	}
	if layout != nil {
		t.Errorf("60mm width cannot hold D25 bars, got %+v", layout)
	}

	layout, err = d.PlanLayout(Option{Diameter: 25}, 300, 500, 0, 40, 10)
	if err != nil {
		t.Fatal(err)
	}
	if layout != nil {
		t.Error("zero demand should yield no layout")
	}
}

func TestDetailerRejectsUnknownDiameter(t *testing.T) {
	steel, err := material.NewSteel("SD400")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetailer(steel)

	if _, err := d.PlanLayout(Option{Diameter: 15}, 300, 500, 1500, 40, 10); err == nil {
		t.Error("D15 should be rejected")
	}
}
