package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kdstools/kdsbeam/internal/engine"
	"github.com/kdstools/kdsbeam/internal/material"
	"github.com/kdstools/kdsbeam/internal/section"
)

func analyzedRectangular(t *testing.T) (section.Section, engine.AnalysisResult) {
	t.Helper()
	concrete, err := material.NewConcrete(24)
	if err != nil {
		t.Fatal(err)
	}
	steel, err := material.NewSteel("SD400")
	if err != nil {
		t.Fatal(err)
	}
	sec, err := section.NewRectangular(300, 500, 40, 10, 22, concrete, steel)
	if err != nil {
		t.Fatal(err)
	}
	res, err := engine.Analyze(sec, 1500, 0)
	if err != nil {
		t.Fatal(err)
	}
	return sec, res
}

func TestFromAnalysis(t *testing.T) {
	sec, res := analyzedRectangular(t)

	data := FromAnalysis(sec, 1500, 0, res)
	if data.Width != 300 || data.Height != 500 {
		t.Errorf("dimensions = %vx%v, want 300x500", data.Width, data.Height)
	}
	if len(data.Vertices) != 4 {
		t.Errorf("rectangle outline has %d vertices, want 4", len(data.Vertices))
	}
	if want := 500 - sec.EffectiveDepth(); data.TensionSteelY != want {
		t.Errorf("TensionSteelY = %v, want %v", data.TensionSteelY, want)
	}
	if data.NeutralAxisDepth != res.C {
		t.Errorf("NeutralAxisDepth = %v, want %v", data.NeutralAxisDepth, res.C)
	}
	if want := 0.8 * res.C; math.Abs(data.StressBlockDepth-want) > 1e-9 {
		t.Errorf("StressBlockDepth = %v, want %v", data.StressBlockDepth, want)
	}
	if data.EpsilonCU != 0.0033 || data.EpsilonTMin != 0.004 {
		t.Errorf("strain limits = %v/%v, want 0.0033/0.004", data.EpsilonCU, data.EpsilonTMin)
	}
	if data.EffectiveStress != 0.85*24 {
		t.Errorf("EffectiveStress = %v, want %v", data.EffectiveStress, 0.85*24)
	}
}

func TestTSectionOutline(t *testing.T) {
	concrete, _ := material.NewConcrete(24)
	steel, _ := material.NewSteel("SD400")
	sec, err := section.NewTSection(300, 800, 120, 600, 50, 13, 25, concrete, steel)
	if err != nil {
		t.Fatal(err)
	}

	verts := outline(sec)
	if len(verts) != 8 {
		t.Fatalf("T outline has %d vertices, want 8", len(verts))
	}

	// Web width below the flange, flange width within it.
	if minX, maxX := findWidthAtY(verts, 100, 0, 800); math.Abs((maxX-minX)-300) > 1e-9 {
		t.Errorf("width at web level = %v, want 300", maxX-minX)
	}
	if minX, maxX := findWidthAtY(verts, 550, 0, 800); math.Abs((maxX-minX)-800) > 1e-9 {
		t.Errorf("width at flange level = %v, want 800", maxX-minX)
	}
}

func TestClipSectionAtDepth(t *testing.T) {
	rect := []Point{{0, 0}, {300, 0}, {300, 500}, {0, 500}}

	clipped := clipSectionAtDepth(rect, 500, 100)
	if len(clipped) != 4 {
		t.Fatalf("clipped polygon has %d vertices, want 4", len(clipped))
	}
	for _, p := range clipped {
		if p.Y < 400-1e-9 {
			t.Errorf("clipped vertex below the clip line: %+v", p)
		}
	}

	if got := clipSectionAtDepth(rect, 500, 0); got != nil {
		t.Error("zero depth should yield no polygon")
	}
}

func TestDrawSection(t *testing.T) {
	sec, res := analyzedRectangular(t)
	data := FromAnalysis(sec, 1500, 0, res)

	out := DrawSection(data)
	for _, want := range []string{"N.A.", "εcu = 0.0033", "η·0.85·fck", "(ductile)"} {
		if !strings.Contains(out, want) {
			t.Errorf("section drawing missing %q", want)
		}
	}

	strain := DrawStrainDiagram(data)
	for _, want := range []string{"εcu = 0.0033", "εt,min = 0.0040", "✓ductile"} {
		if !strings.Contains(strain, want) {
			t.Errorf("strain drawing missing %q", want)
		}
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"As = 1500 mm²"})
	if !strings.Contains(box, "RESULT") || !strings.Contains(box, "As = 1500 mm²") {
		t.Errorf("summary box incomplete:\n%s", box)
	}
}

func TestExportDiagrams(t *testing.T) {
	sec, res := analyzedRectangular(t)
	data := FromAnalysis(sec, 1500, 0, res)
	dir := t.TempDir()

	sectionFile := filepath.Join(dir, "section.png")
	if err := ExportSectionDiagram(data, sectionFile); err != nil {
		t.Fatalf("ExportSectionDiagram: %v", err)
	}
	if info, err := os.Stat(sectionFile); err != nil || info.Size() == 0 {
		t.Errorf("section image missing or empty: %v", err)
	}

	strainFile := filepath.Join(dir, "strain.svg")
	if err := ExportStrainDiagram(data, strainFile); err != nil {
		t.Fatalf("ExportStrainDiagram: %v", err)
	}
	if info, err := os.Stat(strainFile); err != nil || info.Size() == 0 {
		t.Errorf("strain image missing or empty: %v", err)
	}
}
