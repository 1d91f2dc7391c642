package kds

import (
	"math"
	"testing"
)

func TestPhiInterpolation(t *testing.T) {
	// SD400 limits: eccl = 0.002, etcl = 0.005
	const eccl, etcl = 0.002, 0.005

	tests := []struct {
		name string
		et   float64
		want float64
	}{
		{"tension controlled", 0.005, PhiTensionControlled},
		{"beyond tension controlled", 0.012, PhiTensionControlled},
		{"compression controlled", 0.002, PhiCompressionTied},
		{"below compression limit", 0.001, PhiCompressionTied},
		{"transition midpoint", 0.0035, 0.75},
		{"just inside tension limit by tolerance", 0.005 - 1e-10, PhiTensionControlled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phi(tt.et, eccl, etcl)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Phi(%v) = %v, want %v", tt.et, got, tt.want)
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	if !Equal(1.0, 1.0+1e-10) {
		t.Error("values within tolerance should compare equal")
	}
	if Equal(1.0, 1.0+1e-6) {
		t.Error("values beyond tolerance should not compare equal")
	}
	if !GreaterOrEqual(1.0, 1.0+1e-10) {
		t.Error("GreaterOrEqual should tolerate a tiny deficit")
	}
	if GreaterOrEqual(1.0, 1.1) {
		t.Error("GreaterOrEqual(1.0, 1.1) should be false")
	}
	if !LessOrEqual(1.0+1e-10, 1.0) {
		t.Error("LessOrEqual should tolerate a tiny excess")
	}
	if LessOrEqual(1.1, 1.0) {
		t.Error("LessOrEqual(1.1, 1.0) should be false")
	}
}

func TestGoverningMoment(t *testing.T) {
	moments := LoadMoments{Dead: 50, Live: 30}

	mu, combo := GoverningMoment(moments, LoadCombinations)
	if math.Abs(mu-108.0) > 1e-9 {
		t.Errorf("governing Mu = %v, want 108 (1.2D + 1.6L)", mu)
	}
	if combo.ID != "2" {
		t.Errorf("governing combination = %s, want 2", combo.ID)
	}

	mu, _ = GoverningMoment(moments, GravityCombinations)
	if math.Abs(mu-108.0) > 1e-9 {
		t.Errorf("gravity governing Mu = %v, want 108", mu)
	}
}

func TestFactoredWindUplift(t *testing.T) {
	// 0.9D + 1.3W with a negative wind moment stays below the gravity
	// combinations; GoverningMoment must still pick the positive maximum.
	moments := LoadMoments{Dead: 100, Wind: -40}
	mu, combo := GoverningMoment(moments, LoadCombinations)
	if combo.ID == "6" {
		t.Errorf("uplift combination should not govern, got Mu=%v", mu)
	}
	if math.Abs(mu-140.0) > 1e-9 {
		t.Errorf("governing Mu = %v, want 140 (1.4D)", mu)
	}
}
