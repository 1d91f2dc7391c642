package section

import "github.com/kdstools/kdsbeam/internal/material"

// Rectangular is a solid rectangular section with a single equivalent layer
// of tension reinforcement. The compression rebar fields are carried for
// future doubly-reinforced support; the analyzer rejects them.
type Rectangular struct {
	width           float64
	height          float64
	coverToStirrup  float64
	stirrupDia      float64
	tensionRebarDia float64

	concrete     material.Concrete
	tensionSteel material.Steel

	compressionRebarDia float64 // 0 when absent
	compressionSteel    *material.Steel
}

// NewRectangular creates a singly reinforced rectangular section.
func NewRectangular(width, height, coverToStirrup, stirrupDia, tensionRebarDia float64,
	concrete material.Concrete, tensionSteel material.Steel) (*Rectangular, error) {

	s := &Rectangular{
		width:           width,
		height:          height,
		coverToStirrup:  coverToStirrup,
		stirrupDia:      stirrupDia,
		tensionRebarDia: tensionRebarDia,
		concrete:        concrete,
		tensionSteel:    tensionSteel,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRectangularWithCompression creates a rectangular section that also
// carries compression reinforcement geometry. The analyzer does not yet
// use it; see engine.NotImplementedError.
func NewRectangularWithCompression(width, height, coverToStirrup, stirrupDia, tensionRebarDia float64,
	concrete material.Concrete, tensionSteel material.Steel,
	compressionRebarDia float64, compressionSteel material.Steel) (*Rectangular, error) {

	s, err := NewRectangular(width, height, coverToStirrup, stirrupDia, tensionRebarDia, concrete, tensionSteel)
	if err != nil {
		return nil, err
	}
	if compressionRebarDia < 0 {
		return nil, sectionErrorf("compression rebar diameter must be non-negative, got %.2f", compressionRebarDia)
	}
	s.compressionRebarDia = compressionRebarDia
	s.compressionSteel = &compressionSteel
	return s, nil
}

func (s *Rectangular) validate() error {
	for _, v := range []float64{s.width, s.height, s.coverToStirrup, s.stirrupDia, s.tensionRebarDia} {
		if v < 0 {
			return sectionErrorf("all geometric dimensions must be non-negative")
		}
	}
	if s.EffectiveDepth() <= 0 {
		return sectionErrorf("effective depth d must be positive; check dimensions and cover")
	}
	return nil
}

func (s *Rectangular) Shape() Shape { return ShapeRectangular }

func (s *Rectangular) Width() float64           { return s.width }
func (s *Rectangular) Height() float64          { return s.height }
func (s *Rectangular) CoverToStirrup() float64  { return s.coverToStirrup }
func (s *Rectangular) StirrupDia() float64      { return s.stirrupDia }
func (s *Rectangular) TensionRebarDia() float64 { return s.tensionRebarDia }

func (s *Rectangular) Concrete() material.Concrete  { return s.concrete }
func (s *Rectangular) TensionSteel() material.Steel { return s.tensionSteel }

// GrossArea returns Ag = b*h.
func (s *Rectangular) GrossArea() float64 {
	return s.width * s.height
}

// Ig returns b*h^3/12.
func (s *Rectangular) Ig() float64 {
	return s.width * s.height * s.height * s.height / 12
}

// EffectiveDepth returns d = h - cover - stirrup - bar/2.
func (s *Rectangular) EffectiveDepth() float64 {
	return effectiveDepth(s.height, s.coverToStirrup, s.stirrupDia, s.tensionRebarDia)
}

// DPrime returns the depth to the compression steel centroid and whether
// compression reinforcement is present.
func (s *Rectangular) DPrime() (float64, bool) {
	if s.compressionSteel == nil {
		return 0, false
	}
	return s.coverToStirrup + s.stirrupDia + s.compressionRebarDia/2, true
}

// CrackingMoment returns Mcr = fr*Ig/yt with yt = h/2.
func (s *Rectangular) CrackingMoment() float64 {
	fr := s.concrete.ModulusOfRupture()
	return fr * s.Ig() / (s.height / 2)
}
