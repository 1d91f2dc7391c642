package section

import "github.com/kdstools/kdsbeam/internal/material"

// TSection is a flanged T-shape section. The flange sits at the compression
// (top) face; the main tension reinforcement is placed in the web.
type TSection struct {
	webWidth        float64
	flangeWidth     float64
	flangeDepth     float64
	height          float64
	coverToStirrup  float64
	stirrupDia      float64
	tensionRebarDia float64

	concrete     material.Concrete
	tensionSteel material.Steel
}

// NewTSection creates a singly reinforced T-shape section.
func NewTSection(webWidth, flangeWidth, flangeDepth, height, coverToStirrup, stirrupDia, tensionRebarDia float64,
	concrete material.Concrete, tensionSteel material.Steel) (*TSection, error) {

	s := &TSection{
		webWidth:        webWidth,
		flangeWidth:     flangeWidth,
		flangeDepth:     flangeDepth,
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

func (s *TSection) validate() error {
	for _, v := range []float64{s.webWidth, s.flangeWidth, s.flangeDepth, s.height, s.coverToStirrup, s.stirrupDia, s.tensionRebarDia} {
		if v < 0 {
			return sectionErrorf("all geometric dimensions must be non-negative")
		}
	}
	if s.flangeWidth < s.webWidth {
		return sectionErrorf("flange width (%.1f) must not be smaller than web width (%.1f)", s.flangeWidth, s.webWidth)
	}
	if s.flangeDepth >= s.height {
		return sectionErrorf("flange depth (%.1f) must be smaller than the overall height (%.1f)", s.flangeDepth, s.height)
	}
	if s.EffectiveDepth() <= 0 {
		return sectionErrorf("effective depth d must be positive; check dimensions and cover")
	}
	return nil
}

func (s *TSection) Shape() Shape { return ShapeT }

func (s *TSection) WebWidth() float64        { return s.webWidth }
func (s *TSection) FlangeWidth() float64     { return s.flangeWidth }
func (s *TSection) FlangeDepth() float64     { return s.flangeDepth }
func (s *TSection) Height() float64          { return s.height }
func (s *TSection) CoverToStirrup() float64  { return s.coverToStirrup }
func (s *TSection) StirrupDia() float64      { return s.stirrupDia }
func (s *TSection) TensionRebarDia() float64 { return s.tensionRebarDia }

func (s *TSection) Concrete() material.Concrete  { return s.concrete }
func (s *TSection) TensionSteel() material.Steel { return s.tensionSteel }

func (s *TSection) flangeArea() float64 { return s.flangeWidth * s.flangeDepth }
func (s *TSection) webArea() float64    { return s.webWidth * (s.height - s.flangeDepth) }

// GrossArea returns the composite area of flange and web.
func (s *TSection) GrossArea() float64 {
	return s.flangeArea() + s.webArea()
}

// CentroidFromTop returns the distance from the top fiber to the centroid
// of the gross section.
func (s *TSection) CentroidFromTop() float64 {
	flangeMoment := s.flangeArea() * (s.flangeDepth / 2)
	webMoment := s.webArea() * (s.flangeDepth + (s.height-s.flangeDepth)/2)
	return (flangeMoment + webMoment) / s.GrossArea()
}

// Ig composes the flange and web rectangles about the section centroid by
// the parallel-axis theorem.
func (s *TSection) Ig() float64 {
	webDepth := s.height - s.flangeDepth

	igFlange := s.flangeWidth * s.flangeDepth * s.flangeDepth * s.flangeDepth / 12
	igWeb := s.webWidth * webDepth * webDepth * webDepth / 12

	yc := s.CentroidFromTop()
	dFlange := yc - s.flangeDepth/2
	dWeb := yc - (s.flangeDepth + webDepth/2)

	return igFlange + s.flangeArea()*dFlange*dFlange +
		igWeb + s.webArea()*dWeb*dWeb
}

// EffectiveDepth returns d = h - cover - stirrup - bar/2.
func (s *TSection) EffectiveDepth() float64 {
	return effectiveDepth(s.height, s.coverToStirrup, s.stirrupDia, s.tensionRebarDia)
}

// CrackingMoment returns Mcr = fr*Ig/yt where yt is measured from the
// centroid to the tension (bottom) extreme fiber.
func (s *TSection) CrackingMoment() float64 {
	fr := s.concrete.ModulusOfRupture()
	yt := s.height - s.CentroidFromTop()
	return fr * s.Ig() / yt
}
