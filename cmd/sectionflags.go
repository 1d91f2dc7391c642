package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/material"
	"github.com/kdstools/kdsbeam/internal/section"
)

// sectionFlags gathers the geometry and material inputs shared by every
// command that operates on a single section.
type sectionFlags struct {
	shape       string
	width       float64
	webWidth    float64
	flangeWidth float64
	flangeDepth float64
	height      float64
	cover       float64
	stirrupDia  float64
	rebarDia    float64
	fck         float64
	grade       string
}

func (f *sectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.shape, "shape", "s", "r", `Section shape: "r" (rectangular) or "t" (T-shape)`)
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Rectangular section width (mm)")
	cmd.Flags().Float64Var(&f.webWidth, "web-width", 0, "T-shape web width (mm)")
	cmd.Flags().Float64Var(&f.flangeWidth, "flange-width", 0, "T-shape effective flange width (mm)")
	cmd.Flags().Float64Var(&f.flangeDepth, "flange-depth", 0, "T-shape flange (slab) depth (mm)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Overall section height (mm) [required]")
	cmd.Flags().Float64VarP(&f.cover, "cover", "c", 40, "Clear cover to the stirrup surface (mm)")
	cmd.Flags().Float64Var(&f.stirrupDia, "stirrup-dia", 10, "Stirrup bar diameter (mm)")
	cmd.Flags().Float64Var(&f.rebarDia, "rebar-dia", 22, "Main tension bar diameter (mm)")
	cmd.Flags().Float64Var(&f.fck, "fck", 24, "Concrete compressive strength fck (MPa)")
	cmd.Flags().StringVarP(&f.grade, "grade", "g", "SD400", "Rebar grade (SD300 ... SD600)")
	cmd.MarkFlagRequired("height")
}

// build assembles the materials and the section from the parsed flags.
func (f *sectionFlags) build() (section.Section, error) {
	concrete, err := material.NewConcrete(f.fck)
	if err != nil {
		return nil, err
	}
	steel, err := material.NewSteel(f.grade)
	if err != nil {
		return nil, err
	}

	switch f.shape {
	case "t":
		return section.NewTSection(f.webWidth, f.flangeWidth, f.flangeDepth, f.height,
			f.cover, f.stirrupDia, f.rebarDia, concrete, steel)
	case "r":
		return section.NewRectangular(f.width, f.height, f.cover, f.stirrupDia, f.rebarDia,
			concrete, steel)
	default:
		return nil, fmt.Errorf("unknown shape %q: use \"r\" or \"t\"", f.shape)
	}
}

// printInputs writes the input-data table every section command opens with.
func (f *sectionFlags) printInputs(sec section.Section) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if f.shape == "t" {
		fmt.Fprintf(w, "  Web Width (bw):\t%.0f mm\n", f.webWidth)
		fmt.Fprintf(w, "  Flange Width (bf):\t%.0f mm\n", f.flangeWidth)
		fmt.Fprintf(w, "  Flange Depth (hf):\t%.0f mm\n", f.flangeDepth)
	} else {
		fmt.Fprintf(w, "  Section Width (b):\t%.0f mm\n", f.width)
	}
	fmt.Fprintf(w, "  Section Height (h):\t%.0f mm\n", f.height)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f mm\n", sec.EffectiveDepth())
	fmt.Fprintf(w, "  Cover to Stirrup:\t%.0f mm\n", f.cover)
	fmt.Fprintf(w, "  Stirrup Dia:\t%.0f mm\n", f.stirrupDia)
	fmt.Fprintf(w, "  Tension Bar Dia:\t%.0f mm\n", f.rebarDia)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", f.fck)
	fmt.Fprintf(w, "  Rebar Grade:\t%s (fy = %.0f MPa)\n", f.grade, sec.TensionSteel().Fy())
	w.Flush()
	fmt.Println()
}
