package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/detail"
	"github.com/kdstools/kdsbeam/internal/diagram"
	"github.com/kdstools/kdsbeam/internal/engine"
	"github.com/kdstools/kdsbeam/internal/section"
)

var (
	designSection sectionFlags
	designMu      float64
	designPu      float64

	designShowDiagram bool
	designExportFile  string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design the required tension reinforcement for a factored moment",
	Long: `Calculate the required tension reinforcement area (As) for a singly
reinforced rectangular or T-shape section given the factored moment (Mu)
and an optional factored axial force (Pu).

The design follows KDS 14 20 provisions:
  - KDS 14 20 10: Strength reduction factors
  - KDS 14 20 20: Minimum reinforcement (phiMn >= 1.2*Mcr)
  - KDS 14 20 20: Equivalent rectangular stress block

Examples:
  # Design a 300x500mm beam with Mu=150 kN-m
  kdsbeam design -b 300 --height 500 --fck 24 -g SD400 --mu 150

  # Design a T-beam
  kdsbeam design -s t --web-width 300 --flange-width 800 --flange-depth 120 \
    --height 500 --mu 250`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designSection.register(designCmd)
	designCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN-m) [required]")
	designCmd.Flags().Float64VarP(&designPu, "pu", "p", 0, "Factored axial force Pu (kN, compression positive)")
	designCmd.MarkFlagRequired("mu")

	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	designCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runDesign(cmd *cobra.Command, args []string) {
	sec, err := designSection.build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	mu := designMu * 1e6 // kN-m -> N-mm
	pu := designPu * 1e3 // kN -> N

	result, err := engine.DesignFlexuralReinforcement(sec, mu, pu)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FLEXURAL REINFORCEMENT DESIGN - KDS 14 20")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	designSection.printInputs(sec)

	fmt.Println("DEMAND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%.2f kN-m\n", designMu)
	if designPu != 0 {
		fmt.Fprintf(w, "  Factored Axial Force (Pu):\t%.2f kN\n", designPu)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STEEL AREA LIMITS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%.2f mm²\n", result.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.2f mm²\n", result.AsMax)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION ANALYSIS AT As,required:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.2f mm\n", result.Analysis.C)
	fmt.Fprintf(w, "  Net tensile strain (εt):\t%.6f\n", result.Analysis.NetTensileStrain)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Analysis.Phi)
	fmt.Fprintf(w, "  Design strength (φMn):\t%.2f kN-m\n", result.Analysis.PhiMn/1e6)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("REQUIRED As = %.2f mm²", result.AsRequired),
		fmt.Sprintf("φMn = %.2f kN-m ≥ Mu = %.2f kN-m ✓", result.Analysis.PhiMn/1e6, designMu),
	}
	if result.IsMinRebarControlled {
		lines = append(lines, "Governed by the minimum reinforcement requirement")
	}
	fmt.Print(diagram.DrawSummaryBox("DESIGN ADEQUATE", lines))
	fmt.Println()

	printBarSuggestions(sec, &designSection, result.AsRequired)

	if designShowDiagram || designExportFile != "" {
		data := diagram.FromAnalysis(sec, result.AsRequired, pu, result.Analysis)

		if designShowDiagram {
			fmt.Println(diagram.DrawSection(data))
			fmt.Println(diagram.DrawStrainDiagram(data))
		}
		if designExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, designExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", designExportFile)
			}
		}
	}
}

// printBarSuggestions proposes constructible bar layouts realizing the
// required area with common KS diameters.
func printBarSuggestions(sec section.Section, f *sectionFlags, asRequired float64) {
	fmt.Println("SUGGESTED BAR LAYOUTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	width := f.width
	if f.shape == "t" {
		width = f.webWidth
	}

	detailer := detail.NewDetailer(sec.TensionSteel())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars\tLayers\tAs Provided\tActual d\tRatio\n")
	fmt.Fprintf(w, "  ────\t──────\t───────────\t────────\t─────\n")

	for _, dia := range []int{19, 22, 25, 29, 32} {
		layout, err := detailer.PlanLayout(detail.Option{Diameter: dia},
			width, f.height, asRequired, f.cover, f.stirrupDia)
		if err != nil || layout == nil {
			continue
		}
		fmt.Fprintf(w, "  %d - D%d\t%d\t%.2f mm²\t%.1f mm\t%.2f\n",
			layout.TotalRebars(), dia, len(layout.Layers),
			layout.AsProvidedTotal, layout.ActualEffectiveDepth(),
			layout.AsProvidedTotal/asRequired)
	}
	w.Flush()
	fmt.Println()
}
