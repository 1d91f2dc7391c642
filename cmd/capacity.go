package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/diagram"
	"github.com/kdstools/kdsbeam/internal/engine"
)

var (
	capacitySection sectionFlags
	capacityPu      float64

	capacityShowDiagram bool
	capacityExportFile  string
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Evaluate the maximum usable reinforcement and design strength",
	Long: `Compute the largest tension reinforcement area the section can use
before the KDS ductility requirement (minimum allowable net tensile
strain) is violated, together with the design strength at that limit.

Examples:
  kdsbeam capacity -b 300 --height 500 --fck 24 -g SD400

  kdsbeam capacity -s t --web-width 300 --flange-width 800 \
    --flange-depth 120 --height 500`,
	Run: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	capacitySection.register(capacityCmd)
	capacityCmd.Flags().Float64VarP(&capacityPu, "pu", "p", 0, "Factored axial force Pu (kN, compression positive)")

	capacityCmd.Flags().BoolVar(&capacityShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	capacityCmd.Flags().StringVarP(&capacityExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runCapacity(cmd *cobra.Command, args []string) {
	sec, err := capacitySection.build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	pu := capacityPu * 1e3

	result, err := engine.MaximumCapacity(sec, pu)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MAXIMUM SECTION CAPACITY - KDS 14 20")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	capacitySection.printInputs(sec)

	steel := sec.TensionSteel()
	fmt.Println("DUCTILITY LIMIT STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ultimate concrete strain (εcu):\t%.4f\n", sec.Concrete().UltimateStrain())
	fmt.Fprintf(w, "  Minimum allowable strain (εt,min):\t%.4f\n", steel.MinAllowableTensileStrain())
	fmt.Fprintf(w, "  Neutral axis depth (c,max):\t%.2f mm\n", result.Analysis.C)
	fmt.Fprintf(w, "  Net tensile strain (εt):\t%.6f\n", result.Analysis.NetTensileStrain)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Analysis.Phi)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("MAXIMUM CAPACITY", []string{
		fmt.Sprintf("As,max = %.2f mm²", result.AsMax),
		fmt.Sprintf("φMn,max = %.2f kN-m", result.MaxPhiMn/1e6),
	}))
	fmt.Println()

	if capacityShowDiagram || capacityExportFile != "" {
		data := diagram.FromAnalysis(sec, result.AsMax, pu, result.Analysis)

		if capacityShowDiagram {
			fmt.Println(diagram.DrawSection(data))
			fmt.Println(diagram.DrawStrainDiagram(data))
		}
		if capacityExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, capacityExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", capacityExportFile)
			}
		}
	}
}
