package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/sweep"
)

var (
	curveSection sectionFlags
	curvePu      float64
	curveSteps   int
	curveRows    int
	curveTable   bool
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot the design strength curve phiMn(As) of a section",
	Long: `Sample the design strength phiMn over the admissible reinforcement
range, from the minimum reinforcement area to the ductility-governed
maximum, and draw it as a terminal chart.

Examples:
  kdsbeam curve -b 300 --height 500 --fck 24 -g SD400

  kdsbeam curve -b 300 --height 500 --steps 40 --table`,
	Run: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveSection.register(curveCmd)
	curveCmd.Flags().Float64VarP(&curvePu, "pu", "p", 0, "Factored axial force Pu (kN, compression positive)")
	curveCmd.Flags().IntVar(&curveSteps, "steps", 20, "Number of sample points")
	curveCmd.Flags().IntVar(&curveRows, "rows", 12, "Chart height in terminal rows")
	curveCmd.Flags().BoolVar(&curveTable, "table", false, "Also print the sampled points as a table")
}

func runCurve(cmd *cobra.Command, args []string) {
	sec, err := curveSection.build()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	pu := curvePu * 1e3

	curve, err := sweep.CapacityCurve(sec, pu, curveSteps)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DESIGN STRENGTH CURVE - KDS 14 20")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	curveSection.printInputs(sec)

	fmt.Println(curve.Render(curveRows))
	fmt.Println()

	if curveTable {
		fmt.Println("SAMPLED POINTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  As (mm²)\tρ\tφ\tεt\tφMn (kN-m)\n")
		fmt.Fprintf(w, "  ────────\t─\t─\t──\t──────────\n")
		for _, p := range curve.Points {
			fmt.Fprintf(w, "  %.1f\t%.5f\t%.3f\t%.5f\t%.2f\n",
				p.As, p.Rho, p.Phi, p.NetTensileStrain, p.PhiMn/1e6)
		}
		w.Flush()
		fmt.Println()
	}
}
