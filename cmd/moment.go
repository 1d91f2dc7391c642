package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/kds"
)

var (
	// Unfactored moments (kN-m)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentWind       float64
	momentEarthquake float64
	momentRain       float64

	// Options
	momentShowAll     bool
	momentGravityOnly bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate the factored moment using KDS load combinations",
	Long: `Calculate the factored moment (Mu) based on the KDS strength-design
load combinations.

Provide unfactored moments from different load types and this command
computes the factored moments for all applicable combinations.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  kdsbeam moment --dead 50 --live 30

  # With wind load, showing all combinations
  kdsbeam moment --dead 50 --live 30 --wind 20 --all`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentCmd.Flags().Float64VarP(&momentDead, "dead", "d", 0, "Moment due to dead load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "l", 0, "Moment due to live load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentRoof, "roof", "r", 0, "Moment due to roof live load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentRain, "rain", "R", 0, "Moment due to rain load (kN-m)")

	momentCmd.Flags().BoolVarP(&momentShowAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVar(&momentGravityOnly, "gravity", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runMoment(cmd *cobra.Command, args []string) {
	moments := kds.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Roof:       momentRoof,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
		Rain:       momentRain,
	}

	if moments == (kds.LoadMoments{}) {
		fmt.Println("Error: Please provide at least one unfactored moment.")
		fmt.Println("Use 'kdsbeam moment --help' for usage information.")
		return
	}

	combinations := kds.LoadCombinations
	if momentGravityOnly {
		combinations = kds.GravityCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          KDS FACTORED MOMENT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED MOMENTS (kN-m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if moments.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", moments.Dead)
	}
	if moments.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", moments.Live)
	}
	if moments.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", moments.Roof)
	}
	if moments.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", moments.Wind)
	}
	if moments.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", moments.Earthquake)
	}
	if moments.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", moments.Rain)
	}
	w.Flush()
	fmt.Println()

	maxMu, governing := kds.GoverningMoment(moments, combinations)

	if momentShowAll {
		fmt.Println("LOAD COMBINATIONS (KDS 41 12 00):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			mu := combo.Factored(moments)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, mu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED MOMENT (Mu) = %.2f kN-m  \n", maxMu)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}
