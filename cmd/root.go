package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kdsbeam",
	Short: "Reinforced concrete beam flexural design per KDS 14 20",
	Long: `kdsbeam - KDS Reinforced Concrete Beam Designer

A CLI tool for the flexural design of reinforced concrete beams based on
the Korean Design Standard (KDS 14 20).

This tool helps structural engineers perform:
  - Strain-compatibility section analysis (rectangular and T-shapes)
  - Required reinforcement design for a factored moment
  - Maximum usable reinforcement and capacity evaluation
  - Adequacy checks of a provided reinforcement amount
  - Capacity curve sweeps and batch parameter studies`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   kdsbeam v%-47s║\n", version.Version)
		fmt.Println("  ║   KDS Reinforced Concrete Beam Designer                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the flexural design of reinforced concrete beams")
		fmt.Println("  based on the Korean Design Standard (KDS 14 20).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored moment calculation using KDS load combinations")
		fmt.Println("    • Rectangular and T-shape section design and analysis")
		fmt.Println("    • Ductility and minimum reinforcement checks")
		fmt.Println("    • Capacity curves, rebar detailing and batch sweeps")
		fmt.Println()
		fmt.Println("  Use 'kdsbeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
