package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/batch"
)

var (
	batchScenarioFile string
	batchCSVFile      string
	batchXLSXFile     string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a parameter-sweep scenario from a YAML file",
	Long: `Expand a YAML scenario into the cartesian product of its parameter
lists, run every case on a worker pool and export the results.

A scenario selects a shape ("r" or "t") and a mode:
  design    required reinforcement for each Mu, Pu
  analysis  capacity sweep from As,min to As,max per section
  check     adequacy verdicts for each provided As

Example scenario:
  shape: r
  mode: design
  fck: [24, 27]
  grade: [SD400]
  width: [300, 350]
  height: [500, 600]
  cover: [40]
  stirrup_dia: [10]
  rebar_dia: [22]
  mu: [150, 200]

Examples:
  kdsbeam batch --scenario sweep.yaml --csv results.csv
  kdsbeam batch --scenario sweep.yaml --xlsx results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchScenarioFile, "scenario", "f", "", "Scenario YAML file [required]")
	batchCmd.Flags().StringVar(&batchCSVFile, "csv", "", "Write results to a CSV file")
	batchCmd.Flags().StringVar(&batchXLSXFile, "xlsx", "", "Write results to an Excel workbook")
	batchCmd.MarkFlagRequired("scenario")
}

func runBatch(cmd *cobra.Command, args []string) {
	if batchCSVFile == "" && batchXLSXFile == "" {
		fmt.Println("Error: provide at least one output (--csv or --xlsx).")
		return
	}

	scenario, err := batch.LoadScenario(batchScenarioFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	runner := batch.NewRunner(scenario)
	runner.Run()

	rows := runner.Rows()
	var failed int
	for _, row := range rows {
		if row.Status != "OK" {
			failed++
		}
	}
	fmt.Printf("Computed %d result rows (%d with errors).\n", len(rows), failed)

	if batchCSVFile != "" {
		if err := runner.WriteCSV(batchCSVFile); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("Results written to: %s\n", batchCSVFile)
	}
	if batchXLSXFile != "" {
		if err := runner.WriteXLSX(batchXLSXFile); err != nil {
			fmt.Printf("Error writing XLSX: %v\n", err)
			return
		}
		fmt.Printf("Results written to: %s\n", batchXLSXFile)
	}
}
