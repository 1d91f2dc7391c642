package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdstools/kdsbeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kdsbeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kdsbeam v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Flexural Design Tool")
		fmt.Println("Based on KDS 14 20 (Korean Design Standard)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
