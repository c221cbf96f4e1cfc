// The dvsim command analyzes power/performance metrics of an embedded SoC
// across its DVFS operating points.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "dvsim",
	Short: "dvsim evaluates the power/performance trade-off of an embedded " +
		"processor across its DVFS operating points.",
	Long: `dvsim builds a validated system configuration for a low-power ` +
		`embedded SoC, ingests per-run metrics produced by an external ` +
		`simulator, and derives power, energy, and efficiency figures per ` +
		`DVFS operating point, including the optimal point under a chosen ` +
		`criterion.`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
