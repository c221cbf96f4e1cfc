package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/embedpower/dvsim/analysis"
	"github.com/embedpower/dvsim/datarecording"
	"github.com/embedpower/dvsim/monitoring"
	"github.com/embedpower/dvsim/power"
	"github.com/embedpower/dvsim/system"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ingest a metrics feed and report the per-point summary.",
	Long: "`analyze` builds the reference SoC configuration, ingests a " +
		"metrics feed (a CSV file, or a built-in sample feed when no " +
		"input is given), and reports power, energy, and efficiency per " +
		"DVFS operating point together with the optimal point.",
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("input", "",
		"CSV metrics feed; empty runs the built-in sample feed")
	analyzeCmd.Flags().String("criterion", "max_efficiency",
		"optimum criterion: max_efficiency or min_energy_per_instruction")
	analyzeCmd.Flags().String("db", "",
		"record results to this SQLite file (without extension)")
	analyzeCmd.Flags().Int("serve", 0,
		"serve results over HTTP on this port and block")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) {
	// A .env file can override the power model calibration.
	_ = godotenv.Load()

	config, err := system.BuildReferenceSoC()
	if err != nil {
		log.Fatalf("Error building system configuration: %v", err)
	}

	model := modelFromEnv(config.PowerModel())
	domain := config.Domains()[0]

	engine := analysis.MakeEngineBuilder().
		WithPowerModel(model).
		WithDVFSTable(domain.Table()).
		WithIPCBound(2).
		Build()

	records := loadFeed(cmd)
	if err := engine.Ingest(records...); err != nil {
		log.Fatalf("Error ingesting metrics: %v", err)
	}

	criterion := parseCriterion(
		mustGetString(cmd, "criterion"))

	summary, err := engine.Summarize(criterion)
	if err != nil {
		log.Fatalf("Error summarizing: %v", err)
	}

	printSummary(summary)

	if dbPath := mustGetString(cmd, "db"); dbPath != "" {
		recorder := datarecording.NewRunRecorder(
			datarecording.NewDataRecorder(dbPath))
		recorder.RecordMetrics(records...)
		recorder.RecordSummary(summary)
		recorder.Flush()
	}

	if port, _ := cmd.Flags().GetInt("serve"); port != 0 {
		monitor := monitoring.NewMonitor().WithPortNumber(port)
		monitor.RegisterEngine(engine)
		monitor.RegisterConfiguration(config)
		monitor.StartServer()

		select {}
	}
}

func loadFeed(cmd *cobra.Command) []analysis.MetricsRecord {
	input := mustGetString(cmd, "input")
	if input == "" {
		fmt.Fprintln(os.Stderr,
			"No input given, analyzing the built-in sample feed.")
		return sampleFeed()
	}

	records, err := readCSVFeed(input)
	if err != nil {
		log.Fatalf("Error reading metrics feed: %v", err)
	}

	return records
}

func modelFromEnv(defaults power.Model) power.Model {
	dynamic := coeffFromEnv(
		"DVSIM_DYNAMIC_COEFF", defaults.DynamicCoefficient())
	leakage := coeffFromEnv(
		"DVSIM_LEAKAGE_COEFF", defaults.LeakageCoefficient())

	return power.MakeModel(dynamic, leakage)
}

func coeffFromEnv(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", name, err)
	}

	return value
}

func parseCriterion(name string) analysis.Criterion {
	switch name {
	case "max_efficiency":
		return analysis.MaxEfficiency
	case "min_energy_per_instruction":
		return analysis.MinEnergyPerInstruction
	default:
		log.Fatalf("Unknown criterion %q.", name)
		return 0
	}
}

func printSummary(s analysis.Summary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Point\tRecords\tIPC\tPower (mW)\tEPI (nJ)\t"+
		"Efficiency (IPC/W)\t")
	for _, p := range s.PerPoint {
		marker := ""
		if p.Point == s.Optimum {
			marker = " *"
		}

		fmt.Fprintf(w, "%s%s\t%d\t%.3f\t%.1f\t%.3f\t%.2f\t\n",
			p.Point, marker, p.Records, p.IPC,
			p.TotalPower*1e3, p.EnergyPerInstruction*1e9, p.Efficiency)
	}
	w.Flush()

	fmt.Printf("\nOptimum (%s): %s\n", s.Criterion, s.Optimum)
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}
	return value
}
