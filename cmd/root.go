package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
	"github.com/inventory-sim/inventory-sim/sim/dataset"
	"github.com/inventory-sim/inventory-sim/sim/eval"
	"github.com/inventory-sim/inventory-sim/sim/forecast"
)

var (
	// CLI flags for the inventory simulator
	seed             int64  // Seed for all random draws
	numStores        int    // Number of stores
	numSKUs          int    // Number of SKUs
	days             int    // Number of days to simulate
	reorderPoint     int    // Reorder threshold (strict less-than)
	reorderQuantity  int    // Units ordered per reorder
	leadTimeDays     int    // Days until a placed order arrives
	initialInventory int    // Starting on-hand units per product line
	logLevel         string // Log verbosity level

	// CLI flags for scenario presets
	scenarioFile string // Path to a YAML scenario file
	scenarioName string // Preset name inside the scenario file

	// CLI flags for the evaluation pipeline
	outputPath     string  // Optional CSV destination for the generated table
	targetColumn   string  // Column the forecaster predicts
	trainFraction  float64 // Fraction of each series used as forecast context
	forecasterName string  // naive | moving-average | remote
	maWindow       int     // Trailing window for the moving-average baseline
	forecastURL    string  // Base URL of the remote forecasting service
	contextLength  int     // Context window sent to the remote service
	numSamples     int     // Probabilistic sample count requested from the remote service
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Synthetic inventory simulator and nil-pick forecast evaluator",
}

// runCmd generates the synthetic dataset and evaluates next-day inventory
// forecasts against it using the selected forecaster.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation and nil-pick evaluation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		config := sim.Config{
			NumStores:        numStores,
			NumSKUs:          numSKUs,
			Days:             days,
			ReorderPoint:     reorderPoint,
			ReorderQuantity:  reorderQuantity,
			LeadTimeDays:     leadTimeDays,
			InitialInventory: initialInventory,
			Seed:             seed,
		}
		if scenarioFile != "" {
			if err := ApplyScenario(scenarioFile, scenarioName, &config); err != nil {
				logrus.Fatalf("Could not apply scenario %q: %v", scenarioName, err)
			}
			logrus.Infof("Using preset scenario %q from %s", scenarioName, scenarioFile)
		}

		logrus.Infof("Starting simulation: %d stores x %d SKUs x %d days, seed=%d",
			config.NumStores, config.NumSKUs, config.Days, config.Seed)

		simulator, err := sim.NewSimulator(config)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		records := simulator.Run()
		simulator.Metrics.Print()

		if outputPath != "" {
			if err := writeRecordsCSV(outputPath, records); err != nil {
				logrus.Fatalf("Could not write %s: %v", outputPath, err)
			}
			logrus.Infof("Wrote %d records to %s", len(records), outputPath)
		}

		if len(records) == 0 {
			logrus.Warn("Empty dataset; skipping forecast evaluation.")
			return
		}

		forecaster, err := newForecaster()
		if err != nil {
			logrus.Fatalf("Invalid forecaster selection: %v", err)
		}
		result, predictions, err := evaluateForecasts(cmd.Context(), records, forecaster)
		if err != nil {
			logrus.Fatalf("Forecast evaluation failed: %v", err)
		}

		logrus.Infof("Evaluated %d next-day forecasts with the %q forecaster", predictions, forecasterName)
		printEvaluation(result)
	},
}

// newForecaster builds the forecaster selected via CLI flags.
func newForecaster() (forecast.Forecaster, error) {
	switch forecasterName {
	case "naive":
		return forecast.Naive{}, nil
	case "moving-average":
		return forecast.MovingAverage{Window: maWindow}, nil
	case "remote":
		return forecast.NewRemote(forecastURL,
			forecast.WithContextLength(contextLength),
			forecast.WithNumSamples(numSamples)), nil
	default:
		return nil, fmt.Errorf("unknown forecaster %q; valid: naive, moving-average, remote", forecasterName)
	}
}

// evaluateForecasts walks the test range of every item's series, producing
// one next-day prediction of the target column per (item, test day), and
// scores the predictions against the demand that materialized on those days.
func evaluateForecasts(ctx context.Context, records []sim.DailyRecord, forecaster forecast.Forecaster) (eval.Result, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	targetSeries, err := dataset.Build(records, targetColumn)
	if err != nil {
		return eval.Result{}, 0, err
	}
	demandSeries, err := dataset.Build(records, dataset.ColumnDemand)
	if err != nil {
		return eval.Result{}, 0, err
	}

	var actual, predicted []float64
	for k, series := range targetSeries {
		cut, err := dataset.SplitIndex(series.Len(), trainFraction)
		if err != nil {
			return eval.Result{}, 0, err
		}
		if cut < 1 {
			return eval.Result{}, 0, fmt.Errorf("train fraction %.2f leaves no training observations", trainFraction)
		}
		for t := cut; t < series.Len(); t++ {
			forecasts, err := forecaster.Predict(ctx, series.Truncate(t), 1)
			if err != nil {
				return eval.Result{}, 0, err
			}
			predicted = append(predicted, forecasts[0])
			actual = append(actual, demandSeries[k].Values[t])
		}
	}

	result, err := eval.Evaluate(actual, predicted)
	return result, len(predicted), err
}

func writeRecordsCSV(path string, records []sim.DailyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sim.WriteCSV(f, records)
}

func printEvaluation(result eval.Result) {
	logrus.Info("Evaluation Results:")
	logrus.Infof("Nil-Picks         : %d", result.NilPicks)
	logrus.Infof("Service Level (%%) : %.2f", result.ServiceLevel)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for all random draws")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Simulator configs
	runCmd.Flags().IntVar(&numStores, "stores", sim.DefaultNumStores, "Number of stores")
	runCmd.Flags().IntVar(&numSKUs, "skus", sim.DefaultNumSKUs, "Number of SKUs")
	runCmd.Flags().IntVar(&days, "days", sim.DefaultDays, "Number of days to simulate")
	runCmd.Flags().IntVar(&reorderPoint, "reorder-point", sim.DefaultReorderPoint, "Reorder when ending inventory drops below this")
	runCmd.Flags().IntVar(&reorderQuantity, "reorder-quantity", sim.DefaultReorderQuantity, "Units ordered per reorder")
	runCmd.Flags().IntVar(&leadTimeDays, "lead-time", sim.DefaultLeadTimeDays, "Days until a placed order arrives")
	runCmd.Flags().IntVar(&initialInventory, "initial-inventory", sim.DefaultInitialInventory, "Starting on-hand units per product line")

	// Scenario presets
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "Path to a YAML scenario file")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "default", "Preset scenario name")

	// Evaluation pipeline configs
	runCmd.Flags().StringVar(&outputPath, "output", "", "Optional CSV path for the generated table")
	runCmd.Flags().StringVar(&targetColumn, "target", dataset.ColumnEndingInventory, "Column the forecaster predicts")
	runCmd.Flags().Float64Var(&trainFraction, "train-fraction", 0.8, "Fraction of each series used as forecast context")
	runCmd.Flags().StringVar(&forecasterName, "forecaster", "naive", "Forecaster (naive, moving-average, remote)")
	runCmd.Flags().IntVar(&maWindow, "ma-window", 7, "Trailing window for the moving-average baseline")
	runCmd.Flags().StringVar(&forecastURL, "forecast-url", "http://localhost:8000", "Base URL of the remote forecasting service")
	runCmd.Flags().IntVar(&contextLength, "context-length", forecast.DefaultContextLength, "Context window sent to the remote service")
	runCmd.Flags().IntVar(&numSamples, "num-samples", forecast.DefaultNumSamples, "Sample count requested from the remote service")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
