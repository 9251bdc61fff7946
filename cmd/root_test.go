package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	sim "github.com/inventory-sim/inventory-sim/sim"
	"github.com/inventory-sim/inventory-sim/sim/dataset"
	"github.com/inventory-sim/inventory-sim/sim/forecast"
)

func defaultRecords(t *testing.T) []sim.DailyRecord {
	t.Helper()
	simulator, err := sim.NewSimulator(sim.DefaultConfig())
	require.NoError(t, err)
	return simulator.Run()
}

func TestNewForecaster_Selection(t *testing.T) {
	forecasterName = "naive"
	fc, err := newForecaster()
	require.NoError(t, err)
	require.IsType(t, forecast.Naive{}, fc)

	forecasterName = "moving-average"
	maWindow = 7
	fc, err = newForecaster()
	require.NoError(t, err)
	require.IsType(t, forecast.MovingAverage{}, fc)

	forecasterName = "lag-llama"
	_, err = newForecaster()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown forecaster")
}

func TestEvaluateForecasts_NaiveEndToEnd(t *testing.T) {
	targetColumn = dataset.ColumnEndingInventory
	trainFraction = 0.8

	result, predictions, err := evaluateForecasts(context.Background(), defaultRecords(t), forecast.Naive{})
	require.NoError(t, err)

	// 4 items x 60 days with an 80% cutoff leaves 12 test days each.
	require.Equal(t, 48, predictions)
	require.GreaterOrEqual(t, result.ServiceLevel, 0.0)
	require.LessOrEqual(t, result.ServiceLevel, 100.0)
	require.GreaterOrEqual(t, result.NilPicks, 0)
	require.LessOrEqual(t, result.NilPicks, predictions)
}

func TestEvaluateForecasts_Deterministic(t *testing.T) {
	targetColumn = dataset.ColumnEndingInventory
	trainFraction = 0.8

	records := defaultRecords(t)
	r1, _, err := evaluateForecasts(context.Background(), records, forecast.Naive{})
	require.NoError(t, err)
	r2, _, err := evaluateForecasts(context.Background(), records, forecast.Naive{})
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestEvaluateForecasts_EmptyTrainRange(t *testing.T) {
	targetColumn = dataset.ColumnEndingInventory
	trainFraction = 0.0

	_, _, err := evaluateForecasts(context.Background(), defaultRecords(t), forecast.Naive{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no training observations")
}

func TestEvaluateForecasts_UnknownTarget(t *testing.T) {
	targetColumn = "margin"
	trainFraction = 0.8

	_, _, err := evaluateForecasts(context.Background(), defaultRecords(t), forecast.Naive{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown target column")
}
