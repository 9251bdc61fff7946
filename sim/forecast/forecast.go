// Package forecast defines the forecasting collaborator consumed by the
// evaluation pipeline. The simulator itself never calls into this package;
// it only guarantees the tidy per-item series the forecasters consume.
package forecast

import (
	"context"
	"fmt"

	"github.com/inventory-sim/inventory-sim/sim/dataset"
)

// Forecaster produces point forecasts for the next `horizon` observations
// of a series. Implementations must not mutate the series.
type Forecaster interface {
	// Predict returns exactly `horizon` predicted values, or an error.
	// An empty series cannot be forecast.
	Predict(ctx context.Context, series *dataset.Series, horizon int) ([]float64, error)
}

// Naive repeats the last observed value — the standard persistence
// baseline for next-day inventory forecasts.
type Naive struct{}

func (Naive) Predict(_ context.Context, series *dataset.Series, horizon int) ([]float64, error) {
	if err := checkArgs(series, horizon); err != nil {
		return nil, err
	}
	last := series.Values[series.Len()-1]
	out := make([]float64, horizon)
	for i := range out {
		out[i] = last
	}
	return out, nil
}

// MovingAverage forecasts the trailing-window mean of the series.
type MovingAverage struct {
	Window int
}

func (m MovingAverage) Predict(_ context.Context, series *dataset.Series, horizon int) ([]float64, error) {
	if err := checkArgs(series, horizon); err != nil {
		return nil, err
	}
	if m.Window < 1 {
		return nil, fmt.Errorf("moving average window must be >= 1, got %d", m.Window)
	}
	window := m.Window
	if window > series.Len() {
		window = series.Len()
	}
	sum := 0.0
	for _, v := range series.Values[series.Len()-window:] {
		sum += v
	}
	mean := sum / float64(window)
	out := make([]float64, horizon)
	for i := range out {
		out[i] = mean
	}
	return out, nil
}

func checkArgs(series *dataset.Series, horizon int) error {
	if series == nil || series.Len() == 0 {
		return fmt.Errorf("cannot forecast an empty series")
	}
	if horizon < 1 {
		return fmt.Errorf("forecast horizon must be >= 1, got %d", horizon)
	}
	return nil
}
