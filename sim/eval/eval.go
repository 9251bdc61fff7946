// Package eval scores a model's predicted inventory levels against the
// demand that actually materialized.
package eval

import (
	"fmt"
	"math"
)

// Result bundles the two nil-pick metrics for a forecast horizon.
type Result struct {
	NilPicks     int     // days where predicted inventory could not cover actual demand
	ServiceLevel float64 // percentage of total demand covered by predicted inventory
}

// Evaluate computes the nil-pick count and service level from parallel
// arrays of actual demand and predicted inventory. A nil-pick is counted
// whenever predicted inventory is strictly below actual demand; the
// service level is sum(min(predicted, actual)) / sum(actual) * 100,
// defined as 100 when there was no demand at all.
func Evaluate(actualDemand, predictedInventory []float64) (Result, error) {
	if len(actualDemand) != len(predictedInventory) {
		return Result{}, fmt.Errorf("length mismatch: %d actual demands vs %d predictions",
			len(actualDemand), len(predictedInventory))
	}

	var result Result
	fulfilled := 0.0
	totalDemand := 0.0
	for i, demand := range actualDemand {
		predicted := predictedInventory[i]
		if predicted < demand {
			result.NilPicks++
		}
		fulfilled += math.Min(predicted, demand)
		totalDemand += demand
	}

	if totalDemand == 0 {
		result.ServiceLevel = 100.0
	} else {
		result.ServiceLevel = fulfilled / totalDemand * 100.0
	}
	return result, nil
}
