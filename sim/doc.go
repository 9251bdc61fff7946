// Package sim provides the core inventory simulation engine for the
// nil-pick evaluation pipeline.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - record.go: DailyRecord, the immutable per-(product line, day) output row
//   - product_line.go: per-line state and the daily transition (arrivals →
//     fulfillment → reorder)
//   - simulator.go: initialization, the day loop, and the demand model
//
// # Architecture
//
// The sim package owns the synthetic-data generator; the surrounding
// evaluation plumbing lives in sub-packages:
//   - sim/dataset/: groups records into per-item time series for forecasting
//   - sim/forecast/: the forecasting collaborator (baselines + remote client)
//   - sim/eval/: nil-pick count and service level metrics
//
// # Determinism
//
// All randomness flows through PartitionedRNG (rng.go) in a fixed,
// documented draw order, so identical configuration and seed always
// produce an element-for-element identical record sequence.
package sim
