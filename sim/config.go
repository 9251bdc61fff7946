package sim

import "fmt"

// Default policy parameters for the synthetic dataset. These match the
// historical generator defaults and are the baseline for regression tests.
const (
	DefaultNumStores        = 2
	DefaultNumSKUs          = 2
	DefaultDays             = 60
	DefaultReorderPoint     = 30
	DefaultReorderQuantity  = 100
	DefaultLeadTimeDays     = 5
	DefaultSeed             = 42
	DefaultInitialInventory = 100
)

// Config holds all parameters of a simulation run.
// Identical Config and seed always yield a bit-identical record sequence.
type Config struct {
	NumStores        int   // number of stores (>= 0; 0 yields empty output)
	NumSKUs          int   // number of SKUs (>= 0; 0 yields empty output)
	Days             int   // number of days to simulate (>= 0; 0 yields empty output)
	ReorderPoint     int   // reorder when ending inventory drops strictly below this
	ReorderQuantity  int   // units ordered each time a reorder triggers
	LeadTimeDays     int   // days between placing an order and its arrival
	InitialInventory int   // on-hand units per product line before day 0
	Seed             int64 // master seed for all random draws
}

// DefaultConfig returns the baseline configuration used by the evaluation
// pipeline: 2 stores x 2 SKUs x 60 days with the naive reorder policy.
func DefaultConfig() Config {
	return Config{
		NumStores:        DefaultNumStores,
		NumSKUs:          DefaultNumSKUs,
		Days:             DefaultDays,
		ReorderPoint:     DefaultReorderPoint,
		ReorderQuantity:  DefaultReorderQuantity,
		LeadTimeDays:     DefaultLeadTimeDays,
		InitialInventory: DefaultInitialInventory,
		Seed:             DefaultSeed,
	}
}

// Validate rejects configurations that would produce degenerate output.
// Zero store/SKU/day counts are valid and yield an empty dataset; negative
// values never are. The check runs before any record is emitted, so a run
// either completes in full or fails here.
func (c Config) Validate() error {
	if c.NumStores < 0 {
		return fmt.Errorf("num_stores must be >= 0, got %d", c.NumStores)
	}
	if c.NumSKUs < 0 {
		return fmt.Errorf("num_skus must be >= 0, got %d", c.NumSKUs)
	}
	if c.Days < 0 {
		return fmt.Errorf("days must be >= 0, got %d", c.Days)
	}
	if c.ReorderPoint < 0 {
		return fmt.Errorf("reorder_point must be >= 0, got %d", c.ReorderPoint)
	}
	if c.ReorderQuantity < 0 {
		return fmt.Errorf("reorder_quantity must be >= 0, got %d", c.ReorderQuantity)
	}
	if c.ReorderPoint > 0 && c.ReorderQuantity == 0 {
		return fmt.Errorf("reorder_quantity must be positive when reorder_point is %d", c.ReorderPoint)
	}
	if c.LeadTimeDays < 0 {
		return fmt.Errorf("lead_time_days must be >= 0, got %d", c.LeadTimeDays)
	}
	if c.InitialInventory < 0 {
		return fmt.Errorf("initial_inventory must be >= 0, got %d", c.InitialInventory)
	}
	return nil
}

// ReorderPolicy groups the replenishment parameters applied by each
// product line's daily transition.
type ReorderPolicy struct {
	Point        int // threshold: reorder when ending inventory < Point
	Quantity     int // fixed order size
	LeadTimeDays int // arrival delay in days
}

// Policy extracts the reorder policy from the configuration.
func (c Config) Policy() ReorderPolicy {
	return ReorderPolicy{
		Point:        c.ReorderPoint,
		Quantity:     c.ReorderQuantity,
		LeadTimeDays: c.LeadTimeDays,
	}
}
