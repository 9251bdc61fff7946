package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

// ScenarioConfig is the top-level structure of a YAML scenario file:
// named presets that override parts of the simulator configuration.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is one named preset. Every field is optional; unset fields
// keep the value already present in the configuration being overridden.
type Scenario struct {
	Stores           *int   `yaml:"stores"`
	SKUs             *int   `yaml:"skus"`
	Days             *int   `yaml:"days"`
	ReorderPoint     *int   `yaml:"reorder_point"`
	ReorderQuantity  *int   `yaml:"reorder_quantity"`
	LeadTimeDays     *int   `yaml:"lead_time_days"`
	InitialInventory *int   `yaml:"initial_inventory"`
	Seed             *int64 `yaml:"seed"`
}

// ApplyScenario loads the named preset from a YAML scenario file and
// overlays it onto config. The resulting configuration is validated so a
// bad preset fails before the simulation starts.
func ApplyScenario(path, name string, config *sim.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse scenario file: %w", err)
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", name, path)
	}

	if scenario.Stores != nil {
		config.NumStores = *scenario.Stores
	}
	if scenario.SKUs != nil {
		config.NumSKUs = *scenario.SKUs
	}
	if scenario.Days != nil {
		config.Days = *scenario.Days
	}
	if scenario.ReorderPoint != nil {
		config.ReorderPoint = *scenario.ReorderPoint
	}
	if scenario.ReorderQuantity != nil {
		config.ReorderQuantity = *scenario.ReorderQuantity
	}
	if scenario.LeadTimeDays != nil {
		config.LeadTimeDays = *scenario.LeadTimeDays
	}
	if scenario.InitialInventory != nil {
		config.InitialInventory = *scenario.InitialInventory
	}
	if scenario.Seed != nil {
		config.Seed = *scenario.Seed
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", name, err)
	}
	return nil
}
