package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemFactors is the RNG subsystem for the one-time entity draws:
	// store strength factors (in store index order) followed by SKU
	// popularity baselines (in SKU index order). Uses the master seed
	// directly so the factor draws match a plain seeded generator.
	SubsystemFactors = "factors"

	// SubsystemDemand is the RNG subsystem for the daily demand draws.
	// Draw order contract: for each day, for each store, for each SKU,
	// one Gaussian noise draw followed by one uniform promotion draw.
	SubsystemDemand = "demand"
)

// SubsystemLine returns the subsystem name for a single product line.
// Used when product lines are simulated in parallel: each line derives
// its own generator from the master seed and its identity, so per-line
// draw sequences stay deterministic regardless of scheduling.
func SubsystemLine(store, sku string) string {
	return fmt.Sprintf("line_%s_%s", store, sku)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemFactors: uses masterSeed directly (matches the
//     historical --seed behavior of the data generator)
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemFactors {
		derivedSeed = int64(p.key)
	} else {
		// All other subsystems: XOR with hash for isolation.
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
