// Tracks dataset-wide statistics such as total demand, realized fill rate,
// and stockout days for final reporting.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the generated dataset for final
// reporting. Useful for sanity-checking a scenario before handing the
// records to the forecasting pipeline.
type Metrics struct {
	Rows          int // number of records emitted
	TotalDemand   int // sum of demand across records
	TotalSales    int // sum of fulfilled demand
	TotalNilPicks int // sum of unfulfilled demand
	StockoutDays  int // records that ended the day with zero inventory
	PromotionDays int // records with the promotion flag set

	demands []float64 // per-record demand, for distribution stats
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Observe accumulates one emitted record.
func (m *Metrics) Observe(r DailyRecord) {
	m.Rows++
	m.TotalDemand += r.Demand
	m.TotalSales += r.Sales
	m.TotalNilPicks += r.NilPicks
	if r.EndingInventory == 0 {
		m.StockoutDays++
	}
	if r.Promotion {
		m.PromotionDays++
	}
	m.demands = append(m.demands, float64(r.Demand))
}

// FillRate returns the realized service level of the generated data:
// fulfilled demand as a percentage of total demand (100 when there was
// no demand at all).
func (m *Metrics) FillRate() float64 {
	if m.TotalDemand == 0 {
		return 100.0
	}
	return float64(m.TotalSales) / float64(m.TotalDemand) * 100.0
}

// Print displays aggregated dataset metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Dataset Metrics ===")
	fmt.Printf("Rows              : %d\n", m.Rows)
	fmt.Printf("Total Demand      : %d\n", m.TotalDemand)
	fmt.Printf("Total Sales       : %d\n", m.TotalSales)
	fmt.Printf("Total Nil-Picks   : %d\n", m.TotalNilPicks)
	fmt.Printf("Realized Fill Rate: %.2f%%\n", m.FillRate())
	fmt.Printf("Stockout Days     : %d\n", m.StockoutDays)
	fmt.Printf("Promotion Days    : %d\n", m.PromotionDays)
	if len(m.demands) > 0 {
		sorted := append([]float64(nil), m.demands...)
		sort.Float64s(sorted)
		fmt.Printf("Demand Mean       : %.2f\n", stat.Mean(sorted, nil))
		fmt.Printf("Demand StdDev     : %.2f\n", stat.StdDev(sorted, nil))
		fmt.Printf("Demand P50        : %.2f\n", stat.Quantile(0.5, stat.Empirical, sorted, nil))
		fmt.Printf("Demand P95        : %.2f\n", stat.Quantile(0.95, stat.Empirical, sorted, nil))
	}
}
