package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()
	m.Observe(DailyRecord{Demand: 10, Sales: 10, NilPicks: 0, EndingInventory: 90})
	m.Observe(DailyRecord{Demand: 50, Sales: 40, NilPicks: 10, EndingInventory: 0, Promotion: true})

	require.Equal(t, 2, m.Rows)
	require.Equal(t, 60, m.TotalDemand)
	require.Equal(t, 50, m.TotalSales)
	require.Equal(t, 10, m.TotalNilPicks)
	require.Equal(t, 1, m.StockoutDays)
	require.Equal(t, 1, m.PromotionDays)
}

func TestMetrics_FillRate(t *testing.T) {
	m := NewMetrics()
	require.Equal(t, 100.0, m.FillRate(), "no demand means a perfect fill rate")

	m.Observe(DailyRecord{Demand: 100, Sales: 75, NilPicks: 25})
	require.InDelta(t, 75.0, m.FillRate(), 1e-9)
}
