package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inventory-sim/inventory-sim/sim"
)

func day(d int) time.Time {
	return time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func record(item string, d, demand, ending int) sim.DailyRecord {
	return sim.DailyRecord{
		Date:            day(d),
		ItemID:          item,
		Demand:          demand,
		EndingInventory: ending,
	}
}

func TestBuild_GroupsAndOrders(t *testing.T) {
	// Rows deliberately interleaved and out of date order.
	records := []sim.DailyRecord{
		record("b", 1, 5, 95),
		record("a", 0, 10, 90),
		record("b", 0, 7, 93),
		record("a", 1, 12, 78),
	}

	series, err := Build(records, ColumnEndingInventory)
	require.NoError(t, err)
	require.Len(t, series, 2)

	require.Equal(t, "a", series[0].ItemID)
	require.Equal(t, []float64{90, 78}, series[0].Values)
	require.Equal(t, "b", series[1].ItemID)
	require.Equal(t, []float64{93, 95}, series[1].Values)
	require.Equal(t, []time.Time{day(0), day(1)}, series[0].Dates)
}

func TestBuild_TargetColumns(t *testing.T) {
	records := []sim.DailyRecord{{
		Date: day(0), ItemID: "a", Promotion: true,
		Demand: 9, Sales: 8, NilPicks: 1, StartingInventory: 8, EndingInventory: 0,
	}}

	for target, want := range map[string]float64{
		ColumnDemand:            9,
		ColumnSales:             8,
		ColumnNilPicks:          1,
		ColumnStartingInventory: 8,
		ColumnEndingInventory:   0,
		ColumnPromotionFlag:     1,
	} {
		series, err := Build(records, target)
		require.NoError(t, err, target)
		require.Equal(t, []float64{want}, series[0].Values, target)
	}
}

func TestBuild_UnknownTarget(t *testing.T) {
	_, err := Build([]sim.DailyRecord{record("a", 0, 1, 1)}, "margin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown target column")
}

func TestBuild_DetectsDuplicates(t *testing.T) {
	records := []sim.DailyRecord{record("a", 0, 1, 1), record("a", 0, 2, 2)}
	_, err := Build(records, ColumnDemand)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestBuild_DetectsGaps(t *testing.T) {
	records := []sim.DailyRecord{record("a", 0, 1, 1), record("a", 2, 2, 2)}
	_, err := Build(records, ColumnDemand)
	require.Error(t, err)
	require.Contains(t, err.Error(), "gap")
}

func TestBuild_SimulatorOutputIsValid(t *testing.T) {
	simulator, err := sim.NewSimulator(sim.DefaultConfig())
	require.NoError(t, err)
	records := simulator.Run()

	series, err := Build(records, ColumnEndingInventory)
	require.NoError(t, err)
	require.Len(t, series, 4, "2 stores x 2 SKUs")
	for _, s := range series {
		require.Equal(t, 60, s.Len())
	}
}

func TestSeries_Truncate(t *testing.T) {
	s := &Series{
		ItemID: "a",
		Dates:  []time.Time{day(0), day(1), day(2)},
		Values: []float64{1, 2, 3},
	}
	head := s.Truncate(2)
	require.Equal(t, []float64{1, 2}, head.Values)
	require.Equal(t, 3, s.Len(), "source series unchanged")

	require.Equal(t, 3, s.Truncate(10).Len(), "over-length truncation is a no-op")
}

func TestSplitIndex(t *testing.T) {
	cut, err := SplitIndex(60, 0.8)
	require.NoError(t, err)
	require.Equal(t, 48, cut)

	cut, err = SplitIndex(60, 0)
	require.NoError(t, err)
	require.Equal(t, 0, cut)

	cut, err = SplitIndex(60, 1)
	require.NoError(t, err)
	require.Equal(t, 60, cut)

	_, err = SplitIndex(60, 1.5)
	require.Error(t, err)
}
