package sim

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	records := []DailyRecord{
		{
			Date:              time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			Store:             "store_000",
			SKU:               "sku_000",
			Promotion:         true,
			Demand:            55,
			Sales:             55,
			NilPicks:          0,
			StartingInventory: 100,
			EndingInventory:   45,
			ItemID:            "store_000_sku_000",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{
		"date", "store", "sku", "promotion_flag", "demand", "sales",
		"nil_picks", "starting_inventory", "ending_inventory", "item_id",
	}, rows[0])
	require.Equal(t, []string{
		"2022-01-01", "store_000", "sku_000", "1", "55", "55", "0", "100", "45", "store_000_sku_000",
	}, rows[1])
}

func TestWriteCSV_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
