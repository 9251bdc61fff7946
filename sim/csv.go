package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column order of the exported table. This is the output
// contract consumed by the dataset builder and any external tooling.
var csvHeader = []string{
	"date", "store", "sku", "promotion_flag", "demand", "sales",
	"nil_picks", "starting_inventory", "ending_inventory", "item_id",
}

// WriteCSV serializes records as CSV in the emission order given.
// Dates are formatted as YYYY-MM-DD and the promotion flag as 0/1.
func WriteCSV(w io.Writer, records []DailyRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		promotion := "0"
		if r.Promotion {
			promotion = "1"
		}
		row := []string{
			r.Date.Format("2006-01-02"),
			r.Store,
			r.SKU,
			promotion,
			strconv.Itoa(r.Demand),
			strconv.Itoa(r.Sales),
			strconv.Itoa(r.NilPicks),
			strconv.Itoa(r.StartingInventory),
			strconv.Itoa(r.EndingInventory),
			r.ItemID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
