// Package dataset adapts simulator records into per-item time series for
// the forecasting collaborator. It groups rows by item ID, orders them by
// date, extracts a chosen target column, and enforces the one-row-per-
// (item, date), no-gaps/no-duplicates contract of the generator.
package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/inventory-sim/inventory-sim/sim"
)

// Target column names accepted by Build. These mirror the CSV column
// names of the exported table.
const (
	ColumnDemand            = "demand"
	ColumnSales             = "sales"
	ColumnNilPicks          = "nil_picks"
	ColumnStartingInventory = "starting_inventory"
	ColumnEndingInventory   = "ending_inventory"
	ColumnPromotionFlag     = "promotion_flag"
)

// Series is one item's ordered observations of a single target column.
// Dates and Values are index-aligned and strictly day-ascending.
type Series struct {
	ItemID string
	Target string
	Dates  []time.Time
	Values []float64
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Truncate returns a view of the series limited to the first n
// observations. The underlying arrays are shared, not copied.
func (s *Series) Truncate(n int) *Series {
	if n > s.Len() {
		n = s.Len()
	}
	return &Series{
		ItemID: s.ItemID,
		Target: s.Target,
		Dates:  s.Dates[:n],
		Values: s.Values[:n],
	}
}

// columnValue extracts a target column from a record.
func columnValue(r sim.DailyRecord, target string) (float64, error) {
	switch target {
	case ColumnDemand:
		return float64(r.Demand), nil
	case ColumnSales:
		return float64(r.Sales), nil
	case ColumnNilPicks:
		return float64(r.NilPicks), nil
	case ColumnStartingInventory:
		return float64(r.StartingInventory), nil
	case ColumnEndingInventory:
		return float64(r.EndingInventory), nil
	case ColumnPromotionFlag:
		if r.Promotion {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown target column %q", target)
	}
}

// Build groups records by item ID and produces one Series per item for the
// given target column, sorted by item ID for stable downstream iteration.
// It fails on duplicate (item, date) rows and on calendar gaps within an
// item's timeline, both of which violate the generator's output contract.
func Build(records []sim.DailyRecord, target string) ([]*Series, error) {
	byItem := make(map[string][]sim.DailyRecord)
	for _, r := range records {
		byItem[r.ItemID] = append(byItem[r.ItemID], r)
	}

	itemIDs := make([]string, 0, len(byItem))
	for id := range byItem {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	series := make([]*Series, 0, len(itemIDs))
	for _, id := range itemIDs {
		rows := byItem[id]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})

		s := &Series{
			ItemID: id,
			Target: target,
			Dates:  make([]time.Time, 0, len(rows)),
			Values: make([]float64, 0, len(rows)),
		}
		for i, r := range rows {
			if i > 0 {
				prev := rows[i-1].Date
				switch {
				case r.Date.Equal(prev):
					return nil, fmt.Errorf("item %s: duplicate row for %s", id, r.Date.Format("2006-01-02"))
				case !r.Date.Equal(prev.AddDate(0, 0, 1)):
					return nil, fmt.Errorf("item %s: gap between %s and %s",
						id, prev.Format("2006-01-02"), r.Date.Format("2006-01-02"))
				}
			}
			v, err := columnValue(r, target)
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", id, err)
			}
			s.Dates = append(s.Dates, r.Date)
			s.Values = append(s.Values, v)
		}
		series = append(series, s)
	}
	return series, nil
}

// SplitIndex returns the observation index separating the training range
// from the test range for the given fraction, mirroring the evaluation
// pipeline's date-fraction cutoff. Fraction must be in [0, 1].
func SplitIndex(length int, trainFraction float64) (int, error) {
	if trainFraction < 0 || trainFraction > 1 {
		return 0, fmt.Errorf("train fraction must be in [0, 1], got %f", trainFraction)
	}
	return int(float64(length) * trainFraction), nil
}
