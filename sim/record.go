package sim

import "time"

// ItemIDSeparator joins a store ID and SKU ID into a composite item ID.
const ItemIDSeparator = "_"

// DailyRecord is one row of the synthetic dataset: the demand, fulfillment
// and inventory state of a single product line on a single day. Records are
// immutable once emitted and fully self-contained (each carries its own
// date and identifiers), so consumers may resequence them freely.
//
// Invariants, for every record:
//
//	Sales == min(Demand, StartingInventory)
//	NilPicks == Demand - Sales
//	EndingInventory == StartingInventory - Sales
//	StartingInventory >= 0 && EndingInventory >= 0
type DailyRecord struct {
	Date              time.Time
	Store             string
	SKU               string
	Promotion         bool
	Demand            int
	Sales             int
	NilPicks          int
	StartingInventory int // on-hand before today's sale, after today's arrivals
	EndingInventory   int // on-hand after today's sale
	ItemID            string
}

// MakeItemID builds the composite identifier for a (store, SKU) pair.
func MakeItemID(store, sku string) string {
	return store + ItemIDSeparator + sku
}
