package sim

// PendingOrder is an outstanding replenishment order: Quantity units that
// become available on ArrivalDay.
type PendingOrder struct {
	ArrivalDay int
	Quantity   int
}

// DayResult carries the numeric outcome of one product line's daily
// transition. The simulator combines it with the calendar date and the
// line's identifiers to form a DailyRecord.
type DayResult struct {
	Demand            int
	Sales             int
	NilPicks          int
	StartingInventory int
	EndingInventory   int
}

// LineState is the mutable state of one product line (a store x SKU pair):
// its current on-hand inventory and the queue of outstanding orders, kept
// in arrival-day order of placement. Each LineState is owned by exactly one
// simulation loop; lines never share state, so a cluster of lines can be
// stepped independently.
type LineState struct {
	Store   string
	SKU     string
	OnHand  int
	Pending []PendingOrder
}

// NewLineState creates a product line with the given starting inventory
// and an empty order queue.
func NewLineState(store, sku string, initialInventory int) *LineState {
	return &LineState{
		Store:  store,
		SKU:    sku,
		OnHand: initialInventory,
	}
}

// Step advances the line by one day given today's realized demand.
// In order: receive orders arriving today, fulfill demand from on-hand
// stock (shortfall becomes nil-picks), then apply the reorder policy.
// The reorder check fires every day ending inventory is strictly below
// the reorder point, even when an order is already in flight; overlapping
// orders model a naive replenishment system and must not be suppressed.
func (s *LineState) Step(day int, demand int, policy ReorderPolicy) DayResult {
	s.OnHand += s.receiveArrivals(day)
	starting := s.OnHand

	var result DayResult
	result.Demand = demand
	result.StartingInventory = starting
	if demand > starting {
		result.Sales = starting
		result.NilPicks = demand - starting
		result.EndingInventory = 0
	} else {
		result.Sales = demand
		result.EndingInventory = starting - demand
	}
	s.OnHand = result.EndingInventory

	if result.EndingInventory < policy.Point {
		s.Pending = append(s.Pending, PendingOrder{
			ArrivalDay: day + policy.LeadTimeDays,
			Quantity:   policy.Quantity,
		})
	}
	return result
}

// receiveArrivals removes every pending order due on the given day and
// returns the sum of their quantities.
func (s *LineState) receiveArrivals(day int) int {
	arrived := 0
	remaining := s.Pending[:0]
	for _, order := range s.Pending {
		if order.ArrivalDay == day {
			arrived += order.Quantity
		} else {
			remaining = append(remaining, order)
		}
	}
	s.Pending = remaining
	return arrived
}
