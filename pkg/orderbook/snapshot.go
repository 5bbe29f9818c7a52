package orderbook

// PriceLevel aggregates the resting orders at one price.
type PriceLevel struct {
	Price      int64
	Side       Side
	Quantities []int64 // per order, queue order
	Total      int64
}

// Snapshot lists both sides best price first: asks ascending, bids descending.
type Snapshot struct {
	Asks []PriceLevel
	Bids []PriceLevel
}

func (s Snapshot) Empty() bool {
	return len(s.Asks) == 0 && len(s.Bids) == 0
}
