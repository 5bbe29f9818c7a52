// file: pkg/orderbook/orderbook.go

package orderbook

type orderBook struct {
	bids *bookSide
	asks *bookSide

	index orderIndex

	policy MatchPolicy
	last   lastTrade
}

func newOrderBook(policy MatchPolicy) *orderBook {
	return &orderBook{
		bids:   newBookSide(BUY),
		asks:   newBookSide(SELL),
		index:  make(orderIndex),
		policy: policy,
	}
}

func (ob *orderBook) sideBook(side Side) *bookSide {
	if side == SELL {
		return ob.asks
	}
	return ob.bids
}

func (ob *orderBook) counterBook(side Side) *bookSide {
	if side == SELL {
		return ob.bids
	}
	return ob.asks
}

// insert rests order on its side and registers it in the index.
func (ob *orderBook) insert(order *Order) {
	ob.sideBook(order.Side).push(order)
	ob.index[order.ID] = indexEntry{side: order.Side, price: order.Price}
}

// removeByID takes a resting order off the book. Unknown ids are a no-op.
func (ob *orderBook) removeByID(id int64) bool {
	entry, ok := ob.index.lookup(id)
	if !ok {
		return false
	}
	delete(ob.index, id)
	return ob.sideBook(entry.side).remove(id, entry.price)
}

// addOrder matches order and rests whatever is left at its limit price.
func (ob *orderBook) addOrder(order *Order) []Trade {
	trades, residual := ob.match(order)
	if residual > 0 {
		order.Qty = residual
		ob.insert(order)
	}
	return trades
}

func (ob *orderBook) cancelOrder(id int64) bool {
	return ob.removeByID(id)
}

// modifyOrder is cancel + add: the order keeps its id but queues again.
func (ob *orderBook) modifyOrder(order *Order) []Trade {
	ob.removeByID(order.ID)
	return ob.addOrder(order)
}

func (ob *orderBook) snapshot() Snapshot {
	snap := Snapshot{
		Asks: make([]PriceLevel, 0, ob.asks.prices.Len()),
		Bids: make([]PriceLevel, 0, ob.bids.prices.Len()),
	}
	for i := 0; i < ob.asks.prices.Len(); i++ {
		snap.Asks = append(snap.Asks, ob.asks.level(ob.asks.prices.At(i)))
	}
	for i := ob.bids.prices.Len() - 1; i >= 0; i-- {
		snap.Bids = append(snap.Bids, ob.bids.level(ob.bids.prices.At(i)))
	}
	return snap
}
