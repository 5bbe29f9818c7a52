package orderbook

import "fmt"

type MatchPolicy string

const (
	// PolicyFeed reproduces the reference feed handler: an incoming sell walks
	// the bids from the lowest crossing price upward and trades at its own
	// limit price.
	PolicyFeed MatchPolicy = "feed"
	// PolicyPriceTime walks the bids best first and trades at the resting price.
	PolicyPriceTime MatchPolicy = "price_time"
)

func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch MatchPolicy(s) {
	case "", PolicyFeed:
		return PolicyFeed, nil
	case PolicyPriceTime:
		return PolicyPriceTime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// match crosses order against the opposite side until it is filled or nothing
// crossable remains. It returns the trades and the unfilled quantity.
func (ob *orderBook) match(order *Order) ([]Trade, int64) {
	var trades []Trade
	counter := ob.counterBook(order.Side)

	for order.Qty > 0 {
		price, ok := ob.nextLevel(counter, order)
		if !ok {
			break
		}

		tradePrice := price
		if order.Side == SELL && ob.policy == PolicyFeed {
			tradePrice = order.Price
		}

		q := counter.levels[price]
		for order.Qty > 0 && q.Len() > 0 {
			resting := q.Front()

			qty := min(order.Qty, resting.Qty)
			order.Qty -= qty
			resting.Qty -= qty

			trades = append(trades, ob.newTrade(order, resting, tradePrice, qty))

			if resting.Qty == 0 {
				q.PopFront()
				counter.orders--
				delete(ob.index, resting.ID)
			}
		}

		if q.Len() == 0 {
			counter.dropLevel(price)
		}
	}

	return trades, order.Qty
}

// nextLevel picks the next counter price level order crosses with.
func (ob *orderBook) nextLevel(counter *bookSide, order *Order) (int64, bool) {
	if order.Side == BUY {
		ask, ok := counter.prices.Lowest()
		return ask, ok && ask <= order.Price
	}

	if ob.policy == PolicyPriceTime {
		bid, ok := counter.prices.Highest()
		return bid, ok && bid >= order.Price
	}
	// lowest bid still at or above the sell limit
	return counter.prices.Ceil(order.Price)
}

func (ob *orderBook) newTrade(order, resting *Order, price, qty int64) Trade {
	t := Trade{
		BuyOrderID:  order.ID,
		SellOrderID: resting.ID,
		Price:       price,
		Qty:         qty,
	}
	if order.Side == SELL {
		t.BuyOrderID, t.SellOrderID = resting.ID, order.ID
	}
	t.LastPrice, t.LastQty = ob.last.record(price, qty)
	return t
}
