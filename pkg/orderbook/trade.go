package orderbook

import "fmt"

type Trade struct {
	BuyOrderID  int64
	SellOrderID int64
	Price       int64
	Qty         int64

	// running aggregate after this trade: quantity traded at LastPrice since
	// the price last changed
	LastPrice int64
	LastQty   int64
}

// String renders the trade as T,<qty>,<price> => <lastQty>@<lastPrice>.
func (t Trade) String() string {
	return fmt.Sprintf("T,%d,%d => %d@%d", t.Qty, t.Price, t.LastQty, t.LastPrice)
}

type lastTrade struct {
	price int64
	qty   int64
	ok    bool
}

func (l *lastTrade) record(price, qty int64) (int64, int64) {
	if l.ok && l.price == price {
		l.qty += qty
	} else {
		l.price, l.qty, l.ok = price, qty, true
	}
	return l.price, l.qty
}
