package orderbook

import "github.com/gammazero/deque"

// bookSide holds the resting orders of one side, one FIFO queue per price.
type bookSide struct {
	side   Side
	levels map[int64]*deque.Deque[*Order]
	prices priceLadder
	orders int
}

func newBookSide(side Side) *bookSide {
	return &bookSide{
		side:   side,
		levels: make(map[int64]*deque.Deque[*Order]),
	}
}

func (s *bookSide) push(order *Order) {
	q := s.levels[order.Price]
	if q == nil {
		q = &deque.Deque[*Order]{}
		s.levels[order.Price] = q
		s.prices.Push(order.Price)
	}
	q.PushBack(order)
	s.orders++
}

// remove drops the order with id from the level at price.
func (s *bookSide) remove(id, price int64) bool {
	q := s.levels[price]
	if q == nil {
		return false
	}
	i := q.Index(func(o *Order) bool { return o.ID == id })
	if i < 0 {
		return false
	}
	q.Remove(i)
	s.orders--
	if q.Len() == 0 {
		s.dropLevel(price)
	}
	return true
}

func (s *bookSide) dropLevel(price int64) {
	delete(s.levels, price)
	s.prices.Remove(price)
}

func (s *bookSide) len() int {
	return s.orders
}

// level snapshots the queue at price in arrival order.
func (s *bookSide) level(price int64) PriceLevel {
	q := s.levels[price]
	lvl := PriceLevel{
		Price:      price,
		Side:       s.side,
		Quantities: make([]int64, 0, q.Len()),
	}
	for i := 0; i < q.Len(); i++ {
		o := q.At(i)
		lvl.Quantities = append(lvl.Quantities, o.Qty)
		lvl.Total += o.Qty
	}
	return lvl
}
