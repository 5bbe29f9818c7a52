package orderbook

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// checkBook verifies that the index and both sides describe the same orders.
func checkBook(t fataler, ob *orderBook) {
	t.Helper()

	seen := make(map[int64]bool)
	for _, s := range []*bookSide{ob.bids, ob.asks} {
		if len(s.levels) != s.prices.Len() {
			t.Fatalf("%s: %d levels but %d prices", s.side, len(s.levels), s.prices.Len())
		}
		count := 0
		for i := 0; i < s.prices.Len(); i++ {
			price := s.prices.At(i)
			if i > 0 && s.prices.At(i-1) >= price {
				t.Fatalf("%s: prices not ascending at %d", s.side, i)
			}
			q, ok := s.levels[price]
			if !ok || q.Len() == 0 {
				t.Fatalf("%s: empty or missing level %d", s.side, price)
			}
			for j := 0; j < q.Len(); j++ {
				o := q.At(j)
				count++
				if o.Side != s.side {
					t.Fatalf("order %d of side %s rests on %s", o.ID, o.Side, s.side)
				}
				if o.Price != price {
					t.Fatalf("order %d price %d sits at level %d", o.ID, o.Price, price)
				}
				if o.Qty <= 0 {
					t.Fatalf("order %d rests with qty %d", o.ID, o.Qty)
				}
				if seen[o.ID] {
					t.Fatalf("order %d rests twice", o.ID)
				}
				seen[o.ID] = true
				entry, ok := ob.index[o.ID]
				if !ok {
					t.Fatalf("order %d rests but is not indexed", o.ID)
				}
				if entry.side != s.side || entry.price != price {
					t.Fatalf("order %d indexed at %s/%d, rests at %s/%d", o.ID, entry.side, entry.price, s.side, price)
				}
			}
		}
		if count != s.len() {
			t.Fatalf("%s: counted %d orders, side reports %d", s.side, count, s.len())
		}
	}
	if len(seen) != len(ob.index) {
		t.Fatalf("index has %d ids, book has %d orders", len(ob.index), len(seen))
	}
}

func sideTotal(s *bookSide) int64 {
	var total int64
	for _, q := range s.levels {
		for i := 0; i < q.Len(); i++ {
			total += q.At(i).Qty
		}
	}
	return total
}
