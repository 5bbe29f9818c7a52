package orderbook

import (
	"fmt"
	"testing"
)

func TestSimpleMatch(t *testing.T) {
	e := NewEngine(nil)

	e.ProcessMessage("A,1,B,100,50")
	trades := e.ProcessMessage("A,2,S,100,50")

	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if got := trades[0].String(); got != "T,100,50 => 100@50" {
		t.Errorf("unexpected trade line %q", got)
	}
	if trades[0].BuyOrderID != 1 || trades[0].SellOrderID != 2 {
		t.Errorf("incorrect order IDs in trade: %+v", trades[0])
	}
	if !e.Snapshot().Empty() {
		t.Errorf("expected empty book, got %+v", e.Snapshot())
	}
	if ids := e.OrderIDs(); len(ids) != 0 {
		t.Errorf("expected no resting ids, got %v", ids)
	}
	checkBook(t, e.book)
}

func TestNoMatchDueToPrice(t *testing.T) {
	e := NewEngine(nil)

	e.ProcessMessage("A,1,S,10,100")
	trades := e.ProcessMessage("A,2,B,10,98")

	if len(trades) != 0 {
		t.Fatalf("expected no trade, got %+v", trades)
	}
	snap := e.Snapshot()
	if len(snap.Asks) != 1 || len(snap.Bids) != 1 {
		t.Fatalf("expected one level per side, got %+v", snap)
	}
	checkBook(t, e.book)
}

func TestPartialMatch(t *testing.T) {
	e := NewEngine(nil)

	e.ProcessMessage("A,1,B,50,50")
	trades := e.ProcessMessage("A,2,S,100,50")

	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].Qty != 50 || trades[0].Price != 50 {
		t.Errorf("expected 50@50, got %+v", trades[0])
	}

	snap := e.Snapshot()
	if len(snap.Bids) != 0 {
		t.Errorf("expected no bids, got %+v", snap.Bids)
	}
	if len(snap.Asks) != 1 || snap.Asks[0].Price != 50 || snap.Asks[0].Total != 50 {
		t.Fatalf("expected sell 2 resting 50@50, got %+v", snap.Asks)
	}
	if ids := e.OrderIDs(); len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected only order 2 resting, got %v", ids)
	}
	checkBook(t, e.book)
}

func TestFIFOMatch(t *testing.T) {
	e := NewEngine(nil)

	// two sells at the same price
	e.ProcessMessage("A,1,S,5,100")
	e.ProcessMessage("A,2,S,5,100")

	trades := e.ProcessMessage("A,3,B,10,100")
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].SellOrderID != 1 || trades[1].SellOrderID != 2 {
		t.Errorf("expected FIFO match order, got %+v", trades)
	}
	if trades[1].String() != "T,5,100 => 10@100" {
		t.Errorf("expected cumulative quantity at 100, got %q", trades[1].String())
	}
}

func TestMultiLevelMatch(t *testing.T) {
	e := NewEngine(nil)

	e.ProcessMessage("A,1,S,10,101")
	e.ProcessMessage("A,2,S,10,102")
	e.ProcessMessage("A,3,S,10,103")

	trades := e.ProcessMessage("A,4,B,25,105")

	want := []string{
		"T,10,101 => 10@101",
		"T,10,102 => 10@102",
		"T,5,103 => 5@103",
	}
	if len(trades) != len(want) {
		t.Fatalf("expected %d trades, got %+v", len(want), trades)
	}
	for i, w := range want {
		if got := trades[i].String(); got != w {
			t.Errorf("trade %d: expected %q, got %q", i, w, got)
		}
	}

	snap := e.Snapshot()
	if len(snap.Asks) != 1 || snap.Asks[0].Price != 103 || snap.Asks[0].Total != 5 {
		t.Errorf("expected sell 3 left with 5@103, got %+v", snap.Asks)
	}
	if len(snap.Bids) != 0 {
		t.Errorf("buy should be fully filled, got %+v", snap.Bids)
	}
	checkBook(t, e.book)
}

func TestBuyStopsAtLimit(t *testing.T) {
	e := NewEngine(nil)

	e.ProcessMessage("A,1,S,10,101")
	e.ProcessMessage("A,2,S,10,104")

	trades := e.ProcessMessage("A,3,B,30,102")
	if len(trades) != 1 || trades[0].Price != 101 || trades[0].Qty != 10 {
		t.Fatalf("expected a single 10@101 trade, got %+v", trades)
	}

	snap := e.Snapshot()
	if len(snap.Bids) != 1 || snap.Bids[0].Price != 102 || snap.Bids[0].Total != 20 {
		t.Errorf("expected remainder 20@102 resting, got %+v", snap.Bids)
	}
	if len(snap.Asks) != 1 || snap.Asks[0].Price != 104 {
		t.Errorf("expected ask at 104 untouched, got %+v", snap.Asks)
	}
	checkBook(t, e.book)
}

func TestZeroQuantityAddDoesNotRest(t *testing.T) {
	e := NewEngine(nil)

	trades := e.ProcessMessage("A,1,B,0,50")
	if len(trades) != 0 {
		t.Fatalf("expected no trade, got %+v", trades)
	}
	if len(e.Rejected()) != 0 {
		t.Fatalf("zero quantity is valid, got rejected %v", e.Rejected())
	}
	if ids := e.OrderIDs(); len(ids) != 0 {
		t.Fatalf("zero quantity order should not rest, got %v", ids)
	}
}

func TestHighVolumeOrders(t *testing.T) {
	e := NewEngine(nil)
	trade := 0
	e.RegisterTradeCallback(func(trades []Trade) {
		trade += len(trades)
	})

	num := 10_000
	for i := 1; i <= num; i++ {
		side := "B"
		if i%2 == 0 {
			side = "S"
		}
		e.ProcessMessage(fmt.Sprintf("A,%d,%s,10,100", i, side))
	}

	if trade != num/2 {
		t.Errorf("expected %d trades, got %d", num/2, trade)
	}
	if !e.Snapshot().Empty() {
		t.Errorf("expected empty book")
	}
	checkBook(t, e.book)
}

func BenchmarkOrderBookMatch(b *testing.B) {
	e := NewEngine(nil)

	// pre-load sells
	for i := 0; i < 10_000; i++ {
		e.ProcessMessage(fmt.Sprintf("A,%d,S,10,%d", i+1, 100+i%5))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e.ProcessMessage(fmt.Sprintf("A,%d,B,10,101", 100_000+i))
	}
}
