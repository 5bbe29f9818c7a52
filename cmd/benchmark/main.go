package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/joripage/feedhandler/pkg/feed"
	"github.com/joripage/feedhandler/pkg/orderbook"
)

const (
	minPrice = 100
	maxPrice = 200
	minQty   = 1
	maxQty   = 100
)

// randomMessage mostly adds, with some cancels and modifies of earlier ids.
func randomMessage(r *rand.Rand, id int) string {
	side := "B"
	if r.Intn(2) == 0 {
		side = "S"
	}
	price := minPrice + r.Intn(maxPrice-minPrice+1)
	qty := r.Intn(maxQty-minQty+1) + minQty

	switch n := r.Intn(10); {
	case n == 0 && id > 1:
		return fmt.Sprintf("X,%d,%s,0,0", r.Intn(id-1)+1, side)
	case n == 1 && id > 1:
		return fmt.Sprintf("M,%d,%s,%d,%d", r.Intn(id-1)+1, side, qty, price)
	}
	return fmt.Sprintf("A,%d,%s,%d,%d", id, side, qty, price)
}

func main() {
	var (
		numOrders int
		policy    string
		seed      int64
	)
	flag.IntVar(&numOrders, "orders", 1_000_000, "number of messages to generate")
	flag.StringVar(&policy, "policy", string(orderbook.PolicyFeed), "match policy: feed or price_time")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	matchPolicy, err := orderbook.ParseMatchPolicy(policy)
	if err != nil {
		fmt.Println(err)
		return
	}

	r := rand.New(rand.NewSource(seed))
	messages := make([]string, numOrders)
	for i := range messages {
		messages[i] = randomMessage(r, i+1)
	}

	engine := orderbook.NewEngine(&orderbook.EngineConfig{MatchPolicy: matchPolicy})
	var stats feed.TradeStats
	engine.RegisterTradeCallback(stats.Add)

	start := time.Now()
	for _, m := range messages {
		engine.ProcessMessage(m)
	}
	elapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("Total Messages   : %d\n", numOrders)
	fmt.Printf("Rejected         : %d\n", len(engine.Rejected()))
	fmt.Printf("Resting Orders   : %d\n", len(engine.OrderIDs()))
	fmt.Printf("Total Trades     : %d\n", stats.Trades)
	fmt.Printf("Total Matched Qty: %d\n", stats.Volume)
	fmt.Printf("VWAP             : %s\n", stats.VWAP().String())
	fmt.Printf("Time Taken       : %s\n", elapsed)
}
