package feed

import (
	"bufio"
	"fmt"
	"io"

	"github.com/joripage/feedhandler/pkg/orderbook"
)

const rule = "=========="

// WriteBook prints the asks then the bids, best price first, one line per
// price: "<price> <side> <qty> [<side> <qty> ...]".
func WriteBook(w io.Writer, snap orderbook.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Order Book:")
	fmt.Fprintln(bw, rule)
	writeLevels(bw, snap.Asks)
	fmt.Fprintln(bw)
	writeLevels(bw, snap.Bids)
	fmt.Fprintln(bw, rule)

	return bw.Flush()
}

func writeLevels(w io.Writer, levels []orderbook.PriceLevel) {
	for _, lvl := range levels {
		fmt.Fprint(w, lvl.Price)
		code := lvl.Side.Code()
		for _, qty := range lvl.Quantities {
			fmt.Fprintf(w, " %s %d", code, qty)
		}
		fmt.Fprintln(w)
	}
}

// WriteRejected prints the number of rejected lines followed by each line.
func WriteRejected(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Error order: %d\n", len(lines))
	for _, l := range lines {
		fmt.Fprintln(bw, l)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func WriteOrderIDs(w io.Writer, ids []int64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprint(bw, "order ID list: ")
	for _, id := range ids {
		fmt.Fprintf(bw, " %d", id)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func WriteSummary(w io.Writer, s *TradeStats) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Trades: %d\n", s.Trades)
	fmt.Fprintf(bw, "Volume: %d\n", s.Volume)
	fmt.Fprintf(bw, "Notional: %s\n", s.Notional.String())
	if s.Trades > 0 {
		fmt.Fprintf(bw, "VWAP: %s (low %d, high %d)\n", s.VWAP().String(), s.Low, s.High)
	}

	return bw.Flush()
}
