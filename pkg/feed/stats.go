package feed

import (
	"github.com/joripage/feedhandler/pkg/orderbook"
	"github.com/shopspring/decimal"
)

// TradeStats accumulates totals over every trade of a run.
type TradeStats struct {
	Trades   int
	Volume   int64
	Notional decimal.Decimal
	High     int64
	Low      int64
}

func (s *TradeStats) Add(trades []orderbook.Trade) {
	for _, t := range trades {
		if s.Trades == 0 || t.Price > s.High {
			s.High = t.Price
		}
		if s.Trades == 0 || t.Price < s.Low {
			s.Low = t.Price
		}
		s.Trades++
		s.Volume += t.Qty
		s.Notional = s.Notional.Add(decimal.NewFromInt(t.Price).Mul(decimal.NewFromInt(t.Qty)))
	}
}

// VWAP is the volume weighted average trade price, rounded to 4 places.
func (s *TradeStats) VWAP() decimal.Decimal {
	if s.Volume == 0 {
		return decimal.Zero
	}
	return s.Notional.Div(decimal.NewFromInt(s.Volume)).Round(4)
}
