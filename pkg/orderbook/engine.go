package orderbook

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

type EngineConfig struct {
	MatchPolicy MatchPolicy
	Logger      *zap.Logger
}

// Engine applies order messages to a single order book. All methods are
// serialized by one lock; trade callbacks run after it is released.
type Engine struct {
	mu   sync.Mutex
	book *orderBook

	rejected  []string
	callbacks []func([]Trade)

	logger *zap.Logger
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	policy := cfg.MatchPolicy
	if policy == "" {
		policy = PolicyFeed
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		book:   newOrderBook(policy),
		logger: logger.With(zap.String("match_policy", string(policy))),
	}
}

// ProcessMessage parses and applies one line and returns the trades it
// produced. Invalid lines are kept in the rejected log and leave the book
// untouched.
func (e *Engine) ProcessMessage(line string) []Trade {
	trades, callbacks := e.apply(line)

	if len(trades) > 0 {
		for _, cb := range callbacks {
			cb(trades)
		}
	}
	return trades
}

func (e *Engine) apply(line string) ([]Trade, []func([]Trade)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, err := ParseMessage(line, e.book.index)
	if err != nil {
		e.rejected = append(e.rejected, line)
		e.logger.Debug("message rejected", zap.String("line", line), zap.Error(err))
		return nil, nil
	}

	var trades []Trade
	switch order.Action {
	case ADD:
		trades = e.book.addOrder(order)
	case CANCEL:
		e.book.cancelOrder(order.ID)
	case MODIFY:
		trades = e.book.modifyOrder(order)
	}

	e.logger.Debug("message applied",
		zap.Stringer("order", order),
		zap.Int("trades", len(trades)),
	)
	return trades, e.callbacks
}

// RegisterTradeCallback adds fn to the functions called with the trades of
// every message that produced any.
func (e *Engine) RegisterTradeCallback(fn func([]Trade)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.callbacks = append(e.callbacks, fn)
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.snapshot()
}

// Rejected returns the rejected lines in arrival order.
func (e *Engine) Rejected() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.rejected)
}

// OrderIDs returns the ids of all resting orders, ascending.
func (e *Engine) OrderIDs() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.index.ids()
}

// LastTrade returns the last trade price and the quantity traded at it since
// the price last changed. ok is false before the first trade.
func (e *Engine) LastTrade() (price, qty int64, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.last.price, e.book.last.qty, e.book.last.ok
}
