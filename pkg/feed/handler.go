package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/joripage/feedhandler/pkg/orderbook"
	"go.uber.org/zap"
)

type Config struct {
	// SnapshotEvery dumps the book after every N lines; 0 disables it.
	SnapshotEvery int
}

// Handler drives an Engine from a line oriented feed. Trades are written to
// out as they happen; periodic book dumps go to snapshots.
type Handler struct {
	engine    *orderbook.Engine
	cfg       Config
	out       io.Writer
	snapshots io.Writer
	stats     TradeStats
	logger    *zap.Logger

	lines int
	err   error
}

func NewHandler(engine *orderbook.Engine, cfg Config, out, snapshots io.Writer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if snapshots == nil {
		snapshots = io.Discard
	}

	h := &Handler{
		engine:    engine,
		cfg:       cfg,
		out:       out,
		snapshots: snapshots,
		logger:    logger,
	}
	engine.RegisterTradeCallback(h.onTrades)
	return h
}

func (h *Handler) onTrades(trades []orderbook.Trade) {
	h.stats.Add(trades)
	for _, t := range trades {
		if _, err := fmt.Fprintln(h.out, t.String()); err != nil && h.err == nil {
			h.err = err
		}
	}
}

// Run feeds every line of r to the engine, whatever its length. Blank lines
// are passed through and end up rejected like any other bad line. It stops
// early when ctx is done.
func (h *Handler) Run(ctx context.Context, r io.Reader) error {
	reader := bufio.NewReader(r)

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read feed: %w", readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		h.engine.ProcessMessage(line)
		h.lines++

		if h.err != nil {
			return fmt.Errorf("write trade: %w", h.err)
		}

		if h.cfg.SnapshotEvery > 0 && h.lines%h.cfg.SnapshotEvery == 0 {
			if err := WriteBook(h.snapshots, h.engine.Snapshot()); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	h.logger.Info("feed processed",
		zap.Int("lines", h.lines),
		zap.Int("rejected", len(h.engine.Rejected())),
		zap.Int("trades", h.stats.Trades),
		zap.Int64("volume", h.stats.Volume),
	)
	return nil
}

// Report writes the final book, the rejected lines, the resting ids and the
// trade summary.
func (h *Handler) Report(w io.Writer) error {
	if err := WriteBook(w, h.engine.Snapshot()); err != nil {
		return err
	}
	if err := WriteRejected(w, h.engine.Rejected()); err != nil {
		return err
	}
	if err := WriteOrderIDs(w, h.engine.OrderIDs()); err != nil {
		return err
	}
	return WriteSummary(w, &h.stats)
}

func (h *Handler) Stats() TradeStats {
	return h.stats
}

func (h *Handler) Lines() int {
	return h.lines
}
