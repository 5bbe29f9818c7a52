package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joripage/feedhandler/config"
	"github.com/joripage/feedhandler/pkg/feed"
	"github.com/joripage/feedhandler/pkg/logging"
	"github.com/joripage/feedhandler/pkg/orderbook"
	"go.uber.org/zap"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config-file path] <orders-file|->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithLogger(ctx, logger.With(zap.String("service", cfg.ServiceName)))

	err = run(ctx, cfg, flag.Arg(0))
	stop()
	if err != nil {
		logger.Error("feed failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(ctx context.Context, cfg *config.AppConfig, path string) error {
	logger := logging.FromContext(ctx)

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	engine := orderbook.NewEngine(&orderbook.EngineConfig{
		MatchPolicy: cfg.MatchPolicy(),
		Logger:      logger,
	})

	var snapshots io.Writer = io.Discard
	if cfg.Feed.SnapshotToStderr {
		snapshots = os.Stderr
	}

	h := feed.NewHandler(engine, feed.Config{SnapshotEvery: cfg.Feed.SnapshotEvery}, os.Stdout, snapshots, logger)

	logger.Info("processing feed", zap.String("input", path))
	if err := h.Run(ctx, in); err != nil {
		return err
	}
	return h.Report(os.Stdout)
}
