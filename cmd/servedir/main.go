package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/HMasataka/servedir/internal/browse"
	"github.com/HMasataka/servedir/internal/config"
	"github.com/HMasataka/servedir/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	addr := flag.String("addr", config.DefaultAddr, "listen address")
	root := flag.String("root", config.DefaultRoot, "content root directory")
	index := flag.String("index", config.DefaultIndex, "default document served for /")
	configPath := flag.String("config", "", "path to TOML config file")
	open := flag.Bool("open", true, "open the default browser once serving")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given on the command line win over config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "root":
			cfg.Root = *root
		case "index":
			cfg.Index = *index
		case "open":
			cfg.OpenBrowser = *open
		}
	})

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := server.New(cfg, browse.NewOpener())

	if err := s.Run(ctx); err != nil {
		if errors.Is(err, server.ErrAddrInUse) {
			slog.Error("port is already in use, is another server running?", slog.String("addr", cfg.Addr))
		} else {
			slog.Error("server error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	slog.Info("shutting down server...")
}
