package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/config"
	"github.com/Mikkode/bingo/internal/game"
	"github.com/Mikkode/bingo/internal/server"
)

var (
	flagAddr    = flag.String("addr", "", "Address to listen on (default: $BINGO_ADDR or localhost:8080)")
	flagVariant = flag.String("variant_file", "", "TOML file with an extra variant (default: $BINGO_VARIANT_FILE)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load()
	if err != nil {
		klog.Fatalf("Failed to load config: %v", err)
	}
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}
	if *flagVariant != "" {
		cfg.VariantFile = *flagVariant
	}

	opts := server.Options{DefaultWinners: cfg.DefaultWinners}
	if cfg.VariantFile != "" {
		v, err := config.LoadVariantFile(cfg.VariantFile)
		if err != nil {
			klog.Fatalf("Failed to load variant: %v", err)
		}
		klog.Infof("Serving extra variant %q from %s", v.Name, cfg.VariantFile)
		opts.Variants = []*game.Variant{v}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("Emoji Detective Bingo server listening on http://%s\n", state.Address)
	}()

	if err := server.RunWithOptions(ctx, cfg.Addr, opts, started); err != nil {
		klog.Fatal(err)
	}
}
