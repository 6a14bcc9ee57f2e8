package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"igctrack/internal/config"
	"igctrack/internal/igc"
	"igctrack/internal/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lib := web.NewLibrary(cfg.Server.TracksDir, &igc.Decoder{AltitudeMode: cfg.AltitudeMode()})
	if err := lib.Reload(); err != nil {
		log.Fatalf("track scan failed: %v", err)
	}

	log.Printf("igcserve starting")
	log.Printf("flights loaded dir=%s count=%d mode=%s", cfg.Server.TracksDir, len(lib.Names()), cfg.AltitudeMode())
	log.Printf("listening addr=%s", cfg.Server.Listen)

	err = web.Serve(ctx, cfg.Server.Listen, lib, web.StreamDefaults{
		Speed: cfg.Replay.Speed,
		Loop:  cfg.Replay.Loop,
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("server stopped: %v", err)
	}
	log.Printf("igcserve stopping")
}
