package main

import (
	"flag"
	"log"

	"LetsPaint/internal/config"
	"LetsPaint/internal/state"
	"LetsPaint/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	debug := flag.Bool("debug", false, "log every drawing command")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	state.SetDebug(*debug)

	log.Printf("Starting %s", cfg.Title)
	ui.RunApp(cfg)
}
