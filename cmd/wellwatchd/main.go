package main

import (
	"context"
	"log"

	"github.com/jbonatakis/wellwatch/internal/config"
	"github.com/jbonatakis/wellwatch/internal/server"
	"github.com/jbonatakis/wellwatch/internal/store"
)

func main() {
	cfg := config.Load()

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("opening %s: %v", cfg.DBPath, err)
	}
	defer s.Close()

	if cfg.Seed {
		if err := s.Seed(context.Background()); err != nil {
			log.Fatalf("seeding sample wells: %v", err)
		}
	}

	log.Printf("wellwatchd listening on %s (db %s)", cfg.ListenAddr, cfg.DBPath)
	if err := server.Router(s).Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
