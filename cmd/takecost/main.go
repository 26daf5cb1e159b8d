package main

import (
	"log"

	"takecost/internal/config"
	"takecost/internal/infra/db"
	httpserver "takecost/internal/infra/http"
)

func main() {
	cfg := config.FromEnv()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	if err := store.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	srv := httpserver.NewServer(cfg, store)
	log.Printf("takecost listening on %s", cfg.HTTPAddr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
