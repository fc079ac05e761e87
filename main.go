package main

import (
	"billscan-server/confs"
	"billscan-server/db"
	"billscan-server/server"
	"log"
)

func main() {
	// load config
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, cfg)
	log.Printf("Starting server on %s", cfg.ListenAddr)
	srv.Start()
}
