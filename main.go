package main

import (
	"concierge-server/confs"
	"concierge-server/db"
	"concierge-server/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	// load config
	conf, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, conf)
	srv.Start()
}
