// Command migrate creates the schema and seeds the bootstrap admin account
// without starting the server.
package main

import (
	"log"

	"github.com/aprilfamily/cookbook-backend/config"
	"github.com/aprilfamily/cookbook-backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Migration complete")
}
