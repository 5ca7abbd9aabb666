package main

import (
	"flag"
	"log"

	"github.com/worklog-id/worklog-backend-go/internal/config"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if *down {
		if err := database.MigrateDown(cfg.App.MigrationsDir, cfg.DatabaseURL()); err != nil {
			log.Fatal("Migration rollback failed: ", err)
		}
		log.Println("Migrations rolled back")
		return
	}

	if err := database.Migrate(cfg.App.MigrationsDir, cfg.DatabaseURL()); err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Migrations applied")
}
