// cmd/server/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/MehvishSheikh/attendance-webapp/internal/config"
	"github.com/MehvishSheikh/attendance-webapp/internal/routes"
	"github.com/MehvishSheikh/attendance-webapp/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := storage.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database: ", err)
	}

	r := routes.NewRouter(db, cfg)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
