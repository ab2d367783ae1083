package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"travel-estimate-service/internal/adapters/repositories"
	"travel-estimate-service/internal/platform/db"
)

// dbtool initializes the query log schema against either backend,
// for deployments where the server process lacks DDL rights.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if databaseURL != "" {
		store, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()

		log.Println("Initializing postgres schema...")
		if err := repositories.InitPostgresSchema(store); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")
		return
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/app.db"
	}

	store, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	log.Println("Initializing sqlite schema...")
	if err := repositories.InitSqliteSchema(store); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
