package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"travel-estimate-service/internal/adapters/cache"
	"travel-estimate-service/internal/adapters/geocode"
	"travel-estimate-service/internal/adapters/repositories"
	"travel-estimate-service/internal/api"
	"travel-estimate-service/internal/config"
	"travel-estimate-service/internal/logging"
	"travel-estimate-service/internal/platform/db"
	"travel-estimate-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres/SQLite, ORS, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(cfg.LogLevel)

	store, logRepo, err := openQueryLog(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	geocoder, err := buildGeocoder(cfg)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(geocoder, logRepo, logger)

	log.Printf("Server listening addr=%s", cfg.HTTPAddr)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	log.Fatal(srv.ListenAndServe())
}

// openQueryLog selects the log store backend: Postgres when DATABASE_URL
// is set, SQLite otherwise. Schema init runs on startup for local runs.
func openQueryLog(cfg config.ServerConfig) (*sql.DB, ports.QueryLogRepository, error) {
	if cfg.DatabaseURL != "" {
		store, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(store); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, repositories.NewPostgresQueryLogRepository(store), nil
	}

	store, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSqliteSchema(store); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, repositories.NewSqliteQueryLogRepository(store), nil
}

// buildGeocoder wires the ORS geocoder, wrapped in a Redis cache when one
// is configured.
func buildGeocoder(cfg config.ServerConfig) (ports.Geocoder, error) {
	geocoder, err := geocode.NewORSGeocoder(cfg.ORSAPIKey, cfg.GeocodeCountry)
	if err != nil {
		return nil, err
	}

	if cfg.RedisAddr == "" {
		return geocoder, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return cache.NewRedisGeocodeCache(geocoder, rdb, cfg.GeocodeCacheTTL), nil
}
