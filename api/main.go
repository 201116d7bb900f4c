package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SAndrade100/mvp-test/internal/catalog"
	"github.com/SAndrade100/mvp-test/internal/config"
	"github.com/SAndrade100/mvp-test/internal/db"
	api "github.com/SAndrade100/mvp-test/internal/http"
	"github.com/SAndrade100/mvp-test/internal/http/handlers"
	rl "github.com/SAndrade100/mvp-test/internal/http/rate_limiter"
	"github.com/SAndrade100/mvp-test/internal/loader"
	"github.com/SAndrade100/mvp-test/internal/repo"
)

// @title Amazon Products API
// @version 1.0
// @description Read-only query and analytics API over an Amazon product listing snapshot.
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	productRepo, err := buildProductRepo(cfg)
	if err != nil {
		log.Fatalf("Could not initialize product store: %v", err)
	}

	handlers.SetCatalog(catalog.New(productRepo))

	rl.SetLimits(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop()
	api.SetAllowedOrigins(cfg.Server.AllowedOrigins)

	r := api.RateLimitMiddleware(api.NewRouter())
	log.Printf("Server running on :%s (store backend: %s)", cfg.Server.Port, cfg.Store.Backend)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatal(err)
	}
}

func buildProductRepo(cfg *config.Config) (repo.ProductRepository, error) {
	switch cfg.Store.Backend {
	case "memory":
		products, err := loader.LoadCSV(cfg.Store.CSVPath)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded %d products from %s", len(products), cfg.Store.CSVPath)
		return repo.NewSnapshotProductRepository(products), nil

	case "sqlite":
		database, err := db.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureProductsSchema(database); err != nil {
			return nil, err
		}
		count, err := db.CountProducts(database)
		if err != nil {
			return nil, err
		}
		if count == 0 && cfg.Store.CSVPath != "" {
			products, err := loader.LoadCSV(cfg.Store.CSVPath)
			if err != nil {
				return nil, err
			}
			if err := db.SeedProducts(database, products); err != nil {
				return nil, err
			}
			log.Printf("Seeded %d products into %s", len(products), cfg.Store.SQLitePath)
		}
		return repo.NewSQLiteProductRepository(database), nil

	case "postgres":
		database, err := db.ConnectPostgres(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repo.NewPostgresProductRepository(database), nil
	}

	return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
}
