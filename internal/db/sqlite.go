package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SAndrade100/mvp-test/internal/models"
)

// OpenSQLite opens the SQLite database file at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	return db, nil
}

// EnsureProductsSchema creates the products table and its query indexes.
// Price, stars and category are the most filtered fields and get indexes,
// matching the schema the original import produced.
func EnsureProductsSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			asin TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			img_url TEXT NOT NULL DEFAULT '',
			product_url TEXT NOT NULL DEFAULT '',
			stars REAL,
			reviews INTEGER NOT NULL DEFAULT 0,
			price REAL NOT NULL DEFAULT 0,
			is_best_seller BOOLEAN NOT NULL DEFAULT FALSE,
			bought_in_last_month INTEGER NOT NULL DEFAULT 0,
			category_name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_name)`,
		`CREATE INDEX IF NOT EXISTS idx_products_stars ON products(stars)`,
		`CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create products schema: %w", err)
		}
	}
	return nil
}

// CountProducts reports how many records the products table holds.
func CountProducts(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

// SeedProducts bulk-inserts a loaded record set. Used once at startup when
// the sqlite database is empty and a CSV snapshot is configured; the store
// stays read-only afterwards.
func SeedProducts(db *sql.DB, products []models.Product) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO products
		(asin, title, img_url, product_url, stars, reviews, price, is_best_seller, bought_in_last_month, category_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		var stars any
		if p.Stars != nil {
			stars = *p.Stars
		}
		if _, err := stmt.Exec(p.ASIN, p.Title, p.ImgURL, p.ProductURL, stars,
			p.Reviews, p.Price, p.IsBestSeller, p.BoughtInLastMonth, p.CategoryName); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ASIN, err)
		}
	}

	return tx.Commit()
}
